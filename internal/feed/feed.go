package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// Publisher emits lifecycle events for downstream consumers. Publishing is
// best-effort and must never block or fail the request path.
type Publisher interface {
	Publish(event domain.FeedEvent)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(domain.FeedEvent) {}

// messageWriter is the slice of kafka.Writer the publisher needs; tests
// substitute a recorder.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher buffers events on an in-memory channel and drains it with
// background workers doing sync writes with bounded retries. Events are
// dropped (and logged) when the buffer is full or retries are exhausted.
type KafkaPublisher struct {
	writer messageWriter
	logger *log.Logger

	events chan domain.FeedEvent
	wg     sync.WaitGroup
	once   sync.Once
}

func NewKafkaPublisher(writer messageWriter, logger *log.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
		events: make(chan domain.FeedEvent, constant.FeedWorkerBufSize),
	}
}

// Start launches the worker goroutines. Workers exit once Close drains the
// channel.
func (p *KafkaPublisher) Start(workers int) {
	if workers <= 0 {
		workers = constant.FeedWorkerCount
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
}

// Close stops accepting events and waits for in-flight writes.
func (p *KafkaPublisher) Close() {
	p.once.Do(func() { close(p.events) })
	p.wg.Wait()
}

func (p *KafkaPublisher) Publish(event domain.FeedEvent) {
	select {
	case p.events <- event:
	default:
		p.logger.Warnf("feed buffer full, dropping event %s kind=%s", event.ID, event.Kind)
	}
}

func (p *KafkaPublisher) run(workerID int) {
	defer p.wg.Done()

	for event := range p.events {
		payload, err := json.Marshal(event)
		if err != nil {
			p.logger.Errorf("feed worker %d: failed to marshal event: %v", workerID, err)
			continue
		}

		var written bool
		for attempt := 0; attempt < constant.FeedWriteRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), constant.FeedWriteTimeout)
			err = p.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(event.ID),
				Value: payload,
				Time:  time.Now(),
			})
			cancel()
			if err == nil {
				written = true
				break
			}
			p.logger.Warnf("feed worker %d: write attempt %d failed: %v", workerID, attempt+1, err)
			time.Sleep(constant.FeedRetryBackoff * time.Duration(attempt+1))
		}
		if !written {
			p.logger.Errorf("feed worker %d: dropping event %s after %d attempts", workerID, event.ID, constant.FeedWriteRetries)
		}
	}
}
