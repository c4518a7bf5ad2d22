package infra

import (
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/aioseoassistant/SMSApp/internal/config"
	"github.com/aioseoassistant/SMSApp/internal/constant"
)

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.FeedProducerAcks,
		Async:        false, // feed workers perform sync writes with timeout + retries
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    1024,
	}
}
