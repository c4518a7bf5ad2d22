package webhook

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/cache"
	"github.com/aioseoassistant/SMSApp/internal/domain"
	"github.com/aioseoassistant/SMSApp/internal/feed"
)

// webhookService folds carrier-pushed events into the message log. It keeps
// no state of its own between calls; the store is the only memory.
type webhookService struct {
	repository messageRepository
	cache      cache.ListingCache
	feed       feed.Publisher
	logger     *logrus.Logger
}

type messageRepository interface {
	Insert(ctx context.Context, record *domain.MessageRecord) (int64, error)
	UpdateStatus(ctx context.Context, providerMessageID, status string) (int64, error)
}

func NewWebhookService(
	repository messageRepository,
	listingCache cache.ListingCache,
	publisher feed.Publisher,
	logger *logrus.Logger,
) *webhookService {
	return &webhookService{
		repository: repository,
		cache:      listingCache,
		feed:       publisher,
		logger:     logger,
	}
}
