package sms

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/cache"
	"github.com/aioseoassistant/SMSApp/internal/config"
	"github.com/aioseoassistant/SMSApp/internal/domain"
	"github.com/aioseoassistant/SMSApp/internal/feed"
	"github.com/aioseoassistant/SMSApp/internal/provider"
)

type smsService struct {
	repository messageRepository
	provider   provider.CarrierProvider
	carrier    config.Carrier
	cache      cache.ListingCache
	feed       feed.Publisher
	logger     *logrus.Logger
}

type messageRepository interface {
	Insert(ctx context.Context, record *domain.MessageRecord) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.MessageRecord, error)
}

func NewSmsService(
	repository messageRepository,
	carrierProvider provider.CarrierProvider,
	carrier config.Carrier,
	listingCache cache.ListingCache,
	publisher feed.Publisher,
	logger *logrus.Logger,
) *smsService {
	return &smsService{
		repository: repository,
		provider:   carrierProvider,
		carrier:    carrier,
		cache:      listingCache,
		feed:       publisher,
		logger:     logger,
	}
}
