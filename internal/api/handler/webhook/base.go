package webhook

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

type WebhookHandler struct {
	webhookService webhookService
	logger         *logrus.Logger
}

type webhookService interface {
	Apply(ctx context.Context, event domain.WebhookEvent) error
}

func New(webhookService webhookService, logger *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		logger:         logger,
	}
}
