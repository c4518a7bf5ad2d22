package message

import (
	"context"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

type MessageHandler struct {
	smsService smsService
}

type smsService interface {
	Send(ctx context.Context, to, body string) (domain.SendResult, error)
	ListRecent(ctx context.Context, limit int) ([]domain.MessageRecord, error)
}

func New(smsService smsService) *MessageHandler {
	return &MessageHandler{
		smsService: smsService,
	}
}
