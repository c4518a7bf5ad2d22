package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// StubProvider accepts everything without a network hop. Used for local runs
// when no carrier credentials are configured.
type StubProvider struct {
	logger *log.Logger
}

func NewStubProvider(logger *log.Logger) *StubProvider {
	return &StubProvider{logger: logger}
}

func (s *StubProvider) Send(_ context.Context, to, body string, identity domain.SenderIdentity) (domain.SendReceipt, error) {
	id := fmt.Sprintf("stub_%s", uuid.NewString())
	s.logger.WithFields(log.Fields{
		"to":          to,
		"provider_id": id,
		"bytes":       len(body),
	}).Info("stub provider accepted message")

	return domain.SendReceipt{
		ProviderMessageID: id,
		Status:            constant.DefaultOutboundStatus,
		FromNumber:        identity.FromNumber,
		ToNumber:          to,
	}, nil
}
