package sms

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// Send relays one message through the carrier and records the attempt.
// Order is strict: validate, resolve sender, submit, persist. A carrier
// failure leaves no record behind; a storage failure after the carrier
// accepted the message is surfaced but cannot be undone.
func (ss *smsService) Send(ctx context.Context, to, body string) (domain.SendResult, error) {
	if to == "" {
		return domain.SendResult{}, domain.NewValidationError("to is required")
	}
	if body == "" {
		return domain.SendResult{}, domain.NewValidationError("body is required")
	}

	identity, err := ss.resolveSenderIdentity()
	if err != nil {
		return domain.SendResult{}, err
	}

	receipt, err := ss.provider.Send(ctx, to, body, identity)
	if err != nil {
		ss.logger.WithError(err).Warn("carrier rejected submission")
		return domain.SendResult{}, err
	}

	record := domain.MessageRecord{
		Direction:  domain.DirectionOutbound,
		FromNumber: firstNonEmpty(receipt.FromNumber, identity.FromNumber),
		ToNumber:   firstNonEmpty(receipt.ToNumber, to),
		Body:       body,
		Status:     firstNonEmpty(receipt.Status, constant.DefaultOutboundStatus),
	}
	if receipt.ProviderMessageID != "" {
		id := receipt.ProviderMessageID
		record.ProviderMessageID = &id
	}

	if _, err := ss.repository.Insert(ctx, &record); err != nil {
		// The carrier already accepted the message; the local log now has a
		// gap that only provider-side reconciliation can close.
		ss.logger.WithError(err).WithFields(logrus.Fields{
			"provider_message_id": receipt.ProviderMessageID,
			"to":                  to,
		}).Error("message sent but not logged")
		return domain.SendResult{}, err
	}

	ss.cache.Invalidate(ctx)
	ss.feed.Publish(domain.FeedEvent{
		ID:                uuid.NewString(),
		Kind:              domain.FeedKindOutboundAccepted,
		MessageID:         record.ID,
		ProviderMessageID: receipt.ProviderMessageID,
		Status:            record.Status,
	})

	return domain.SendResult{
		ProviderMessageID: receipt.ProviderMessageID,
		Status:            record.Status,
	}, nil
}

// resolveSenderIdentity picks the configured sending identity. Exactly one
// of messaging profile / sender number must be configured; anything else is
// a configuration problem reported before the network hop.
func (ss *smsService) resolveSenderIdentity() (domain.SenderIdentity, error) {
	profile := ss.carrier.MessagingProfileID
	from := ss.carrier.FromNumber

	switch {
	case profile == "" && from == "":
		return domain.SenderIdentity{}, domain.NewValidationError("no messaging profile id or sender number configured")
	case profile != "" && from != "":
		return domain.SenderIdentity{}, domain.NewValidationError("both messaging profile id and sender number configured, want exactly one")
	case profile != "":
		return domain.SenderIdentity{MessagingProfileID: profile}, nil
	default:
		return domain.SenderIdentity{FromNumber: from}, nil
	}
}

// ListRecent reads the newest messages, consulting the cache first. The
// repository applies the hard limit clamp.
func (ss *smsService) ListRecent(ctx context.Context, limit int) ([]domain.MessageRecord, error) {
	if limit <= 0 {
		limit = constant.ListDefaultLimit
	}
	if limit > constant.ListMaxLimit {
		limit = constant.ListMaxLimit
	}

	if records, ok := ss.cache.GetRecent(ctx, limit); ok {
		return records, nil
	}

	records, err := ss.repository.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	ss.cache.SetRecent(ctx, records)
	return records, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
