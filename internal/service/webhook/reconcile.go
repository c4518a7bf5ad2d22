package webhook

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// Apply reconciles one carrier event into the store. Unknown event types
// and events missing the fields needed for correlation are acknowledged
// no-ops so a schema the carrier grows tomorrow does not start bouncing
// deliveries today. Only storage failures come back as errors.
func (ws *webhookService) Apply(ctx context.Context, event domain.WebhookEvent) error {
	switch event.EventType {
	case domain.EventMessageReceived:
		return ws.applyInbound(ctx, event.Payload)
	case domain.EventDeliveryStatus, domain.EventMessageSent, domain.EventMessageFinalized:
		return ws.applyDeliveryStatus(ctx, event.Payload)
	default:
		ws.logger.WithField("event_type", event.EventType).Debug("ignoring unknown webhook event type")
		return nil
	}
}

func (ws *webhookService) applyInbound(ctx context.Context, payload json.RawMessage) error {
	fields := decodePayload(payload)
	if fields == nil {
		ws.logger.Warnf("inbound event payload is not an object, skipping: %s", string(payload))
		return nil
	}

	record := domain.MessageRecord{
		Direction:  domain.DirectionInbound,
		FromNumber: extractPhone(fields["from"]),
		ToNumber:   extractPhone(fields["to"]),
		Body:       firstString(fields, "text", "body"),
		Status:     firstString(fields, "status"),
	}
	if record.Status == "" {
		record.Status = constant.DefaultInboundStatus
	}
	if record.ToNumber == "" {
		ws.logger.Warnf("inbound event has no recipient, skipping: %s", string(payload))
		return nil
	}
	if id, ok := fields["id"].(string); ok && id != "" {
		record.ProviderMessageID = &id
	}

	if _, err := ws.repository.Insert(ctx, &record); err != nil {
		return err
	}

	ws.cache.Invalidate(ctx)
	ws.feed.Publish(domain.FeedEvent{
		ID:                uuid.NewString(),
		Kind:              domain.FeedKindInboundReceived,
		MessageID:         record.ID,
		ProviderMessageID: derefOrEmpty(record.ProviderMessageID),
		Status:            record.Status,
	})

	ws.logger.WithFields(logrus.Fields{
		"message_id": record.ID,
		"from":       record.FromNumber,
	}).Info("recorded inbound message")
	return nil
}

func (ws *webhookService) applyDeliveryStatus(ctx context.Context, payload json.RawMessage) error {
	fields := decodePayload(payload)
	if fields == nil {
		ws.logger.Warnf("delivery status payload is not an object, skipping: %s", string(payload))
		return nil
	}

	providerID, _ := fields["id"].(string)
	if providerID == "" {
		// No correlation key means no record can be located; dropped rather
		// than failed so the carrier does not redeliver something we can
		// never apply.
		ws.logger.Warnf("delivery status event without message id, skipping: %s", string(payload))
		return nil
	}

	status := extractStatus(fields)
	if status == "" {
		ws.logger.Warnf("delivery status event without a recognizable status, skipping: %s", string(payload))
		return nil
	}

	affected, err := ws.repository.UpdateStatus(ctx, providerID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		ws.logger.WithFields(logrus.Fields{
			"provider_message_id": providerID,
			"status":              status,
		}).Info("delivery status arrived before the message record, nothing to reconcile yet")
		return nil
	}

	ws.cache.Invalidate(ctx)
	ws.feed.Publish(domain.FeedEvent{
		ID:                uuid.NewString(),
		Kind:              domain.FeedKindStatusUpdated,
		ProviderMessageID: providerID,
		Status:            status,
	})

	ws.logger.WithFields(logrus.Fields{
		"provider_message_id": providerID,
		"status":              status,
	}).Info("reconciled delivery status")
	return nil
}

func decodePayload(payload json.RawMessage) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil
	}
	return fields
}

// statusExtractors are tried in priority order; the first non-empty result
// wins. The carrier's webhook schema has moved the per-recipient status
// around over time, so every known location is probed.
var statusExtractors = []func(map[string]any) string{
	extractRecipientStatus,
	extractDeliveryStatusField,
	extractFlatStatus,
}

func extractStatus(fields map[string]any) string {
	for _, extract := range statusExtractors {
		if status := extract(fields); status != "" {
			return status
		}
	}
	return ""
}

// extractRecipientStatus reads the nested per-recipient array shape:
// {"to": [{"phone_number": ..., "status": "delivered"}]}.
func extractRecipientStatus(fields map[string]any) string {
	recipients, ok := fields["to"].([]any)
	if !ok {
		return ""
	}
	for _, r := range recipients {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if status, ok := m["status"].(string); ok && status != "" {
			return status
		}
	}
	return ""
}

// extractDeliveryStatusField reads the flat {"delivery_status": ...} shape.
func extractDeliveryStatusField(fields map[string]any) string {
	status, _ := fields["delivery_status"].(string)
	return status
}

// extractFlatStatus reads the flat {"status": ...} shape.
func extractFlatStatus(fields map[string]any) string {
	status, _ := fields["status"].(string)
	return status
}

// extractPhone tolerates the three shapes phone fields arrive in: a flat
// string, an object with phone_number, or an array of recipient objects.
func extractPhone(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case map[string]any:
		phone, _ := value["phone_number"].(string)
		return phone
	case []any:
		for _, item := range value {
			if phone := extractPhone(item); phone != "" {
				return phone
			}
		}
	}
	return ""
}

func firstString(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
