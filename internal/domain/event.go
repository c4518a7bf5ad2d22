package domain

import "encoding/json"

// Carrier webhook event types this service reconciles. Anything else is
// acknowledged and dropped.
const (
	EventMessageReceived  = "message.received"
	EventDeliveryStatus   = "message.delivery_status"
	EventMessageSent      = "message.sent"
	EventMessageFinalized = "message.finalized"
)

// WebhookEnvelope is the outer shape of every carrier webhook delivery:
// {"data": {"event_type": ..., "payload": {...}}}. The payload is kept raw
// because its shape varies per event type and per carrier schema revision.
type WebhookEnvelope struct {
	Data WebhookEvent `json:"data"`
}

type WebhookEvent struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// FeedEvent is the record published on the lifecycle feed after every
// applied store mutation.
type FeedEvent struct {
	ID                string `json:"id"`
	Kind              string `json:"kind"`
	MessageID         int64  `json:"message_id,omitempty"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	Status            string `json:"status,omitempty"`
}

const (
	FeedKindOutboundAccepted = "outbound.accepted"
	FeedKindInboundReceived  = "inbound.received"
	FeedKindStatusUpdated    = "status.updated"
)
