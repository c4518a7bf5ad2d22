package domain

import "time"

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

// MessageRecord is the single durable entity: one row per message, written
// once and then mutated only through Status as carrier events arrive.
// Status is an open carrier vocabulary ("queued", "sent", "delivered",
// "failed", "received", ...) and is stored as free text.
type MessageRecord struct {
	ID         int64     `json:"id"`
	Direction  Direction `json:"direction"`
	FromNumber string    `json:"from"`
	ToNumber   string    `json:"to"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	// ProviderMessageID is the carrier's correlation key; nil when the
	// carrier never reported one, in which case later status events cannot
	// be matched to this record.
	ProviderMessageID *string   `json:"provider_message_id"`
	CreatedAt         time.Time `json:"created_at"`
}
