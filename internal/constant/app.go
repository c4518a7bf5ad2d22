package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// ListMaxLimit caps the recent-messages read regardless of what the
	// caller asked for.
	ListMaxLimit     = 500
	ListDefaultLimit = 50

	// DefaultOutboundStatus is recorded when the carrier accepts a message
	// without reporting a status of its own.
	DefaultOutboundStatus = "queued"
	// DefaultInboundStatus is recorded for inbound messages whose payload
	// carries no status.
	DefaultInboundStatus = "received"

	CarrierHTTPTimeout = 10 * time.Second
	DBWriteTimeout     = 2 * time.Second // keep single-record writes short

	FeedProducerAcks  = kafka.RequireAll
	FeedWriteTimeout  = 5 * time.Second
	FeedWorkerCount   = 2
	FeedWorkerBufSize = 4096 // capacity of in-memory channel; tune by memory and expected bursts
	FeedWriteRetries  = 3
	FeedRetryBackoff  = 500 * time.Millisecond

	ListCacheKey = "smsapp:messages:recent"
	ListCacheTTL = 30 * time.Second

	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-Id"
)
