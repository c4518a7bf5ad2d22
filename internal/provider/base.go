package provider

import (
	"context"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// CarrierProvider submits one message to the carrier and reports what the
// carrier said about it. Implementations normalize every failure mode
// (rejected request, transport error, undecodable body) to a
// *domain.GatewayError carrying the raw provider payload.
type CarrierProvider interface {
	Send(ctx context.Context, to, body string, identity domain.SenderIdentity) (domain.SendReceipt, error)
}
