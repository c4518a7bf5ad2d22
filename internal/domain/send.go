package domain

// SenderIdentity names the sending side of an outbound message: either a
// carrier-side messaging profile or a literal sender number, never both.
type SenderIdentity struct {
	MessagingProfileID string
	FromNumber         string
}

// SendReceipt is what the carrier reports back for an accepted submission.
// Every field is optional; the coordinator falls back to request values.
type SendReceipt struct {
	ProviderMessageID string
	Status            string
	FromNumber        string
	ToNumber          string
}

// SendResult is returned to the caller after a successful send.
type SendResult struct {
	ProviderMessageID string `json:"id"`
	Status            string `json:"status"`
}
