package request

type SendMessageRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
