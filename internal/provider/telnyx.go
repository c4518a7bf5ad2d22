package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

type TelnyxProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewTelnyxProvider(baseURL, apiKey string) *TelnyxProvider {
	return &TelnyxProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: constant.CarrierHTTPTimeout,
		},
	}
}

type telnyxSendRequest struct {
	To                 string `json:"to"`
	Text               string `json:"text"`
	From               string `json:"from,omitempty"`
	MessagingProfileID string `json:"messaging_profile_id,omitempty"`
}

// telnyxSendResponse covers the slice of the /v2/messages response we act
// on; everything else is ignored.
type telnyxSendResponse struct {
	Data struct {
		ID   string `json:"id"`
		From struct {
			PhoneNumber string `json:"phone_number"`
		} `json:"from"`
		To []struct {
			PhoneNumber string `json:"phone_number"`
			Status      string `json:"status"`
		} `json:"to"`
	} `json:"data"`
}

func (p *TelnyxProvider) Send(ctx context.Context, to, body string, identity domain.SenderIdentity) (domain.SendReceipt, error) {
	reqBody, err := json.Marshal(telnyxSendRequest{
		To:                 to,
		Text:               body,
		From:               identity.FromNumber,
		MessagingProfileID: identity.MessagingProfileID,
	})
	if err != nil {
		return domain.SendReceipt{}, &domain.GatewayError{Err: errors.Wrap(err, "encode request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v2/messages", bytes.NewReader(reqBody))
	if err != nil {
		return domain.SendReceipt{}, &domain.GatewayError{Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.SendReceipt{}, &domain.GatewayError{Err: errors.Wrap(err, "carrier unreachable")}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SendReceipt{}, &domain.GatewayError{
			Detail: string(raw),
			Err:    errors.Errorf("carrier returned status %d", resp.StatusCode),
		}
	}

	var tr telnyxSendResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return domain.SendReceipt{}, &domain.GatewayError{
			Detail: string(raw),
			Err:    errors.Wrap(err, "decode response"),
		}
	}

	receipt := domain.SendReceipt{
		ProviderMessageID: tr.Data.ID,
		FromNumber:        tr.Data.From.PhoneNumber,
	}
	if len(tr.Data.To) > 0 {
		receipt.ToNumber = tr.Data.To[0].PhoneNumber
		receipt.Status = tr.Data.To[0].Status
	}

	return receipt, nil
}
