package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// Receive godoc
// @Summary      Carrier webhook ingress
// @Description  Accept a carrier event delivery and reconcile it into the message log
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]bool "delivery processed or acknowledged"
// @Failure      400 {object} map[string]string "malformed envelope"
// @Failure      500 {object} map[string]string "storage failure"
// @Router       /v1/webhooks/telnyx [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	var envelope domain.WebhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// A body that does not parse will not parse on redelivery either.
		h.logger.Warnf("malformed webhook delivery: %v, raw: %s", err, string(raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	if err := h.webhookService.Apply(c.Request.Context(), envelope.Data); err != nil {
		h.logger.WithError(err).Error("failed to reconcile webhook event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
