package message

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/aioseoassistant/SMSApp/internal/api/request"
	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// Send godoc
// @Summary      Send SMS
// @Description  Relay an SMS message through the carrier and record it
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body request.SendMessageRequest true "message request body"
// @Success      200 {object} map[string]interface{} "message accepted by the carrier"
// @Failure      400 {object} map[string]string "invalid input or sender configuration"
// @Failure      500 {object} map[string]string "carrier or storage failure"
// @Router       /v1/messages/send [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.smsService.Send(c.Request.Context(), req.To, req.Body)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
			return
		}

		var gatewayErr *domain.GatewayError
		if errors.As(err, &gatewayErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "carrier rejected the message",
				"detail": gatewayErr.Detail,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"id":     result.ProviderMessageID,
		"status": result.Status,
	})
}
