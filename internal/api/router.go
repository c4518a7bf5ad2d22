package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	messageHandler "github.com/aioseoassistant/SMSApp/internal/api/handler/message"
	webhookHandler "github.com/aioseoassistant/SMSApp/internal/api/handler/webhook"
	"github.com/aioseoassistant/SMSApp/internal/api/middleware"
)

func (s *Server) SetupAPIRoutes(
	msgHandler *messageHandler.MessageHandler,
	whHandler *webhookHandler.WebhookHandler,
	allowOrigin string,
	verifier *middleware.SignatureVerifier,
) {
	r := s.engine

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(allowOrigin))

	v1 := r.Group("v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		v1.POST("/messages/send", msgHandler.Send)
		v1.GET("/messages", msgHandler.List)

		// The carrier posts signed deliveries here; verification is a
		// pre-processing stage that passes everything through when no
		// public key is configured.
		v1.POST("/webhooks/telnyx", verifier.Handle, whHandler.Receive)
	}
}
