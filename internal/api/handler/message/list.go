package message

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary      List recent messages
// @Description  Retrieve the most recent messages, newest first
// @Tags         Messages
// @Produce      json
// @Param        limit query int false "maximum number of messages" default(50)
// @Success      200 {object} map[string]interface{} "recent messages"
// @Failure      500 {object} map[string]string "storage failure"
// @Router       /v1/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}

	items, err := h.smsService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
