package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopspark/internal/domain"
)

type chatRequest struct {
	Message string `json:"message"`
}

func submitChatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}
	sess := currentSession(c)
	entry, err := sess.Chat(req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// The reply arrives in the transcript after the typing delay.
	c.JSON(http.StatusAccepted, gin.H{"entry": entry})
}

func getTranscriptHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transcript": currentSession(c).Transcript()})
}
