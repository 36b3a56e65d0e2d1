package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/services"
)

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

// ViewNotifications opens the notification list, marking it read
func (h *Handler) ViewNotifications(c *gin.Context) {
	h.dispatch(c, services.ViewNotifications{})
}

// ClearNotifications empties the notification list
func (h *Handler) ClearNotifications(c *gin.Context) {
	h.dispatch(c, services.ClearNotifications{})
}

// SetLanguage switches the UI language. Unsupported tags fall back to
// English.
func (h *Handler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.SetLanguage{Language: services.ParseLanguage(req.Language)})
}
