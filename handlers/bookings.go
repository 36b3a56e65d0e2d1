package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/services"
)

// ListTickets returns the booking history, newest first
func (h *Handler) ListTickets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickets": h.history.List()})
}

// GetTicket retrieves a ticket by id
func (h *Handler) GetTicket(c *gin.Context) {
	ticket, err := h.history.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// CancelTicket cancels a confirmed ticket
func (h *Handler) CancelTicket(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.session.Dispatch(c.Request.Context(), services.CancelTicket{TicketID: id}); err != nil {
		h.fail(c, err)
		return
	}

	ticket, err := h.history.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
