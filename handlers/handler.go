package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/models"
	"github.com/codewithtanvir/railsheba-premium/services"
)

// Handler serves the booking session and reference data over HTTP
type Handler struct {
	session *services.Controller
	catalog *services.Catalog
	history *services.BookingHistory
	logger  *slog.Logger
}

func New(session *services.Controller, history *services.BookingHistory, logger *slog.Logger) *Handler {
	return &Handler{
		session: session,
		catalog: session.Catalog(),
		history: history,
		logger:  logger,
	}
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrGuardViolation),
		errors.Is(err, models.ErrNoBackTarget),
		errors.Is(err, models.ErrTicketAlreadyCancelled):
		return http.StatusConflict
	case errors.Is(err, models.ErrBusy):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrTicketNotFound),
		errors.Is(err, models.ErrUnknownTrain),
		errors.Is(err, models.ErrUnknownStation):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	h.logger.Debug("request rejected", "path", c.FullPath(), "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// dispatch applies ev and answers with the new session snapshot: 200
// when the event resolved, 202 when a backend call is still running.
func (h *Handler) dispatch(c *gin.Context, ev services.Event) {
	call, err := h.session.Dispatch(c.Request.Context(), ev)
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusOK
	if call != nil {
		status = http.StatusAccepted
	}
	c.JSON(status, h.session.State())
}
