package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/models"
	"github.com/codewithtanvir/railsheba-premium/services"
)

type navigateRequest struct {
	Screen  models.Screen         `json:"screen" binding:"required"`
	Booking models.BookingContext `json:"booking"`
}

type selectTrainRequest struct {
	TrainID string `json:"train_id" binding:"required"`
}

type toggleSeatRequest struct {
	SeatID string `json:"seat_id" binding:"required"`
}

type confirmSeatsRequest struct {
	Seats []string `json:"seats"`
}

type passengersRequest struct {
	Passengers []models.Passenger `json:"passengers" binding:"required"`
}

type payRequest struct {
	Method services.PaymentMethod `json:"method"`
}

// GetSession returns the current session snapshot
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// Navigate moves to another screen, merging the optional booking patch
func (h *Handler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.Navigate{Screen: req.Screen, Patch: req.Booking})
}

// Back returns to the previous screen
func (h *Handler) Back(c *gin.Context) {
	h.dispatch(c, services.Back{})
}

// SelectTrain picks a train from the current search results
func (h *Handler) SelectTrain(c *gin.Context) {
	var req selectTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.SelectTrain{TrainID: req.TrainID})
}

// ToggleSeat selects or releases one seat
func (h *Handler) ToggleSeat(c *gin.Context) {
	var req toggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.ToggleSeat{SeatID: req.SeatID})
}

// ConfirmSeats fixes the seat choice. An empty body confirms the
// toggled seats.
func (h *Handler) ConfirmSeats(c *gin.Context) {
	var req confirmSeatsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.ConfirmSeats{Seats: req.Seats})
}

// ConfirmPassengers submits the passenger form
func (h *Handler) ConfirmPassengers(c *gin.Context) {
	var req passengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.ConfirmPassengers{Passengers: req.Passengers})
}

// Pay starts the payment; the response is 202 while it runs
func (h *Handler) Pay(c *gin.Context) {
	var req payRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.Pay{Method: req.Method})
}

// CompleteBooking issues the ticket
func (h *Handler) CompleteBooking(c *gin.Context) {
	h.dispatch(c, services.CompleteBooking{})
}

// bindOptionalJSON binds the body if there is one. An empty body, chunked
// or not, leaves req at its zero value.
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
