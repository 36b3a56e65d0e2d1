package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/services"
)

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type nidRequest struct {
	NID string `json:"nid" binding:"required,numeric"`
}

// Login signs in with phone and password
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.Login{Credentials: services.Credentials{Phone: req.Phone, Password: req.Password}})
}

// GuestLogin continues without an account
func (h *Handler) GuestLogin(c *gin.Context) {
	h.dispatch(c, services.GuestLogin{})
}

// Signup registers a new account; NID verification follows
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.Signup{Request: services.SignupRequest{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	}})
}

// VerifyNID completes signup with a national id number
func (h *Handler) VerifyNID(c *gin.Context) {
	var req nidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, services.VerifyNID{NID: req.NID})
}

// Logout ends the session
func (h *Handler) Logout(c *gin.Context) {
	h.dispatch(c, services.Logout{})
}
