package controller

import (
	"net/http"

	"vilcos/checkout"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type checkoutSessionRequest struct {
	Amount          string `json:"amount" binding:"required"`
	OrderType       string `json:"order_type" binding:"required"`
	TableID         *uint  `json:"table_id"`
	TimeSlotID      uint   `json:"time_slot_id" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	PartySize       int    `json:"party_size"`
	CustomerPhone   string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
}

func (ctrl *Controller) CreateCheckoutSession(c *gin.Context) {
	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "amount, order_type, time_slot_id and reservation_date are required"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "amount must be a decimal number"})
		return
	}
	date, err := parseDate(req.ReservationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "reservation_date must be formatted YYYY-MM-DD"})
		return
	}

	url, err := ctrl.checkout.CreateSession(checkout.CreateSessionRequest{
		Amount:          amount,
		OrderType:       req.OrderType,
		TableID:         req.TableID,
		TimeSlotID:      req.TimeSlotID,
		ReservationDate: date,
		PartySize:       req.PartySize,
		CustomerPhone:   req.CustomerPhone,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}

// CheckoutSuccess finalizes a paid session into a reservation. Safe to hit
// more than once for the same session.
func (ctrl *Controller) CheckoutSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	reservation, err := ctrl.checkout.Confirm(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"reservation_id":    reservation.ID,
		"confirmation_code": reservation.ConfirmationCode,
		"status":            reservation.Status,
	})
}

func (ctrl *Controller) CheckoutCancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": "Checkout was cancelled, no reservation was made"})
}
