package controller

import (
	"net/http"
	"strconv"
	"time"

	"vilcos/booking"
	"vilcos/model"

	"github.com/gin-gonic/gin"
)

type reserveRequest struct {
	TableID         *uint  `json:"table_id"`
	TimeSlotID      uint   `json:"time_slot_id" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	SpecialRequests string `json:"special_requests"`
	MenuItemIDs     []uint `json:"menu_item_ids"`
}

func (ctrl *Controller) Reserve(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "time_slot_id, reservation_date, party_size and customer contact details are required"})
		return
	}

	date, err := parseDate(req.ReservationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "reservation_date must be formatted YYYY-MM-DD"})
		return
	}

	reservation, err := ctrl.ledger.Create(booking.CreateRequest{
		TableID:         req.TableID,
		TimeSlotID:      req.TimeSlotID,
		ReservationDate: date,
		PartySize:       req.PartySize,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		SpecialRequests: req.SpecialRequests,
		MenuItemIDs:     req.MenuItemIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation_id":    reservation.ID,
		"confirmation_code": reservation.ConfirmationCode,
	})
}

func (ctrl *Controller) ListReservations(c *gin.Context) {
	var status *model.ReservationStatus
	if raw := c.Query("status"); raw != "" {
		s := model.ReservationStatus(raw)
		switch s {
		case model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "status must be confirmed, cancelled or completed"})
			return
		}
	}

	reservations, err := ctrl.ledger.List(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (ctrl *Controller) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid reservation ID format"})
		return
	}

	reservation, err := ctrl.ledger.Cancel(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation cancelled", "data": reservation})
}

func (ctrl *Controller) CompleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid reservation ID format"})
		return
	}

	reservation, err := ctrl.ledger.Complete(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation completed", "data": reservation})
}

// parseDate accepts a bare date or a full RFC 3339 timestamp; the ledger
// normalizes either to the calendar day.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
