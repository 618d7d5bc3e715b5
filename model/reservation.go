package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Reservation is the authoritative booking record. TableID is nullable:
// pickup orders have no table and are exempt from the double-booking
// constraint. The partial unique index on (table_id, time_slot_id,
// reservation_date) for confirmed rows is the correctness guard against
// concurrent double-booking; the application-level availability check only
// produces a friendlier error earlier.
type Reservation struct {
	gorm.Model
	ConfirmationCode  string            `json:"confirmation_code" gorm:"uniqueIndex;not null"`
	TableID           *uint             `json:"table_id,omitempty" gorm:"uniqueIndex:uniq_confirmed_booking,where:status = 'confirmed'"`
	Table             *DiningTable      `json:"table,omitempty" gorm:"foreignKey:TableID"`
	TimeSlotID        uint              `json:"time_slot_id" gorm:"not null;uniqueIndex:uniq_confirmed_booking"`
	TimeSlot          TimeSlot          `json:"time_slot,omitempty" gorm:"foreignKey:TimeSlotID"`
	ReservationDate   time.Time         `json:"reservation_date" gorm:"not null;uniqueIndex:uniq_confirmed_booking"`
	PartySize         int               `json:"party_size" gorm:"not null"`
	Status            ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed';index"`
	CustomerName      string            `json:"customer_name" gorm:"not null"`
	CustomerEmail     string            `json:"customer_email" gorm:"not null"`
	CustomerPhone     string            `json:"customer_phone" gorm:"not null"`
	SpecialRequests   string            `json:"special_requests,omitempty"`
	TotalAmount       decimal.Decimal   `json:"total_amount" gorm:"type:decimal(10,2);not null;default:0"`
	CheckoutSessionID *string           `json:"checkout_session_id,omitempty" gorm:"uniqueIndex"`
	Items             []ReservationItem `json:"items,omitempty" gorm:"foreignKey:ReservationID"`
}

// ReservationItem is an order line. PriceAtBooking snapshots the menu price
// at creation time so later catalog edits never change a booked total.
type ReservationItem struct {
	gorm.Model
	ReservationID  uint            `json:"reservation_id" gorm:"not null;index"`
	MenuItemID     uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem       MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity       int             `json:"quantity" gorm:"not null;default:1"`
	PriceAtBooking decimal.Decimal `json:"price_at_booking" gorm:"type:decimal(10,2);not null"`
}
