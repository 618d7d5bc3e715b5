// Package booking is the reservation ledger: it creates bookings, enforces
// the no-double-booking invariant and drives the status lifecycle
// confirmed -> cancelled | completed.
package booking

import (
	"errors"
	"strings"
	"time"

	"vilcos/catalog"
	"vilcos/errs"
	"vilcos/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConflictMessage is the caller-facing detail for a double-booking attempt.
const ConflictMessage = "Table already reserved."

type Ledger struct {
	db      *gorm.DB
	catalog *catalog.Store
}

func NewLedger(db *gorm.DB, cat *catalog.Store) *Ledger {
	return &Ledger{db: db, catalog: cat}
}

// CreateRequest carries everything needed to book. TableID nil means a
// pickup order, which never conflicts with table bookings.
type CreateRequest struct {
	TableID           *uint
	TimeSlotID        uint
	ReservationDate   time.Time
	PartySize         int
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	SpecialRequests   string
	MenuItemIDs       []uint
	CheckoutSessionID *string
}

// NormalizeDate reduces a timestamp to its calendar day in UTC. The time of
// day lives on the slot, so the uniqueness triple compares dates only.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsAvailable reports whether no confirmed reservation holds the exact
// (table, slot, date) triple. This is a point-in-time read; the partial
// unique index remains the authoritative guard on insert.
func (l *Ledger) IsAvailable(tableID, timeSlotID uint, date time.Time) (bool, error) {
	var count int64
	err := l.db.Model(&model.Reservation{}).
		Where("table_id = ? AND time_slot_id = ? AND reservation_date = ? AND status = ?",
			tableID, timeSlotID, NormalizeDate(date), model.StatusConfirmed).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (l *Ledger) validate(req CreateRequest) error {
	if req.PartySize <= 0 {
		return errs.Validationf("party_size must be positive")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return errs.Validationf("customer_name is required")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return errs.Validationf("customer_email is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return errs.Validationf("customer_phone is required")
	}
	if req.ReservationDate.IsZero() {
		return errs.Validationf("reservation_date is required")
	}
	if _, err := l.catalog.GetTimeSlot(req.TimeSlotID); err != nil {
		if errs.IsNotFound(err) {
			return errs.Validationf("time slot %d does not exist", req.TimeSlotID)
		}
		return err
	}
	if req.TableID != nil {
		table, err := l.catalog.GetTable(*req.TableID)
		if err != nil {
			if errs.IsNotFound(err) {
				return errs.Validationf("table %d does not exist", *req.TableID)
			}
			return err
		}
		if !table.IsActive {
			return errs.Validationf("table %d is not active", *req.TableID)
		}
	}
	return nil
}

// Create books a reservation. For table bookings the availability check runs
// first for a fast, friendly error; the insert still relies on the partial
// unique index, and a duplicate-key failure is reported as the same conflict.
func (l *Ledger) Create(req CreateRequest) (*model.Reservation, error) {
	if err := l.validate(req); err != nil {
		return nil, err
	}

	date := NormalizeDate(req.ReservationDate)

	if req.TableID != nil {
		available, err := l.IsAvailable(*req.TableID, req.TimeSlotID, date)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, errs.Conflictf(ConflictMessage)
		}
	}

	// Duplicate ids collapse into a single line with a higher quantity.
	quantities := make(map[uint]int)
	order := make([]uint, 0, len(req.MenuItemIDs))
	for _, id := range req.MenuItemIDs {
		if quantities[id] == 0 {
			order = append(order, id)
		}
		quantities[id]++
	}

	items, err := l.catalog.GetItemsByIDs(order)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	total := decimal.Zero
	lines := make([]model.ReservationItem, 0, len(order))
	for _, id := range order {
		item := byID[id]
		qty := quantities[id]
		lines = append(lines, model.ReservationItem{
			MenuItemID:     item.ID,
			Quantity:       qty,
			PriceAtBooking: item.Price,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	reservation := &model.Reservation{
		ConfirmationCode:  uuid.NewString(),
		TableID:           req.TableID,
		TimeSlotID:        req.TimeSlotID,
		ReservationDate:   date,
		PartySize:         req.PartySize,
		Status:            model.StatusConfirmed,
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerEmail:     strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:     strings.TrimSpace(req.CustomerPhone),
		SpecialRequests:   req.SpecialRequests,
		TotalAmount:       total.Round(2),
		CheckoutSessionID: req.CheckoutSessionID,
		Items:             lines,
	}

	if err := l.db.Create(reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf(ConflictMessage)
		}
		return nil, err
	}
	return reservation, nil
}

func (l *Ledger) Get(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	err := l.db.Preload("Items").Preload("Items.MenuItem").Preload("TimeSlot").Preload("Table").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("reservation %d not found", id)
		}
		return nil, err
	}
	return &reservation, nil
}

// GetByCheckoutSession looks up the reservation recorded for a payment
// session, used to keep checkout confirmation idempotent.
func (l *Ledger) GetByCheckoutSession(sessionID string) (*model.Reservation, error) {
	var reservation model.Reservation
	err := l.db.Preload("Items").Where("checkout_session_id = ?", sessionID).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("no reservation for checkout session %s", sessionID)
		}
		return nil, err
	}
	return &reservation, nil
}

func (l *Ledger) List(status *model.ReservationStatus) ([]model.Reservation, error) {
	var reservations []model.Reservation
	q := l.db.Preload("TimeSlot").Preload("Table").Order("reservation_date, time_slot_id")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// transition moves a confirmed reservation into a terminal state. The update
// is guarded on the current status so a concurrent transition loses cleanly.
func (l *Ledger) transition(id uint, to model.ReservationStatus) (*model.Reservation, error) {
	reservation, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != model.StatusConfirmed {
		return nil, errs.InvalidStatef("reservation %d is %s and cannot become %s", id, reservation.Status, to)
	}

	res := l.db.Model(&model.Reservation{}).
		Where("id = ? AND status = ?", id, model.StatusConfirmed).
		Update("status", to)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errs.InvalidStatef("reservation %d changed state concurrently", id)
	}

	reservation.Status = to
	return reservation, nil
}

// Cancel transitions confirmed -> cancelled.
func (l *Ledger) Cancel(id uint) (*model.Reservation, error) {
	return l.transition(id, model.StatusCancelled)
}

// Complete transitions confirmed -> completed.
func (l *Ledger) Complete(id uint) (*model.Reservation, error) {
	return l.transition(id, model.StatusCompleted)
}
