package checkout

import (
	"strconv"
	"time"

	"vilcos/booking"
	"vilcos/errs"
	"vilcos/model"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type Coordinator struct {
	gateway Gateway
	ledger  *booking.Ledger
	baseURL string
}

func NewCoordinator(gateway Gateway, ledger *booking.Ledger, baseURL string) *Coordinator {
	return &Coordinator{gateway: gateway, ledger: ledger, baseURL: baseURL}
}

// CreateSessionRequest is the prepaid-booking intent. Everything the ledger
// will need at confirmation time travels in session metadata, since the
// gateway is the only state between the two calls.
type CreateSessionRequest struct {
	Amount          decimal.Decimal
	OrderType       string
	TableID         *uint
	TimeSlotID      uint
	ReservationDate time.Time
	PartySize       int
	CustomerPhone   string
	SpecialRequests string
}

// CreateSession opens a gateway checkout and returns its URL. The amount is
// converted to integer cents before it leaves the process.
func (c *Coordinator) CreateSession(req CreateSessionRequest) (string, error) {
	if !req.Amount.IsPositive() {
		return "", errs.Validationf("amount must be positive")
	}
	if req.OrderType == "" {
		return "", errs.Validationf("order_type is required")
	}
	if req.TimeSlotID == 0 {
		return "", errs.Validationf("time_slot_id is required")
	}
	if req.ReservationDate.IsZero() {
		return "", errs.Validationf("reservation_date is required")
	}

	description := "Pickup Order"
	if req.TableID != nil {
		description = "Dine-in Order"
	}

	metadata := map[string]string{
		"order_type":       req.OrderType,
		"time_slot_id":     strconv.FormatUint(uint64(req.TimeSlotID), 10),
		"reservation_date": booking.NormalizeDate(req.ReservationDate).Format(dateLayout),
		"party_size":       strconv.Itoa(req.PartySize),
	}
	if req.TableID != nil {
		metadata["table_id"] = strconv.FormatUint(uint64(*req.TableID), 10)
	}
	if req.CustomerPhone != "" {
		metadata["customer_phone"] = req.CustomerPhone
	}
	if req.SpecialRequests != "" {
		metadata["special_requests"] = req.SpecialRequests
	}

	sess, err := c.gateway.CreateSession(SessionParams{
		AmountCents: req.Amount.Shift(2).Round(0).IntPart(),
		Currency:    "usd",
		Description: description,
		SuccessURL:  c.baseURL + "/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   c.baseURL + "/booking/cancel",
		Metadata:    metadata,
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// Confirm finalizes a paid session into a reservation. The call is
// idempotent: a session already recorded returns its existing reservation,
// and the unique checkout_session_id column closes the race between two
// concurrent confirmations.
func (c *Coordinator) Confirm(sessionID string) (*model.Reservation, error) {
	if sessionID == "" {
		return nil, errs.Validationf("session_id is required")
	}

	if existing, err := c.ledger.GetByCheckoutSession(sessionID); err == nil {
		return existing, nil
	} else if !errs.IsNotFound(err) {
		return nil, err
	}

	sess, err := c.gateway.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.PaymentStatus != PaymentStatusPaid {
		return nil, errs.Validationf("payment for session %s is not completed", sessionID)
	}

	req, err := requestFromSession(sessionID, sess)
	if err != nil {
		return nil, err
	}

	reservation, err := c.ledger.Create(req)
	if err != nil && errs.IsConflict(err) {
		// A concurrent confirmation may have won on the session id.
		if existing, lookupErr := c.ledger.GetByCheckoutSession(sessionID); lookupErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return reservation, err
}

func requestFromSession(sessionID string, sess *Session) (booking.CreateRequest, error) {
	slotID, err := strconv.ParseUint(sess.Metadata["time_slot_id"], 10, 32)
	if err != nil {
		return booking.CreateRequest{}, errs.Upstreamf("session %s has no usable time_slot_id metadata", sessionID)
	}
	date, err := time.Parse(dateLayout, sess.Metadata["reservation_date"])
	if err != nil {
		return booking.CreateRequest{}, errs.Upstreamf("session %s has no usable reservation_date metadata", sessionID)
	}

	partySize, _ := strconv.Atoi(sess.Metadata["party_size"])
	if partySize <= 0 {
		partySize = 1
	}

	var tableID *uint
	if raw, ok := sess.Metadata["table_id"]; ok && raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return booking.CreateRequest{}, errs.Upstreamf("session %s has malformed table_id metadata", sessionID)
		}
		id := uint(parsed)
		tableID = &id
	}

	phone := sess.Metadata["customer_phone"]
	if phone == "" {
		phone = sess.CustomerPhone
	}
	if phone == "" {
		phone = "-"
	}

	return booking.CreateRequest{
		TableID:           tableID,
		TimeSlotID:        uint(slotID),
		ReservationDate:   date,
		PartySize:         partySize,
		CustomerName:      sess.CustomerName,
		CustomerEmail:     sess.CustomerEmail,
		CustomerPhone:     phone,
		SpecialRequests:   sess.Metadata["special_requests"],
		CheckoutSessionID: &sessionID,
	}, nil
}
