package checkout

import (
	"fmt"
	"testing"
	"time"

	"vilcos/booking"
	"vilcos/catalog"
	"vilcos/database"
	"vilcos/errs"
	"vilcos/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeGateway records created sessions and serves them back by id, so the
// coordinator can be exercised without talking to Stripe.
type fakeGateway struct {
	lastParams SessionParams
	sessions   map[string]*Session
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*Session{}}
}

func (g *fakeGateway) CreateSession(params SessionParams) (*Session, error) {
	g.lastParams = params
	id := "cs_test_" + uuid.NewString()
	sess := &Session{
		ID:            id,
		URL:           "https://checkout.example.com/" + id,
		PaymentStatus: "unpaid",
		AmountCents:   params.AmountCents,
		Metadata:      params.Metadata,
	}
	g.sessions[id] = sess
	return sess, nil
}

func (g *fakeGateway) GetSession(id string) (*Session, error) {
	sess, ok := g.sessions[id]
	if !ok {
		return nil, errs.Upstreamf("retrieve checkout session %s: no such session", id)
	}
	return sess, nil
}

func (g *fakeGateway) pay(id, name, email string) {
	sess := g.sessions[id]
	sess.PaymentStatus = PaymentStatusPaid
	sess.CustomerName = name
	sess.CustomerEmail = email
}

func newTestCoordinator(t *testing.T) (*Coordinator, *fakeGateway, *catalog.Store, *booking.Ledger) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := catalog.NewStore(db)
	require.NoError(t, store.SeedDefaults())
	ledger := booking.NewLedger(db, store)
	gateway := newFakeGateway()
	return NewCoordinator(gateway, ledger, "http://localhost:8083"), gateway, store, ledger
}

func firstSlotAndTable(t *testing.T, store *catalog.Store) (uint, *uint) {
	t.Helper()
	slots, err := store.ListTimeSlots()
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	tables, err := store.ListTables(true)
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	id := tables[0].ID
	return slots[0].ID, &id
}

func sessionRequest(slotID uint, tableID *uint) CreateSessionRequest {
	return CreateSessionRequest{
		Amount:          decimal.RequireFromString("25.00"),
		OrderType:       "dine-in",
		TableID:         tableID,
		TimeSlotID:      slotID,
		ReservationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PartySize:       2,
		CustomerPhone:   "+1-555-0100",
	}
}

func TestCreateSessionConvertsAmountToCents(t *testing.T) {
	coordinator, gateway, store, _ := newTestCoordinator(t)
	slot, table := firstSlotAndTable(t, store)

	url, err := coordinator.CreateSession(sessionRequest(slot, table))
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	assert.Equal(t, int64(2500), gateway.lastParams.AmountCents)
	assert.Equal(t, "usd", gateway.lastParams.Currency)
	assert.Equal(t, "Dine-in Order", gateway.lastParams.Description)
	assert.Equal(t, "dine-in", gateway.lastParams.Metadata["order_type"])
	assert.Equal(t, "2024-06-01", gateway.lastParams.Metadata["reservation_date"])
	assert.Contains(t, gateway.lastParams.SuccessURL, "/booking/success?session_id=")
}

func TestCreateSessionPickupDescription(t *testing.T) {
	coordinator, gateway, store, _ := newTestCoordinator(t)
	slot, _ := firstSlotAndTable(t, store)

	req := sessionRequest(slot, nil)
	req.OrderType = "pickup"
	_, err := coordinator.CreateSession(req)
	require.NoError(t, err)

	assert.Equal(t, "Pickup Order", gateway.lastParams.Description)
	_, hasTable := gateway.lastParams.Metadata["table_id"]
	assert.False(t, hasTable)
}

func TestCreateSessionValidation(t *testing.T) {
	coordinator, _, store, _ := newTestCoordinator(t)
	slot, table := firstSlotAndTable(t, store)

	req := sessionRequest(slot, table)
	req.Amount = decimal.Zero
	_, err := coordinator.CreateSession(req)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestConfirmUnpaidSessionCreatesNothing(t *testing.T) {
	coordinator, gateway, store, ledger := newTestCoordinator(t)
	slot, table := firstSlotAndTable(t, store)

	_, err := coordinator.CreateSession(sessionRequest(slot, table))
	require.NoError(t, err)

	var sessionID string
	for id := range gateway.sessions {
		sessionID = id
	}

	_, err = coordinator.Confirm(sessionID)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	reservations, err := ledger.List(nil)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestConfirmPaidSessionCreatesReservation(t *testing.T) {
	coordinator, gateway, store, _ := newTestCoordinator(t)
	slot, table := firstSlotAndTable(t, store)

	_, err := coordinator.CreateSession(sessionRequest(slot, table))
	require.NoError(t, err)

	var sessionID string
	for id := range gateway.sessions {
		sessionID = id
	}
	gateway.pay(sessionID, "Grace Hopper", "grace@example.com")

	reservation, err := coordinator.Confirm(sessionID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, reservation.Status)
	assert.Equal(t, "Grace Hopper", reservation.CustomerName)
	assert.Equal(t, "grace@example.com", reservation.CustomerEmail)
	require.NotNil(t, reservation.TableID)
	assert.Equal(t, *table, *reservation.TableID)
	require.NotNil(t, reservation.CheckoutSessionID)
	assert.Equal(t, sessionID, *reservation.CheckoutSessionID)
}

func TestConfirmIsIdempotent(t *testing.T) {
	coordinator, gateway, store, ledger := newTestCoordinator(t)
	slot, table := firstSlotAndTable(t, store)

	_, err := coordinator.CreateSession(sessionRequest(slot, table))
	require.NoError(t, err)

	var sessionID string
	for id := range gateway.sessions {
		sessionID = id
	}
	gateway.pay(sessionID, "Grace Hopper", "grace@example.com")

	first, err := coordinator.Confirm(sessionID)
	require.NoError(t, err)
	second, err := coordinator.Confirm(sessionID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	reservations, err := ledger.List(nil)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestConfirmUnknownSession(t *testing.T) {
	coordinator, _, _, _ := newTestCoordinator(t)

	_, err := coordinator.Confirm("cs_test_missing")
	require.Error(t, err)
	assert.True(t, errs.IsUpstream(err))
}
