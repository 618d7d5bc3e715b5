package catalog

import (
	"fmt"
	"testing"

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

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewStore(db), db
}

func TestSeedDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	tables, err := store.ListTables(true)
	require.NoError(t, err)
	assert.Len(t, tables, 20)
	for _, table := range tables {
		assert.Equal(t, 4, table.Capacity)
		assert.Equal(t, "Main Area", table.Location)
	}

	slots, err := store.ListTimeSlots()
	require.NoError(t, err)
	assert.NotEmpty(t, slots)

	items, err := store.ListItems(true, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())
	require.NoError(t, store.SeedDefaults())

	tables, err := store.ListTables(false)
	require.NoError(t, err)
	assert.Len(t, tables, 20)
}

func TestPriceRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	categories, err := store.ListCategories()
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	item := model.MenuItem{
		ItemNumber: 900,
		Name:       "Precision Pudding",
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: categories[0].ID,
		IsActive:   true,
	}
	require.NoError(t, store.CreateItem(&item))

	stored, err := store.GetItem(item.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("12.50")),
		"stored price %s lost precision", stored.Price)
}

func TestCreateItemValidation(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	categories, err := store.ListCategories()
	require.NoError(t, err)

	item := model.MenuItem{
		ItemNumber: 901,
		Name:       "Impossible Discount",
		Price:      decimal.RequireFromString("-1.00"),
		CategoryID: categories[0].ID,
	}
	err = store.CreateItem(&item)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateItemDuplicateNumber(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	categories, err := store.ListCategories()
	require.NoError(t, err)

	item := model.MenuItem{
		ItemNumber: 101, // seeded
		Name:       "Copycat",
		Price:      decimal.RequireFromString("5.00"),
		CategoryID: categories[0].ID,
		IsActive:   true,
	}
	err = store.CreateItem(&item)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestDeactivateItemHidesFromActiveListing(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	items, err := store.ListItems(true, nil)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	before := len(items)

	_, err = store.DeactivateItem(items[0].ID)
	require.NoError(t, err)

	active, err := store.ListItems(true, nil)
	require.NoError(t, err)
	assert.Len(t, active, before-1)

	// Still resolvable by id for historical line items.
	_, err = store.GetItem(items[0].ID)
	assert.NoError(t, err)
}

func TestListItemsByCategory(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	categories, err := store.ListCategories()
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	items, err := store.ListItems(true, &categories[0].ID)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, categories[0].ID, item.CategoryID)
	}
}

func TestGetItemsByIDsRejectsInactive(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SeedDefaults())

	items, err := store.ListItems(true, nil)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	_, err = store.DeactivateItem(items[0].ID)
	require.NoError(t, err)

	_, err = store.GetItemsByIDs([]uint{items[0].ID})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
