// Package catalog owns the read-mostly restaurant data: dining tables, time
// slots, menu categories and menu items. Catalog entities are never deleted,
// only deactivated, so reservations keep valid references.
package catalog

import (
	"errors"

	"vilcos/errs"
	"vilcos/model"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTables(activeOnly bool) ([]model.DiningTable, error) {
	var tables []model.DiningTable
	q := s.db.Order("table_number")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *Store) GetTable(id uint) (*model.DiningTable, error) {
	var table model.DiningTable
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("table %d not found", id)
		}
		return nil, err
	}
	return &table, nil
}

func (s *Store) ListTimeSlots() ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := s.db.Order("start_time").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *Store) GetTimeSlot(id uint) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := s.db.First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("time slot %d not found", id)
		}
		return nil, err
	}
	return &slot, nil
}

func (s *Store) ListCategories() ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) ListItems(activeOnly bool, categoryID *uint) ([]model.MenuItem, error) {
	var items []model.MenuItem
	q := s.db.Order("item_number")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetItem(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("menu item %d not found", id)
		}
		return nil, err
	}
	return &item, nil
}

// GetItemsByIDs returns the active items for the given ids. A missing or
// inactive id is a validation error, never a silent skip.
func (s *Store) GetItemsByIDs(ids []uint) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []model.MenuItem
	if err := s.db.Where("id IN ? AND is_active = ?", ids, true).Find(&items).Error; err != nil {
		return nil, err
	}
	found := make(map[uint]bool, len(items))
	for _, item := range items {
		found[item.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, errs.Validationf("menu item %d does not exist or is not active", id)
		}
	}
	return items, nil
}

func validateItem(item *model.MenuItem) error {
	if item.Name == "" {
		return errs.Validationf("menu item name is required")
	}
	if item.ItemNumber <= 0 {
		return errs.Validationf("item_number must be positive")
	}
	if item.Price.IsNegative() {
		return errs.Validationf("price must not be negative")
	}
	return nil
}

func (s *Store) CreateItem(item *model.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	var category model.MenuCategory
	if err := s.db.First(&category, item.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Validationf("category %d does not exist", item.CategoryID)
		}
		return err
	}
	item.Price = item.Price.Round(2)
	if err := s.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflictf("item_number %d is already in use", item.ItemNumber)
		}
		return err
	}
	return nil
}

// CreateItems inserts a batch, used by the Excel import. Each row is
// validated up front so a bad row fails the whole batch.
func (s *Store) CreateItems(items []model.MenuItem) error {
	if len(items) == 0 {
		return errs.Validationf("no menu items to create")
	}
	for i := range items {
		if err := validateItem(&items[i]); err != nil {
			return err
		}
		items[i].Price = items[i].Price.Round(2)
	}
	if err := s.db.Create(&items).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflictf("an item_number in the batch is already in use")
		}
		return err
	}
	return nil
}

func (s *Store) UpdateItem(id uint, update func(*model.MenuItem) error) (*model.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if err := update(item); err != nil {
		return nil, err
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.Price = item.Price.Round(2)
	if err := s.db.Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("item_number %d is already in use", item.ItemNumber)
		}
		return nil, err
	}
	return item, nil
}

// DeactivateItem is the only removal path; rows are kept so line items in
// past reservations stay resolvable.
func (s *Store) DeactivateItem(id uint) (*model.MenuItem, error) {
	return s.UpdateItem(id, func(item *model.MenuItem) error {
		item.IsActive = false
		return nil
	})
}
