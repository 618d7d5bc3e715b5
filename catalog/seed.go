package catalog

import (
	"log"

	"vilcos/model"

	"github.com/shopspring/decimal"
)

// SeedDefaults creates a baseline catalog when the database is empty. Each
// entity family is seeded only if it has no rows yet, so re-running at every
// startup is harmless. The existence check and insert are not atomic; seeding
// is expected to run once from a single process at boot.
func (s *Store) SeedDefaults() error {
	if err := s.seedTables(); err != nil {
		return err
	}
	if err := s.seedTimeSlots(); err != nil {
		return err
	}
	return s.seedMenu()
}

func (s *Store) seedTables() error {
	var count int64
	if err := s.db.Model(&model.DiningTable{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tables := make([]model.DiningTable, 0, 20)
	for n := 1; n <= 20; n++ {
		tables = append(tables, model.DiningTable{
			TableNumber: n,
			Capacity:    4,
			Location:    "Main Area",
			IsActive:    true,
		})
	}
	if err := s.db.Create(&tables).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d dining tables", len(tables))
	return nil
}

func (s *Store) seedTimeSlots() error {
	var count int64
	if err := s.db.Model(&model.TimeSlot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slots := []model.TimeSlot{
		{Name: "Lunch", StartTime: "12:00", DurationMinutes: 90, IsDinner: false},
		{Name: "Early Dinner", StartTime: "18:00", DurationMinutes: 120, IsDinner: true},
		{Name: "Late Dinner", StartTime: "20:30", DurationMinutes: 120, IsDinner: true},
	}
	if err := s.db.Create(&slots).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d time slots", len(slots))
	return nil
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (s *Store) seedMenu() error {
	var count int64
	if err := s.db.Model(&model.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []model.MenuCategory{
		{Name: "Starters", Description: "Small plates to share"},
		{Name: "Mains", Description: "Hearty main courses"},
		{Name: "Desserts", Description: "Something sweet to finish"},
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	items := []model.MenuItem{
		{ItemNumber: 101, Name: "Garlic Bread", DietaryInfo: "vegetarian", Price: price("6.50"), CategoryID: categories[0].ID, IsActive: true},
		{ItemNumber: 102, Name: "Tomato Soup", DietaryInfo: "vegan", Price: price("7.00"), CategoryID: categories[0].ID, IsActive: true},
		{ItemNumber: 201, Name: "Grilled Salmon", Price: price("21.50"), CategoryID: categories[1].ID, IsActive: true},
		{ItemNumber: 202, Name: "Rib-Eye Steak", Price: price("28.00"), CategoryID: categories[1].ID, IsActive: true},
		{ItemNumber: 203, Name: "Mushroom Risotto", DietaryInfo: "vegetarian", Price: price("17.25"), CategoryID: categories[1].ID, IsActive: true},
		{ItemNumber: 301, Name: "Tiramisu", DietaryInfo: "vegetarian", Price: price("8.50"), CategoryID: categories[2].ID, IsActive: true},
	}
	if err := s.db.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d menu categories and %d menu items", len(categories), len(items))
	return nil
}
