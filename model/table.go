package model

import "gorm.io/gorm"

type DiningTable struct {
	gorm.Model
	TableNumber int    `json:"table_number" gorm:"uniqueIndex;not null"`
	Capacity    int    `json:"capacity" gorm:"not null"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
