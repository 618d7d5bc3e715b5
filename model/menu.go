package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name        string     `json:"name" gorm:"uniqueIndex;not null"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	gorm.Model
	ItemNumber  int             `json:"item_number" gorm:"uniqueIndex;not null"`
	Name        string          `json:"name" gorm:"not null"`
	LocalName   string          `json:"local_name"`
	Description string          `json:"description"`
	DietaryInfo string          `json:"dietary_info"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
}
