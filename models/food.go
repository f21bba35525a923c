package models

import "gorm.io/gorm"

// FoodItem is a catalog entry. Per-serving nutrition is the source of
// truth for every FoodLogEntry snapshot derived from it.
type FoodItem struct {
	gorm.Model
	FoodID             string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"food_id"`
	Name               string  `gorm:"not null" json:"name"`
	Brand              string  `json:"brand,omitempty"`
	ServingSize        float64 `json:"serving_size"`
	ServingUnit        string  `json:"serving_unit"`
	CaloriesPerServing float64 `json:"calories_per_serving"`
	Macros             MacroNutrients `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	Category           string  `json:"category"`
	IsCustom           bool    `json:"is_custom"`
	UserID             uint    `gorm:"index" json:"-"` // owner, custom foods only
}
