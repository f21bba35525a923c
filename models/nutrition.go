package models

import (
	"time"

	"gorm.io/gorm"
)

// MealType is the grouping slot for food log entries within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MacroNutrients is a macro vector in grams. Derived vectors are always
// element-wise sums or scalar multiples of source vectors, never edited
// field by field.
type MacroNutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
}

// FoodLogEntry is an immutable snapshot of one food consumption event.
// Calories and macros are the food's per-serving values scaled by the
// serving count at log time.
type FoodLogEntry struct {
	gorm.Model
	MealID   uint   `gorm:"index;not null" json:"-"`
	FoodID   string `gorm:"type:varchar(64);not null" json:"food_id"`
	FoodName string `json:"food_name"`
	Servings float64 `json:"servings"`
	Calories float64 `json:"calories"`
	Macros   MacroNutrients `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	LoggedAt time.Time `json:"logged_at"`
}

// Meal groups the food log entries of one meal slot. TotalCalories and
// TotalMacros are rebuilt from Foods on every change.
type Meal struct {
	gorm.Model
	EntryID       uint           `gorm:"index;not null" json:"-"`
	Type          MealType       `gorm:"type:varchar(16);not null" json:"type"`
	Foods         []FoodLogEntry `gorm:"foreignKey:MealID" json:"foods"`
	TotalCalories float64        `json:"total_calories"`
	TotalMacros   MacroNutrients `gorm:"embedded;embeddedPrefix:macro_" json:"total_macros"`
}

// NutritionEntry is one user's nutrition log for one calendar day.
// At most one meal per type; day totals are rebuilt from the meal list.
type NutritionEntry struct {
	gorm.Model
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	Date          time.Time      `gorm:"index;not null" json:"date"`
	Meals         []Meal         `gorm:"foreignKey:EntryID" json:"meals"`
	TotalCalories float64        `json:"total_calories"`
	Macros        MacroNutrients `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	WaterIntake   float64        `json:"water_intake"` // ml
}

// MealOfType returns the day's meal aggregate for the given slot, or nil.
func (e *NutritionEntry) MealOfType(t MealType) *Meal {
	for i := range e.Meals {
		if e.Meals[i].Type == t {
			return &e.Meals[i]
		}
	}
	return nil
}

// WaterEntry is one logged water intake event, in ml.
type WaterEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Amount   float64   `json:"amount"`
	LoggedAt time.Time `gorm:"index" json:"logged_at"`
}
