package models

import "gorm.io/gorm"

// NutritionGoal holds a user's daily intake targets. At most one row per
// user is active; saving new goals deactivates the prior active set
// instead of deleting it.
type NutritionGoal struct {
	gorm.Model
	UserID        uint    `gorm:"index;not null" json:"user_id"`
	DailyCalories float64 `json:"daily_calories"` // e.g. 2200 kcal
	MacroTargets  MacroNutrients `gorm:"embedded;embeddedPrefix:target_" json:"macro_targets"`
	WaterIntake   float64 `json:"water_intake"` // ml per day
	IsActive      bool    `gorm:"index" json:"is_active"`
}
