// Package errvalues holds the sentinel errors shared by services and
// controllers.
package errvalues

import "errors"

var (
	// Validation errors: rejected before any aggregate is touched.
	ErrInvalidServings = errors.New("servings must be positive")
	ErrUnknownMealType = errors.New("unknown meal type")
	ErrInvalidAmount   = errors.New("amount must be positive")

	// Not-found errors: surfaced to the caller, no retry.
	ErrFoodNotFound  = errors.New("food item not found")
	ErrEntryNotFound = errors.New("nutrition entry not found")
	ErrWaterNotFound = errors.New("water entry not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrInvalidGoalTarget marks a goal target of zero or less; progress
	// against such a target is reported as 0 instead of dividing by zero.
	ErrInvalidGoalTarget = errors.New("goal target must be positive")
)
