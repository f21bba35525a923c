package services

import (
	"context"
	"time"

	"github.com/elitk/elfitness/models"
)

// Persistence collaborators. The aggregation services only ever see
// in-memory structures; any failure from these propagates as-is and is
// never retried here.

type NutritionStore interface {
	// GetByDate returns the entry for the user's calendar day, or
	// (nil, nil) when none exists yet.
	GetByDate(ctx context.Context, userID uint, date time.Time) (*models.NutritionEntry, error)
	// Save persists the whole entry, meals and foods included, and
	// returns its id.
	Save(ctx context.Context, entry *models.NutritionEntry) (uint, error)
	// ListRange returns entries with from <= date <= to, newest first.
	ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error)
	// ListAll returns the user's full entry history, newest first.
	ListAll(ctx context.Context, userID uint) ([]models.NutritionEntry, error)
	Delete(ctx context.Context, userID, entryID uint) error
}

type FoodStore interface {
	// GetByFoodID looks up a catalog item by its public food id and
	// returns errvalues.ErrFoodNotFound when missing.
	GetByFoodID(ctx context.Context, foodID string) (*models.FoodItem, error)
	Search(ctx context.Context, query, category string, limit int) ([]models.FoodItem, error)
	Create(ctx context.Context, item *models.FoodItem) error
	ListCustom(ctx context.Context, userID uint) ([]models.FoodItem, error)
}

type GoalStore interface {
	// GetActive returns the user's active goal set, or (nil, nil) when
	// none is configured.
	GetActive(ctx context.Context, userID uint) (*models.NutritionGoal, error)
	Deactivate(ctx context.Context, goalID uint) error
	Create(ctx context.Context, goal *models.NutritionGoal) (uint, error)
}

type WaterStore interface {
	ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.WaterEntry, error)
	Get(ctx context.Context, userID, entryID uint) (*models.WaterEntry, error)
	Add(ctx context.Context, entry *models.WaterEntry) (uint, error)
	Delete(ctx context.Context, userID, entryID uint) error
}
