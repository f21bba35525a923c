package services

import (
	"context"
	"errors"
	"strings"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"

	"github.com/google/uuid"
)

// FoodService serves the local food catalog: seeded staples plus
// per-user custom foods.
type FoodService struct {
	foods FoodStore
}

func NewFoodService(foods FoodStore) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) Get(ctx context.Context, foodID string) (*models.FoodItem, error) {
	return s.foods.GetByFoodID(ctx, foodID)
}

func (s *FoodService) Search(ctx context.Context, query, category string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	return s.foods.Search(ctx, strings.TrimSpace(query), category, limit)
}

type CustomFoodInput struct {
	Name               string  `json:"name" binding:"required"`
	Brand              string  `json:"brand"`
	ServingSize        float64 `json:"serving_size" binding:"required,gt=0"`
	ServingUnit        string  `json:"serving_unit" binding:"required"`
	CaloriesPerServing float64 `json:"calories_per_serving" binding:"gte=0"`
	Protein            float64 `json:"protein" binding:"gte=0"`
	Carbs              float64 `json:"carbs" binding:"gte=0"`
	Fat                float64 `json:"fat" binding:"gte=0"`
	Fiber              float64 `json:"fiber" binding:"gte=0"`
	Sugar              float64 `json:"sugar" binding:"gte=0"`
	Category           string  `json:"category"`
}

// CreateCustom stores a user-defined catalog item under a fresh public
// food id and returns it.
func (s *FoodService) CreateCustom(ctx context.Context, userID uint, in CustomFoodInput) (*models.FoodItem, error) {
	item := &models.FoodItem{
		FoodID:             uuid.NewString(),
		Name:               in.Name,
		Brand:              in.Brand,
		ServingSize:        in.ServingSize,
		ServingUnit:        in.ServingUnit,
		CaloriesPerServing: in.CaloriesPerServing,
		Macros: models.MacroNutrients{
			Protein: in.Protein,
			Carbs:   in.Carbs,
			Fat:     in.Fat,
			Fiber:   in.Fiber,
			Sugar:   in.Sugar,
		},
		Category: in.Category,
		IsCustom: true,
		UserID:   userID,
	}
	if err := s.foods.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) ListCustom(ctx context.Context, userID uint) ([]models.FoodItem, error) {
	return s.foods.ListCustom(ctx, userID)
}

// Seed loads the built-in staples, skipping any food id already present.
func (s *FoodService) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, f := range sampleFoods {
		item := f
		if _, err := s.foods.GetByFoodID(ctx, item.FoodID); err == nil {
			continue
		} else if !errors.Is(err, errvalues.ErrFoodNotFound) {
			return created, err
		}
		if err := s.foods.Create(ctx, &item); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
