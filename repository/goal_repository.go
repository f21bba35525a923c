package repository

import (
	"context"
	"errors"

	"github.com/elitk/elfitness/models"

	"gorm.io/gorm"
)

type GoalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

func (r *GoalRepo) GetActive(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepo) Deactivate(ctx context.Context, goalID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.NutritionGoal{}).
		Where("id = ?", goalID).
		Update("is_active", false).Error
}

func (r *GoalRepo) Create(ctx context.Context, goal *models.NutritionGoal) (uint, error) {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return 0, err
	}
	return goal.ID, nil
}
