package repository

import (
	"context"
	"errors"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"

	"gorm.io/gorm"
)

type FoodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) *FoodRepo {
	return &FoodRepo{db: db}
}

func (r *FoodRepo) GetByFoodID(ctx context.Context, foodID string) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.WithContext(ctx).Where("food_id = ?", foodID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errvalues.ErrFoodNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *FoodRepo) Search(ctx context.Context, query, category string, limit int) ([]models.FoodItem, error) {
	q := r.db.WithContext(ctx).Model(&models.FoodItem{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.FoodItem
	err := q.Order("name ASC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *FoodRepo) Create(ctx context.Context, item *models.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *FoodRepo) ListCustom(ctx context.Context, userID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_custom = ?", userID, true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
