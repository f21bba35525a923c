package repository

import (
	"context"
	"errors"
	"time"

	"github.com/elitk/elfitness/models"

	"gorm.io/gorm"
)

// NutritionRepo persists daily entries with their meal and food children.
type NutritionRepo struct {
	db *gorm.DB
}

func NewNutritionRepo(db *gorm.DB) *NutritionRepo {
	return &NutritionRepo{db: db}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (r *NutritionRepo) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	err := r.db.WithContext(ctx).
		Preload("Meals.Foods").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Save writes the entry and its children in one transaction. Meals and
// foods carry rebuilt totals, so the stored rows always match their
// source lists; removed foods are deleted rather than orphaned.
func (r *NutritionRepo) Save(ctx context.Context, entry *models.NutritionEntry) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(entry).Error; err != nil {
			return err
		}
		// prune food rows dropped from the in-memory lists
		for i := range entry.Meals {
			meal := &entry.Meals[i]
			keep := make([]uint, 0, len(meal.Foods))
			for _, f := range meal.Foods {
				keep = append(keep, f.ID)
			}
			q := tx.Where("meal_id = ?", meal.ID)
			if len(keep) > 0 {
				q = q.Where("id NOT IN ?", keep)
			}
			if err := q.Delete(&models.FoodLogEntry{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (r *NutritionRepo) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := r.db.WithContext(ctx).
		Preload("Meals.Foods").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *NutritionRepo) ListAll(ctx context.Context, userID uint) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *NutritionRepo) Delete(ctx context.Context, userID, entryID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.NutritionEntry{}).Error
}
