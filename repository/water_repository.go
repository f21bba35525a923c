package repository

import (
	"context"
	"errors"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"

	"gorm.io/gorm"
)

type WaterRepo struct {
	db *gorm.DB
}

func NewWaterRepo(db *gorm.DB) *WaterRepo {
	return &WaterRepo{db: db}
}

func (r *WaterRepo) ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.WaterEntry, error) {
	var entries []models.WaterEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("logged_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *WaterRepo) Get(ctx context.Context, userID, entryID uint) (*models.WaterEntry, error) {
	var entry models.WaterEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errvalues.ErrWaterNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaterRepo) Add(ctx context.Context, entry *models.WaterEntry) (uint, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (r *WaterRepo) Delete(ctx context.Context, userID, entryID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WaterEntry{}).Error
}
