package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cicerone/internal/models/db_models"
)

// TourRepository is the persistence port for saved tours. Upsert keeps
// the save semantics of the wizard: saving a tour whose ID already
// exists replaces that entry, otherwise a new entry is appended.
type TourRepository interface {
	Upsert(ctx context.Context, tour *db_models.Tour) error
	GetByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.Tour, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Tour, error)
	Delete(ctx context.Context, accountID uuid.UUID, id string) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Upsert(ctx context.Context, tour *db_models.Tour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace the stop list wholesale so aggregates and stops can
		// never drift apart across saves of the same tour.
		if err := tx.Where("tour_id = ?", tour.ID).Delete(&db_models.TourStop{}).Error; err != nil {
			return err
		}
		return tx.Save(tour).Error
	})
}

func (r *tourRepository) GetByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&tour, "id = ? AND account_id = ?", id, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Tour, error) {
	var tours []db_models.Tour
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&tours).Error
	if err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) Delete(ctx context.Context, accountID uuid.UUID, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.Tour{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
