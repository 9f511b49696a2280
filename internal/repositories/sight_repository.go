package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cicerone/internal/models/db_models"
)

type SightRepository interface {
	CreateSight(ctx context.Context, sight *db_models.Sight) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Sight, error)
	// ListInBoundingBox returns catalog rows whose coordinates fall
	// inside the given latitude/longitude window.
	ListInBoundingBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]db_models.Sight, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Sight, error)
}

type sightRepository struct {
	db *gorm.DB
}

func NewSightRepository(db *gorm.DB) SightRepository {
	return &sightRepository{db: db}
}

func (r *sightRepository) CreateSight(ctx context.Context, sight *db_models.Sight) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(sight).Error; err != nil {
		return uuid.Nil, err
	}
	return sight.ID, nil
}

// Read helpers return a default value + nil error when no rows match.

func (r *sightRepository) GetByID(ctx context.Context, id string) (*db_models.Sight, error) {
	var sight db_models.Sight
	err := r.db.WithContext(ctx).First(&sight, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sight, nil
}

func (r *sightRepository) ListInBoundingBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]db_models.Sight, error) {
	var sights []db_models.Sight
	err := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Find(&sights).Error
	if err != nil {
		return nil, err
	}
	return sights, nil
}

func (r *sightRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Sight, error) {
	var sights []db_models.Sight
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Find(&sights).Error
	if err != nil {
		return nil, err
	}
	return sights, nil
}
