package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cicerone/internal/models/db_models"
)

type FavoriteRepository interface {
	Add(ctx context.Context, accountID, sightID uuid.UUID) error
	Remove(ctx context.Context, accountID, sightID uuid.UUID) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is idempotent: inserting an existing (account, sight) pair hits
// the unique index and is treated as success. Requires the connection
// to be opened with TranslateError so the violation arrives as
// gorm.ErrDuplicatedKey.
func (r *favoriteRepository) Add(ctx context.Context, accountID, sightID uuid.UUID) error {
	fav := &db_models.Favorite{AccountID: accountID, SightID: sightID}
	err := r.db.WithContext(ctx).Create(fav).Error
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *favoriteRepository) Remove(ctx context.Context, accountID, sightID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND sight_id = ?", accountID, sightID).
		Delete(&db_models.Favorite{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *favoriteRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Sight").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
