package services

import (
	"context"

	"github.com/google/uuid"

	"cicerone/internal/models/response_models"
	"cicerone/internal/repositories"
	"cicerone/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, accountID uuid.UUID, sightID string) error
	RemoveFavorite(ctx context.Context, accountID uuid.UUID, sightID string) error
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]response_models.Sight, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	sightRepo    repositories.SightRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, sightRepo repositories.SightRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		sightRepo:    sightRepo,
	}
}

func (f *FavoriteService) AddFavorite(ctx context.Context, accountID uuid.UUID, sightID string) error {
	id, err := uuid.Parse(sightID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	sight, err := f.sightRepo.GetByID(ctx, sightID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sight == nil {
		return utils.ErrSightNotFound
	}

	if err := f.favoriteRepo.Add(ctx, accountID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) RemoveFavorite(ctx context.Context, accountID uuid.UUID, sightID string) error {
	id, err := uuid.Parse(sightID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := f.favoriteRepo.Remove(ctx, accountID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]response_models.Sight, error) {
	favorites, err := f.favoriteRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Sight, 0, len(favorites))
	for i := range favorites {
		out = append(out, toSightResponse(&favorites[i].Sight))
	}
	return out, nil
}
