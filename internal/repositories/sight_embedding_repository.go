package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"cicerone/internal/models/db_models"
)

type SightEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.SightEmbedding) error
	GetBySightID(ctx context.Context, sightID string) (*db_models.SightEmbedding, error)
	// ListNearestByVector returns embeddings ordered by cosine distance
	// to the given vector, closest first.
	ListNearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.SightEmbedding, error)
}

type sightEmbeddingRepository struct {
	db *gorm.DB
}

func NewSightEmbeddingRepository(db *gorm.DB) SightEmbeddingRepository {
	return &sightEmbeddingRepository{db: db}
}

func (r *sightEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.SightEmbedding) error {
	return r.db.WithContext(ctx).Save(embedding).Error
}

func (r *sightEmbeddingRepository) GetBySightID(ctx context.Context, sightID string) (*db_models.SightEmbedding, error) {
	var result db_models.SightEmbedding
	err := r.db.WithContext(ctx).First(&result, "sight_id = ?", sightID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *sightEmbeddingRepository) ListNearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.SightEmbedding, error) {
	var results []db_models.SightEmbedding

	query := `
        SELECT *
        FROM sight_embeddings
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
