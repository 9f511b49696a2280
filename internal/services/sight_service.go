package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"cicerone/internal/models/db_models"
	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/internal/repositories"
	"cicerone/pkg/utils"
)

// kmPerDegreeLat is the rough size of one degree of latitude, used only
// to turn a search radius into a SQL bounding-box prefilter.
const kmPerDegreeLat = 111.0

const relatedSightsLimit = 5

type SightServiceInterface interface {
	// NearbySights returns catalog sights within radiusKm of the given
	// origin, enriched with computed tier and distance, closest first.
	NearbySights(ctx context.Context, lat, lng, radiusKm float64) ([]response_models.Sight, error)
	GetSightByID(ctx context.Context, id string) (*response_models.Sight, error)
	CreateSight(ctx context.Context, req request_models.CreateSightRequest) (string, error)
	RelatedSights(ctx context.Context, id string) ([]response_models.Sight, error)
	ListSights(ctx context.Context, page, pageSize int) ([]response_models.Sight, error)
}

type SightService struct {
	sightRepo     repositories.SightRepository
	embeddingRepo repositories.SightEmbeddingRepository
	aiClient      utils.AIClientInterface // nil when no credential is configured
}

func NewSightService(
	sightRepo repositories.SightRepository,
	embeddingRepo repositories.SightEmbeddingRepository,
	aiClient utils.AIClientInterface,
) SightServiceInterface {
	return &SightService{
		sightRepo:     sightRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

func (s *SightService) NearbySights(ctx context.Context, lat, lng, radiusKm float64) ([]response_models.Sight, error) {
	if radiusKm <= 0 {
		return []response_models.Sight{}, nil
	}

	latDelta := radiusKm / kmPerDegreeLat
	lngDelta := latDelta
	if cosLat := math.Cos(lat * math.Pi / 180); cosLat > 0.01 {
		lngDelta = latDelta / cosLat
	}

	rows, err := s.sightRepo.ListInBoundingBox(ctx, lat-latDelta, lat+latDelta, lng-lngDelta, lng+lngDelta)
	if err != nil {
		log.Printf("Error listing sights: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Sight, 0, len(rows))
	for i := range rows {
		sight := toSightResponse(&rows[i])
		d := utils.HaversineKm(lat, lng, rows[i].Latitude, rows[i].Longitude)
		if d > radiusKm {
			continue // corner of the bounding box
		}
		sight.DistanceKm = &d
		out = append(out, sight)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out, nil
}

func (s *SightService) GetSightByID(ctx context.Context, id string) (*response_models.Sight, error) {
	row, err := s.sightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrSightNotFound
	}
	sight := toSightResponse(row)
	return &sight, nil
}

func (s *SightService) CreateSight(ctx context.Context, req request_models.CreateSightRequest) (string, error) {
	row := &db_models.Sight{
		Name:         req.Name,
		Category:     req.Category,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Descriptions: req.Descriptions,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		OpenNow:      req.OpenNow,
	}

	id, err := s.sightRepo.CreateSight(ctx, row)
	if err != nil {
		log.Printf("Error creating sight: %v", err)
		return "", utils.ErrDatabaseError
	}

	// Embedding upkeep is best-effort; the catalog entry stands either way.
	if s.aiClient != nil {
		if err := s.indexSight(ctx, row); err != nil {
			log.Printf("Error indexing sight %s: %v", id, err)
		}
	}
	return id.String(), nil
}

func (s *SightService) indexSight(ctx context.Context, row *db_models.Sight) error {
	text := row.Name + ". " + row.Category + ". " + row.Description("en")
	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}
	return s.embeddingRepo.Upsert(ctx, &db_models.SightEmbedding{
		SightID:   row.ID.String(),
		Name:      row.Name,
		Category:  row.Category,
		Keywords:  strings.Fields(strings.ToLower(row.Category)),
		Embedding: vector,
	})
}

// RelatedSights returns catalog sights whose description embeddings sit
// closest to the given sight's, excluding the sight itself.
func (s *SightService) RelatedSights(ctx context.Context, id string) ([]response_models.Sight, error) {
	row, err := s.sightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrSightNotFound
	}

	embedding, err := s.embeddingRepo.GetBySightID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if embedding == nil {
		if s.aiClient == nil {
			return []response_models.Sight{}, nil
		}
		if err := s.indexSight(ctx, row); err != nil {
			log.Printf("Error indexing sight %s: %v", id, err)
			return []response_models.Sight{}, nil
		}
		if embedding, err = s.embeddingRepo.GetBySightID(ctx, id); err != nil || embedding == nil {
			return []response_models.Sight{}, nil
		}
	}

	neighbors, err := s.embeddingRepo.ListNearestByVector(ctx, embedding.Embedding, relatedSightsLimit+1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Sight, 0, relatedSightsLimit)
	for _, n := range neighbors {
		if n.SightID == id || len(out) == relatedSightsLimit {
			continue
		}
		related, err := s.sightRepo.GetByID(ctx, n.SightID)
		if err != nil || related == nil {
			continue
		}
		out = append(out, toSightResponse(related))
	}
	return out, nil
}

func (s *SightService) ListSights(ctx context.Context, page, pageSize int) ([]response_models.Sight, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	rows, err := s.sightRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing sights: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Sight, 0, len(rows))
	for i := range rows {
		out = append(out, toSightResponse(&rows[i]))
	}
	return out, nil
}

func toSightResponse(row *db_models.Sight) response_models.Sight {
	return response_models.Sight{
		ID:           row.ID.String(),
		Name:         row.Name,
		Category:     row.Category,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		Tier:         ClassifyTier(row.Rating, row.ReviewCount),
		Descriptions: row.Descriptions,
		Rating:       row.Rating,
		ReviewCount:  row.ReviewCount,
		OpenNow:      row.OpenNow,
	}
}
