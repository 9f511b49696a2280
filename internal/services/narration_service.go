package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cicerone/internal/models/request_models"
	"cicerone/internal/models/response_models"
	"cicerone/internal/repositories"
	"cicerone/pkg/utils"
)

// narrationWords maps the detail level to a word budget for generated
// narration, which in turn drives the per-stop dwell time.
func narrationWords(detailLevel string) int {
	switch detailLevel {
	case request_models.DetailBrief:
		return 80
	case request_models.DetailExpert:
		return 400
	default:
		return 200
	}
}

type NarrationServiceInterface interface {
	Narrate(ctx context.Context, sightID string, req request_models.NarrationRequest) (*response_models.Narration, error)
}

type NarrationService struct {
	sightRepo repositories.SightRepository
	aiClient  utils.AIClientInterface // nil when no credential is configured
}

func NewNarrationService(sightRepo repositories.SightRepository, aiClient utils.AIClientInterface) NarrationServiceInterface {
	return &NarrationService{
		sightRepo: sightRepo,
		aiClient:  aiClient,
	}
}

// Narrate produces spoken-style text about a sight. Generation failures
// never surface: the stored description is the fallback, so narration
// can never block the rest of the app.
func (n *NarrationService) Narrate(ctx context.Context, sightID string, req request_models.NarrationRequest) (*response_models.Narration, error) {
	sight, err := n.sightRepo.GetByID(ctx, sightID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sight == nil {
		return nil, utils.ErrSightNotFound
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	fallback := &response_models.Narration{
		SightID:   sightID,
		Language:  lang,
		Text:      sight.Description(lang),
		Generated: false,
	}

	if n.aiClient == nil {
		return fallback, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a tour guide. In about %d words and in language %q, tell a visitor about %s (%s).\n",
		narrationWords(req.DetailLevel), lang, sight.Name, sight.Category)
	if desc := sight.Description(lang); desc != "" {
		fmt.Fprintf(&b, "Background: %s\n", desc)
	}
	if req.SpecialInterests != "" {
		fmt.Fprintf(&b, "The visitor is especially interested in: %s\n", req.SpecialInterests)
	}
	b.WriteString("Speak directly to the visitor. Plain text only.")

	text, err := n.aiClient.CompleteText(ctx, b.String())
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("Narration generation failed for sight %s, using stored description: %v", sightID, err)
		return fallback, nil
	}

	return &response_models.Narration{
		SightID:   sightID,
		Language:  lang,
		Text:      strings.TrimSpace(text),
		Generated: true,
	}, nil
}
