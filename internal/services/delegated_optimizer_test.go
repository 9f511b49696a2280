package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cicerone/internal/models/response_models"
)

// stubAIClient returns a canned completion or error and records whether
// it was consulted at all.
type stubAIClient struct {
	completion string
	err        error
	called     bool
}

func (s *stubAIClient) CompleteText(ctx context.Context, prompt string) (string, error) {
	s.called = true
	return s.completion, s.err
}

func (s *stubAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.Vector{}, nil
}

func delegCandidates() []response_models.Sight {
	mk := func(id, name string, lng, distKm float64) response_models.Sight {
		return response_models.Sight{ID: id, Name: name, Latitude: 0, Longitude: lng, DistanceKm: &distKm}
	}
	return []response_models.Sight{
		mk("a", "Old Town Hall", 0.01, 1.1),
		mk("b", "Cathedral", 0.02, 2.2),
		mk("c", "River Bridge", 0.03, 3.3),
		mk("d", "Art Museum", 0.04, 4.4),
		mk("e", "Castle Hill", 0.05, 5.5),
	}
}

func TestDelegatedOptimizerFollowsCompletionOrder(t *testing.T) {
	client := &stubAIClient{completion: "River Bridge, Old Town Hall, Cathedral"}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "Ada")

	route := opt.OptimizeRoute(context.Background(), 0, 0, delegCandidates(), 20, nil)

	require.True(t, client.called)
	require.Len(t, route, 3)
	assert.Equal(t, "c", route[0].ID)
	assert.Equal(t, "a", route[1].ID)
	assert.Equal(t, "b", route[2].ID)
}

func TestDelegatedOptimizerFallsBackOnError(t *testing.T) {
	candidates := delegCandidates()
	client := &stubAIClient{err: errors.New("quota exceeded")}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	got := opt.OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)
	want := NewHeuristicOptimizer().OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)

	assert.True(t, client.called)
	assert.Equal(t, want, got)
}

func TestDelegatedOptimizerFallsBackOnUnusableCompletion(t *testing.T) {
	candidates := delegCandidates()
	client := &stubAIClient{completion: "I cannot plan a tour right now."}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	got := opt.OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)
	want := NewHeuristicOptimizer().OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)

	assert.Equal(t, want, got)
}

func TestDelegatedOptimizerNilClientUsesHeuristic(t *testing.T) {
	candidates := delegCandidates()
	opt := NewDelegatedOptimizer(nil, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	got := opt.OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)
	want := NewHeuristicOptimizer().OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)

	assert.Equal(t, want, got)
}

func TestDelegatedOptimizerSkipsDelegationForFewCandidates(t *testing.T) {
	candidates := delegCandidates()[:3]
	client := &stubAIClient{completion: "Cathedral"}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	got := opt.OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)
	want := NewHeuristicOptimizer().OptimizeRoute(context.Background(), 0, 0, candidates, 20, nil)

	assert.False(t, client.called)
	assert.Equal(t, want, got)
}

func TestDelegatedOptimizerDropsDuplicatesAndTopsUp(t *testing.T) {
	// Two usable names, one duplicated: the short route is padded with
	// the nearest unused candidates up to five stops.
	client := &stubAIClient{completion: "Cathedral, Cathedral, Art Museum"}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	route := opt.OptimizeRoute(context.Background(), 0, 0, delegCandidates(), 20, nil)

	require.Len(t, route, 5)
	assert.Equal(t, "b", route[0].ID)
	assert.Equal(t, "d", route[1].ID)
	// Top-up by ascending distance from the origin.
	assert.Equal(t, "a", route[2].ID)
	assert.Equal(t, "c", route[3].ID)
	assert.Equal(t, "e", route[4].ID)
}

func TestDelegatedOptimizerDropsUnknownNames(t *testing.T) {
	client := &stubAIClient{completion: "Cathedral, Atlantis, Old Town Hall, River Bridge"}
	opt := NewDelegatedOptimizer(client, NewSubstringMatcher(), NewHeuristicOptimizer(), "")

	route := opt.OptimizeRoute(context.Background(), 0, 0, delegCandidates(), 20, nil)

	require.Len(t, route, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{route[0].ID, route[1].ID, route[2].ID})
}
