package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

func TestProject_Nil(t *testing.T) {
	got := Project(nil)

	want := domain.PredictiveSearchResult{
		Type: "predictive",
		Items: domain.PredictiveSearchItems{
			Products:    []domain.PredictiveProduct{},
			Queries:     []domain.PredictiveQuery{},
			Collections: []domain.PredictiveCollection{},
			Pages:       []domain.PredictivePage{},
			Articles:    []domain.PredictiveArticle{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Project(nil) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, got.Total)
}

func TestProject_CountsEveryCategory(t *testing.T) {
	raw := &domain.PredictiveSearchResponse{
		Term:        "latte",
		Products:    []domain.PredictiveProduct{{ID: "p1", Title: "Latte Blend"}, {ID: "p2", Title: "Oat Latte"}},
		Queries:     []*domain.PredictiveQuery{{Text: "latte art"}, nil, {Text: "latte cups"}},
		Collections: []domain.PredictiveCollection{{ID: "c1"}},
		Pages:       []domain.PredictivePage{{ID: "pg1"}},
		Articles:    []domain.PredictiveArticle{{ID: "a1"}},
	}

	got := Project(raw)

	assert.Equal(t, "latte", got.Term)
	assert.Equal(t, 7, got.Total)
	want := []domain.PredictiveQuery{{Text: "latte art"}, {Text: "latte cups"}}
	if diff := cmp.Diff(want, got.Items.Queries); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "p1", got.Items.Products[0].ID, "rank order is preserved")
}

func TestProject_DoesNotAliasInput(t *testing.T) {
	raw := &domain.PredictiveSearchResponse{Products: []domain.PredictiveProduct{{ID: "p1"}}}
	got := Project(raw)
	raw.Products[0].ID = "changed"
	assert.Equal(t, "p1", got.Items.Products[0].ID)
}

func TestProject_EmptyCategories(t *testing.T) {
	got := Project(&domain.PredictiveSearchResponse{Term: "zzz"})
	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Items.Products)
	assert.NotNil(t, got.Items.Articles)
}

func TestDrawerStatusFor(t *testing.T) {
	withProducts := Project(&domain.PredictiveSearchResponse{Products: []domain.PredictiveProduct{{ID: "p"}}})
	onlyQueries := Project(&domain.PredictiveSearchResponse{Queries: []*domain.PredictiveQuery{{Text: "x"}}})
	empty := Project(nil)

	tests := []struct {
		name   string
		query  string
		state  domain.FetchState
		result domain.PredictiveSearchResult
		want   DrawerStatus
	}{
		{"loading without products shows skeleton", "la", domain.FetchLoading, empty, DrawerLoading},
		{"loading with only queries shows skeleton", "la", domain.FetchLoading, onlyQueries, DrawerLoading},
		{"loading with products dims results", "lat", domain.FetchLoading, withProducts, DrawerResultsRefreshing},
		{"idle with products", "latte", domain.FetchIdle, withProducts, DrawerResults},
		{"no query and nothing loaded", "", domain.FetchIdle, empty, DrawerEmptyIdle},
		{"query matched nothing", "zzz", domain.FetchIdle, empty, DrawerEmptyNotFound},
		{"whitespace query is idle", "   ", domain.FetchIdle, empty, DrawerEmptyIdle},
		{"error renders as empty", "latte", domain.FetchError, empty, DrawerEmptyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DrawerStatusFor(tt.query, tt.state, tt.result))
		})
	}
}
