package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchOptions_SearchParams(t *testing.T) {
	opts := SearchOptions{Limit: PredictiveSearchLimit, Predictive: true}
	assert.Equal(t, map[string]string{"q": "latte", "limit": "5", "predictive": "true"}, opts.SearchParams("latte"))

	assert.Equal(t, map[string]string{"q": "latte"}, SearchOptions{}.SearchParams("latte"))
}

func TestFetchState_String(t *testing.T) {
	assert.Equal(t, "idle", FetchIdle.String())
	assert.Equal(t, "loading", FetchLoading.String())
	assert.Equal(t, "error", FetchError.String())
}

func TestPredictiveSearchResult_IsEmpty(t *testing.T) {
	assert.True(t, PredictiveSearchResult{}.IsEmpty())
	assert.False(t, PredictiveSearchResult{Total: 1}.IsEmpty())
}
