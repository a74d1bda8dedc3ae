package search

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	PredictiveSearchFunc func(
		ctx context.Context, term string, opts domain.SearchOptions,
	) (*domain.PredictiveSearchResponse, error)
	SearchFunc func(ctx context.Context, term string, page domain.PageRequest) (*domain.SearchResultsPage, error)
}

func (m *MockSearchService) PredictiveSearch(
	ctx context.Context, term string, opts domain.SearchOptions,
) (*domain.PredictiveSearchResponse, error) {
	if m.PredictiveSearchFunc != nil {
		return m.PredictiveSearchFunc(ctx, term, opts)
	}
	return &domain.PredictiveSearchResponse{Term: term}, nil
}

func (m *MockSearchService) Search(
	ctx context.Context, term string, page domain.PageRequest,
) (*domain.SearchResultsPage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, page)
	}
	return &domain.SearchResultsPage{Term: term}, nil
}

func kenyaResponse(term string) *domain.PredictiveSearchResponse {
	return &domain.PredictiveSearchResponse{
		Term: term,
		Queries: []*domain.PredictiveQuery{
			nil,
			{Text: "kenya aa", StyledText: "<mark>kenya</mark> aa"},
		},
		Products: []domain.PredictiveProduct{
			{
				ID: "gid://shopify/Product/1", Title: "Kenya AA Nyeri", Handle: "kenya-aa",
				TrackingParams: "_pos=1&_sid=abc",
				Price:          &domain.Money{Amount: "21.5", CurrencyCode: "USD"},
			},
		},
	}
}

func newTestView(svc *MockSearchService) *View {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), svc, 0)
	v.SetDimensions(80, 40)
	return v
}

func typeKey(v *View, r rune) *View {
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return v
}

// collect runs cmd and any batched commands, returning the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &MockSearchService{}, 350*time.Millisecond)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
	assert.Equal(t, "", v.Query())
	assert.Equal(t, -1, v.Selected())
	assert.Equal(t, domain.FetchIdle, v.State())
	assert.Equal(t, services.DrawerEmptyIdle, v.Status())
	assert.Equal(t, 350*time.Millisecond, v.Debounce())
}

func TestView_Init(t *testing.T) {
	v := newTestView(&MockSearchService{})

	assert.NotNil(t, v.Init())
	assert.NotNil(t, v.Open())
}

func TestView_View_Idle(t *testing.T) {
	v := newTestView(&MockSearchService{})

	view := v.View()

	assert.Contains(t, view, Title)
	assert.Contains(t, view, Description)
	assert.Contains(t, view, "Looks like you haven't searched for anything yet")
	assert.Contains(t, view, "Let's get you started!")
	assert.Contains(t, view, "Continue Shopping")
}

func TestView_Typing_StartsLoading(t *testing.T) {
	v := newTestView(&MockSearchService{})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})

	assert.NotNil(t, cmd)
	assert.Equal(t, "k", v.Query())
	assert.Equal(t, domain.FetchLoading, v.State())
	assert.Equal(t, services.DrawerLoading, v.Status())
	assert.Contains(t, v.View(), "░░░░")
}

func TestView_Search_ResolvesResults(t *testing.T) {
	var opts domain.SearchOptions
	svc := &MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, o domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			opts = o
			return kenyaResponse(term), nil
		},
	}
	v := newTestView(svc)
	v.input.SetValue("kenya")

	v, _ = v.Update(v.search("kenya")())

	assert.Equal(t, domain.SearchOptions{Limit: domain.PredictiveSearchLimit, Predictive: true}, opts)
	assert.Equal(t, domain.FetchIdle, v.State())
	assert.Equal(t, services.DrawerResults, v.Status())

	result := v.Result()
	assert.Equal(t, 2, result.Total, "nil suggestion dropped")
	assert.Equal(t, "kenya", result.Term)

	view := v.View()
	assert.Contains(t, view, "SUGGESTIONS")
	assert.Contains(t, view, "kenya aa")
	assert.NotContains(t, view, "<mark>")
	assert.Contains(t, view, "PRODUCTS")
	assert.Contains(t, view, "Kenya AA Nyeri")
	assert.Contains(t, view, "$21.50")
	assert.Contains(t, view, "/products/kenya-aa?q=kenya&_pos=1&_sid=abc")
}

func TestView_LatestSubmissionWins(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("kenya")

	first := v.search("ke")
	firstSub, _ := v.fetcher.Pending()
	second := v.search("kenya")

	v, _ = v.Update(second())
	v, _ = v.Update(first())
	// A response for the superseded term arriving late is discarded too.
	v, _ = v.Update(messages.PredictiveSearchResolved{Sub: firstSub, Response: kenyaResponse("ke")})

	assert.Equal(t, "kenya", v.Result().Term)
	assert.Equal(t, domain.FetchIdle, v.State())
}

func TestView_Debounce_CancelledByNewerKeystroke(t *testing.T) {
	var calls atomic.Int32
	svc := &MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			calls.Add(1)
			return kenyaResponse(term), nil
		},
	}
	v := newTestView(svc)
	v.SetDebounce(time.Hour)

	first := v.search("k")
	v.SetDebounce(0)
	second := v.search("ke")

	msg := first().(messages.PredictiveSearchResolved)
	assert.True(t, services.IsSuperseded(msg.Err))
	assert.Equal(t, int32(0), calls.Load(), "superseded request never sent")

	v, _ = v.Update(msg)
	v, _ = v.Update(second())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "ke", v.Result().Term)
}

func TestView_Error_SoftFailsToEmpty(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			if term == "fail" {
				return nil, errors.New("throttled")
			}
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("kenya")
	v, _ = v.Update(v.search("kenya")())
	require.Equal(t, services.DrawerResults, v.Status())

	v.input.SetValue("fail")
	v, _ = v.Update(v.search("fail")())

	assert.Equal(t, domain.FetchIdle, v.State())
	assert.Equal(t, 0, v.Result().Total)
	assert.Equal(t, services.DrawerEmptyNotFound, v.Status())
	assert.Contains(t, v.View(), "We couldn't find any results for your search")
	assert.Contains(t, v.View(), "Please try a different search term")
}

func TestView_NoService(t *testing.T) {
	v := newTestView(nil)
	v.searchService = nil

	msg := v.search("kenya")().(messages.PredictiveSearchResolved)

	assert.ErrorIs(t, msg.Err, ErrNoSearchService)
}

func TestView_Refreshing_DimsPreviousResults(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("keny")
	v, _ = v.Update(v.search("keny")())

	v = typeKey(v, 'a')

	assert.Equal(t, services.DrawerResultsRefreshing, v.Status())
	assert.Contains(t, v.View(), "Kenya AA Nyeri")
}

func TestView_Selection(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("kenya")
	v, _ = v.Update(v.search("kenya")())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, -1, v.Selected(), "input stays active")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected(), "one suggestion and one product")
	assert.Contains(t, v.View(), "> Kenya AA Nyeri")
}

func TestView_Enter_GoesToSearchPage(t *testing.T) {
	v := newTestView(&MockSearchService{})
	v.input.SetValue("ethiopia")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	assert.Contains(t, msgs, messages.ViewChanged{View: messages.ViewSearchResults, Term: "ethiopia"})
	assert.Contains(t, msgs, messages.AsideClosed{})
}

func TestView_Enter_EmptyTermDoesNothing(t *testing.T) {
	v := newTestView(&MockSearchService{})
	v.input.SetValue("   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Enter_SelectedSuggestion(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("kenya")
	v, _ = v.Update(v.search("kenya")())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, collect(cmd), messages.ViewChanged{View: messages.ViewSearchResults, Term: "kenya aa"})
}

func TestView_Enter_SelectedProduct(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	v.input.SetValue("kenya")
	v, _ = v.Update(v.search("kenya")())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	require.Len(t, msgs, 2)
	link, ok := msgs[0].(messages.LinkSelected)
	require.True(t, ok)
	assert.Equal(t, "/products/kenya-aa?q=kenya&_pos=1&_sid=abc", link.Link.URL)
	assert.Equal(t, messages.AsideClosed{}, msgs[1])
}

func TestView_Esc_ClosesAside(t *testing.T) {
	v := newTestView(&MockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.AsideClosed{}, cmd())
}

func TestView_Esc_ClearsTypedTermFirst(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(ctx context.Context, _ string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})
	v = typeKey(v, 'k')
	_, pending := v.fetcher.Pending()
	require.True(t, pending)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Empty(t, v.Query())
	assert.Equal(t, domain.FetchIdle, v.fetcher.State())
	assert.Equal(t, services.DrawerEmptyIdle, v.Status())

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.AsideClosed{}, cmd())
}

func TestView_Close_AbortsPendingSearch(t *testing.T) {
	v := newTestView(&MockSearchService{
		PredictiveSearchFunc: func(_ context.Context, term string, _ domain.SearchOptions) (*domain.PredictiveSearchResponse, error) {
			return kenyaResponse(term), nil
		},
	})
	cmd := v.search("kenya")

	v.Close()
	v, _ = v.Update(cmd())

	assert.Equal(t, domain.FetchIdle, v.State())
	assert.Equal(t, 0, v.Result().Total)
}

func TestView_IgnoresOtherFetcherKeys(t *testing.T) {
	v := newTestView(&MockSearchService{})
	sub := v.fetcher.Submit(context.Background(), "kenya")
	sub.Key = "cart"

	v, _ = v.Update(messages.PredictiveSearchResolved{Sub: sub, Response: kenyaResponse("kenya")})

	assert.Equal(t, domain.FetchLoading, v.State())
}

func TestView_SpinnerTick_StopsWhenIdle(t *testing.T) {
	v := newTestView(&MockSearchService{})

	_, cmd := v.Update(v.spinner.Tick())

	assert.Nil(t, cmd)
}
