package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "session.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetCartID(context.Background(), "gid://shopify/Cart/1"))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	cartID, err := second.CartID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/1", cartID, "session survives reopening")
}

func TestStore_CartID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	cartID, err := store.CartID(ctx)
	require.NoError(t, err)
	assert.Empty(t, cartID)

	require.NoError(t, store.SetCartID(ctx, "gid://shopify/Cart/1"))
	require.NoError(t, store.SetCartID(ctx, "gid://shopify/Cart/2"))
	cartID, err = store.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/2", cartID)

	require.NoError(t, store.SetCartID(ctx, ""))
	cartID, err = store.CartID(ctx)
	require.NoError(t, err)
	assert.Empty(t, cartID)
}

func TestStore_Token(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)

	expiry := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetToken(ctx, &domain.CustomerToken{
		AccessToken:  "shcat_abc",
		RefreshToken: "shcrt_def",
		TokenType:    "Bearer",
		Expiry:       expiry,
	}))

	token, err = store.Token(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "shcat_abc", token.AccessToken)
	assert.Equal(t, "shcrt_def", token.RefreshToken)
	assert.True(t, expiry.Equal(token.Expiry))

	require.NoError(t, store.SetToken(ctx, nil))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestStore_Session(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	empty, err := store.Session(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.CartID)
	assert.Nil(t, empty.Token)

	require.NoError(t, store.SetCartID(ctx, "gid://shopify/Cart/1"))
	require.NoError(t, store.SetToken(ctx, &domain.CustomerToken{AccessToken: "a"}))

	session, err := store.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/1", session.CartID)
	require.NotNil(t, session.Token)
	assert.Equal(t, "a", session.Token.AccessToken)
}
