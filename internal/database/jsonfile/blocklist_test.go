package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocklistRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.json")
	repo := NewBlocklistRepository(path)
	ctx := context.Background()

	blocked, err := repo.IsBlocked(ctx, "100")
	require.NoError(t, err)
	assert.False(t, blocked, "missing file blocks nobody")

	added, err := repo.Block(ctx, "100")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Block(ctx, "100")
	require.NoError(t, err)
	assert.False(t, added, "blocking twice is a no-op")

	_, err = repo.Block(ctx, "discord-5")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[100, "discord-5"]`, string(data))

	blocked, err = repo.IsBlocked(ctx, "100")
	require.NoError(t, err)
	assert.True(t, blocked)

	removed, err := repo.Unblock(ctx, "100")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Unblock(ctx, "100")
	require.NoError(t, err)
	assert.False(t, removed)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"discord-5"}, ids)
}

func TestBlocklistRepository_ReadsLegacyIntegerList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.json")
	require.NoError(t, os.WriteFile(path, []byte(`[123456789, 42]`), 0o644))
	repo := NewBlocklistRepository(path)

	blocked, err := repo.IsBlocked(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestBlocklistRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nope": 1}`), 0o644))

	_, err := NewBlocklistRepository(path).IsBlocked(context.Background(), "1")
	assert.Error(t, err)
}
