package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

func TestInventoryRepository_MissingFileIsEmpty(t *testing.T) {
	repo := NewInventoryRepository(t.TempDir())

	inv, err := repo.GetInventory(context.Background(), "123")
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func TestInventoryRepository_BlankFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo := NewInventoryRepository(dir)
	require.NoError(t, os.WriteFile(repo.Path("123"), []byte("  \n"), 0o644))

	inv, err := repo.GetInventory(context.Background(), "123")
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func TestInventoryRepository_UpdateWritesFileFormat(t *testing.T) {
	dir := t.TempDir()
	repo := NewInventoryRepository(dir)
	ctx := context.Background()

	err := repo.UpdateInventory(ctx, "123", func(inv *domain.Inventory) error {
		inv.Add("Red Fox", 3)
		inv.Add("Лис & Co", 1)
		return nil
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "123_inventory.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"Red Fox\": 3,\n    \"Лис & Co\": 1\n}\n", string(data))

	inv, err := repo.GetInventory(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{{Name: "Red Fox", Quantity: 3}, {Name: "Лис & Co", Quantity: 1}}, inv.Entries())
}

func TestInventoryRepository_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewInventoryRepository(dir)
	require.NoError(t, os.WriteFile(repo.Path("42"), []byte(`{"Blue Moon": 2, "Red Fox": 1}`), 0o644))

	inv, err := repo.GetInventory(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Blue Moon", inv.Entries()[0].Name)
}

func TestInventoryRepository_FailedUpdateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	repo := NewInventoryRepository(dir)
	boom := errors.New("boom")

	err := repo.UpdateInventory(context.Background(), "7", func(inv *domain.Inventory) error {
		inv.Add("Red Fox", 1)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(repo.Path("7"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInventoryRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewInventoryRepository(dir)
	require.NoError(t, os.WriteFile(repo.Path("9"), []byte(`{"Red Fox": `), 0o644))

	_, err := repo.GetInventory(context.Background(), "9")
	assert.Error(t, err)
}

func TestInventoryRepository_RejectsPathLikeUsers(t *testing.T) {
	repo := NewInventoryRepository(t.TempDir())

	_, err := repo.GetInventory(context.Background(), "../x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = repo.UpdateInventory(context.Background(), "a/b", func(*domain.Inventory) error { return nil })
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryRepository_ConcurrentUpdatesAreSerialized(t *testing.T) {
	repo := NewInventoryRepository(t.TempDir())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.UpdateInventory(ctx, "1", func(inv *domain.Inventory) error {
				inv.Add("Red Fox", 1)
				return nil
			}))
		}()
	}
	wg.Wait()

	inv, err := repo.GetInventory(ctx, "1")
	require.NoError(t, err)
	qty, _ := inv.Quantity("Red Fox")
	assert.Equal(t, 20, qty)
}

func TestInventoryRepository_Ping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "inventories")
	repo := NewInventoryRepository(dir)
	require.NoError(t, repo.Ping(context.Background()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
