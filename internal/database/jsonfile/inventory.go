// Package jsonfile stores inventories and the blocklist as JSON files on local disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/SkinBot_Go/internal/concurrency"
	"github.com/osse101/SkinBot_Go/internal/domain"
)

// InventoryRepository keeps one <user>_inventory.json per user under dir
type InventoryRepository struct {
	dir   string
	locks *concurrency.LockManager
}

// NewInventoryRepository creates a repository rooted at dir
func NewInventoryRepository(dir string) *InventoryRepository {
	return &InventoryRepository{
		dir:   dir,
		locks: concurrency.NewLockManager(),
	}
}

// Path returns the file that holds userID's inventory
func (r *InventoryRepository) Path(userID string) string {
	return filepath.Join(r.dir, userID+inventorySuffix)
}

// GetInventory reads the user's file. Missing or blank files are empty inventories.
func (r *InventoryRepository) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
	if err := domain.ValidateUserKey(userID); err != nil {
		return nil, err
	}
	return r.load(userID)
}

// UpdateInventory applies fn under the user's lock and rewrites the file
func (r *InventoryRepository) UpdateInventory(_ context.Context, userID string, fn func(inv *domain.Inventory) error) error {
	if err := domain.ValidateUserKey(userID); err != nil {
		return err
	}

	return r.locks.WithLock(userID, func() error {
		inv, err := r.load(userID)
		if err != nil {
			return err
		}
		if err := fn(inv); err != nil {
			return err
		}
		path := r.Path(userID)
		if err := writeJSON(path, inv); err != nil {
			return fmt.Errorf(ErrMsgWriteFailed, path, err)
		}
		return nil
	})
}

// Ping checks that the inventory directory exists or can be created
func (r *InventoryRepository) Ping(_ context.Context) error {
	return os.MkdirAll(r.dir, dirPerm)
}

func (r *InventoryRepository) load(userID string) (*domain.Inventory, error) {
	path := r.Path(userID)
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, path, err)
	}

	inv := domain.NewInventory()
	if len(bytes.TrimSpace(data)) == 0 {
		return inv, nil
	}
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, path, err)
	}
	return inv, nil
}
