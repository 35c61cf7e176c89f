package repository

import (
	"context"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Inventory defines the interface for per-user inventory persistence
type Inventory interface {
	// GetInventory returns the user's inventory. A user with no record has an empty inventory.
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)

	// UpdateInventory loads the inventory, applies fn and saves the result atomically.
	// Nothing is written when fn returns an error.
	UpdateInventory(ctx context.Context, userID string, fn func(inv *domain.Inventory) error) error
}
