package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// InventoryRepository stores inventories as ordered rows in inventory_entries
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetInventory returns the user's entries in insertion order
func (r *InventoryRepository) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	inv, err := loadInventory(ctx, r.db, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadInventory, userID, err)
	}
	return inv, nil
}

// UpdateInventory runs fn inside a transaction holding a per-user advisory lock
func (r *InventoryRepository) UpdateInventory(ctx context.Context, userID string, fn func(inv *domain.Inventory) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	// Row locks cannot cover a user who has no rows yet
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return fmt.Errorf(ErrMsgLockUser, userID, err)
	}

	inv, err := loadInventory(ctx, tx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadInventory, userID, err)
	}

	if err := fn(inv); err != nil {
		return err
	}

	if err := saveInventory(ctx, tx, userID, inv); err != nil {
		return fmt.Errorf(ErrMsgSaveInventory, userID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommit, err)
	}
	return nil
}

// Ping checks connectivity
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func loadInventory(ctx context.Context, q querier, userID string) (*domain.Inventory, error) {
	rows, err := q.Query(ctx, `
		SELECT item_name, quantity
		FROM inventory_entries
		WHERE user_id = $1
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, err
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.InventoryEntry])
	if err != nil {
		return nil, err
	}
	return domain.NewInventory(entries...), nil
}

func saveInventory(ctx context.Context, tx pgx.Tx, userID string, inv *domain.Inventory) error {
	if _, err := tx.Exec(ctx, `DELETE FROM inventory_entries WHERE user_id = $1`, userID); err != nil {
		return err
	}

	entries := inv.Entries()
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = []any{userID, e.Name, e.Quantity, i}
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{tableInventoryEntries},
		[]string{"user_id", "item_name", "quantity", "position"},
		pgx.CopyFromRows(rows),
	)
	return err
}
