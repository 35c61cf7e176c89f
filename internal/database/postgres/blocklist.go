package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlocklistRepository stores blocked users in blocked_users
type BlocklistRepository struct {
	db *pgxpool.Pool
}

// NewBlocklistRepository creates a new BlocklistRepository
func NewBlocklistRepository(db *pgxpool.Pool) *BlocklistRepository {
	return &BlocklistRepository{db: db}
}

func (r *BlocklistRepository) IsBlocked(ctx context.Context, userID string) (bool, error) {
	var blocked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM blocked_users WHERE user_id = $1)`, userID).Scan(&blocked)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBlocklistQuery, err)
	}
	return blocked, nil
}

func (r *BlocklistRepository) Block(ctx context.Context, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO blocked_users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBlocklistQuery, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BlocklistRepository) Unblock(ctx context.Context, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blocked_users WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBlocklistQuery, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BlocklistRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM blocked_users ORDER BY blocked_at, user_id`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBlocklistQuery, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBlocklistQuery, err)
	}
	return ids, nil
}
