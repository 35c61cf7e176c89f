package repository

import "context"

// Blocklist defines the interface for the set of blocked users
type Blocklist interface {
	IsBlocked(ctx context.Context, userID string) (bool, error)

	// Block adds the user and reports whether they were newly added
	Block(ctx context.Context, userID string) (bool, error)

	// Unblock removes the user and reports whether they had been blocked
	Unblock(ctx context.Context, userID string) (bool, error)

	List(ctx context.Context) ([]string, error)
}
