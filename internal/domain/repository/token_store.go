package repository

import (
	"context"
	"time"
)

// TokenStore tracks issued token ids so logout can revoke them before expiry.
// A ttl of zero keeps the entry until it is explicitly deleted.
type TokenStore interface {
	Save(ctx context.Context, username, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, username, tokenID string) (bool, error)
	Delete(ctx context.Context, username, tokenID string) error
}
