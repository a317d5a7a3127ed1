package host

import (
	"context"

	"github.com/google/uuid"

	"github.com/roach88/advkit/pkg/advancement"
)

// Server is the running server an advancement is registered with.
type Server interface {
	// LoadAdvancement registers doc under key. criteria lists the criterion
	// names in doc. Loading an existing key replaces it.
	LoadAdvancement(ctx context.Context, key advancement.Key, doc []byte, criteria []string) error

	// RemoveAdvancement unregisters key.
	RemoveAdvancement(ctx context.Context, key advancement.Key) error

	// Progress returns a player's progress on key.
	Progress(ctx context.Context, player uuid.UUID, key advancement.Key) (Progress, error)
}

// Progress is one player's progress on one advancement.
type Progress interface {
	Done() bool
	Remaining() []string
	Awarded() []string
	Award(ctx context.Context, criterion string) error
	Revoke(ctx context.Context, criterion string) error
}
