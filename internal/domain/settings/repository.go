package settings

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
)

// Repository defines the persistence interface for settings
type Repository interface {
	shared.Repository[Setting]

	// FindByKey returns the setting stored under key, or
	// shared.ErrNotFound when the key has never been written
	FindByKey(ctx context.Context, key string) (*Setting, error)
}
