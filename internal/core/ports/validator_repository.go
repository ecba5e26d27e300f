package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// ValidatorRepository resolves named validator configurations.
type ValidatorRepository interface {
	// FindByName returns domain.ErrValidatorNotFound when no configuration
	// with that name exists.
	FindByName(ctx context.Context, name string) (*domain.Validator, error)
}

// ParamStore is a key-value store for runtime settings and secrets, the
// equivalent of ir.config_parameter. Implementations may cache reads, but a
// write to the underlying store must become visible within the cache TTL.
type ParamStore interface {
	// GetParam returns the value and whether the key was present at all.
	GetParam(ctx context.Context, key string) (string, bool, error)
}
