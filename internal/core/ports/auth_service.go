package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

// Identity is the result of resolving a verified token payload to concrete
// user and partner records. A zero UserID means the payload matched no user.
type Identity struct {
	UserID    int
	PartnerID int
	TeamID    int
	Email     string
	Role      string
}

// AuthService issues bearer tokens after a credential check and answers
// whoami queries for an already-resolved identity.
type AuthService interface {
	Login(ctx context.Context, login, password string) (string, error)
	Whoami(ctx context.Context, ident Identity) (*domain.Partner, error)
}

// ValidatorRegistry resolves named validator configurations together with
// their effective secret, expiration, and identity-resolution strategy.
type ValidatorRegistry interface {
	GetByName(ctx context.Context, name string) (*domain.Validator, error)
	ResolveSecret(ctx context.Context, v *domain.Validator) (string, error)
	ResolveExpiration(ctx context.Context) (int, error)
	ResolveIdentity(ctx context.Context, v *domain.Validator, claims *token.Claims) (*Identity, error)
}
