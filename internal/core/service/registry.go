package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

// Parameter-store keys consumed by the registry.
const (
	ParamJWTSecret     = "jwt_secret"
	ParamJWTExpiration = "jwt_expiration"
)

const defaultExpirationSeconds = 3600

// Registry resolves named validator configurations: which secret signs
// tokens, how long they live, and how a verified payload maps back to a user.
// It holds no state of its own; every resolution is a fresh read so secret
// rotation in the parameter store takes effect immediately.
type Registry struct {
	validators ports.ValidatorRepository
	params     ports.ParamStore
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewRegistry(validators ports.ValidatorRepository, params ports.ParamStore, users ports.UserRepository, logger zerolog.Logger) *Registry {
	return &Registry{validators: validators, params: params, users: users, logger: logger}
}

// GetByName looks up the validator configuration. Absence is a deployment
// defect surfaced as domain.ErrValidatorNotFound.
func (r *Registry) GetByName(ctx context.Context, name string) (*domain.Validator, error) {
	return r.validators.FindByName(ctx, name)
}

// ResolveSecret returns the effective signing secret for v. When the
// validator delegates to the parameter store, the secret is read at call
// time; an empty or absent secret is a configuration error either way.
func (r *Registry) ResolveSecret(ctx context.Context, v *domain.Validator) (string, error) {
	secret := v.SecretKey
	if v.SecretFromParams {
		value, ok, err := r.params.GetParam(ctx, ParamJWTSecret)
		if err != nil {
			return "", fmt.Errorf("resolve secret: %w", err)
		}
		if !ok {
			return "", fmt.Errorf("%w: %s parameter not set", domain.ErrConfiguration, ParamJWTSecret)
		}
		secret = value
	}
	if secret == "" {
		return "", fmt.Errorf("%w: empty signing secret", domain.ErrConfiguration)
	}
	return secret, nil
}

// ResolveExpiration returns the token lifetime in seconds from the parameter
// store, falling back to the default when the key is unset. A present but
// unparsable or non-positive value is reported, not silently defaulted, so
// misconfiguration cannot hide behind the fallback.
func (r *Registry) ResolveExpiration(ctx context.Context) (int, error) {
	value, ok, err := r.params.GetParam(ctx, ParamJWTExpiration)
	if err != nil {
		return 0, fmt.Errorf("resolve expiration: %w", err)
	}
	if !ok || value == "" {
		return defaultExpirationSeconds, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %q", domain.ErrConfiguration, ParamJWTExpiration, value)
	}
	if seconds <= 0 {
		// A zero or negative lifetime would issue tokens already expired.
		return 0, fmt.Errorf("%w: %s must be positive: %q", domain.ErrConfiguration, ParamJWTExpiration, value)
	}
	return seconds, nil
}

// ResolveIdentity maps a verified payload to concrete user and partner ids
// using the validator's strategy. With current_user the user is found by the
// email claim; a miss yields an absent identity (zero UserID) which callers
// treat as unauthenticated rather than as an internal failure.
func (r *Registry) ResolveIdentity(ctx context.Context, v *domain.Validator, claims *token.Claims) (*ports.Identity, error) {
	var user *domain.User
	var err error

	switch v.UserIDStrategy {
	case domain.StrategyCurrentUser:
		user, err = r.users.FindByEmail(ctx, claims.Email)
	default:
		user, err = r.users.Browse(ctx, claims.UserID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.logger.Debug().Str("email", claims.Email).Str("strategy", v.UserIDStrategy).Msg("payload resolved to no user")
			return &ports.Identity{Email: claims.Email, Role: claims.Role}, nil
		}
		return nil, err
	}

	return &ports.Identity{
		UserID:    user.ID,
		PartnerID: user.PartnerID,
		TeamID:    user.TeamID,
		Email:     user.Email,
		Role:      claims.Role,
	}, nil
}
