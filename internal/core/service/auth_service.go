package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

// AuthService checks credentials and issues bearer tokens through the named
// validator configuration.
type AuthService struct {
	users         ports.UserRepository
	partners      ports.PartnerRepository
	registry      ports.ValidatorRegistry
	validatorName string
	logger        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, partners ports.PartnerRepository, registry ports.ValidatorRegistry, validatorName string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:         users,
		partners:      partners,
		registry:      registry,
		validatorName: validatorName,
		logger:        logger,
	}
}

// Login verifies the login/password pair against the stored bcrypt hash and,
// on success, returns a signed token carrying {user_id, email, role} claims.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	validator, err := s.registry.GetByName(ctx, s.validatorName)
	if err != nil {
		return "", err
	}
	secret, err := s.registry.ResolveSecret(ctx, validator)
	if err != nil {
		return "", err
	}
	expiration, err := s.registry.ResolveExpiration(ctx)
	if err != nil {
		return "", err
	}

	signed, err := token.Encode(token.Claims{
		UserID: user.ID,
		Email:  login,
		Role:   user.Role,
	}, secret, expiration)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("login", login).Int("user_id", user.ID).Msg("token issued")
	return signed, nil
}

// Whoami returns the partner record attached to the resolved identity.
// An absent identity means the gate verified a token that maps to no user.
func (s *AuthService) Whoami(ctx context.Context, ident ports.Identity) (*domain.Partner, error) {
	if ident.UserID == 0 || ident.PartnerID == 0 {
		return nil, domain.ErrMissingCredential
	}
	return s.partners.Browse(ctx, ident.PartnerID)
}
