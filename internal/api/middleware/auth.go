package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/api/metrics"
	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

// Context keys set by Auth on verified requests.
const (
	CtxUserID    = "user_id"
	CtxPartnerID = "partner_id"
	CtxEmail     = "email"
	CtxTeamID    = "team_id"
	CtxRole      = "role"
)

// IdentityResolver is the subset of the validator registry the gate needs.
type IdentityResolver interface {
	GetByName(ctx context.Context, name string) (*domain.Validator, error)
	ResolveSecret(ctx context.Context, v *domain.Validator) (string, error)
	ResolveIdentity(ctx context.Context, v *domain.Validator, claims *token.Claims) (*ports.Identity, error)
}

// Auth is the authentication gate: it extracts the bearer token, verifies it
// against the named validator configuration, resolves the identity and
// injects it into the request context. OPTIONS preflights pass through
// unconditionally so CORS handling stays with the CORS middleware.
func Auth(resolver IdentityResolver, validatorName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}
			ctx := c.Request().Context()

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingCredential
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingCredential
			}

			validator, err := resolver.GetByName(ctx, validatorName)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("config_error").Inc()
				return err
			}
			secret, err := resolver.ResolveSecret(ctx, validator)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("config_error").Inc()
				return err
			}

			claims, err := token.Decode(parts[1], secret)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				case errors.Is(err, domain.ErrTokenInvalid):
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("error").Inc()
				}
				return err
			}

			ident, err := resolver.ResolveIdentity(ctx, validator, claims)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("error").Inc()
				return err
			}
			if ident.UserID == 0 {
				// Structurally valid token whose payload matches no user.
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrTokenInvalid
			}

			c.Set(CtxUserID, ident.UserID)
			c.Set(CtxPartnerID, ident.PartnerID)
			c.Set(CtxEmail, ident.Email)
			c.Set(CtxTeamID, ident.TeamID)
			c.Set(CtxRole, ident.Role)

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			return next(c)
		}
	}
}
