package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

type stubResolver struct {
	validator *domain.Validator
	secret    string
	identity  *ports.Identity
	nameErr   error
	secretErr error
}

func (s *stubResolver) GetByName(_ context.Context, name string) (*domain.Validator, error) {
	if s.nameErr != nil {
		return nil, s.nameErr
	}
	return s.validator, nil
}

func (s *stubResolver) ResolveSecret(_ context.Context, _ *domain.Validator) (string, error) {
	if s.secretErr != nil {
		return "", s.secretErr
	}
	return s.secret, nil
}

func (s *stubResolver) ResolveIdentity(_ context.Context, _ *domain.Validator, claims *token.Claims) (*ports.Identity, error) {
	if s.identity != nil {
		return s.identity, nil
	}
	return &ports.Identity{}, nil
}

func newResolver() *stubResolver {
	return &stubResolver{
		validator: &domain.Validator{Name: "api", SecretKey: "secret", UserIDStrategy: domain.StrategyCurrentUser},
		secret:    "secret",
		identity:  &ports.Identity{UserID: 7, PartnerID: 3, TeamID: 1, Email: "alice@example.com", Role: "admin"},
	}
}

func signToken(t *testing.T, secret string, expiration int) string {
	t.Helper()
	signed, err := token.Encode(token.Claims{UserID: 7, Email: "alice@example.com", Role: "admin"}, secret, expiration)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "secret", 3600))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != 7 {
			t.Fatalf("user_id not set: %v", c.Get(CtxUserID))
		}
		if c.Get(CtxPartnerID) != 3 {
			t.Fatalf("partner_id not set: %v", c.Get(CtxPartnerID))
		}
		if c.Get(CtxEmail) != "alice@example.com" {
			t.Fatalf("email not set: %v", c.Get(CtxEmail))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "secret", -10))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "other-secret", 3600))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuth_UnresolvedIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "secret", 3600))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolver := newResolver()
	resolver.identity = &ports.Identity{} // token matches no user
	handler := Auth(resolver, "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuth_ConfigurationError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "secret", 3600))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolver := newResolver()
	resolver.secretErr = domain.ErrConfiguration
	handler := Auth(resolver, "api")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAuth_OptionsBypassesGate(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(newResolver(), "api")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("preflight should bypass the gate")
	}
}
