package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
	"github.com/popsolutions/odoo-api-server/internal/core/token"
)

type stubPartnerRepo struct {
	byID    map[int]*domain.Partner
	created []*domain.Partner
	nextID  int
}

func newStubPartnerRepo(partners ...*domain.Partner) *stubPartnerRepo {
	r := &stubPartnerRepo{byID: make(map[int]*domain.Partner), nextID: 100}
	for _, p := range partners {
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubPartnerRepo) Search(_ context.Context, filter ports.PartnerFilter) ([]*domain.Partner, error) {
	var out []*domain.Partner
	for _, p := range r.byID {
		if filter.TeamID != 0 && p.TeamID != filter.TeamID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPartnerRepo) Browse(_ context.Context, id int) (*domain.Partner, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPartnerNotFound
	}
	return p, nil
}

func (r *stubPartnerRepo) Create(_ context.Context, p *domain.Partner) (*domain.Partner, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	r.created = append(r.created, &clone)
	return &clone, nil
}

func (r *stubPartnerRepo) DistinctCities(_ context.Context, countryID, stateID int) ([]string, error) {
	seen := make(map[string]bool)
	var cities []string
	for _, p := range r.byID {
		if p.Country.ID != countryID || p.State.ID != stateID || p.City == "" || seen[p.City] {
			continue
		}
		seen[p.City] = true
		cities = append(cities, p.City)
	}
	return cities, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func newTestAuthService(t *testing.T, users *stubUserRepo, partners *stubPartnerRepo) *AuthService {
	t.Helper()
	registry := newTestRegistry(
		map[string]*domain.Validator{
			"api": {Name: "api", SecretKey: "test-secret", UserIDStrategy: domain.StrategyCurrentUser},
		},
		map[string]string{},
		users,
	)
	return NewAuthService(users, partners, registry, "api", zerolog.Nop())
}

func TestAuthService_Login_TokenCarriesLoginEmail(t *testing.T) {
	users := newStubUserRepo(&domain.User{
		ID: 7, Login: "alice@example.com", Email: "alice@example.com",
		PasswordHash: mustHash(t, "secret"), Role: "admin", PartnerID: 3,
	})
	svc := newTestAuthService(t, users, newStubPartnerRepo())

	signed, err := svc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := token.Decode(signed, "test-secret")
	if err != nil {
		t.Fatalf("decode issued token: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim to match login, got %q", claims.Email)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user_id 7, got %d", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role claim, got %q", claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo(&domain.User{
		ID: 7, Login: "alice@example.com", Email: "alice@example.com",
		PasswordHash: mustHash(t, "secret"),
	})
	svc := newTestAuthService(t, users, newStubPartnerRepo())

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), newStubPartnerRepo())

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), newStubPartnerRepo())

	_, err := svc.Login(context.Background(), "", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Whoami(t *testing.T) {
	partners := newStubPartnerRepo(&domain.Partner{ID: 3, Name: "Alice", Email: "alice@example.com"})
	svc := newTestAuthService(t, newStubUserRepo(), partners)

	partner, err := svc.Whoami(context.Background(), ports.Identity{UserID: 7, PartnerID: 3})
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if partner.Name != "Alice" {
		t.Fatalf("unexpected partner: %+v", partner)
	}
}

func TestAuthService_Whoami_AbsentIdentity(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), newStubPartnerRepo())

	_, err := svc.Whoami(context.Background(), ports.Identity{})
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}
