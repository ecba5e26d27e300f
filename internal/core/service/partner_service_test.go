package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

func TestPartnerService_List_TeamScoping(t *testing.T) {
	repo := newStubPartnerRepo(
		&domain.Partner{ID: 1, Name: "Acme", TeamID: 2},
		&domain.Partner{ID: 2, Name: "Globex", TeamID: 5},
	)

	tests := []struct {
		name   string
		params map[string]string
		ident  ports.Identity
		want   int
	}{
		{name: "scoping disabled returns all", params: map[string]string{}, ident: ports.Identity{TeamID: 2}, want: 2},
		{name: "scoping enabled filters by team", params: map[string]string{ParamPartnerTeamScoping: "True"}, ident: ports.Identity{TeamID: 2}, want: 1},
		{name: "scoping enabled but user has no team", params: map[string]string{ParamPartnerTeamScoping: "1"}, ident: ports.Identity{}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPartnerService(repo, &stubParamStore{params: tt.params}, zerolog.Nop())
			partners, err := svc.List(context.Background(), tt.ident)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(partners) != tt.want {
				t.Fatalf("expected %d partners, got %d", tt.want, len(partners))
			}
		})
	}
}

func TestPartnerService_Create_AssignsID(t *testing.T) {
	repo := newStubPartnerRepo()
	svc := NewPartnerService(repo, &stubParamStore{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreatePartnerInput{
		Name:    "Acme",
		Email:   "a@b.com",
		Address: "Main St 1",
		Phone:   "555-0101",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if created.Name != "Acme" || created.Email != "a@b.com" {
		t.Fatalf("unexpected record: %+v", created)
	}

	// A re-read returns the same fields.
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Acme" || got.Email != "a@b.com" || got.Street != "Main St 1" {
		t.Fatalf("re-read mismatch: %+v", got)
	}
}

func TestPartnerService_Cities(t *testing.T) {
	repo := newStubPartnerRepo(
		&domain.Partner{ID: 1, City: "Recife", Country: domain.NamedRef{ID: 31}, State: domain.NamedRef{ID: 8}},
		&domain.Partner{ID: 2, City: "Recife", Country: domain.NamedRef{ID: 31}, State: domain.NamedRef{ID: 8}},
		&domain.Partner{ID: 3, City: "Olinda", Country: domain.NamedRef{ID: 31}, State: domain.NamedRef{ID: 8}},
		&domain.Partner{ID: 4, City: "Lisboa", Country: domain.NamedRef{ID: 44}, State: domain.NamedRef{ID: 2}},
	)
	svc := NewPartnerService(repo, &stubParamStore{}, zerolog.Nop())

	cities, err := svc.Cities(context.Background(), 31, 8)
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("expected 2 distinct cities, got %v", cities)
	}
}
