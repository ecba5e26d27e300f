package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

type stubPartnerService struct {
	partners []*domain.Partner
	cities   []string
	created  *domain.Partner
	err      error

	lastInput ports.CreatePartnerInput
}

func (s *stubPartnerService) List(_ context.Context, _ ports.Identity) ([]*domain.Partner, error) {
	return s.partners, s.err
}

func (s *stubPartnerService) Get(_ context.Context, id int) (*domain.Partner, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPartnerNotFound
}

func (s *stubPartnerService) Create(_ context.Context, input ports.CreatePartnerInput) (*domain.Partner, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubPartnerService) Cities(_ context.Context, _, _ int) ([]string, error) {
	return s.cities, s.err
}

func TestPartnerList(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/res_partner", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setIdentity(c, ports.Identity{UserID: 7, TeamID: 1})

	svc := &stubPartnerService{partners: []*domain.Partner{
		{
			ID: 1, Name: "Acme", Email: "sales@acme.com", VAT: "12.345.678/0001-90",
			Street: "Rua A, 10", City: "Campinas",
			State:   domain.NamedRef{ID: 26, Name: "São Paulo"},
			Country: domain.NamedRef{ID: 31, Name: "Brazil"},
			IsCompany: true, Phone: "+55 19 1234-5678",
		},
	}}

	if err := NewPartnerHandler(svc).List(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	var resp partnerListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.ResPartner) != 1 {
		t.Fatalf("got %d partners, want 1", len(resp.ResPartner))
	}
	got := resp.ResPartner[0]
	if got.CNPJ != "12.345.678/0001-90" {
		t.Fatalf("cnpj = %q", got.CNPJ)
	}
	if got.State.Name != "São Paulo" || got.Country.ID != 31 {
		t.Fatalf("unexpected refs: %+v", got)
	}
	if !got.IsCompany {
		t.Fatalf("is_company lost in mapping")
	}
}

func TestPartnerList_NoIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/res_partner", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPartnerHandler(&stubPartnerService{}).List(c)
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestPartnerGet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	svc := &stubPartnerService{partners: []*domain.Partner{{ID: 5, Name: "Bob", Email: "bob@example.com"}}}
	if err := NewPartnerHandler(svc).Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}

	var resp partnerDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ResPartner.ID != 5 || resp.ResPartner.Name != "Bob" {
		t.Fatalf("unexpected detail: %+v", resp.ResPartner)
	}
	// empty street and phone fall back to N/A
	if resp.ResPartner.Address != "N/A" || resp.ResPartner.Phone != "N/A" {
		t.Fatalf("expected N/A fallbacks, got %+v", resp.ResPartner)
	}
}

func TestPartnerGet_NotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := NewPartnerHandler(&stubPartnerService{}).Get(c)
	if !errors.Is(err, domain.ErrPartnerNotFound) {
		t.Fatalf("expected ErrPartnerNotFound, got %v", err)
	}
}

func TestPartnerGet_InvalidID(t *testing.T) {
	e := echo.New()
	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := NewPartnerHandler(&stubPartnerService{}).Get(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400 HTTPError, got %v", raw, err)
		}
	}
}

func TestPartnerCreate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newJSONContext(e, http.MethodPost, "/api/res_partner",
		`{"name":"Carol","email":"carol@example.com","address":"Rua B, 20","phone":"555-0101"}`)

	svc := &stubPartnerService{created: &domain.Partner{
		ID: 42, Name: "Carol", Email: "carol@example.com", Street: "Rua B, 20", Phone: "555-0101",
	}}
	if err := NewPartnerHandler(svc).Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastInput.Name != "Carol" || svc.lastInput.Address != "Rua B, 20" {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}

	var resp partnerDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ResPartner.ID != 42 || resp.ResPartner.Address != "Rua B, 20" {
		t.Fatalf("unexpected echo: %+v", resp.ResPartner)
	}
}

func TestPartnerCreate_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	for _, body := range []string{`{}`, `{"name":"Carol"}`, `{"email":"carol@example.com"}`} {
		c, _ := newJSONContext(e, http.MethodPost, "/api/res_partner", body)
		err := NewPartnerHandler(&stubPartnerService{}).Create(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("body %s: expected HTTPError, got %v", body, err)
		}
		if he.Code != http.StatusBadRequest || he.Message != "Missing name or email." {
			t.Fatalf("body %s: got %d %v", body, he.Code, he.Message)
		}
	}
}

func TestPartnerCreate_BadEmail(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	c, _ := newJSONContext(e, http.MethodPost, "/api/res_partner", `{"name":"Carol","email":"not-an-email"}`)

	err := NewPartnerHandler(&stubPartnerService{}).Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPartnerCities(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("country_id", "state_id")
	c.SetParamValues("31", "26")

	svc := &stubPartnerService{cities: []string{"Campinas", "Santos"}}
	if err := NewPartnerHandler(svc).Cities(c); err != nil {
		t.Fatalf("cities: %v", err)
	}

	var resp citiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Cities) != 2 || resp.Cities[0] != "Campinas" {
		t.Fatalf("unexpected cities: %v", resp.Cities)
	}
}

func TestPartnerCities_Empty(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("country_id", "state_id")
	c.SetParamValues("31", "26")

	if err := NewPartnerHandler(&stubPartnerService{}).Cities(c); err != nil {
		t.Fatalf("cities: %v", err)
	}
	// nil slice must serialize as an empty array, not null
	if got := rec.Body.String(); got != "{\"cities\":[]}\n" {
		t.Fatalf("body = %q", got)
	}
}
