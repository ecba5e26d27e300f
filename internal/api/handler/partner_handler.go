package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// PartnerHandler handles partner listing, lookup and creation.
type PartnerHandler struct {
	service ports.PartnerService
}

func NewPartnerHandler(service ports.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: service}
}

type namedRefResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// partnerListItem is the full field set exposed on listings.
type partnerListItem struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	CNPJ      string           `json:"cnpj"`
	Street    string           `json:"street"`
	Street2   string           `json:"street2"`
	City      string           `json:"city"`
	State     namedRefResponse `json:"state"`
	Country   namedRefResponse `json:"country"`
	IsCompany bool             `json:"is_company"`
	Phone     string           `json:"phone"`
}

// partnerDetail is the reduced shape used by get-by-id and create echoes.
type partnerDetail struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type partnerListResponse struct {
	ResPartner []partnerListItem `json:"res_partner"`
}

type partnerDetailResponse struct {
	ResPartner partnerDetail `json:"res_partner"`
}

type citiesResponse struct {
	Cities []string `json:"cities"`
}

type createPartnerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func toPartnerListItem(p *domain.Partner) partnerListItem {
	return partnerListItem{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CNPJ:      p.VAT,
		Street:    p.Street,
		Street2:   p.Street2,
		City:      p.City,
		State:     namedRefResponse{ID: p.State.ID, Name: p.State.Name},
		Country:   namedRefResponse{ID: p.Country.ID, Name: p.Country.Name},
		IsCompany: p.IsCompany,
		Phone:     p.Phone,
	}
}

func toPartnerDetail(p *domain.Partner) partnerDetail {
	address := p.Street
	if address == "" {
		address = "N/A"
	}
	phone := p.Phone
	if phone == "" {
		phone = "N/A"
	}
	return partnerDetail{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Address: address,
		Phone:   phone,
	}
}

// List handles GET /api/res_partner.
//
// @Summary      List partners
// @Tags         res_partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  partnerListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/res_partner [get]
func (h *PartnerHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	partners, err := h.service.List(c.Request().Context(), ident)
	if err != nil {
		return err
	}

	out := make([]partnerListItem, 0, len(partners))
	for _, p := range partners {
		out = append(out, toPartnerListItem(p))
	}
	return c.JSON(http.StatusOK, partnerListResponse{ResPartner: out})
}

// Get handles GET /api/res_partner/:id.
//
// @Summary      Get a partner by id
// @Tags         res_partner
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Partner id"
// @Success      200  {object}  partnerDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/res_partner/{id} [get]
func (h *PartnerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	partner, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partnerDetailResponse{ResPartner: toPartnerDetail(partner)})
}

// Create handles POST /api/res_partner. Strict create: the body never
// carries an id and an existing record is never updated.
//
// @Summary      Create a partner
// @Tags         res_partner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPartnerRequest  true  "Partner fields"
// @Success      200   {object}  partnerDetailResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/res_partner [post]
func (h *PartnerHandler) Create(c echo.Context) error {
	var req createPartnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if req.Name == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing name or email.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreatePartnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partnerDetailResponse{ResPartner: toPartnerDetail(created)})
}

// Cities handles GET /api/res_partner/country/:country_id/state/:state_id/cities.
//
// @Summary      List distinct partner cities in a country/state
// @Tags         res_partner
// @Produce      json
// @Security     BearerAuth
// @Param        country_id  path      int  true  "Country id"
// @Param        state_id    path      int  true  "State id"
// @Success      200         {object}  citiesResponse
// @Router       /api/res_partner/country/{country_id}/state/{state_id}/cities [get]
func (h *PartnerHandler) Cities(c echo.Context) error {
	countryID, err := pathID(c, "country_id")
	if err != nil {
		return err
	}
	stateID, err := pathID(c, "state_id")
	if err != nil {
		return err
	}

	cities, err := h.service.Cities(c.Request().Context(), countryID, stateID)
	if err != nil {
		return err
	}
	if cities == nil {
		cities = []string{}
	}
	return c.JSON(http.StatusOK, citiesResponse{Cities: cities})
}
