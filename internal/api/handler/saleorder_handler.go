package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// SaleOrderHandler handles sale order listing, lookup, creation and the
// payment terms listing.
type SaleOrderHandler struct {
	service ports.SaleOrderService
}

func NewSaleOrderHandler(service ports.SaleOrderService) *SaleOrderHandler {
	return &SaleOrderHandler{service: service}
}

type saleOrderLineResponse struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

type saleOrderResponse struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name"`
	Date        string                  `json:"date"`
	PartnerID   int                     `json:"partner_id"`
	AmountTotal float64                 `json:"amount_total"`
	State       string                  `json:"state"`
	Lines       []saleOrderLineResponse `json:"lines"`
}

type saleOrderListResponse struct {
	SaleOrder []saleOrderResponse `json:"sale_order"`
}

type saleOrderDetailResponse struct {
	SaleOrder saleOrderResponse `json:"sale_order"`
}

type paymentTermResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Note string `json:"note"`
}

type paymentTermListResponse struct {
	PaymentTerms []paymentTermResponse `json:"payment_terms"`
}

type saleOrderLineRequest struct {
	ProductID int     `json:"product_id" validate:"required,gt=0"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price"`
}

type createSaleOrderRequest struct {
	Name        string                 `json:"name"`
	Date        string                 `json:"date"`
	PartnerID   int                    `json:"partner_id"`
	AmountTotal float64                `json:"amount_total"`
	Lines       []saleOrderLineRequest `json:"lines" validate:"omitempty,dive"`
}

func toSaleOrderResponse(o *domain.SaleOrder) saleOrderResponse {
	state := o.State
	if state == "" {
		state = "N/A"
	}
	lines := make([]saleOrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, saleOrderLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}
	return saleOrderResponse{
		ID:          o.ID,
		Name:        o.Name,
		Date:        o.Date,
		PartnerID:   o.PartnerID,
		AmountTotal: o.AmountTotal,
		State:       state,
		Lines:       lines,
	}
}

// List handles GET /api/sale_order.
//
// @Summary      List sale orders
// @Tags         sale_order
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  saleOrderListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/sale_order [get]
func (h *SaleOrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]saleOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toSaleOrderResponse(o))
	}
	return c.JSON(http.StatusOK, saleOrderListResponse{SaleOrder: out})
}

// Get handles GET /api/sale_order/:id.
//
// @Summary      Get a sale order by id
// @Tags         sale_order
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Sale order id"
// @Success      200  {object}  saleOrderDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sale_order/{id} [get]
func (h *SaleOrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saleOrderDetailResponse{SaleOrder: toSaleOrderResponse(order)})
}

// Create handles POST /api/sale_order.
//
// @Summary      Create a sale order with nested lines
// @Tags         sale_order
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleOrderRequest  true  "Sale order fields"
// @Success      200   {object}  saleOrderDetailResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/sale_order [post]
func (h *SaleOrderHandler) Create(c echo.Context) error {
	var req createSaleOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if msg := missingOrderFields(req); msg != "" {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]ports.SaleOrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, ports.SaleOrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateSaleOrderInput{
		Name:        req.Name,
		Date:        req.Date,
		PartnerID:   req.PartnerID,
		AmountTotal: req.AmountTotal,
		Lines:       lines,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saleOrderDetailResponse{SaleOrder: toSaleOrderResponse(created)})
}

// PaymentTerms handles GET /api/sale_order/payment_terms.
//
// @Summary      List payment terms
// @Tags         sale_order
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  paymentTermListResponse
// @Router       /api/sale_order/payment_terms [get]
func (h *SaleOrderHandler) PaymentTerms(c echo.Context) error {
	terms, err := h.service.PaymentTerms(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]paymentTermResponse, 0, len(terms))
	for _, term := range terms {
		note := stripHTML(term.Note)
		if note == "" {
			note = "N/A"
		}
		out = append(out, paymentTermResponse{ID: term.ID, Name: term.Name, Note: note})
	}
	return c.JSON(http.StatusOK, paymentTermListResponse{PaymentTerms: out})
}

// missingOrderFields reports the required fields absent from a create
// request, in the store's canonical order.
func missingOrderFields(req createSaleOrderRequest) string {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.PartnerID == 0 {
		missing = append(missing, "partner_id")
	}
	if len(req.Lines) == 0 {
		missing = append(missing, "lines")
	}
	if len(missing) == 0 {
		return ""
	}
	if len(missing) == 1 {
		return "Missing " + missing[0] + "."
	}
	last := missing[len(missing)-1]
	return "Missing " + strings.Join(missing[:len(missing)-1], ", ") + " or " + last + "."
}
