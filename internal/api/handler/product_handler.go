package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// ProductHandler handles product and category reads plus the public image
// endpoint.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Description string           `json:"description"`
	Category    categoryResponse `json:"category"`
	Image       string           `json:"image"`
}

type productListResponse struct {
	Products []productResponse `json:"products"`
}

type productDetailResponse struct {
	Product productResponse `json:"product"`
}

type categoryListResponse struct {
	Categories []categoryResponse `json:"categories"`
}

func toProductResponse(p *domain.Product) productResponse {
	description := p.Description
	if description == "" {
		description = "N/A"
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.ListPrice,
		Description: description,
		Category:    categoryResponse{ID: p.Category.ID, Name: p.Category.Name},
		Image:       fmt.Sprintf("/api/product/%d/image", p.ID),
	}
}

// List handles GET /api/product.
//
// @Summary      List products
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/product [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, productListResponse{Products: out})
}

// Get handles GET /api/product/:id.
//
// @Summary      Get a product by id
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productDetailResponse{Product: toProductResponse(product)})
}

// Categories handles GET /api/product/categories.
//
// @Summary      List product categories
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoryListResponse
// @Router       /api/product/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, categoryListResponse{Categories: out})
}

// Image handles GET /api/product/:id/image, the one public non-JSON
// endpoint: raw image bytes with a sniffed content type.
//
// @Summary      Get a product image by id
// @Tags         product
// @Produce      octet-stream
// @Param        id   path      int  true  "Product id"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /api/product/{id}/image [get]
func (h *ProductHandler) Image(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	data, contentType, err := h.service.Image(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, data)
}

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s.", name))
	}
	return id, nil
}
