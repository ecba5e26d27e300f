package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// SaleOrderLineInput is one requested order line.
type SaleOrderLineInput struct {
	ProductID int
	Quantity  float64
	Price     float64
}

// CreateSaleOrderInput carries the accepted fields for a new sale order.
// AmountTotal may be zero, in which case it is computed from the lines.
type CreateSaleOrderInput struct {
	Name        string
	Date        string
	PartnerID   int
	AmountTotal float64
	Lines       []SaleOrderLineInput
}

// SaleOrderService defines use-case operations over sale orders and their
// payment terms.
type SaleOrderService interface {
	List(ctx context.Context) ([]*domain.SaleOrder, error)
	Get(ctx context.Context, id int) (*domain.SaleOrder, error)
	Create(ctx context.Context, input CreateSaleOrderInput) (*domain.SaleOrder, error)
	PaymentTerms(ctx context.Context) ([]*domain.PaymentTerm, error)
}
