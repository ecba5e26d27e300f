package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// SaleOrderRepository defines persistence operations over sale orders.
type SaleOrderRepository interface {
	Search(ctx context.Context) ([]*domain.SaleOrder, error)
	Browse(ctx context.Context, id int) (*domain.SaleOrder, error)
	Create(ctx context.Context, o *domain.SaleOrder) (*domain.SaleOrder, error)
}

// PaymentTermRepository defines read operations over payment terms.
type PaymentTermRepository interface {
	Search(ctx context.Context) ([]*domain.PaymentTerm, error)
}
