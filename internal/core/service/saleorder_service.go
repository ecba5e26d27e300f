package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// SaleOrderServiceImpl implements sale order use cases over the repositories.
type SaleOrderServiceImpl struct {
	orders   ports.SaleOrderRepository
	products ports.ProductRepository
	terms    ports.PaymentTermRepository
	logger   zerolog.Logger
}

func NewSaleOrderService(orders ports.SaleOrderRepository, products ports.ProductRepository, terms ports.PaymentTermRepository, logger zerolog.Logger) *SaleOrderServiceImpl {
	return &SaleOrderServiceImpl{orders: orders, products: products, terms: terms, logger: logger}
}

func (s *SaleOrderServiceImpl) List(ctx context.Context) ([]*domain.SaleOrder, error) {
	return s.orders.Search(ctx)
}

func (s *SaleOrderServiceImpl) Get(ctx context.Context, id int) (*domain.SaleOrder, error) {
	return s.orders.Browse(ctx, id)
}

// Create builds the order with its nested lines, resolving each line's
// product name from the product repository. When the caller sends no
// amount_total it is computed as the sum of quantity*price over the lines.
func (s *SaleOrderServiceImpl) Create(ctx context.Context, input ports.CreateSaleOrderInput) (*domain.SaleOrder, error) {
	lines := make([]domain.SaleOrderLine, 0, len(input.Lines))
	total := 0.0
	for i, line := range input.Lines {
		productName := ""
		if product, err := s.products.Browse(ctx, line.ProductID); err == nil {
			productName = product.Name
		}
		lines = append(lines, domain.SaleOrderLine{
			ID:          i + 1,
			ProductID:   line.ProductID,
			ProductName: productName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
		total += line.Quantity * line.Price
	}

	amountTotal := input.AmountTotal
	if amountTotal == 0 {
		amountTotal = total
	}

	created, err := s.orders.Create(ctx, &domain.SaleOrder{
		Name:        input.Name,
		Date:        input.Date,
		PartnerID:   input.PartnerID,
		AmountTotal: amountTotal,
		State:       "draft",
		Lines:       lines,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("sale_order_id", created.ID).Int("partner_id", created.PartnerID).Int("lines", len(created.Lines)).Msg("sale order created")
	return created, nil
}

func (s *SaleOrderServiceImpl) PaymentTerms(ctx context.Context) ([]*domain.PaymentTerm, error) {
	return s.terms.Search(ctx)
}
