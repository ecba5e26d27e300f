package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// ProductRepository defines read operations over products and categories.
type ProductRepository interface {
	Search(ctx context.Context) ([]*domain.Product, error)
	Browse(ctx context.Context, id int) (*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
}
