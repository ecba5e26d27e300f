package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// ProductService defines read use-cases over products and categories.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
	// Image returns the decoded image bytes and sniffed MIME type for the
	// product, or domain.ErrProductImageNotFound when the product does not
	// exist or carries no image.
	Image(ctx context.Context, id int) ([]byte, string, error)
}
