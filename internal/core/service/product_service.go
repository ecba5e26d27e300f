package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// ProductServiceImpl implements product read use cases over the repository.
type ProductServiceImpl struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo, logger: logger}
}

func (s *ProductServiceImpl) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Search(ctx)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.Browse(ctx, id)
}

func (s *ProductServiceImpl) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.Categories(ctx)
}

// Image decodes the product's base64 image field and sniffs its MIME type
// from content. A missing product and a product without an image are the
// same condition for callers: there is no image to serve.
func (s *ProductServiceImpl) Image(ctx context.Context, id int) ([]byte, string, error) {
	product, err := s.repo.Browse(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, "", domain.ErrProductImageNotFound
		}
		return nil, "", err
	}
	if product.Image == "" {
		return nil, "", domain.ErrProductImageNotFound
	}

	data, err := base64.StdEncoding.DecodeString(product.Image)
	if err != nil {
		return nil, "", fmt.Errorf("decode product %d image: %w", id, err)
	}
	return data, mimetype.Detect(data).String(), nil
}
