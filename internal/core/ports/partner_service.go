package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// CreatePartnerInput carries the accepted fields for a new partner record.
type CreatePartnerInput struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// PartnerService defines use-case operations over partner records.
type PartnerService interface {
	// List returns partners visible to ident. When team scoping is enabled
	// via the parameter store and the user belongs to a team, the listing is
	// restricted to that team.
	List(ctx context.Context, ident Identity) ([]*domain.Partner, error)
	Get(ctx context.Context, id int) (*domain.Partner, error)
	Create(ctx context.Context, input CreatePartnerInput) (*domain.Partner, error)
	Cities(ctx context.Context, countryID, stateID int) ([]string, error)
}
