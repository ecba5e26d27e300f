package ports

import (
	"context"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// PartnerFilter narrows a partner search. Zero values mean "no filter".
type PartnerFilter struct {
	// TeamID scopes the listing to one sales team when team scoping is
	// enabled for the requesting user.
	TeamID int
}

// PartnerRepository defines persistence operations over contact records.
type PartnerRepository interface {
	Search(ctx context.Context, filter PartnerFilter) ([]*domain.Partner, error)
	Browse(ctx context.Context, id int) (*domain.Partner, error)
	Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	// DistinctCities returns the distinct city names of partners located in
	// the given country and state.
	DistinctCities(ctx context.Context, countryID, stateID int) ([]string, error)
}
