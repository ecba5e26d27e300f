package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// ParamPartnerTeamScoping enables team-scoped partner listings when set to a
// truthy value ("1", "true", "True") in the parameter store.
const ParamPartnerTeamScoping = "partner_team_scoping"

// PartnerServiceImpl implements partner use cases over the repository.
type PartnerServiceImpl struct {
	repo   ports.PartnerRepository
	params ports.ParamStore
	logger zerolog.Logger
}

func NewPartnerService(repo ports.PartnerRepository, params ports.ParamStore, logger zerolog.Logger) *PartnerServiceImpl {
	return &PartnerServiceImpl{repo: repo, params: params, logger: logger}
}

// List returns all partners, restricted to the requester's sales team when
// team scoping is configured and the user belongs to one.
func (s *PartnerServiceImpl) List(ctx context.Context, ident ports.Identity) ([]*domain.Partner, error) {
	var filter ports.PartnerFilter
	if ident.TeamID > 0 {
		scoped, err := s.teamScopingEnabled(ctx)
		if err != nil {
			return nil, err
		}
		if scoped {
			filter.TeamID = ident.TeamID
		}
	}
	return s.repo.Search(ctx, filter)
}

func (s *PartnerServiceImpl) Get(ctx context.Context, id int) (*domain.Partner, error) {
	return s.repo.Browse(ctx, id)
}

// Create inserts a strict new partner record; presence of required fields is
// enforced by the transport layer.
func (s *PartnerServiceImpl) Create(ctx context.Context, input ports.CreatePartnerInput) (*domain.Partner, error) {
	created, err := s.repo.Create(ctx, &domain.Partner{
		Name:   input.Name,
		Email:  input.Email,
		Street: input.Address,
		Phone:  input.Phone,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("partner_id", created.ID).Str("email", created.Email).Msg("partner created")
	return created, nil
}

func (s *PartnerServiceImpl) Cities(ctx context.Context, countryID, stateID int) ([]string, error) {
	return s.repo.DistinctCities(ctx, countryID, stateID)
}

func (s *PartnerServiceImpl) teamScopingEnabled(ctx context.Context) (bool, error) {
	value, ok, err := s.params.GetParam(ctx, ParamPartnerTeamScoping)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true":
		return true, nil
	}
	return false, nil
}
