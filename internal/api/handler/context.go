package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/api/middleware"
	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a zero user id means the gate never
// ran or the token resolved to no user.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(int)
	if userID == 0 {
		return ports.Identity{}, domain.ErrMissingCredential
	}

	partnerID, _ := c.Get(middleware.CtxPartnerID).(int)
	teamID, _ := c.Get(middleware.CtxTeamID).(int)
	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)

	return ports.Identity{
		UserID:    userID,
		PartnerID: partnerID,
		TeamID:    teamID,
		Email:     email,
		Role:      role,
	}, nil
}
