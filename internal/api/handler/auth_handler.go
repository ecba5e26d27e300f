package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/popsolutions/odoo-api-server/internal/api/metrics"
	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

// AuthHandler handles login and whoami.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type whoamiResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   int    `json:"uid"`
}

// Login authenticates a login/password pair and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth_jwt [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if req.Login == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing login or password.")
	}

	signed, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: signed})
}

// Whoami returns the partner behind the verified token.
//
// @Summary      Who am I
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  whoamiResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth_jwt/whoami [get]
func (h *AuthHandler) Whoami(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated.")
	}

	partner, err := h.authService.Whoami(c.Request().Context(), ident)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) || errors.Is(err, domain.ErrPartnerNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated.")
		}
		return err
	}

	return c.JSON(http.StatusOK, whoamiResponse{
		Name:  partner.Name,
		Email: partner.Email,
		UID:   ident.UserID,
	})
}
