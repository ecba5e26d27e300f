package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to one consistent set of HTTP statuses
//     (auth → 401, not-found → 404, misconfiguration → 500).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.) and the
	// handlers' explicit validation errors.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized, "Missing or malformed bearer token."
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired."
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid token."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid login or password."
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found."
	case errors.Is(err, domain.ErrProductImageNotFound):
		return http.StatusNotFound, "Product image not found."
	case errors.Is(err, domain.ErrPartnerNotFound):
		return http.StatusNotFound, "Partner not found."
	case errors.Is(err, domain.ErrSaleOrderNotFound):
		return http.StatusNotFound, "Sale order not found."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found."
	case errors.Is(err, domain.ErrValidatorNotFound), errors.Is(err, domain.ErrConfiguration):
		// Misconfiguration is a server fault, never a client error. The
		// real cause goes to the log only.
		log.Error().Err(err).Str("path", c.Path()).Msg("configuration error")
		return http.StatusInternalServerError, "Server configuration error."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error."
}
