package domain

import "errors"

// Authentication failures, all rendered as 401 by the API layer.
var ErrInvalidCredentials = errors.New("invalid login or password")
var ErrMissingCredential = errors.New("missing bearer credential")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")

// Lookup misses, rendered as 404.
var ErrUserNotFound = errors.New("user not found")
var ErrPartnerNotFound = errors.New("partner not found")
var ErrProductNotFound = errors.New("product not found")
var ErrProductImageNotFound = errors.New("product image not found")
var ErrSaleOrderNotFound = errors.New("sale order not found")

// Server-side misconfiguration, rendered as 500. A missing validator is a
// deployment defect, never a client error.
var ErrValidatorNotFound = errors.New("validator not found")
var ErrConfiguration = errors.New("configuration error")
