package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medcamphq/medcamp-api/internal/api/middleware"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
)

// getClaimsFromContext extracts the authenticated identity claims placed in
// the request context by the auth middleware.
func getClaimsFromContext(r *http.Request) (*auth.Claims, bool) {
	return middleware.GetClaims(r)
}

// getPathID extracts a document ID from the URL path parameters. IDs are
// 24-character hex strings; anything else is rejected before it reaches a
// store.
func getPathID(r *http.Request, paramName string) (string, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	if len(pathParam) != 24 || !isHex(pathParam) {
		return "", domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return pathParam, nil
}

// getPathEmail extracts and normalizes an email path parameter. Emails are
// compared case-insensitively throughout, so the lowered form is returned.
func getPathEmail(r *http.Request, paramName string) (string, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	if !strings.Contains(pathParam, "@") {
		return "", domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidEmail)
	}

	return strings.ToLower(pathParam), nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
