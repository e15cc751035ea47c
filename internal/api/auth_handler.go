package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
)

// AuthHandler handles token issuance. Sign-in itself happens upstream with
// the identity provider; this endpoint mints the session token the rest of
// the API consumes.
type AuthHandler struct {
	jwtService auth.JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// IssueToken handles the POST /jwt endpoint.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.Identity{
		Email: strings.ToLower(req.Email),
		Name:  req.Name,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, TokenResponse{Token: token})
}
