package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
	}
}

// CreateUser handles POST /users requests. The endpoint is idempotent on
// email: the first sign-in creates the record, every later sign-in answers
// 200 with a null insertedId.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(strings.ToLower(req.Email), req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}
	user.PhotoURL = req.PhotoURL

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithJSON(w, http.StatusOK, InsertResultWithMessage{
				Message:    "User already exist",
				InsertedID: nil,
			})
			return
		}
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	insertedID := user.ID.Hex()
	shared.RespondWithJSON(w, http.StatusOK, InsertResultWithMessage{
		InsertedID: &insertedID,
	})
}

// IsOrganizer handles GET /organizer/{email} requests.
func (h *UserHandler) IsOrganizer(w http.ResponseWriter, r *http.Request) {
	email, err := getPathEmail(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// An unknown email is simply not an organizer.
			shared.RespondWithJSON(w, http.StatusOK, OrganizerResponse{Organizer: false})
			return
		}
		HandleAPIError(w, r, err, "Failed to look up user")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, OrganizerResponse{Organizer: user.IsOrganizer()})
}

// UpdateUser handles PATCH /users/{email} requests for profile fields.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	email, err := getPathEmail(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch domain.UserPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if patch.IsEmpty() {
		HandleAPIError(w, r, store.ErrEmptyPatch, "")
		return
	}

	if err := patch.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if _, err := h.userStore.Update(r.Context(), email, patch); err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	})
}
