package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// CampHandler handles camp catalog HTTP requests.
type CampHandler struct {
	campStore store.CampStore
	validator *validator.Validate
}

// NewCampHandler creates a new CampHandler with the given dependencies.
func NewCampHandler(campStore store.CampStore) *CampHandler {
	return &CampHandler{
		campStore: campStore,
		validator: validator.New(),
	}
}

// ListCamps handles GET /camps requests.
func (h *CampHandler) ListCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.campStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list camps")
		return
	}

	if camps == nil {
		camps = []*domain.Camp{}
	}
	shared.RespondWithJSON(w, http.StatusOK, camps)
}

// GetCamp handles GET /camp/details/{id} requests.
func (h *CampHandler) GetCamp(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	camp, err := h.campStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get camp")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, camp)
}

// CreateCamp handles POST /camps requests. Organizer-only.
func (h *CampHandler) CreateCamp(w http.ResponseWriter, r *http.Request) {
	var req CreateCampRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	camp, err := domain.NewCamp(
		req.CampName,
		req.Description,
		req.Fees,
		req.DateTime,
		req.Location,
		req.HealthcareProfessional,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid camp data: "+err.Error())
		return
	}

	if err := h.campStore.Create(r.Context(), camp); err != nil {
		HandleAPIError(w, r, err, "Failed to create camp")
		return
	}

	insertedID := camp.ID.Hex()
	shared.RespondWithJSON(w, http.StatusCreated, InsertResult{
		Acknowledged: true,
		InsertedID:   &insertedID,
	})
}

// UpdateCamp handles PATCH /camp/{id} requests. Organizer-only.
func (h *CampHandler) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch domain.CampPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if patch.IsEmpty() {
		HandleAPIError(w, r, store.ErrEmptyPatch, "")
		return
	}

	if err := patch.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid camp data: "+err.Error())
		return
	}

	if _, err := h.campStore.Update(r.Context(), id, patch); err != nil {
		HandleAPIError(w, r, err, "Failed to update camp")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	})
}

// DeleteCamp handles DELETE /camp/{id} requests. Organizer-only.
func (h *CampHandler) DeleteCamp(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.campStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete camp")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, DeleteResult{
		Acknowledged: true,
		DeletedCount: 1,
	})
}

// IncrementParticipantCount handles PATCH /registered-camp/{id} requests.
// The body is ignored: the count moves by exactly one, atomically at the
// store, so concurrent registrations cannot overwrite each other.
func (h *CampHandler) IncrementParticipantCount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.campStore.IncrementParticipantCount(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to update participant count")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	})
}
