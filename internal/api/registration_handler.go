package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// RegistrationHandler handles camp registration HTTP requests.
type RegistrationHandler struct {
	registrationStore store.RegistrationStore
	campStore         store.CampStore
	validator         *validator.Validate
}

// NewRegistrationHandler creates a new RegistrationHandler with the given
// dependencies.
func NewRegistrationHandler(
	registrationStore store.RegistrationStore,
	campStore store.CampStore,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationStore: registrationStore,
		campStore:         campStore,
		validator:         validator.New(),
	}
}

// CreateRegistration handles POST /registrations requests. The camp name
// and fees are snapshotted from the stored camp, so a stale or tampered
// client cannot register at the wrong price.
func (h *RegistrationHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	camp, err := h.campStore.GetByID(r.Context(), req.CampID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load camp for registration")
		return
	}

	reg, err := domain.NewRegistration(camp, strings.ToLower(req.ParticipantEmail), req.ParticipantName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid registration data: "+err.Error())
		return
	}

	if err := h.registrationStore.Create(r.Context(), reg); err != nil {
		HandleAPIError(w, r, err, "Failed to create registration")
		return
	}

	insertedID := reg.ID.Hex()
	shared.RespondWithJSON(w, http.StatusCreated, InsertResult{
		Acknowledged: true,
		InsertedID:   &insertedID,
	})
}

// ListRegistrations handles GET /registrations requests.
func (h *RegistrationHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrationStore.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list registrations")
		return
	}

	if regs == nil {
		regs = []*domain.Registration{}
	}
	shared.RespondWithJSON(w, http.StatusOK, regs)
}

// ListParticipantRegistrations handles GET /registrations/{email} requests.
func (h *RegistrationHandler) ListParticipantRegistrations(w http.ResponseWriter, r *http.Request) {
	email, err := getPathEmail(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	regs, err := h.registrationStore.ListByParticipant(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list registrations")
		return
	}

	if regs == nil {
		regs = []*domain.Registration{}
	}
	shared.RespondWithJSON(w, http.StatusOK, regs)
}

// GetRegistration handles GET /registration/{id} requests.
func (h *RegistrationHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reg, err := h.registrationStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get registration")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, reg)
}

// UpdateRegistration handles PATCH /registration/{id} requests, used by
// organizers to confirm a registration and by the payment flow to flip the
// payment status.
func (h *RegistrationHandler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch domain.RegistrationPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if patch.IsEmpty() {
		HandleAPIError(w, r, store.ErrEmptyPatch, "")
		return
	}

	if err := patch.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid registration data: "+err.Error())
		return
	}

	if _, err := h.registrationStore.Update(r.Context(), id, patch); err != nil {
		HandleAPIError(w, r, err, "Failed to update registration")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	})
}

// DeleteRegistration handles DELETE /registration/{id} requests,
// cancelling the registration.
func (h *RegistrationHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.registrationStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete registration")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, DeleteResult{
		Acknowledged: true,
		DeletedCount: 1,
	})
}
