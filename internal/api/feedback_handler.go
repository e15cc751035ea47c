package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// FeedbackHandler handles camp feedback HTTP requests.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
	validator     *validator.Validate
}

// NewFeedbackHandler creates a new FeedbackHandler with the given
// dependencies.
func NewFeedbackHandler(feedbackStore store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		validator:     validator.New(),
	}
}

// CreateFeedback handles POST /feedback requests.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req CreateFeedbackRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	campID, err := bson.ObjectIDFromHex(req.CampID)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("campId", "has invalid format", domain.ErrInvalidID), "")
		return
	}

	feedback, err := domain.NewFeedback(
		campID,
		strings.ToLower(req.ParticipantEmail),
		req.ParticipantName,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid feedback data: "+err.Error())
		return
	}

	if err := h.feedbackStore.Create(r.Context(), feedback); err != nil {
		HandleAPIError(w, r, err, "Failed to create feedback")
		return
	}

	insertedID := feedback.ID.Hex()
	shared.RespondWithJSON(w, http.StatusCreated, InsertResult{
		Acknowledged: true,
		InsertedID:   &insertedID,
	})
}

// ListCampFeedback handles GET /feedback/camp/{id} requests.
func (h *FeedbackHandler) ListCampFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	feedback, err := h.feedbackStore.ListByCamp(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list feedback")
		return
	}

	if feedback == nil {
		feedback = []*domain.Feedback{}
	}
	shared.RespondWithJSON(w, http.StatusOK, feedback)
}
