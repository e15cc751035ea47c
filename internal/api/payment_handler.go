package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/platform/logger"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// PaymentHandler handles camp fee payment HTTP requests.
type PaymentHandler struct {
	paymentService    *payment.Service
	registrationStore store.RegistrationStore
	validator         *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler with the given
// dependencies.
func NewPaymentHandler(
	paymentService *payment.Service,
	registrationStore store.RegistrationStore,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService:    paymentService,
		registrationStore: registrationStore,
		validator:         validator.New(),
	}
}

// CreatePaymentIntent handles POST /payment-intent requests.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.Fees)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create payment intent")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

// RecordPayment handles POST /payment/camp requests. The reported
// transaction is verified with the gateway before anything is written; when
// a registration ID accompanies the report, its payment status flips to
// paid in the same request.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest

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

	record, err := domain.NewPayment(
		campID,
		req.CampName,
		strings.ToLower(req.ParticipantEmail),
		req.Amount,
		req.TransactionID,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid payment data: "+err.Error())
		return
	}

	if err := h.paymentService.RecordPayment(r.Context(), record); err != nil {
		HandleAPIError(w, r, err, "Failed to record payment")
		return
	}

	if req.RegistrationID != "" {
		paid := domain.PaymentPaid
		patch := domain.RegistrationPatch{PaymentStatus: &paid}
		if _, err := h.registrationStore.Update(r.Context(), req.RegistrationID, patch); err != nil {
			// The payment itself is recorded; a failed status flip is
			// recoverable and must not fail the request.
			log := logger.FromContextOrDefault(r.Context(), slog.Default())
			log.Warn("failed to mark registration paid",
				"registration_id", req.RegistrationID,
				"error", err)
		}
	}

	insertedID := record.ID.Hex()
	shared.RespondWithJSON(w, http.StatusCreated, InsertResult{
		Acknowledged: true,
		InsertedID:   &insertedID,
	})
}

// ListParticipantPayments handles GET /payments/{email} requests.
func (h *PaymentHandler) ListParticipantPayments(w http.ResponseWriter, r *http.Request) {
	email, err := getPathEmail(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	payments, err := h.paymentService.ListByParticipant(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list payments")
		return
	}

	if payments == nil {
		payments = []*domain.Payment{}
	}
	shared.RespondWithJSON(w, http.StatusOK, payments)
}
