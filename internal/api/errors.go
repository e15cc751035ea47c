package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/platform/logger"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// HandleAPIError maps an internal error to a status code and safe message,
// logs it, and writes the JSON error response. Handlers end every failure
// path here so nothing internal leaks to clients. When the error is not a
// recognized sentinel, defaultMsg (if non-empty) replaces the generic
// message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if defaultMsg != "" && msg == "An unexpected error occurred" {
		msg = defaultMsg
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	shared.RespondWithErrorAndLog(w, r, log, err, status, msg)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Payment settlement errors
	case errors.Is(err, payment.ErrPaymentNotSettled):
		return http.StatusPaymentRequired

	// Not found errors
	case errors.Is(err, store.ErrCampNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrRegistrationNotFound),
		errors.Is(err, store.ErrPaymentNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrEmptyPatch),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, payment.ErrInvalidAmount):
		return http.StatusBadRequest

	// Default: internal server error. Gateway and store failures land
	// here deliberately so clients only ever see a generic message.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, payment.ErrPaymentNotSettled):
		return "Payment has not settled"

	case errors.Is(err, store.ErrCampNotFound):
		return "Camp not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrRegistrationNotFound):
		return "Registration not found"

	case errors.Is(err, store.ErrPaymentNotFound):
		return "Payment not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrEmptyPatch):
		return "No fields to update"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email address"

	case errors.Is(err, payment.ErrInvalidAmount):
		return "Invalid payment amount"

	case errors.Is(err, payment.ErrGateway):
		return "Payment provider unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateCampRequest.CampName' Error:Field
		// validation for 'CampName' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gt":
		return "must be greater than zero"
	default:
		return "validation failed"
	}
}
