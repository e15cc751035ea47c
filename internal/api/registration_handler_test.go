package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/mocks"
)

func TestCreateRegistrationSnapshotsCamp(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	handler := NewRegistrationHandler(registrationStore, campStore)

	body := `{
		"campId": "` + camp.ID.Hex() + `",
		"participantEmail": "Alice@Example.com",
		"participantName": "Alice"
	}`

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.CreateRegistration(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var insert InsertResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insert))
	require.NotNil(t, insert.InsertedID)

	stored, err := registrationStore.GetByID(context.Background(), *insert.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, camp.ID, stored.CampID)
	assert.Equal(t, "Free Eye Screening", stored.CampName)
	assert.Equal(t, 25.00, stored.Fees)
	assert.Equal(t, "alice@example.com", stored.ParticipantEmail)
	assert.Equal(t, domain.PaymentUnpaid, stored.PaymentStatus)
	assert.Equal(t, domain.ConfirmationPending, stored.ConfirmationStatus)
}

func TestCreateRegistrationUnknownCamp(t *testing.T) {
	registrationStore := mocks.NewMockRegistrationStore()
	handler := NewRegistrationHandler(registrationStore, mocks.NewMockCampStore())

	body := `{
		"campId": "aaaaaaaaaaaaaaaaaaaaaaaa",
		"participantEmail": "alice@example.com"
	}`

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.CreateRegistration(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, registrationStore.CreateCalls)
}

// Re-registering for the same camp is permitted; cancellation and
// re-registration is a supported flow.
func TestCreateRegistrationAllowsDuplicates(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	handler := NewRegistrationHandler(registrationStore, campStore)

	body := `{"campId": "` + camp.ID.Hex() + `", "participantEmail": "alice@example.com"}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.CreateRegistration(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	regs, err := registrationStore.ListByParticipant(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestListParticipantRegistrations(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	for _, email := range []string{"alice@example.com", "bob@example.com"} {
		reg, err := domain.NewRegistration(camp, email, "")
		require.NoError(t, err)
		require.NoError(t, registrationStore.Create(context.Background(), reg))
	}

	handler := NewRegistrationHandler(registrationStore, campStore)

	r := chi.NewRouter()
	r.Get("/registrations/{email}", handler.ListParticipantRegistrations)

	req := httptest.NewRequest(http.MethodGet, "/registrations/alice@example.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var regs []*domain.Registration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regs))
	require.Len(t, regs, 1)
	assert.Equal(t, "alice@example.com", regs[0].ParticipantEmail)
}

func TestUpdateRegistrationConfirms(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	reg, err := domain.NewRegistration(camp, "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, registrationStore.Create(context.Background(), reg))

	handler := NewRegistrationHandler(registrationStore, campStore)

	r := chi.NewRouter()
	r.Patch("/registration/{id}", handler.UpdateRegistration)

	body := `{"confirmationStatus": "confirmed"}`
	req := httptest.NewRequest(http.MethodPatch, "/registration/"+reg.ID.Hex(), bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := registrationStore.GetByID(context.Background(), reg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmationConfirmed, stored.ConfirmationStatus)
	assert.Equal(t, domain.PaymentUnpaid, stored.PaymentStatus)
}

func TestUpdateRegistrationRejectsUnknownStatus(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	reg, err := domain.NewRegistration(camp, "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, registrationStore.Create(context.Background(), reg))
	registrationStore.UpdateCalls = 0

	handler := NewRegistrationHandler(registrationStore, campStore)

	r := chi.NewRouter()
	r.Patch("/registration/{id}", handler.UpdateRegistration)

	body := `{"paymentStatus": "maybe"}`
	req := httptest.NewRequest(http.MethodPatch, "/registration/"+reg.ID.Hex(), bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, registrationStore.UpdateCalls)
}

func TestDeleteRegistration(t *testing.T) {
	campStore := mocks.NewMockCampStore()
	camp := seedCamp(t, campStore)

	registrationStore := mocks.NewMockRegistrationStore()
	reg, err := domain.NewRegistration(camp, "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, registrationStore.Create(context.Background(), reg))

	handler := NewRegistrationHandler(registrationStore, campStore)

	r := chi.NewRouter()
	r.Delete("/registration/{id}", handler.DeleteRegistration)

	req := httptest.NewRequest(http.MethodDelete, "/registration/"+reg.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err = registrationStore.GetByID(context.Background(), reg.ID.Hex())
	assert.Error(t, err)
}
