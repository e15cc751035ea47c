package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/mocks"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
)

func newPaymentHandler(
	gateway *mocks.MockGateway,
	paymentStore *mocks.MockPaymentStore,
	registrationStore *mocks.MockRegistrationStore,
) *PaymentHandler {
	svc := payment.NewService(gateway, paymentStore)
	return NewPaymentHandler(svc, registrationStore)
}

func TestCreatePaymentIntent(t *testing.T) {
	gateway := &mocks.MockGateway{
		Intent: &payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"},
	}
	handler := newPaymentHandler(gateway, mocks.NewMockPaymentStore(), mocks.NewMockRegistrationStore())

	req := httptest.NewRequest(http.MethodPost, "/payment-intent", bytes.NewBufferString(`{"fees": 25.00}`))
	rec := httptest.NewRecorder()
	handler.CreatePaymentIntent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PaymentIntentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)

	// The gateway sees whole cents in the platform currency.
	assert.Equal(t, int64(2500), gateway.LastAmountCents)
	assert.Equal(t, "usd", gateway.LastCurrency)
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	gateway := &mocks.MockGateway{CreateErr: errors.New("stripe: connection reset")}
	paymentStore := mocks.NewMockPaymentStore()
	handler := newPaymentHandler(gateway, paymentStore, mocks.NewMockRegistrationStore())

	req := httptest.NewRequest(http.MethodPost, "/payment-intent", bytes.NewBufferString(`{"fees": 25.00}`))
	rec := httptest.NewRecorder()
	handler.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Zero(t, paymentStore.StoreCalls())
}

func TestCreatePaymentIntentRejectsNonPositiveFees(t *testing.T) {
	gateway := &mocks.MockGateway{}
	handler := newPaymentHandler(gateway, mocks.NewMockPaymentStore(), mocks.NewMockRegistrationStore())

	for _, body := range []string{`{"fees": 0}`, `{"fees": -5}`} {
		req := httptest.NewRequest(http.MethodPost, "/payment-intent", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.CreatePaymentIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, gateway.CreateIntentCalls)
}

func recordPaymentBody(campID, registrationID string) string {
	body := map[string]interface{}{
		"campId":           campID,
		"campName":         "Free Eye Screening",
		"participantEmail": "alice@example.com",
		"amount":           25.00,
		"transactionId":    "pi_123",
	}
	if registrationID != "" {
		body["registrationId"] = registrationID
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestRecordPaymentVerifiedWithGateway(t *testing.T) {
	campID := "65f0aaaaaaaaaaaaaaaaaaaa"

	gateway := &mocks.MockGateway{Status: payment.IntentStatusSucceeded}
	paymentStore := mocks.NewMockPaymentStore()
	handler := newPaymentHandler(gateway, paymentStore, mocks.NewMockRegistrationStore())

	req := httptest.NewRequest(http.MethodPost, "/payment/camp",
		bytes.NewBufferString(recordPaymentBody(campID, "")))
	rec := httptest.NewRecorder()
	handler.RecordPayment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, gateway.RetrieveIntentCalls)
	require.Len(t, paymentStore.Payments, 1)
	assert.Equal(t, "pi_123", paymentStore.Payments[0].TransactionID)
}

func TestRecordPaymentRejectsUnsettledIntent(t *testing.T) {
	campID := "65f0aaaaaaaaaaaaaaaaaaaa"

	gateway := &mocks.MockGateway{Status: payment.IntentStatus("requires_payment_method")}
	paymentStore := mocks.NewMockPaymentStore()
	handler := newPaymentHandler(gateway, paymentStore, mocks.NewMockRegistrationStore())

	req := httptest.NewRequest(http.MethodPost, "/payment/camp",
		bytes.NewBufferString(recordPaymentBody(campID, "")))
	rec := httptest.NewRecorder()
	handler.RecordPayment(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Empty(t, paymentStore.Payments)
}

func TestRecordPaymentMarksRegistrationPaid(t *testing.T) {
	campID := "65f0aaaaaaaaaaaaaaaaaaaa"

	camp := newTestCamp(t)
	registrationStore := mocks.NewMockRegistrationStore()
	campStoreSeed := mocks.NewMockCampStore()
	require.NoError(t, campStoreSeed.Create(context.Background(), camp))

	reg, err := domain.NewRegistration(camp, "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, registrationStore.Create(context.Background(), reg))

	gateway := &mocks.MockGateway{Status: payment.IntentStatusSucceeded}
	handler := newPaymentHandler(gateway, mocks.NewMockPaymentStore(), registrationStore)

	req := httptest.NewRequest(http.MethodPost, "/payment/camp",
		bytes.NewBufferString(recordPaymentBody(campID, reg.ID.Hex())))
	rec := httptest.NewRecorder()
	handler.RecordPayment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	stored, err := registrationStore.GetByID(context.Background(), reg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, stored.PaymentStatus)
}

func TestListParticipantPayments(t *testing.T) {
	paymentStore := mocks.NewMockPaymentStore()
	record, err := domain.NewPayment(
		bson.NewObjectID(), "Free Eye Screening", "alice@example.com", 25.00, "pi_123",
	)
	require.NoError(t, err)
	require.NoError(t, paymentStore.Create(context.Background(), record))

	handler := newPaymentHandler(&mocks.MockGateway{}, paymentStore, mocks.NewMockRegistrationStore())

	r := chi.NewRouter()
	r.Get("/payments/{email}", handler.ListParticipantPayments)

	req := httptest.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payments []*domain.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "pi_123", payments[0].TransactionID)
}
