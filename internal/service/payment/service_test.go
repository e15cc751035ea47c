package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/mocks"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
)

func newTestPayment(t *testing.T) *domain.Payment {
	t.Helper()

	p, err := domain.NewPayment(
		bson.NewObjectID(),
		"Free Eye Checkup Camp",
		"participant@example.com",
		25.00,
		"pi_3Abc",
	)
	require.NoError(t, err)
	return p
}

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	t.Run("converts fee to cents and requests usd", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{
			Intent: &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"},
		}
		svc := payment.NewService(gateway, mocks.NewMockPaymentStore())

		secret, err := svc.CreateIntent(context.Background(), 25.00)
		require.NoError(t, err)

		assert.Equal(t, "pi_1_secret", secret)
		assert.Equal(t, int64(2500), gateway.LastAmountCents)
		assert.Equal(t, "usd", gateway.LastCurrency)
	})

	t.Run("truncates fractional cents", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{}
		svc := payment.NewService(gateway, mocks.NewMockPaymentStore())

		_, err := svc.CreateIntent(context.Background(), 10.999)
		require.NoError(t, err)

		assert.Equal(t, int64(1099), gateway.LastAmountCents)
	})

	t.Run("gateway failure surfaces ErrGateway and writes nothing", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{CreateErr: errors.New("connection refused")}
		paymentStore := mocks.NewMockPaymentStore()
		svc := payment.NewService(gateway, paymentStore)

		_, err := svc.CreateIntent(context.Background(), 25.00)

		assert.ErrorIs(t, err, payment.ErrGateway)
		assert.Zero(t, paymentStore.StoreCalls(), "no payment record may be written on gateway failure")
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{}
		svc := payment.NewService(gateway, mocks.NewMockPaymentStore())

		for _, fees := range []float64{0, -5} {
			_, err := svc.CreateIntent(context.Background(), fees)
			assert.ErrorIs(t, err, payment.ErrInvalidAmount)
		}
		assert.Zero(t, gateway.CreateIntentCalls)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Parallel()

	t.Run("persists after gateway confirms success", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{Status: payment.IntentStatusSucceeded}
		paymentStore := mocks.NewMockPaymentStore()
		svc := payment.NewService(gateway, paymentStore)

		err := svc.RecordPayment(context.Background(), newTestPayment(t))
		require.NoError(t, err)

		assert.Equal(t, 1, gateway.RetrieveIntentCalls)
		assert.Len(t, paymentStore.Payments, 1)
	})

	t.Run("rejects unsettled intent without persisting", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{Status: payment.IntentStatus("requires_payment_method")}
		paymentStore := mocks.NewMockPaymentStore()
		svc := payment.NewService(gateway, paymentStore)

		err := svc.RecordPayment(context.Background(), newTestPayment(t))

		assert.ErrorIs(t, err, payment.ErrPaymentNotSettled)
		assert.Zero(t, paymentStore.StoreCalls())
	})

	t.Run("gateway lookup failure surfaces ErrGateway", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{RetrieveErr: errors.New("timeout")}
		paymentStore := mocks.NewMockPaymentStore()
		svc := payment.NewService(gateway, paymentStore)

		err := svc.RecordPayment(context.Background(), newTestPayment(t))

		assert.ErrorIs(t, err, payment.ErrGateway)
		assert.Zero(t, paymentStore.StoreCalls())
	})

	t.Run("rejects invalid payment record before touching the gateway", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockGateway{}
		svc := payment.NewService(gateway, mocks.NewMockPaymentStore())

		invalid := newTestPayment(t)
		invalid.TransactionID = ""

		err := svc.RecordPayment(context.Background(), invalid)

		assert.Error(t, err)
		assert.Zero(t, gateway.RetrieveIntentCalls)
	})
}

func TestListByParticipant(t *testing.T) {
	t.Parallel()

	paymentStore := mocks.NewMockPaymentStore()
	svc := payment.NewService(&mocks.MockGateway{}, paymentStore)

	first := newTestPayment(t)
	second := newTestPayment(t)
	second.TransactionID = "pi_3Def"
	other := newTestPayment(t)
	other.ParticipantEmail = "someone-else@example.com"

	for _, p := range []*domain.Payment{first, second, other} {
		require.NoError(t, paymentStore.Create(context.Background(), p))
	}

	payments, err := svc.ListByParticipant(context.Background(), "participant@example.com")
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
