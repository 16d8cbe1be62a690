package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPaymentService(d *testDeps) *PaymentService {
	return NewPaymentService(d.uow, d.repos, domain.FixedClock{At: testNow.Add(time.Hour)},
		decimal.RequireFromString("0.30"), zap.NewNop())
}

func TestPaymentService_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)

		var kinds []domain.EventKind
		d.payments.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		p, err := svc.CreatePayment(ctx, 1, 42, domain.MustMoney("9.99", "USD"), domain.PaymentKindPerHour, domain.PaymentProviderPayPal)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		assert.Equal(t, []domain.EventKind{domain.EventPaymentInitiated}, kinds)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)

		_, err := svc.CreatePayment(ctx, 1, 42, domain.MustMoney("0", "USD"), domain.PaymentKindPerHour, domain.PaymentProviderPayPal)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestPaymentService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Mark processing", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := pendingPayment(1, "10")

		var kinds []domain.EventKind
		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
			return p.Status == domain.PaymentStatusProcessing && *p.ExternalTransactionID == "txn-9"
		})).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		p, err := svc.MarkProcessing(ctx, payment.ID, "txn-9")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusProcessing, p.Status)
		assert.Equal(t, 1, p.Version)
		assert.Equal(t, []domain.EventKind{domain.EventPaymentProcessing}, kinds)
	})

	t.Run("Complete pending rejected", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := pendingPayment(1, "10")

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()

		_, err := svc.MarkCompleted(ctx, payment.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})

	t.Run("Mark failed", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := pendingPayment(1, "10")

		var kinds []domain.EventKind
		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		p, err := svc.MarkFailed(ctx, payment.ID, "card declined")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, p.Status)
		assert.Equal(t, "card declined", *p.FailureReason)
	})

	t.Run("Missing payment", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		id := uuid.New()

		d.payments.EXPECT().GetPayment(mock.Anything, id).Return(domain.Payment{}, domain.ErrPaymentNotFound).Once()

		_, err := svc.MarkCompleted(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial then full", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "100")

		var kinds []domain.EventKind
		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		partial, err := svc.Refund(ctx, 1, payment.ID, domain.MustMoney("40", "USD"))
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, partial.Status)
		assert.True(t, partial.RefundableAmount().Equal(domain.MustMoney("60", "USD")))

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(partial, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		full, err := svc.Refund(ctx, 1, payment.ID, domain.MustMoney("60", "USD"))
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, full.Status)
		assert.Equal(t, []domain.EventKind{domain.EventPaymentRefunded, domain.EventPaymentRefunded}, kinds)
	})

	t.Run("Exceeding refund rejected", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "100")

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()

		_, err := svc.Refund(ctx, 1, payment.ID, domain.MustMoney("100.01", "USD"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Foreign payment", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(2, "100")

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()

		_, err := svc.Refund(ctx, 1, payment.ID, domain.MustMoney("1", "USD"))
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentService_AuthorEarnings(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored earning", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "100")
		stored := domain.AuthorEarning{PaymentID: payment.ID, AuthorID: 7, Net: domain.MustMoney("70", "USD")}

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.earnings.EXPECT().GetEarning(mock.Anything, payment.ID).Return(stored, nil).Once()

		e, err := svc.AuthorEarnings(ctx, 1, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), e.AuthorID)
	})

	t.Run("Computed when not yet recorded", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "100")
		refunded := domain.MustMoney("40", "USD")
		payment.RefundedAmount = &refunded

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.earnings.EXPECT().GetEarning(mock.Anything, payment.ID).Return(domain.AuthorEarning{}, domain.ErrPaymentNotFound).Once()

		e, err := svc.AuthorEarnings(ctx, 1, payment.ID)
		require.NoError(t, err)
		assert.True(t, e.Gross.Equal(domain.MustMoney("70", "USD")))
		assert.True(t, e.Net.Equal(domain.MustMoney("42", "USD")))
		assert.True(t, e.Refunded.Equal(domain.MustMoney("28", "USD")))
	})
}

func TestPaymentService_ApplyProviderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Succeeded on pending payment processes and completes", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := pendingPayment(1, "10")

		var kinds []domain.EventKind
		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
			return p.Status == domain.PaymentStatusCompleted && p.ProcessedAt != nil
		})).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		p, err := svc.ApplyProviderStatus(ctx, domain.ProviderStatusUpdate{
			PaymentID:             payment.ID,
			ExternalTransactionID: "ext-1",
			Status:                domain.ProviderStatusSucceeded,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		assert.Equal(t, []domain.EventKind{domain.EventPaymentProcessing, domain.EventPaymentCompleted}, kinds)
	})

	t.Run("Resolved by external id", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := pendingPayment(1, "10")
		txn := "ext-2"
		payment.Status = domain.PaymentStatusProcessing
		payment.ExternalTransactionID = &txn

		var kinds []domain.EventKind
		d.payments.EXPECT().GetPaymentByExternalID(mock.Anything, "ext-2").Return(payment, nil).Once()
		d.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).Return(nil).Once()
		d.expectDispatch(&kinds, nil)

		p, err := svc.ApplyProviderStatus(ctx, domain.ProviderStatusUpdate{
			ExternalTransactionID: "ext-2",
			Status:                domain.ProviderStatusFailed,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, p.Status)
		assert.Equal(t, defaultProviderFailureReason, *p.FailureReason)
	})

	t.Run("Duplicate success is a no-op", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "10")

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()

		p, err := svc.ApplyProviderStatus(ctx, domain.ProviderStatusUpdate{
			PaymentID: payment.ID,
			Status:    domain.ProviderStatusSucceeded,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	})

	t.Run("Failure after completion rejected", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)
		payment := completedPayment(1, "10")

		d.payments.EXPECT().GetPayment(mock.Anything, payment.ID).Return(payment, nil).Once()

		_, err := svc.ApplyProviderStatus(ctx, domain.ProviderStatusUpdate{
			PaymentID: payment.ID,
			Status:    domain.ProviderStatusFailed,
			Reason:    "chargeback",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})

	t.Run("Missing identifiers", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestPaymentService(d)

		_, err := svc.ApplyProviderStatus(ctx, domain.ProviderStatusUpdate{Status: domain.ProviderStatusSucceeded})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
