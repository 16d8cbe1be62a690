package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	domainmocks "github.com/avc/reading-billing/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	sessions   *domainmocks.SessionRepositoryMock
	payments   *domainmocks.PaymentRepositoryMock
	earnings   *domainmocks.EarningsRepositoryMock
	dispatcher *domainmocks.EventDispatcherMock
	catalog    *domainmocks.CatalogClientMock
	idem       *domainmocks.IdempotencyStoreMock
	repos      domain.Repositories
	uow        *UnitOfWork
}

// newTestDeps собирает UnitOfWork, транзакция которого просто вызывает fn с моками репозиториев
func newTestDeps(t *testing.T) *testDeps {
	d := &testDeps{
		sessions:   domainmocks.NewSessionRepositoryMock(t),
		payments:   domainmocks.NewPaymentRepositoryMock(t),
		earnings:   domainmocks.NewEarningsRepositoryMock(t),
		dispatcher: domainmocks.NewEventDispatcherMock(t),
		catalog:    domainmocks.NewCatalogClientMock(t),
		idem:       domainmocks.NewIdempotencyStoreMock(t),
	}
	d.repos = domain.Repositories{Sessions: d.sessions, Payments: d.payments, Earnings: d.earnings}

	tx := domainmocks.NewTransactorMock(t)
	tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, domain.Repositories) error) error {
			return fn(ctx, d.repos)
		}).Maybe()

	d.uow = NewUnitOfWork(tx, d.dispatcher, zap.NewNop())
	return d
}

// expectDispatch ожидает одну доставку и сохраняет типы событий в kinds
func (d *testDeps) expectDispatch(kinds *[]domain.EventKind, err error) {
	d.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, events domain.Events) {
			for _, e := range events {
				*kinds = append(*kinds, e.Kind())
			}
		}).
		Return(err).Once()
}

// captureDispatch ожидает одну доставку и сохраняет сами события
func (d *testDeps) captureDispatch(captured *domain.Events) {
	d.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, events domain.Events) {
			*captured = append(*captured, events...)
		}).
		Return(nil).Once()
}

func activeSession(userID, bookID int64) domain.ReadingSession {
	return domain.ReadingSession{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		StartTime: testNow,
		Status:    domain.SessionStatusActive,
	}
}

func pendingPayment(userID int64, amount string) domain.Payment {
	return domain.Payment{
		ID:          uuid.New(),
		UserID:      userID,
		BookID:      42,
		Amount:      domain.MustMoney(amount, "USD"),
		PaymentKind: domain.PaymentKindPerPage,
		Status:      domain.PaymentStatusPending,
		Provider:    domain.PaymentProviderStripe,
		CreatedAt:   testNow,
	}
}

func completedPayment(userID int64, amount string) domain.Payment {
	p := pendingPayment(userID, amount)
	txn := "txn-1"
	processed := testNow.Add(time.Minute)
	p.Status = domain.PaymentStatusCompleted
	p.ExternalTransactionID = &txn
	p.ProcessedAt = &processed
	return p
}
