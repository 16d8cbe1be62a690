package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EarningsKinds события, после которых пересчитывается доход автора
var EarningsKinds = []domain.EventKind{
	domain.EventPaymentCompleted,
	domain.EventPaymentRefunded,
}

// ComputeEarning рассчитывает долю автора по платежу.
// Gross считается от полной суммы, Refunded доля автора в возвратах, Net остаток.
func ComputeEarning(p domain.Payment, authorID int64, commissionRate decimal.Decimal, now time.Time) (domain.AuthorEarning, error) {
	zero, err := domain.ZeroMoney(p.Amount.Currency())
	if err != nil {
		return domain.AuthorEarning{}, err
	}

	gross, net := zero, zero
	switch p.Status {
	case domain.PaymentStatusCompleted:
		if gross, err = p.Amount.Multiply(decimal.NewFromInt(1).Sub(commissionRate)); err != nil {
			return domain.AuthorEarning{}, err
		}
		if net, err = p.CalculateAuthorEarnings(commissionRate); err != nil {
			return domain.AuthorEarning{}, err
		}
	case domain.PaymentStatusRefunded:
		if gross, err = p.Amount.Multiply(decimal.NewFromInt(1).Sub(commissionRate)); err != nil {
			return domain.AuthorEarning{}, err
		}
	}

	refunded, err := gross.Subtract(net)
	if err != nil {
		return domain.AuthorEarning{}, err
	}

	return domain.AuthorEarning{
		PaymentID:      p.ID,
		AuthorID:       authorID,
		BookID:         p.BookID,
		Gross:          gross,
		Refunded:       refunded,
		Net:            net,
		CommissionRate: commissionRate.String(),
		UpdatedAt:      now,
	}, nil
}

// EarningsHandler пересчитывает доход автора после проведения платежа и возвратов
type EarningsHandler struct {
	payments       domain.PaymentRepository
	earnings       domain.EarningsRepository
	catalog        domain.CatalogClient
	commissionRate decimal.Decimal
	clock          domain.Clock
	logger         *zap.Logger
}

// NewEarningsHandler создает новый EarningsHandler
func NewEarningsHandler(repos domain.Repositories, catalog domain.CatalogClient, commissionRate decimal.Decimal, clock domain.Clock, logger *zap.Logger) *EarningsHandler {
	return &EarningsHandler{
		payments:       repos.Payments,
		earnings:       repos.Earnings,
		catalog:        catalog,
		commissionRate: commissionRate,
		clock:          clock,
		logger:         logger,
	}
}

// Handle обрабатывает PaymentCompleted и PaymentRefunded
func (h *EarningsHandler) Handle(ctx context.Context, event domain.Event) error {
	payment, err := h.payments.GetPayment(ctx, event.AggregateID())
	if err != nil {
		return fmt.Errorf("earnings: failed to load payment %s: %w", event.AggregateID(), err)
	}

	pricing, err := h.catalog.GetBookPricing(ctx, payment.BookID)
	if err != nil {
		return fmt.Errorf("earnings: failed to resolve author of book %d: %w", payment.BookID, err)
	}

	earning, err := ComputeEarning(payment, pricing.AuthorID, h.commissionRate, h.clock.Now())
	if err != nil {
		return err
	}

	if err := h.earnings.UpsertEarning(ctx, earning); err != nil {
		return err
	}

	h.logger.Info("author earnings updated",
		zap.Stringer("payment_id", payment.ID),
		zap.Int64("author_id", earning.AuthorID),
		zap.Stringer("net", earning.Net),
	)

	return nil
}
