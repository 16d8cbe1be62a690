package postgres

import "github.com/avc/reading-billing/internal/domain"

// Денежные суммы хранятся как NUMERIC(14,2) + CHAR(3) и читаются через ::text,
// чтобы не терять точность при сканировании

func moneyColumns(m *domain.Money) (amount, currency *string) {
	if m == nil {
		return nil, nil
	}
	a := m.Amount().StringFixed(2)
	c := m.Currency()
	return &a, &c
}

func nullableMoney(amount, currency *string) (*domain.Money, error) {
	if amount == nil || currency == nil {
		return nil, nil
	}
	m, err := domain.ParseMoney(*amount, *currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
