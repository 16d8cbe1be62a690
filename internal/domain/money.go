package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyScale количество знаков после запятой у всех денежных сумм
const moneyScale = 2

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money представляет неизменяемую денежную сумму с фиксированной точкой.
//
// Сумма всегда неотрицательна и округлена до двух знаков по правилу
// half-away-from-zero (decimal.Round). Все операции возвращают новое значение.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney создает сумму, округляя ее до двух знаков.
// Отрицательная сумма или некорректный код валюты дают ErrInvalidArgument.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(currency) {
		return Money{}, fmt.Errorf("%w: currency %q must be 3 letters", ErrInvalidArgument, currency)
	}

	rounded := amount.Round(moneyScale)
	if rounded.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %s must not be negative", ErrInvalidArgument, amount)
	}

	return Money{amount: rounded, currency: currency}, nil
}

// ParseMoney создает сумму из десятичной строки, например "12.50".
func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a decimal", ErrInvalidArgument, amount)
	}
	return NewMoney(d, currency)
}

// MustMoney как ParseMoney, но паникует на ошибке. Только для констант и тестов.
func MustMoney(amount, currency string) Money {
	m, err := ParseMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney возвращает нулевую сумму в указанной валюте
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount возвращает сумму
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency возвращает код валюты
func (m Money) Currency() string { return m.currency }

// IsZero возвращает true для нулевой суммы
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive возвращает true, если сумма больше нуля
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Add складывает суммы одной валюты
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract вычитает сумму той же валюты. Результат не может быть отрицательным.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply умножает сумму на неотрицательный коэффициент
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// Divide делит сумму на положительный делитель
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return NewMoney(m.amount.Div(divisor), m.currency)
}

// Compare возвращает -1, 0 или 1. Суммы разных валют не сравниваются.
func (m Money) Compare(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// GreaterThan возвращает true, если m > other (false при разных валютах)
func (m Money) GreaterThan(other Money) bool {
	c, err := m.Compare(other)
	return err == nil && c > 0
}

// Equal сравнивает суммы по значению: сумма и валюта
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Key возвращает ключ для map, зависящий только от значения
func (m Money) Key() string {
	return m.amount.StringFixed(moneyScale) + " " + m.currency
}

// String форматирует сумму как "5.00 USD"
func (m Money) String() string {
	return m.Key()
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON реализует json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.StringFixed(moneyScale),
		Currency: m.currency,
	})
}

// UnmarshalJSON реализует json.Unmarshaler с теми же проверками, что и ParseMoney
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	parsed, err := ParseMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

// SumMoney складывает суммы одной валюты
func SumMoney(currency string, values ...Money) (Money, error) {
	total, err := ZeroMoney(currency)
	if err != nil {
		return Money{}, err
	}
	for _, v := range values {
		if total, err = total.Add(v); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
