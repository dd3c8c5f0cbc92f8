// Package money provides a fixed-scale currency amount used by menus,
// carts, and orders. Amounts are rounded to two fractional digits,
// half-up, at construction; every operation returns a new value.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is the single unit used across the ordering core.
var DefaultCurrency = currency.USD

var (
	ErrCurrencyMismatch = errors.New("money currency mismatch")
	ErrInvalidAmount    = errors.New("money amount is invalid")
)

const scale = 2

// Money is an immutable amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency currency.Unit
}

// New builds a Money from a decimal amount, rounding half-up to two
// fractional digits.
func New(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{amount: amount.Round(scale), currency: unit}
}

// Parse builds a Money from a decimal string in the default currency.
func Parse(raw string) (Money, error) {
	if raw == "" {
		return Money{}, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return New(amount, DefaultCurrency), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(raw string) Money {
	m, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the zero amount in the default currency.
func Zero() Money {
	return Money{amount: decimal.Zero, currency: DefaultCurrency}
}

// Amount exposes the rounded amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency exposes the currency unit.
func (m Money) Currency() currency.Unit { return m.currency }

// Add returns m + other; the currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other; the currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// MultiplyInt returns m scaled by an integer factor.
func (m Money) MultiplyInt(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor)), currency: m.currency}
}

// Multiply returns m scaled by a decimal factor, rounded half-up.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return New(m.amount.Mul(factor), m.currency)
}

// GreaterThan reports m > other; the currencies must match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// GreaterThanOrEqual reports m >= other; the currencies must match.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// LessThan reports m < other; the currencies must match.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Equal reports value equality on (amount, currency).
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(scale), m.currency)
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
