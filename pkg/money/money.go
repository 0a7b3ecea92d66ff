// Package money provides the monetary value object used by the ledger.
//
// Invariants:
//   - Amount is always stored in the smallest unit (cents).
//   - A Money value never carries more than two decimal places.
//   - Arithmetic never silently overflows int64.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrTooManyDecimals is returned when an amount has more than two decimal places.
	ErrTooManyDecimals = errors.New("amount has more than 2 decimal places")

	// ErrOverflow is returned when an amount or the result of an operation
	// does not fit the smallest-unit representation.
	ErrOverflow = errors.New("amount exceeds maximum safe integer value")
)

const (
	// Decimals is the number of decimal places kept and displayed.
	Decimals = 2

	// Symbol prefixes every formatted amount.
	Symbol = "$"
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Amount represents a monetary amount in cents.
type Amount = int64

// Money is an exact two-decimal monetary value.
type Money struct {
	amount Amount
}

// New converts a decimal amount into Money.
// It fails with ErrTooManyDecimals when d has sub-cent precision and with
// ErrOverflow when d is outside the representable range.
func New(d decimal.Decimal) (Money, error) {
	cents := d.Shift(Decimals)
	if !cents.IsInteger() {
		return Money{}, ErrTooManyDecimals
	}
	if cents.GreaterThan(maxAmount) || cents.LessThan(minAmount) {
		return Money{}, ErrOverflow
	}
	return Money{amount: cents.IntPart()}, nil
}

// FromCents creates Money from an amount already expressed in cents.
// Used when hydrating stored records.
func FromCents(cents Amount) Money {
	return Money{amount: cents}
}

// FromWhole creates Money from a whole number of dollars.
func FromWhole(units int64) (Money, error) {
	return New(decimal.NewFromInt(units))
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in cents.
func (m Money) Amount() Amount {
	return m.amount
}

// Decimal returns the amount in whole units with two decimal places.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -Decimals)
}

// Add returns m + other, or ErrOverflow.
func (m Money) Add(other Money) (Money, error) {
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrOverflow
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Subtract returns m - other, or ErrOverflow.
func (m Money) Subtract(other Money) (Money, error) {
	if (other.amount < 0 && m.amount > math.MaxInt64+other.amount) ||
		(other.amount > 0 && m.amount < math.MinInt64+other.amount) {
		return Money{}, ErrOverflow
	}
	return Money{amount: m.amount - other.amount}, nil
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Equals reports whether both values hold the same amount.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsMultipleOf reports whether m is an exact multiple of step.
// Every amount is a multiple of a zero step.
func (m Money) IsMultipleOf(step Money) bool {
	if step.amount == 0 {
		return true
	}
	return m.amount%step.amount == 0
}

// String formats the amount with the currency symbol and two decimals,
// e.g. "$150.00" or "-$5.25".
func (m Money) String() string {
	if m.amount < 0 {
		return "-" + Symbol + m.Decimal().Neg().StringFixed(Decimals)
	}
	return Symbol + m.Decimal().StringFixed(Decimals)
}
