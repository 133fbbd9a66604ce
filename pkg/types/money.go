package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value. It wraps decimal.Decimal but
// marshals as a bare JSON number, which is what the catalog and order
// services speak.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from a decimal string such as "78.00".
func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return Amount{Decimal: d}, nil
}

// AmountFromFloat converts a float price into an Amount.
func AmountFromFloat(value float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(value)}
}

// MustAmount panics on a malformed literal. Test and seed data only.
func MustAmount(value string) Amount {
	a, err := NewAmount(value)
	if err != nil {
		panic(err)
	}
	return a
}

// MarshalJSON emits the amount as an unquoted number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// MulInt returns the amount multiplied by an integer quantity.
func (a Amount) MulInt(qty int) Amount {
	return Amount{Decimal: a.Decimal.Mul(decimal.NewFromInt(int64(qty)))}
}

// Add sums two amounts.
func (a Amount) Add(other Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(other.Decimal)}
}

// Equal reports value equality regardless of exponent.
func (a Amount) Equal(other Amount) bool {
	return a.Decimal.Equal(other.Decimal)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.Decimal.IsNegative()
}
