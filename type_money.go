package reckon

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value.
//
// It wraps a decimal so that repeated add/subtract sequences never drift:
// arithmetic is exact, and the decimal exponent is carried through, so a
// value obtained by subtraction keeps its trailing zeros (0.0003 - 0.0003
// renders as "0.0000", while an untouched zero renders as "0").
type Money struct {
	value decimal.Decimal
}

// ParseMoney parses the plain decimal string representation of a monetary value.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// M creates a Money from a numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// String returns the plain decimal representation, never scientific notation.
func (m Money) String() string { return m.value.String() }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
