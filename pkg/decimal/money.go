package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a quoted dollar amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt creates a new Money instance from whole dollars
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundUpToFiveOrZero rounds a whole number up to the nearest multiple of 5.
// Values ending in 0 or 5 pass through; 1-4 go to the next 5; 6-9 go to the next 10.
func RoundUpToFiveOrZero(value int64) int64 {
	if value == 0 {
		return 0
	}
	ones := value % 10
	if ones < 0 {
		ones += 10
	}
	switch {
	case ones == 0 || ones == 5:
		return value
	case ones < 5:
		return value + (5 - ones)
	default:
		return value + (10 - ones)
	}
}

// Ceil rounds up to whole dollars
func (m Money) Ceil() Money {
	return Money{m.Decimal.Ceil()}
}

// RoundUpToFive takes the ceiling and then rounds up to the nearest 0 or 5
func (m Money) RoundUpToFive() Money {
	whole := m.Decimal.Ceil().IntPart()
	return NewMoneyFromInt(RoundUpToFiveOrZero(whole))
}

// RoundDownToFive rounds down to the nearest multiple of 5
func (m Money) RoundDownToFive() Money {
	five := decimal.NewFromInt(5)
	return Money{m.Decimal.Div(five).Floor().Mul(five)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds up a list of amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String renders whole dollars without cents and anything else with two decimals
func (m Money) String() string {
	if m.Decimal.Equal(m.Decimal.Truncate(0)) {
		return m.Decimal.StringFixed(0)
	}
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a dollar sign
func (m Money) Format() string {
	return "$" + m.String()
}
