package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount with exact rational arithmetic.
// It is immutable; operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from a numerator/denominator pair.
// NewMoney(1999, 100) represents 19.99.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: big.NewRat(numerator, denominator),
	}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "19.99".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative reports whether the amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Equals reports whether m and other represent the same amount.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// FloatString returns a decimal string with the given precision, e.g. "19.99".
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}

// String returns the amount with two decimal places.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}
