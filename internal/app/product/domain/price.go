package domain

import (
	"fmt"
	"math/big"
)

// Price represents a non-negative monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues.
// Price is immutable - all operations return new instances.
type Price struct {
	amount *big.Rat
}

// NewPrice creates a new Price from numerator and denominator.
// For example: NewPrice(1999, 100) represents $19.99.
// Returns ErrNegativePrice if the value is negative.
func NewPrice(numerator, denominator int64) (*Price, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("price: denominator cannot be zero")
	}
	amount := big.NewRat(numerator, denominator)
	if amount.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	return &Price{amount: amount}, nil
}

// NewPriceFromDecimal creates a Price from a decimal string.
// For example: "19.99", "100.00", "0".
func NewPriceFromDecimal(decimal string) (*Price, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s: %w", decimal, ErrInvalidPriceFormat)
	}
	if rat.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	return &Price{amount: rat}, nil
}

// NewPriceFromRat creates a Price from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewPriceFromRat(rat *big.Rat) (*Price, error) {
	if rat == nil {
		return &Price{amount: big.NewRat(0, 1)}, nil
	}
	if rat.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	return &Price{amount: new(big.Rat).Set(rat)}, nil
}

// ZeroPrice returns a Price instance representing zero.
func ZeroPrice() *Price {
	return &Price{amount: big.NewRat(0, 1)}
}

// Add returns a new Price that is the sum of p and other.
func (p *Price) Add(other *Price) *Price {
	result := new(big.Rat).Add(p.amount, other.amount)
	return &Price{amount: result}
}

// Subtract returns a new Price that is the difference of p and other.
// Returns ErrNegativePrice if the result would be negative.
func (p *Price) Subtract(other *Price) (*Price, error) {
	result := new(big.Rat).Sub(p.amount, other.amount)
	if result.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	return &Price{amount: result}, nil
}

// Multiply returns a new Price scaled by the given fraction (numerator/denominator).
func (p *Price) Multiply(numerator, denominator int64) *Price {
	multiplier := big.NewRat(numerator, denominator)
	result := new(big.Rat).Mul(p.amount, multiplier)
	return &Price{amount: result}
}

// IsZero returns true if the price is zero.
func (p *Price) IsZero() bool {
	return p.amount.Sign() == 0
}

// GreaterThan returns true if p is greater than other.
func (p *Price) GreaterThan(other *Price) bool {
	return p.amount.Cmp(other.amount) > 0
}

// LessThan returns true if p is less than other.
func (p *Price) LessThan(other *Price) bool {
	return p.amount.Cmp(other.amount) < 0
}

// Equals returns true if p equals other.
func (p *Price) Equals(other *Price) bool {
	if other == nil {
		return false
	}
	return p.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the internal big.Rat.
// Used for database persistence (Spanner NUMERIC).
func (p *Price) Rat() *big.Rat {
	return new(big.Rat).Set(p.amount)
}

// Float64 returns the price as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (p *Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String returns a decimal string representation with two decimal places.
func (p *Price) String() string {
	return p.amount.FloatString(2)
}

// FloatString returns a decimal string representation with the specified precision.
func (p *Price) FloatString(precision int) string {
	return p.amount.FloatString(precision)
}
