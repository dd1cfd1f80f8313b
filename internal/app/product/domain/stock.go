package domain

// LowStockThreshold is the quantity below which a product is flagged for
// replenishment attention.
const LowStockThreshold = 10

// StockQuantity represents a non-negative count of units on hand.
// StockQuantity is immutable - all operations return new instances.
type StockQuantity struct {
	value int64
}

// NewStockQuantity creates a new StockQuantity.
// Returns ErrNegativeStock if the value is negative.
func NewStockQuantity(value int64) (StockQuantity, error) {
	if value < 0 {
		return StockQuantity{}, ErrNegativeStock
	}
	return StockQuantity{value: value}, nil
}

// Value returns the underlying count.
// Used at mapping boundaries; domain logic should go through the methods below.
func (s StockQuantity) Value() int64 {
	return s.value
}

// Add returns a new StockQuantity increased by quantity.
func (s StockQuantity) Add(quantity int64) (StockQuantity, error) {
	return NewStockQuantity(s.value + quantity)
}

// Subtract returns a new StockQuantity decreased by quantity.
// Returns ErrNegativeStock if the result would be negative.
func (s StockQuantity) Subtract(quantity int64) (StockQuantity, error) {
	return NewStockQuantity(s.value - quantity)
}

// IsLow returns true when the quantity is below LowStockThreshold.
func (s StockQuantity) IsLow() bool {
	return s.value < LowStockThreshold
}

// IsEmpty returns true when no units are on hand.
func (s StockQuantity) IsEmpty() bool {
	return s.value == 0
}

// Equals returns true if both quantities hold the same count.
func (s StockQuantity) Equals(other StockQuantity) bool {
	return s.value == other.value
}
