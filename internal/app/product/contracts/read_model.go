package contracts

import (
	"context"
	"math/big"

	"github.com/stockroom/inventory-service/internal/app/product/dto"
)

// Sort keys accepted by ListProducts. Anything else falls back to SortByName.
const (
	SortByName      = "name"
	SortByPrice     = "price"
	SortByStock     = "stock_quantity"
	SortByCreatedAt = "created_at"
)

// ProductFilter carries the normalized filter/sort/pagination parameters for
// ListProducts. All provided filters are conjunctive. Nil optionals mean
// "no filter".
type ProductFilter struct {
	SearchTerm   *string
	CategoryID   *string
	MinPrice     *big.Rat
	MaxPrice     *big.Rat
	LowStockOnly bool
	SortBy       string
	SortDesc     bool
	Limit        int
	Offset       int
}

// ReadModel is the read-side port. Implementations must always exclude
// soft-deleted products and return the total count matching the filters
// before pagination is applied.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*dto.ProductDTO, int64, error)
	GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
}
