package contracts

import (
	"cloud.google.com/go/spanner"

	domain "github.com/stockroom/inventory-service/internal/app/product/domain"
)

// CategoryRepo is the write-side repository interface for categories.
// Methods return Spanner mutations; they do not apply them.
type CategoryRepo interface {
	InsertMut(c *domain.Category) *spanner.Mutation
	UpdateMut(c *domain.Category) *spanner.Mutation
}
