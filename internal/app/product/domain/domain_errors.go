package domain

import "errors"

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductDeleted indicates a mutation on a soft-deleted product.
	ErrProductDeleted = errors.New("product is deleted")

	// ErrInsufficientStock indicates a stock decrease exceeding the available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNonPositiveQuantity indicates a stock adjustment with a quantity <= 0.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
)

// Domain errors for value objects
var (
	// ErrNegativePrice indicates an attempt to construct or derive a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPriceFormat indicates a price string that does not parse as a decimal.
	ErrInvalidPriceFormat = errors.New("invalid price format")

	// ErrNegativeStock indicates an attempt to construct or derive a negative stock quantity.
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

// Domain errors for Product validation
var (
	// ErrEmptyProductName indicates an attempt to create/update a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrEmptyCategoryID indicates a product created or re-assigned without a category reference.
	ErrEmptyCategoryID = errors.New("category id cannot be empty")
)

// Domain errors for Category aggregate
var (
	// ErrCategoryNotFound indicates that a category with the given ID does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrEmptyCategoryName indicates an attempt to create/update a category with an empty name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)
