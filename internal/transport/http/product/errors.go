package product

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/app/product/queries/list_products"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_stock"
)

// httpStatus translates domain sentinel errors into HTTP status codes.
// Unknown errors become 500.
func httpStatus(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout
	}

	// Not found
	if errors.Is(err, domain.ErrProductNotFound) ||
		errors.Is(err, domain.ErrCategoryNotFound) ||
		errors.Is(err, spanner.ErrRowNotFound) ||
		status.Code(err) == codes.NotFound {
		return http.StatusNotFound
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrEmptyCategoryID),
		errors.Is(err, domain.ErrEmptyCategoryName),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidPriceFormat),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrNonPositiveQuantity),
		errors.Is(err, update_stock.ErrUnknownMode),
		errors.Is(err, list_products.ErrInvalidPage),
		errors.Is(err, list_products.ErrInvalidPageSize),
		errors.Is(err, list_products.ErrInvalidPriceFilter),
		errors.Is(err, list_products.ErrInvalidPriceRange):
		return http.StatusBadRequest
	}

	// Conflict (business rules / state)
	if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrProductDeleted) {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// respondError writes the mapped status with a JSON error body. Internal
// errors get a generic message so storage details never leak to clients.
func respondError(c *gin.Context, err error) {
	code := httpStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}
