package get_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/app/product/dto"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches a single product row with its category name resolved.
// Soft-deleted products are treated as absent.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT p.product_id, p.name, p.description, p.price, p.stock_quantity,
		             p.category_id, c.name AS category_name, p.version,
		             p.created_at, p.updated_at
		      FROM products p
		      JOIN categories c ON p.category_id = c.category_id
		      WHERE p.product_id = @id AND p.deleted_at IS NULL`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, spanner.ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}

	return ScanProductRow(row)
}

// ScanProductRow decodes one product row (see the column list above) into a DTO.
// Shared with the list query, which selects the same columns.
func ScanProductRow(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id                   string
		name                 string
		description          spanner.NullString
		price                spanner.NullNumeric
		stockQuantity        int64
		categoryID           string
		categoryName         string
		version              int64
		createdAt, updatedAt time.Time
	)

	if err := row.Columns(&id, &name, &description, &price, &stockQuantity,
		&categoryID, &categoryName, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	priceStr := "0.00"
	if price.Valid {
		priceStr = price.Numeric.FloatString(2)
	}

	out := &dto.ProductDTO{
		ProductID:     id,
		Name:          name,
		Price:         priceStr,
		StockQuantity: stockQuantity,
		CategoryID:    categoryID,
		CategoryName:  categoryName,
		IsLowStock:    stockQuantity < domain.LowStockThreshold,
		Version:       version,
	}

	if description.Valid {
		desc := description.StringVal
		out.Description = &desc
	}

	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	out.UpdatedAt = &u

	return out, nil
}
