package list_products

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/app/product/dto"
	"github.com/stockroom/inventory-service/internal/app/product/queries/get_product"
)

// SpannerListProductsQuery runs the filtered/paginated product list against
// Spanner. It issues two statements per call: one for the page of rows and
// one for the total count before pagination.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductDTO, int64, error) {
	where, params := buildWhere(filter)

	tx := q.Client.Single()
	defer tx.Close()

	total, err := q.count(ctx, tx, where, params)
	if err != nil {
		return nil, 0, err
	}

	stmt := spanner.Statement{
		SQL: `SELECT p.product_id, p.name, p.description, p.price, p.stock_quantity,
		             p.category_id, c.name AS category_name, p.version,
		             p.created_at, p.updated_at
		      FROM products p
		      JOIN categories c ON p.category_id = c.category_id
		      WHERE ` + where + `
		      ORDER BY ` + orderBy(filter) + `
		      LIMIT @limit OFFSET @offset`,
		Params: params,
	}
	stmt.Params["limit"] = int64(filter.Limit)
	stmt.Params["offset"] = int64(filter.Offset)

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*dto.ProductDTO, 0, filter.Limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		item, err := get_product.ScanProductRow(row)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (q *SpannerListProductsQuery) count(ctx context.Context, tx *spanner.ReadOnlyTransaction, where string, params map[string]interface{}) (int64, error) {
	stmt := spanner.Statement{
		SQL: `SELECT COUNT(*) FROM products p
		      JOIN categories c ON p.category_id = c.category_id
		      WHERE ` + where,
		Params: params,
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// buildWhere assembles the conjunctive WHERE clause. Soft-deleted rows are
// always excluded; every present filter adds one predicate.
func buildWhere(filter contracts.ProductFilter) (string, map[string]interface{}) {
	preds := []string{"p.deleted_at IS NULL"}
	params := map[string]interface{}{}

	if filter.SearchTerm != nil {
		preds = append(preds, "(LOWER(p.name) LIKE @search OR LOWER(p.description) LIKE @search)")
		params["search"] = "%" + strings.ToLower(*filter.SearchTerm) + "%"
	}
	if filter.CategoryID != nil {
		preds = append(preds, "p.category_id = @categoryId")
		params["categoryId"] = *filter.CategoryID
	}
	if filter.MinPrice != nil {
		preds = append(preds, "p.price >= @minPrice")
		params["minPrice"] = spanner.NullNumeric{Numeric: *filter.MinPrice, Valid: true}
	}
	if filter.MaxPrice != nil {
		preds = append(preds, "p.price <= @maxPrice")
		params["maxPrice"] = spanner.NullNumeric{Numeric: *filter.MaxPrice, Valid: true}
	}
	if filter.LowStockOnly {
		preds = append(preds, "p.stock_quantity < @lowStockThreshold")
		params["lowStockThreshold"] = int64(domain.LowStockThreshold)
	}

	return strings.Join(preds, " AND "), params
}

// orderBy maps the whitelisted sort keys onto column expressions. Unknown
// keys cannot reach here (the request normalizes them), but name remains the
// safe default. product_id breaks ties so pages are stable.
func orderBy(filter contracts.ProductFilter) string {
	col := "p.name"
	switch filter.SortBy {
	case contracts.SortByPrice:
		col = "p.price"
	case contracts.SortByStock:
		col = "p.stock_quantity"
	case contracts.SortByCreatedAt:
		col = "p.created_at"
	}

	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, p.product_id ASC", col, dir)
}
