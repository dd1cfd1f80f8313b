package get_category

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/stockroom/inventory-service/internal/app/product/dto"
)

// SpannerCategoryQuery reads categories from Spanner directly.
type SpannerCategoryQuery struct {
	Client *spanner.Client
}

func NewSpannerCategoryQuery(client *spanner.Client) *SpannerCategoryQuery {
	return &SpannerCategoryQuery{Client: client}
}

func (q *SpannerCategoryQuery) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT c.category_id, c.name, c.description, c.active,
		             c.created_at, c.updated_at,
		             (SELECT COUNT(*) FROM products p
		              WHERE p.category_id = c.category_id AND p.deleted_at IS NULL) AS product_count
		      FROM categories c
		      WHERE c.category_id = @id`,
		Params: map[string]interface{}{"id": categoryID},
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

	return scanCategoryRow(row)
}

// ListCategories returns every category ordered by name, each with its count
// of live products.
func (q *SpannerCategoryQuery) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT c.category_id, c.name, c.description, c.active,
		             c.created_at, c.updated_at,
		             (SELECT COUNT(*) FROM products p
		              WHERE p.category_id = c.category_id AND p.deleted_at IS NULL) AS product_count
		      FROM categories c
		      ORDER BY c.name`,
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.CategoryDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		item, err := scanCategoryRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func scanCategoryRow(row *spanner.Row) (*dto.CategoryDTO, error) {
	var (
		id                   string
		name                 string
		description          spanner.NullString
		active               bool
		createdAt, updatedAt time.Time
		productCount         int64
	)

	if err := row.Columns(&id, &name, &description, &active, &createdAt, &updatedAt, &productCount); err != nil {
		return nil, err
	}

	out := &dto.CategoryDTO{
		CategoryID:   id,
		Name:         name,
		Active:       active,
		ProductCount: productCount,
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
