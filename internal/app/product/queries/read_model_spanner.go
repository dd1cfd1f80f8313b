package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/dto"
	"github.com/stockroom/inventory-service/internal/app/product/queries/get_category"
	"github.com/stockroom/inventory-service/internal/app/product/queries/get_product"
	"github.com/stockroom/inventory-service/internal/app/product/queries/list_products"
)

// SpannerReadModel composes the per-query Spanner implementations into the
// single read-side port the handlers and use cases depend on.
type SpannerReadModel struct {
	product  *get_product.SpannerGetProductQuery
	list     *list_products.SpannerListProductsQuery
	category *get_category.SpannerCategoryQuery
}

var _ contracts.ReadModel = (*SpannerReadModel)(nil)

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		product:  get_product.NewSpannerGetProductQuery(client),
		list:     list_products.NewSpannerListProductsQuery(client),
		category: get_category.NewSpannerCategoryQuery(client),
	}
}

func (m *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return m.product.GetProduct(ctx, productID)
}

func (m *SpannerReadModel) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductDTO, int64, error) {
	return m.list.ListProducts(ctx, filter)
}

func (m *SpannerReadModel) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error) {
	return m.category.GetCategory(ctx, categoryID)
}

func (m *SpannerReadModel) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return m.category.ListCategories(ctx)
}
