package product

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stockroom/inventory-service/internal/app/product/queries/list_products"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// bindListRequest maps list query parameters onto the query request. Page
// size is clamped to the query's maximum here so oversized values degrade to
// a full page instead of a 400.
func bindListRequest(c *gin.Context) (list_products.Request, error) {
	req := list_products.Request{
		Page:          defaultPage,
		PageSize:      defaultPageSize,
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("page must be an integer")
		}
		req.Page = page
	}
	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("pageSize must be an integer")
		}
		if size > list_products.MaxPageSize {
			size = list_products.MaxPageSize
		}
		req.PageSize = size
	}

	req.SearchTerm = queryPtr(c, "search")
	req.CategoryID = queryPtr(c, "categoryId")
	req.MinPrice = queryPtr(c, "minPrice")
	req.MaxPrice = queryPtr(c, "maxPrice")

	if raw := c.Query("lowStockOnly"); raw != "" {
		low, err := strconv.ParseBool(raw)
		if err != nil {
			return req, fmt.Errorf("lowStockOnly must be a boolean")
		}
		req.LowStockOnly = low
	}

	return req, nil
}

func queryPtr(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}
