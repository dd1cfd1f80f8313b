package shared

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/spanner"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/app/product/utils"
)

// LoadProduct fetches a product through the read model and reconstructs the
// aggregate for a write operation. Soft-deleted rows are invisible to the
// read model, so they surface as ErrProductNotFound here.
func LoadProduct(ctx context.Context, readModel contracts.ReadModel, productID string) (*domain.Product, error) {
	d, err := readModel.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, spanner.ErrRowNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	price, err := domain.NewPriceFromDecimal(d.Price)
	if err != nil {
		return nil, err
	}
	stock, err := domain.NewStockQuantity(d.StockQuantity)
	if err != nil {
		return nil, err
	}

	description := ""
	if d.Description != nil {
		description = *d.Description
	}

	return domain.ReconstructProduct(
		d.ProductID,
		d.Name,
		description,
		price,
		stock,
		d.CategoryID,
		d.Version,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
		utils.ParseTimePtr(d.DeletedAt),
	), nil
}

// LoadCategory fetches a category through the read model and reconstructs the
// aggregate for a write operation.
func LoadCategory(ctx context.Context, readModel contracts.ReadModel, categoryID string) (*domain.Category, error) {
	d, err := readModel.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, spanner.ErrRowNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	description := ""
	if d.Description != nil {
		description = *d.Description
	}

	return domain.ReconstructCategory(
		d.CategoryID,
		d.Name,
		description,
		d.Active,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	), nil
}

// EnsureCategoryExists verifies the target category before a product is
// created in it or moved into it. A blank id is a validation failure, not a
// lookup miss.
func EnsureCategoryExists(ctx context.Context, readModel contracts.ReadModel, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return domain.ErrEmptyCategoryID
	}
	_, err := readModel.GetCategory(ctx, categoryID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}
