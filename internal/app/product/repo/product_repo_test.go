package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/models/m_product"
)

func newProduct(t *testing.T, stock int64) *domain.Product {
	t.Helper()
	now := time.Now().UTC()
	price, err := domain.NewPriceFromDecimal("19.99")
	require.NoError(t, err)
	sq, err := domain.NewStockQuantity(stock)
	require.NoError(t, err)
	p, err := domain.NewProduct("prod-1", "Test Product", "a description", price, "cat-1", sq, now)
	require.NoError(t, err)
	return p
}

func TestInsertMut(t *testing.T) {
	r := NewProductRepo()
	p := newProduct(t, 25)

	// Inspect values map (test-friendly)
	values := buildInsertValues(p)
	require.NotNil(t, values)

	assert.Equal(t, "prod-1", values[m_product.ColProductID])
	assert.Equal(t, p.Price().Rat(), values[m_product.ColPrice])
	assert.Equal(t, int64(25), values[m_product.ColStockQuantity])
	assert.Equal(t, "cat-1", values[m_product.ColCategoryID])
	assert.Equal(t, int64(1), values[m_product.ColVersion])

	// deleted_at must be present and nil on insert
	v, ok := values[m_product.ColDeletedAt]
	require.True(t, ok, "expected key %s in insert map", m_product.ColDeletedAt)
	assert.Nil(t, v)

	mut := r.InsertMut(p)
	require.NotNil(t, mut)
}

func TestInsertMut_EmptyDescriptionStoredAsNull(t *testing.T) {
	now := time.Now().UTC()
	price, err := domain.NewPriceFromDecimal("5")
	require.NoError(t, err)
	sq, err := domain.NewStockQuantity(1)
	require.NoError(t, err)
	p, err := domain.NewProduct("prod-2", "Bare", "", price, "cat-1", sq, now)
	require.NoError(t, err)

	values := buildInsertValues(p)
	v, ok := values[m_product.ColDescription]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestUpdateMut_NoChangesReturnsNil(t *testing.T) {
	r := NewProductRepo()
	p := newProduct(t, 25)
	p.Changes().Clear()

	assert.Nil(t, r.UpdateMut(p))
	assert.Nil(t, r.UpdateMut(nil))
}

func TestUpdateMut_StockChange(t *testing.T) {
	r := NewProductRepo()
	p := newProduct(t, 25)
	p.Changes().Clear()

	require.NoError(t, p.UpdateStock(7, time.Now().UTC()))

	mut := r.UpdateMut(p)
	require.NotNil(t, mut)

	// only stock, version and updated_at should be dirty
	assert.True(t, p.Changes().Dirty(domain.FieldStockQuantity))
	assert.True(t, p.Changes().Dirty(domain.FieldVersion))
	assert.False(t, p.Changes().Dirty(domain.FieldName))
	assert.False(t, p.Changes().Dirty(domain.FieldPrice))
}

func TestDeleteMut(t *testing.T) {
	r := NewProductRepo()
	p := newProduct(t, 25)
	p.Changes().Clear()

	require.NoError(t, p.Delete(time.Now().UTC()))

	mut := r.DeleteMut(p)
	require.NotNil(t, mut)
	assert.True(t, p.Changes().Dirty(domain.FieldDeletedAt))
}
