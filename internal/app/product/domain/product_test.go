package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, decimal string) *Price {
	t.Helper()
	p, err := NewPriceFromDecimal(decimal)
	require.NoError(t, err)
	return p
}

func mustStock(t *testing.T, v int64) StockQuantity {
	t.Helper()
	s, err := NewStockQuantity(v)
	require.NoError(t, err)
	return s
}

func newTestProduct(t *testing.T, stock int64, now time.Time) *Product {
	t.Helper()
	p, err := NewProduct("prod-1", "Widget", "a widget", mustPrice(t, "9.99"), "cat-1", mustStock(t, stock), now)
	require.NoError(t, err)
	p.ClearEvents()
	p.Changes().Clear()
	return p
}

func TestNewProduct(t *testing.T) {
	now := time.Now().UTC()

	p, err := NewProduct("prod-1", "  Widget  ", "desc", mustPrice(t, "9.99"), "cat-1", mustStock(t, 5), now)
	require.NoError(t, err)

	assert.Equal(t, "Widget", p.Name())
	assert.Equal(t, "cat-1", p.CategoryID())
	assert.Equal(t, int64(1), p.Version())
	assert.False(t, p.IsDeleted())

	// exactly one creation event, even though initial stock is below threshold
	events := p.DomainEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(*ProductCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "prod-1", created.AggregateID())
	assert.Equal(t, int64(5), created.StockQuantity)
}

func TestNewProduct_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewProduct("p", "   ", "", mustPrice(t, "1"), "cat-1", mustStock(t, 0), now)
	require.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("p", "Widget", "", mustPrice(t, "1"), "  ", mustStock(t, 0), now)
	require.ErrorIs(t, err, ErrEmptyCategoryID)
}

func TestUpdateBasicInfo(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 20, now)

	later := now.Add(time.Minute)
	require.NoError(t, p.UpdateBasicInfo("Gadget", "a gadget", mustPrice(t, "12.50"), later))

	assert.Equal(t, "Gadget", p.Name())
	assert.Equal(t, "12.50", p.Price().String())
	assert.Equal(t, int64(2), p.Version())
	assert.Equal(t, later, p.UpdatedAt())
	assert.True(t, p.Changes().Dirty(FieldName))
	assert.True(t, p.Changes().Dirty(FieldPrice))

	require.Len(t, p.DomainEvents(), 1)

	// empty name rejected
	err := p.UpdateBasicInfo("", "x", mustPrice(t, "1"), later)
	require.ErrorIs(t, err, ErrEmptyProductName)
}

func TestUpdateBasicInfo_NoChangeNoEvent(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 20, now)

	require.NoError(t, p.UpdateBasicInfo("Widget", "a widget", mustPrice(t, "9.99"), now.Add(time.Minute)))
	assert.Empty(t, p.DomainEvents())
	assert.Equal(t, int64(1), p.Version())
}

func TestUpdateStock_LowStockCrossing(t *testing.T) {
	now := time.Now().UTC()

	// 12 -> 7 crosses the threshold: stock event + low stock event
	p := newTestProduct(t, 12, now)
	require.NoError(t, p.UpdateStock(7, now))

	events := p.DomainEvents()
	require.Len(t, events, 2)
	low, ok := events[1].(*LowStockDetectedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(7), low.Quantity)
	assert.Equal(t, int64(LowStockThreshold), low.Threshold)
	assert.Equal(t, "Widget", low.Name)
}

func TestUpdateStock_NoEventBelowThreshold(t *testing.T) {
	now := time.Now().UTC()

	// 8 -> 5 stays below the threshold: only the stock event
	p := newTestProduct(t, 8, now)
	require.NoError(t, p.UpdateStock(5, now))

	events := p.DomainEvents()
	require.Len(t, events, 1)
	_, ok := events[0].(*ProductStockUpdatedEvent)
	require.True(t, ok)
}

func TestUpdateStock_CreateThenCrossScenario(t *testing.T) {
	now := time.Now().UTC()

	// Create at 5 (below threshold), raise to 12, drop to 7:
	// exactly one low-stock event, on the 12 -> 7 update.
	p, err := NewProduct("prod-1", "Widget", "desc", mustPrice(t, "9.99"), "cat-1", mustStock(t, 5), now)
	require.NoError(t, err)

	require.NoError(t, p.UpdateStock(12, now))
	require.NoError(t, p.UpdateStock(7, now))

	lowEvents := 0
	for _, ev := range p.DomainEvents() {
		if _, ok := ev.(*LowStockDetectedEvent); ok {
			lowEvents++
		}
	}
	assert.Equal(t, 1, lowEvents)
}

func TestUpdateStock_NegativeFails(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 5, now)

	require.ErrorIs(t, p.UpdateStock(-1, now), ErrNegativeStock)
	assert.Equal(t, int64(5), p.Stock().Value())
}

func TestIncreaseDecreaseStock(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 20, now)

	require.NoError(t, p.IncreaseStock(5, now))
	assert.Equal(t, int64(25), p.Stock().Value())

	require.NoError(t, p.DecreaseStock(10, now))
	assert.Equal(t, int64(15), p.Stock().Value())

	require.ErrorIs(t, p.IncreaseStock(0, now), ErrNonPositiveQuantity)
	require.ErrorIs(t, p.DecreaseStock(-2, now), ErrNonPositiveQuantity)
}

func TestDecreaseStock_InsufficientLeavesStockUnchanged(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 3, now)
	versionBefore := p.Version()

	require.ErrorIs(t, p.DecreaseStock(4, now), ErrInsufficientStock)
	assert.Equal(t, int64(3), p.Stock().Value())
	assert.Equal(t, versionBefore, p.Version())
	assert.Empty(t, p.DomainEvents())
}

func TestChangeCategory(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 20, now)

	require.NoError(t, p.ChangeCategory("cat-2", now))
	assert.Equal(t, "cat-2", p.CategoryID())
	require.Len(t, p.DomainEvents(), 1)

	require.ErrorIs(t, p.ChangeCategory("  ", now), ErrEmptyCategoryID)

	// same category is a no-op
	p.ClearEvents()
	require.NoError(t, p.ChangeCategory("cat-2", now))
	assert.Empty(t, p.DomainEvents())
}

func TestDelete_GuardsFurtherMutation(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, 20, now)

	require.NoError(t, p.Delete(now))
	assert.True(t, p.IsDeleted())
	require.NotNil(t, p.DeletedAt())
	require.Len(t, p.DomainEvents(), 1)

	// one-way: everything afterwards is rejected
	require.ErrorIs(t, p.Delete(now), ErrProductDeleted)
	require.ErrorIs(t, p.UpdateBasicInfo("X", "", mustPrice(t, "1"), now), ErrProductDeleted)
	require.ErrorIs(t, p.UpdateStock(1, now), ErrProductDeleted)
	require.ErrorIs(t, p.IncreaseStock(1, now), ErrProductDeleted)
	require.ErrorIs(t, p.DecreaseStock(1, now), ErrProductDeleted)
	require.ErrorIs(t, p.ChangeCategory("cat-9", now), ErrProductDeleted)
}

func TestReconstructProduct_NoEvents(t *testing.T) {
	now := time.Now().UTC()
	deleted := now.Add(-time.Hour)

	p := ReconstructProduct("prod-1", "Widget", "desc", mustPrice(t, "9.99"), mustStock(t, 3), "cat-1", 7, now.Add(-2*time.Hour), deleted, &deleted)

	assert.Empty(t, p.DomainEvents())
	assert.True(t, p.IsDeleted())
	assert.Equal(t, int64(7), p.Version())
	assert.False(t, p.Changes().HasChanges())
}
