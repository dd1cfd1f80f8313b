package list_products

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/dto"
)

type fakeReadModel struct {
	items []*dto.ProductDTO
	total int64
	calls int
	err   error
}

func (f *fakeReadModel) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductDTO, int64, error) {
	f.calls++
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

func (f *fakeReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReadModel) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReadModel) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return nil, errors.New("not implemented")
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, sliding, absolute time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleItems() []*dto.ProductDTO {
	return []*dto.ProductDTO{
		{ProductID: "prod-1", Name: "Widget", Price: "19.99", StockQuantity: 25, CategoryID: "cat-1", CategoryName: "Tools"},
		{ProductID: "prod-2", Name: "Gadget", Price: "5.00", StockQuantity: 4, CategoryID: "cat-1", CategoryName: "Tools", IsLowStock: true},
	}
}

func TestExecute_MissThenHit(t *testing.T) {
	rm := &fakeReadModel{items: sampleItems(), total: 42}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	req := Request{Page: 1, PageSize: 20}

	first, err := h.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, int64(42), first.TotalCount)
	assert.Len(t, first.Items, 2)

	// warm cache: read model untouched, same logical result
	second, err := h.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
	assert.Equal(t, first, second)
}

func TestExecute_ClearedCacheSameResult(t *testing.T) {
	rm := &fakeReadModel{items: sampleItems(), total: 2}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	req := Request{Page: 1, PageSize: 20, SortBy: "price"}

	first, err := h.Execute(context.Background(), req)
	require.NoError(t, err)

	cache.entries = map[string][]byte{}

	second, err := h.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, rm.calls)
	assert.Equal(t, first, second)
}

func TestExecute_CacheGetFailureFallsBack(t *testing.T) {
	rm := &fakeReadModel{items: sampleItems(), total: 2}
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	result, err := h.Execute(context.Background(), Request{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
	assert.Len(t, result.Items, 2)
}

func TestExecute_CacheSetFailureSwallowed(t *testing.T) {
	rm := &fakeReadModel{items: sampleItems(), total: 2}
	cache := newFakeCache()
	cache.setErr = errors.New("connection refused")
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	result, err := h.Execute(context.Background(), Request{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestExecute_CorruptCacheEntryDiscarded(t *testing.T) {
	rm := &fakeReadModel{items: sampleItems(), total: 2}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	req := Request{Page: 1, PageSize: 20}
	key := req.Normalized().Fingerprint()
	cache.entries[key] = []byte("{not json")

	result, err := h.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
	assert.Len(t, result.Items, 2)

	// the corrupt entry was replaced by a decodable one
	_, found := cache.entries[key]
	assert.True(t, found)
	third, err := h.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
	assert.Equal(t, result, third)
}

func TestExecute_ValidationFailureSkipsEverything(t *testing.T) {
	rm := &fakeReadModel{}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	_, err := h.Execute(context.Background(), Request{Page: 0, PageSize: 20})
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = h.Execute(context.Background(), Request{Page: 1, PageSize: 500})
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	assert.Equal(t, 0, rm.calls)
	assert.Empty(t, cache.entries)
}

func TestExecute_ReadModelErrorNotCached(t *testing.T) {
	rm := &fakeReadModel{err: errors.New("spanner unavailable")}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	_, err := h.Execute(context.Background(), Request{Page: 1, PageSize: 20})
	require.Error(t, err)
	assert.Empty(t, cache.entries)
}

func TestExecute_EmptyPageCached(t *testing.T) {
	rm := &fakeReadModel{items: nil, total: 0}
	cache := newFakeCache()
	h := NewHandler(rm, cache, testLogger(), 0, 0)

	result, err := h.Execute(context.Background(), Request{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, cache.sets)

	_, err = h.Execute(context.Background(), Request{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, rm.calls)
}
