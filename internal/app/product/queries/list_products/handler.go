package list_products

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/dto"
)

// Default cache lifetimes for list results.
const (
	DefaultSliding  = 15 * time.Minute
	DefaultAbsolute = time.Hour
)

// Result is the cached/returned shape of a product list query.
type Result = dto.PaginatedResult[*dto.ProductDTO]

// Handler serves product list queries cache-aside: hit the cache by the
// request fingerprint, fall back to the read model on a miss, then populate
// the cache. Cache failures are logged and otherwise invisible to callers.
type Handler struct {
	readModel contracts.ReadModel
	cache     contracts.Cache
	log       *slog.Logger
	sliding   time.Duration
	absolute  time.Duration
}

func NewHandler(readModel contracts.ReadModel, cache contracts.Cache, log *slog.Logger, sliding, absolute time.Duration) *Handler {
	if sliding <= 0 {
		sliding = DefaultSliding
	}
	if absolute <= 0 {
		absolute = DefaultAbsolute
	}
	return &Handler{
		readModel: readModel,
		cache:     cache,
		log:       log,
		sliding:   sliding,
		absolute:  absolute,
	}
}

func (h *Handler) Execute(ctx context.Context, req Request) (*Result, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := req.Fingerprint()

	if cached := h.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	filter, err := req.toFilter()
	if err != nil {
		return nil, err
	}

	items, total, err := h.readModel.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := dto.NewPaginatedResult(items, req.Page, req.PageSize, total)
	h.toCache(ctx, key, result)

	return result, nil
}

// fromCache returns the cached result for key, or nil on a miss. Store errors
// and undecodable payloads count as misses.
func (h *Handler) fromCache(ctx context.Context, key string) *Result {
	const op = "list_products.Handler.fromCache"

	raw, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.log.Warn("cache get failed, falling back to read model",
			slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	if !found {
		return nil
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		h.log.Warn("discarding undecodable cache entry",
			slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		if delErr := h.cache.Delete(ctx, key); delErr != nil {
			h.log.Warn("cache delete failed",
				slog.String("op", op), slog.String("key", key), slog.String("error", delErr.Error()))
		}
		return nil
	}
	return &result
}

func (h *Handler) toCache(ctx context.Context, key string, result *Result) {
	const op = "list_products.Handler.toCache"

	raw, err := json.Marshal(result)
	if err != nil {
		h.log.Warn("cache encode failed",
			slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := h.cache.Set(ctx, key, raw, h.sliding, h.absolute); err != nil {
		h.log.Warn("cache set failed",
			slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
	}
}
