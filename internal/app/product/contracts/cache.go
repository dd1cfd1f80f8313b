package contracts

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry sliding and
// absolute expiration. Get reports an absent or expired key as a miss
// (found == false), not an error; errors are reserved for store failures,
// which callers treat as a miss as well.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key. The entry expires after sliding time of
	// inactivity, and unconditionally once absolute time has passed since the
	// write, whichever comes first.
	Set(ctx context.Context, key string, value []byte, sliding, absolute time.Duration) error

	Delete(ctx context.Context, keys ...string) error
}
