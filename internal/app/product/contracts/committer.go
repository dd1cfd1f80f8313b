package contracts

import (
	"context"

	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Committer is a small abstraction the usecases call to apply a collection
// of mutations atomically. This keeps usecases independent of storage driver
// details and makes the write path swappable in tests.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
