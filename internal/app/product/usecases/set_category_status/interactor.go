package set_category_status

import (
	"context"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level category status request.
type Request struct {
	CategoryID string
	Active     bool
}

// Interactor activates or deactivates a category. Setting the status a
// category already has commits nothing.
type Interactor struct {
	ReadModel    contracts.ReadModel
	CategoryRepo contracts.CategoryRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	Clock        clock.Clock
}

func NewInteractor(rm contracts.ReadModel, catRepo contracts.CategoryRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ReadModel:    rm,
		CategoryRepo: catRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	category, err := shared.LoadCategory(ctx, it.ReadModel, req.CategoryID)
	if err != nil {
		return err
	}

	if req.Active {
		category.Activate(now)
	} else {
		category.Deactivate(now)
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CategoryRepo.UpdateMut(category))
	if err := shared.PlanOutbox(plan, it.OutboxRepo, category.DomainEvents(), now); err != nil {
		return err
	}
	if plan.IsEmpty() {
		return nil
	}

	return it.Committer.Apply(ctx, plan)
}
