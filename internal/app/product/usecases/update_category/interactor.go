package update_category

import (
	"context"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level update-category request.
type Request struct {
	CategoryID  string
	Name        string
	Description string
}

// Interactor updates category name and description.
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

	if err := category.UpdateInfo(req.Name, req.Description, now); err != nil {
		return err
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
