package change_category

import (
	"context"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level change-category request.
type Request struct {
	ProductID  string
	CategoryID string
}

// Interactor moves a product to another category. The target category must
// exist; the product keeps its other fields untouched.
type Interactor struct {
	ReadModel   contracts.ReadModel
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

func NewInteractor(rm contracts.ReadModel, prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ReadModel:   rm,
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	if err := shared.EnsureCategoryExists(ctx, it.ReadModel, req.CategoryID); err != nil {
		return err
	}

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}

	if err := product.ChangeCategory(req.CategoryID, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.PlanOutbox(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}
	if plan.IsEmpty() {
		return nil
	}

	return it.Committer.Apply(ctx, plan)
}
