package delete_product

import (
	"context"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Interactor soft-deletes a product. The row stays in storage with deleted_at
// set; reads exclude it from then on.
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

func (it *Interactor) Execute(ctx context.Context, productID string) error {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, productID)
	if err != nil {
		return err
	}

	if err := product.Delete(now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.DeleteMut(product))
	if err := shared.PlanOutbox(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	return it.Committer.Apply(ctx, plan)
}
