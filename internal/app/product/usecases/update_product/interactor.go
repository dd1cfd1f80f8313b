package update_product

import (
	"context"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level update-product request. All three fields
// replace the current values; Price is a decimal string.
type Request struct {
	ProductID   string
	Name        string
	Description string
	Price       string
}

// Interactor updates product basic info following the load-mutate-commit flow.
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

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}

	price := domain.ZeroPrice()
	if req.Price != "" {
		price, err = domain.NewPriceFromDecimal(req.Price)
		if err != nil {
			return err
		}
	}

	if err := product.UpdateBasicInfo(req.Name, req.Description, price, now); err != nil {
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
