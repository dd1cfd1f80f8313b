package update_stock

import (
	"context"
	"errors"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Mode selects how Quantity is applied to the current stock.
type Mode string

const (
	ModeSet      Mode = "set"      // replace with an absolute value
	ModeIncrease Mode = "increase" // add units
	ModeDecrease Mode = "decrease" // remove units
)

var ErrUnknownMode = errors.New("unknown stock update mode")

// Request is the application-level stock adjustment request.
type Request struct {
	ProductID string
	Quantity  int64
	Mode      Mode
}

// Interactor adjusts product stock. The low-stock crossing detection lives in
// the aggregate; this layer only routes the mode and commits the result.
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

	switch req.Mode {
	case ModeSet:
		err = product.UpdateStock(req.Quantity, now)
	case ModeIncrease:
		err = product.IncreaseStock(req.Quantity, now)
	case ModeDecrease:
		err = product.DecreaseStock(req.Quantity, now)
	default:
		return ErrUnknownMode
	}
	if err != nil {
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
