package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level create-product request.
// Price is a decimal string ("19.99"); an empty string means a zero price.
type Request struct {
	Name          string
	Description   string
	Price         string
	CategoryID    string
	StockQuantity int64
}

// Interactor creates a product and its outbox events in a single commit.
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

// Execute creates a new product and returns its id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	if err := shared.EnsureCategoryExists(ctx, it.ReadModel, req.CategoryID); err != nil {
		return "", err
	}

	price := domain.ZeroPrice()
	if req.Price != "" {
		var err error
		price, err = domain.NewPriceFromDecimal(req.Price)
		if err != nil {
			return "", err
		}
	}
	stock, err := domain.NewStockQuantity(req.StockQuantity)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	product, err := domain.NewProduct(id, req.Name, req.Description, price, req.CategoryID, stock, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))
	if err := shared.PlanOutbox(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return product.ID(), nil
}
