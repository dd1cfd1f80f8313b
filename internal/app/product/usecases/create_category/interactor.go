package create_category

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	shared "github.com/stockroom/inventory-service/internal/app/product/usecases/shared"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// Request is the application-level create-category request.
type Request struct {
	Name        string
	Description string
}

// Interactor creates a category; new categories start active.
type Interactor struct {
	CategoryRepo contracts.CategoryRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	Clock        clock.Clock
}

func NewInteractor(catRepo contracts.CategoryRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		CategoryRepo: catRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	id := uuid.New().String()
	category, err := domain.NewCategory(id, req.Name, req.Description, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CategoryRepo.InsertMut(category))
	if err := shared.PlanOutbox(plan, it.OutboxRepo, category.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return category.ID(), nil
}
