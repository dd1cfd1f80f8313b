package shared

import (
	"time"

	"github.com/google/uuid"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/models/m_outbox"
	commitplan "github.com/stockroom/inventory-service/internal/pkg/committer"
)

// PlanOutbox enriches each domain event into an outbox row and adds the
// insert mutations to the plan. Every usecase calls this after its domain
// operation so events always commit atomically with the aggregate write.
func PlanOutbox(plan *commitplan.Plan, outboxRepo contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       m_outbox.StatusPending,
			CreatedAtUTC: now,
		}))
	}
	return nil
}
