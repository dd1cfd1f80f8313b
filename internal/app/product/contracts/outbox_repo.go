package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OutboxRepo builds insert mutations for the transactional outbox. Like the
// other write-side repos it never applies anything itself; the mutations join
// the aggregate write in one commit plan so events cannot outlive a rolled
// back write.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is one row of the outbox_events table. The usecases enrich each
// drained domain event into this shape: a fresh event id, the event's type
// and aggregate id, the JSON payload from the shared marshaller, and the
// pending status the downstream relay flips once published.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
