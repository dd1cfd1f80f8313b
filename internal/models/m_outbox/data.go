package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation constructs an insert mutation for the outbox table.
// processed_at starts NULL.
func InsertMutation(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColStatus, ColCreatedAt, ColProcessedAt},
		[]interface{}{eventID, eventType, aggregateID, payload, status, createdAt, nil},
	)
}
