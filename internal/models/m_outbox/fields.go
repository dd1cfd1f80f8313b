package m_outbox

// Field constants for the outbox_events table.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// Event statuses. Rows are inserted as pending and flipped by the relay that
// publishes them downstream.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)
