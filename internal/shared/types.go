package shared

// Asynq task types shared by the API (producer) and cmd/worker (consumer)
const (
	TypeOrderPlaced  = "order:placed"
	TypeOrdersDigest = "order:pending_digest"

	TypeDeleteBookCover = "book:delete_cover"
)

// Asynq queues
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)
