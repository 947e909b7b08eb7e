package outbox

// Event is the domain event envelope written to the outbox table in the
// same transaction as the state change it describes. The Kafka topic name
// equals EventType.
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

const (
	AggregateRentalOrder = "rental_order"

	EventOrderBooked    = "rental.order.booked.v1"
	EventOrderCancelled = "rental.order.cancelled.v1"
	EventOrderCompleted = "rental.order.completed.v1"
)
