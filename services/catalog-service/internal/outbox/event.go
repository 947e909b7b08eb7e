package outbox

// Event is the domain event envelope written to the outbox table. The
// Kafka topic name equals EventType.
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

const (
	AggregateProduct = "product"
	AggregateZone    = "delivery_zone"

	EventProductUpdated = "catalog.product.updated.v1"
	EventZoneUpdated    = "catalog.zone.updated.v1"
)
