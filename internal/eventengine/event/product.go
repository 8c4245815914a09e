package event

const (
	ProductCreatedEventName EventName = "product.created"
)

type ProductCreatedEvent struct {
	ProductID string
	Category  string
	Price     float64
}

func (e *ProductCreatedEvent) GetEventName() EventName {
	return ProductCreatedEventName
}
