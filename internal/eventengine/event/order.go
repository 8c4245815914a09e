package event

const (
	OrderReceivedEventName EventName = "order.received"
)

type OrderReceivedEvent struct {
	OrderID   string
	Total     float64
	LineCount int
}

func (e *OrderReceivedEvent) GetEventName() EventName {
	return OrderReceivedEventName
}
