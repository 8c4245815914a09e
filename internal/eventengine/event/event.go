package event

type SubscriberName string
type EventName string

type Event struct {
	Name    EventName
	Payload any
}

type Subscriber struct {
	Name      SubscriberName // name of the listening event handler
	AddressCh chan<- any     // where the subscriber receives payloads
}
