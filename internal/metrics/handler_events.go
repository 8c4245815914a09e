package metrics

import (
	"log"
	"sync"

	"github.com/nature-connect/market-backend/internal/eventengine"
	"github.com/nature-connect/market-backend/internal/eventengine/event"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_event.metrics"

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.Subscriber
	Registry      *Registry
	AddressChSize uint16
}

type handlerEvents struct {
	*HandlerEventsConfig
	addressCh chan any
}

// NewHandlerEvents subscribes the metrics registry to the domain events the
// product and order services emit. Wire it after those services so the event
// names are already registered.
func NewHandlerEvents(cfg *HandlerEventsConfig) *handlerEvents {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Registry == nil {
		log.Fatalf(
			"either 'DoneCh', 'InternalSrvWG', 'EventEngine' or 'Registry' is nil in '%s'",
			subscriberName,
		)
	}

	he := &handlerEvents{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.addSubscriptions()

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvents) listen() {
	defer h.InternalSrvWG.Done()

	log.Printf("%s is listening...\n", subscriberName)

	// a for-select is not needed; the event engine closes the addressCh on
	// shutdown
	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.ProductCreatedEvent:
			h.Registry.ProductsCreated.Inc()

		case *event.OrderReceivedEvent:
			h.Registry.OrdersReceived.Inc()
			h.Registry.OrderTotal.Observe(ne.Total)
			h.Registry.OrderLines.Observe(float64(ne.LineCount))

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

// addSubscriptions subscribes the addressCh to every event this handler
// records.
func (h *handlerEvents) addSubscriptions() {
	subscribeToEventNames := [2]event.EventName{
		event.ProductCreatedEventName,
		event.OrderReceivedEventName,
	}

	for _, eventName := range subscribeToEventNames {
		err := h.EventEngine.Subscribe(
			eventName,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			log.Fatalf(
				"error in subscriber %q: error subscribing to events: %v\n",
				subscriberName,
				err,
			)
		}
	}
}
