package eventengine

import (
	"fmt"
	"log"
	"sync"

	"github.com/nature-connect/market-backend/internal/eventengine/event"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
}

// eventEngine fans published events out to every subscriber of the event
// name. Registration and subscription happen during server wiring, before
// any request can publish, so the events map needs no locking.
type eventEngine struct {
	*EventEngineConfig
	eventEngineCh chan *event.Event
	events        map[event.EventName]*subscribers
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil {
		log.Fatalln("'eventEngineConfig' can not be nil")
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil {
		log.Fatalln("either DoneCh or InternalSrvWG is nil")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 8),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	log.Println("event engine is listening...")

	for {
		select {
		case <-e.DoneCh:
			log.Println("event engine is shutting down")
			close(e.eventEngineCh)

			// drain what was published before shutdown so no event is lost
			for ev := range e.eventEngineCh {
				e.broadcast(ev)
			}

			e.closeSubscriberChannels()
			return

		case ev, isOpened := <-e.eventEngineCh:
			if !isOpened {
				return
			}

			e.broadcast(ev)
		}
	}
}

func (e *eventEngine) broadcast(ev *event.Event) {
	subs, exists := e.events[ev.Name]
	if !exists {
		log.Printf(
			"event %v not found. check your event handler",
			ev.Name,
		)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			log.Printf(
				"subscriber %q addressCh is nil. check this event handler to make sure it has been initialized",
				subs.names[i],
			)
			continue
		}

		addressCh <- ev.Payload
	}
}

// RegisterEvents adds every event a publisher can emit to the engine.
//
// IMPORTANT: register an event before you try to publish or subscribe to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			log.Printf("event %v already registered", eventName)
			continue
		}

		e.events[eventName] = &subscribers{}
	}

	log.Println("registering events:", eventNames)
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event %q not found. make sure the publishing service called RegisterEvents before %q subscribed",
			toEventName,
			newSubscriber.Name,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(ev *event.Event) error {
	if _, exists := e.events[ev.Name]; !exists {
		return fmt.Errorf(
			"event %q not found. make sure the publishing service called RegisterEvents",
			ev.Name,
		)
	}

	e.eventEngineCh <- ev

	return nil
}

func (e *eventEngine) closeSubscriberChannels() {
	closed := make(map[chan<- any]bool)

	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			if addressCh == nil || closed[addressCh] {
				continue
			}

			close(addressCh)
			closed[addressCh] = true
		}
	}
}
