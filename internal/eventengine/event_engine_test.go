package eventengine

import (
	"sync"
	"testing"

	"github.com/nature-connect/market-backend/internal/eventengine/event"
)

func Test_eventEngine(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers, 8),
		eventEngineCh: make(chan *event.Event, 1),
	}

	internalSrvWG.Add(1)
	go engine.listen()

	engine.RegisterEvents(event.OrderReceivedEventName)

	// two subscribers on the same event, each with their own address channel
	addressCh1 := make(chan any, 8)
	if err := engine.Subscribe(
		event.OrderReceivedEventName,
		&event.Subscriber{
			Name:      "test_subscriber.1",
			AddressCh: addressCh1,
		},
	); err != nil {
		t.Fatal(err)
	}

	addressCh2 := make(chan any, 8)
	if err := engine.Subscribe(
		event.OrderReceivedEventName,
		&event.Subscriber{
			Name:      "test_subscriber.2",
			AddressCh: addressCh2,
		},
	); err != nil {
		t.Fatal(err)
	}

	var received1, received2 int

	internalSrvWG.Add(1)
	go func() {
		defer internalSrvWG.Done()
		for range addressCh1 {
			received1++
		}
	}()

	internalSrvWG.Add(1)
	go func() {
		defer internalSrvWG.Done()
		for range addressCh2 {
			received2++
		}
	}()

	const published = 5
	for i := 0; i < published; i++ {
		err := engine.Publish(
			&event.Event{
				Name: event.OrderReceivedEventName,
				Payload: &event.OrderReceivedEvent{
					OrderID:   "ord_test",
					Total:     float64(i),
					LineCount: 1,
				},
			},
		)
		if err != nil {
			t.Fatal(err)
		}
	}

	close(doneCh)
	internalSrvWG.Wait()

	if received1 != published {
		t.Errorf("subscriber 1 received %d events, want %d", received1, published)
	}
	if received2 != published {
		t.Errorf("subscriber 2 received %d events, want %d", received2, published)
	}
}

func Test_eventEngine_publishUnregistered(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := NewEventEngine(
		&EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
	)

	err := engine.Publish(
		&event.Event{Name: "never.registered"},
	)
	if err == nil {
		t.Error("expected an error publishing an unregistered event")
	}

	close(doneCh)
	internalSrvWG.Wait()
}
