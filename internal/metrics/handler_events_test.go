package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/nature-connect/market-backend/internal/eventengine"
	"github.com/nature-connect/market-backend/internal/eventengine/event"
)

func TestHandlerEvents_recordsDomainEvents(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := &sync.WaitGroup{}

	engine := eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: internalSrvWG,
		},
	)
	engine.RegisterEvents(
		event.ProductCreatedEventName,
		event.OrderReceivedEventName,
	)

	registry := NewRegistry()
	NewHandlerEvents(
		&HandlerEventsConfig{
			DoneCh:        doneCh,
			InternalSrvWG: internalSrvWG,
			EventEngine:   engine,
			Registry:      registry,
		},
	)

	require.NoError(t, engine.Publish(&event.Event{
		Name:    event.ProductCreatedEventName,
		Payload: &event.ProductCreatedEvent{ProductID: "p1", Price: 2},
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, engine.Publish(&event.Event{
			Name:    event.OrderReceivedEventName,
			Payload: &event.OrderReceivedEvent{OrderID: "ord_1", Total: 10, LineCount: 2},
		}))
	}

	// shutting the engine down drains the published events and closes the
	// subscriber channel, so all observations land before the assertions run
	close(doneCh)
	internalSrvWG.Wait()

	require.Equal(t, 1.0, testutil.ToFloat64(registry.ProductsCreated))
	require.Equal(t, 3.0, testutil.ToFloat64(registry.OrdersReceived))
}
