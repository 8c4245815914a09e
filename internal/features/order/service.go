package order

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nature-connect/market-backend/internal/eventengine"
	"github.com/nature-connect/market-backend/internal/eventengine/event"
	"github.com/nature-connect/market-backend/internal/features/product"
	"github.com/nature-connect/market-backend/internal/servererrors"
)

type Storer interface {
	append(ctx context.Context, order *Order) error
}

// catalog is the slice of the product feature the order processor needs: a
// read of the current catalog to resolve identifiers and prices.
type catalog interface {
	List(ctx context.Context) ([]product.Product, error)
}

type Service struct {
	store       Storer
	catalog     catalog
	eventEngine eventengine.RegisterPublisher
}

func NewService(store Storer, catalog catalog, eventEngine eventengine.RegisterPublisher) *Service {
	eventEngine.RegisterEvents(event.OrderReceivedEventName)

	return &Service{
		store:       store,
		catalog:     catalog,
		eventEngine: eventEngine,
	}
}

// Submit validates the requested items against the current catalog, prices
// every surviving line from the catalog (never from the client), and appends
// the resulting order.
//
// Lines referencing unknown products or carrying a non-positive quantity are
// dropped, not fatal; the submission only fails when nothing survives.
func (s *Service) Submit(ctx context.Context, req *SubmitOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, servererrors.ErrOrderMustIncludeItems
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	productByID := make(map[string]product.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	items := make([]LineItem, 0, len(req.Items))
	var total float64

	for _, requested := range req.Items {
		p, found := productByID[requested.ProductID]
		quantity := float64(requested.Quantity)

		// !(quantity > 0) also drops NaN, which <= 0 would let through
		if !found || !(quantity > 0) || math.IsInf(quantity, 0) {
			continue
		}

		lineTotal := p.Price * quantity
		total += lineTotal

		items = append(items, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
	}

	if len(items) == 0 {
		return nil, servererrors.ErrNoValidItems
	}

	newOrder := &Order{
		ID:        "ord_" + uuid.NewString(),
		Items:     items,
		Total:     total,
		Customer:  req.Customer,
		CreatedAt: time.Now().UTC(),
		Status:    StatusReceived,
	}

	if err := s.store.append(ctx, newOrder); err != nil {
		return nil, err
	}

	receivedEvent := &event.OrderReceivedEvent{
		OrderID:   newOrder.ID,
		Total:     newOrder.Total,
		LineCount: len(newOrder.Items),
	}
	if err := s.eventEngine.Publish(
		&event.Event{
			Name:    receivedEvent.GetEventName(),
			Payload: receivedEvent,
		},
	); err != nil {
		log.Printf("failed to publish %s: %v", event.OrderReceivedEventName, err)
	}

	return newOrder, nil
}
