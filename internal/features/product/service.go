package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nature-connect/market-backend/internal/eventengine"
	"github.com/nature-connect/market-backend/internal/eventengine/event"
	"github.com/nature-connect/market-backend/internal/servererrors"
	"github.com/nature-connect/market-backend/internal/validate"
)

const (
	defaultUnit     = "unit"
	defaultStock    = 100
	defaultCategory = "General"
)

type Storer interface {
	append(ctx context.Context, product *Product) error
	list(ctx context.Context) ([]Product, error)
}

type Service struct {
	store       Storer
	eventEngine eventengine.RegisterPublisher
}

func NewService(store Storer, eventEngine eventengine.RegisterPublisher) *Service {
	eventEngine.RegisterEvents(event.ProductCreatedEventName)

	return &Service{
		store:       store,
		eventEngine: eventEngine,
	}
}

// List returns the full catalog in insertion order.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []Product{}
	}

	return products, nil
}

// Create validates the draft, fills defaults, assigns a fresh identifier and
// appends the product to the catalog. The draft's name must be present and
// its price numeric; anything else is optional.
func (s *Service) Create(ctx context.Context, draft *CreateProductRequest) (*Product, error) {
	if err := validate.StructFields(draft); err != nil {
		return nil, servererrors.Wrap(
			http.StatusBadRequest,
			servererrors.CodeBadRequest,
			servererrors.ErrMissingProductFields.Message,
			err,
		)
	}

	stock := defaultStock
	if draft.Stock != nil {
		stock = *draft.Stock
	}

	unit := draft.Unit
	if unit == "" {
		unit = defaultUnit
	}

	category := draft.Category
	if category == "" {
		category = defaultCategory
	}

	newProduct := &Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Price:       *draft.Price,
		Unit:        unit,
		Stock:       stock,
		ImageURL:    draft.ImageURL,
		Description: draft.Description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.append(ctx, newProduct); err != nil {
		return nil, err
	}

	createdEvent := &event.ProductCreatedEvent{
		ProductID: newProduct.ID,
		Category:  newProduct.Category,
		Price:     newProduct.Price,
	}
	if err := s.eventEngine.Publish(
		&event.Event{
			Name:    createdEvent.GetEventName(),
			Payload: createdEvent,
		},
	); err != nil {
		log.Printf("failed to publish %s: %v", event.ProductCreatedEventName, err)
	}

	return newProduct, nil
}
