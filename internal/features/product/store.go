package product

import (
	"context"
	"fmt"

	"github.com/nature-connect/market-backend/internal/storage"
)

type Store struct {
	store *storage.Store
}

func NewStore(store *storage.Store) *Store {
	return &Store{
		store: store,
	}
}

func (s *Store) list(ctx context.Context) ([]Product, error) {
	return storage.Load[Product](s.store, Collection), nil
}

// append rewrites the whole catalog with the new product at the end. The
// load-append-save cycle runs under the collection lock so concurrent
// creates cannot drop each other's record.
func (s *Store) append(ctx context.Context, product *Product) error {
	err := s.store.Mutate(Collection, func() error {
		products := storage.Load[Product](s.store, Collection)
		products = append(products, *product)

		return storage.Save(s.store, Collection, products)
	})
	if err != nil {
		return fmt.Errorf("failed to append product in product store: %w", err)
	}

	return nil
}
