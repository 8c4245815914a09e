package order

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

// append rewrites the whole orders collection with the new order at the end,
// under the collection lock so a concurrent submission cannot overwrite this
// one's append.
func (s *Store) append(ctx context.Context, order *Order) error {
	err := s.store.Mutate(Collection, func() error {
		orders := storage.Load[Order](s.store, Collection)
		orders = append(orders, *order)

		return storage.Save(s.store, Collection, orders)
	})
	if err != nil {
		return fmt.Errorf("failed to append order in order store: %w", err)
	}

	return nil
}
