// Package store holds the mutable order set, indexed per owning token.
package store

import (
	"context"
	"sync"

	orderModel "filmgate/internal/order/models"
	"filmgate/pkg/platform/sentinel"
)

// tokenOrders groups one registration's orders. The slice keeps creation
// order for listings; the maps serve the two lookup paths.
type tokenOrders struct {
	ordered []*orderModel.Order
	byFilm  map[int]*orderModel.Order
	byID    map[string]*orderModel.Order
}

// InMemory stores orders behind a single RWMutex. Every read-check-write
// sequence (Create's exclusivity check, Execute's validate-then-mutate) runs
// entirely under the write lock.
type InMemory struct {
	mu      sync.RWMutex
	byToken map[string]*tokenOrders
}

func NewInMemory() *InMemory {
	return &InMemory{byToken: make(map[string]*tokenOrders)}
}

// Create inserts the order if no order exists yet for its (token, film)
// pair, returning sentinel.ErrAlreadyUsed otherwise. The check and the
// insert share the lock, so concurrent creates for the same pair cannot
// both succeed.
func (s *InMemory) Create(_ context.Context, order orderModel.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.byToken[order.Token]
	if owned == nil {
		owned = &tokenOrders{
			byFilm: make(map[int]*orderModel.Order),
			byID:   make(map[string]*orderModel.Order),
		}
		s.byToken[order.Token] = owned
	}

	if _, exists := owned.byFilm[order.FilmID]; exists {
		return sentinel.ErrAlreadyUsed
	}

	stored := order
	owned.ordered = append(owned.ordered, &stored)
	owned.byFilm[stored.FilmID] = &stored
	owned.byID[stored.ID] = &stored
	return nil
}

// Find resolves the order for a (token, film) pair.
func (s *InMemory) Find(_ context.Context, token string, filmID int) (orderModel.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if owned := s.byToken[token]; owned != nil {
		if order, ok := owned.byFilm[filmID]; ok {
			return *order, nil
		}
	}
	return orderModel.Order{}, sentinel.ErrNotFound
}

// FindByID resolves an order by its ID, scoped to the owning token. An ID
// that exists under a different token is indistinguishable from a missing
// one, so order existence never leaks across identities.
func (s *InMemory) FindByID(_ context.Context, token, orderID string) (orderModel.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if owned := s.byToken[token]; owned != nil {
		if order, ok := owned.byID[orderID]; ok {
			return *order, nil
		}
	}
	return orderModel.Order{}, sentinel.ErrNotFound
}

// ListByToken returns the token's orders in creation order.
func (s *InMemory) ListByToken(_ context.Context, token string) []orderModel.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.byToken[token]
	if owned == nil {
		return nil
	}
	out := make([]orderModel.Order, 0, len(owned.ordered))
	for _, order := range owned.ordered {
		out = append(out, *order)
	}
	return out
}

// Execute runs a validate-then-mutate pair against one order as a single
// critical section. The order is resolved by (token, orderID); if validate
// returns an error the order is left untouched and the error is returned
// verbatim. Returns the updated order on success.
func (s *InMemory) Execute(
	_ context.Context,
	token, orderID string,
	validate func(*orderModel.Order) error,
	apply func(*orderModel.Order),
) (orderModel.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.byToken[token]
	if owned == nil {
		return orderModel.Order{}, sentinel.ErrNotFound
	}
	order, ok := owned.byID[orderID]
	if !ok {
		return orderModel.Order{}, sentinel.ErrNotFound
	}

	if err := validate(order); err != nil {
		return orderModel.Order{}, err
	}
	apply(order)
	return *order, nil
}
