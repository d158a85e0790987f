// Package ownership orchestrates the registration/film/order lifecycle: it
// resolves bearer identities, validates films and formats against the
// catalog, and is the only writer to the order store.
package ownership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"filmgate/internal/catalog"
	filmModel "filmgate/internal/catalog/models"
	orderModel "filmgate/internal/order/models"
	"filmgate/internal/platform/metrics"
	regModel "filmgate/internal/registration/models"
	dErrors "filmgate/pkg/domain-errors"
	"filmgate/pkg/platform/sentinel"
)

const unauthenticatedMessage = "You must provide a valid Bearer authentication token"

// RegistrationResolver is the slice of the registration store identity
// resolution needs.
type RegistrationResolver interface {
	FindByToken(ctx context.Context, token string) (regModel.Registration, error)
}

// OrderStore is the order persistence the orchestrator drives. Create must
// reject a (token, film) pair that already exists; Execute must run its
// callbacks as one critical section.
type OrderStore interface {
	Create(ctx context.Context, order orderModel.Order) error
	Find(ctx context.Context, token string, filmID int) (orderModel.Order, error)
	FindByID(ctx context.Context, token, orderID string) (orderModel.Order, error)
	ListByToken(ctx context.Context, token string) []orderModel.Order
	Execute(ctx context.Context, token, orderID string, validate func(*orderModel.Order) error, apply func(*orderModel.Order)) (orderModel.Order, error)
}

// Service enforces the cross-entity invariants: ownership exclusivity per
// (token, film) and format availability re-checked on every mutation.
type Service struct {
	registrations RegistrationResolver
	catalog       *catalog.Catalog
	orders        OrderStore
	metrics       *metrics.Metrics
}

func New(registrations RegistrationResolver, cat *catalog.Catalog, orders OrderStore, m *metrics.Metrics) *Service {
	return &Service{registrations: registrations, catalog: cat, orders: orders, metrics: m}
}

// ResolveIdentity parses a "Bearer <token>" Authorization header value and
// resolves it to a registration. An absent or malformed header and an
// unknown token all fail identically.
func (s *Service) ResolveIdentity(ctx context.Context, authorization string) (regModel.Registration, error) {
	token, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || token == "" {
		return regModel.Registration{}, dErrors.New(dErrors.CodeUnauthenticated, unauthenticatedMessage)
	}

	reg, err := s.registrations.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return regModel.Registration{}, dErrors.New(dErrors.CodeUnauthenticated, unauthenticatedMessage)
		}
		return regModel.Registration{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not resolve identity")
	}
	return reg, nil
}

// PlaceOrder creates an order for the registration. Check order is fixed for
// deterministic error precedence: film existence, then ownership conflict,
// then format availability. The store's compare-and-insert backstops the
// ownership check against concurrent creates for the same pair.
func (s *Service) PlaceOrder(ctx context.Context, reg regModel.Registration, filmID int, format filmModel.Format) (orderModel.Order, error) {
	film, ok := s.catalog.Film(filmID)
	if !ok {
		return orderModel.Order{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No film found with ID %d", filmID))
	}

	if _, err := s.orders.Find(ctx, reg.Token, filmID); err == nil {
		return orderModel.Order{}, dErrors.New(dErrors.CodeConflict, "You already own this film")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return orderModel.Order{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not check ownership")
	}

	if !film.HasFormat(format) {
		return orderModel.Order{}, formatUnavailable(format)
	}

	order := orderModel.Order{
		ID:        uuid.NewString(),
		Token:     reg.Token,
		FilmID:    filmID,
		Title:     film.Title,
		Format:    format,
		CreatedAt: time.Now(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return orderModel.Order{}, dErrors.New(dErrors.CodeConflict, "You already own this film")
		}
		return orderModel.Order{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not create order")
	}

	s.metrics.IncrementOrdersCreated()
	return order, nil
}

// ChangeFormat updates an order's format. Eligibility is re-validated against
// the film's current formats inside the store's critical section, never
// cached from creation time.
func (s *Service) ChangeFormat(ctx context.Context, reg regModel.Registration, orderID string, format filmModel.Format) error {
	_, err := s.orders.Execute(ctx, reg.Token, orderID,
		func(order *orderModel.Order) error {
			film, ok := s.catalog.Film(order.FilmID)
			if !ok {
				// Orders only reference catalog films and the catalog never
				// shrinks, so a dangling film ID is a corrupted store.
				return dErrors.New(dErrors.CodeInternal, fmt.Sprintf("order %s references unknown film %d", order.ID, order.FilmID))
			}
			if !film.HasFormat(format) {
				return formatUnavailable(format)
			}
			return nil
		},
		func(order *orderModel.Order) {
			order.Format = format
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return orderNotFound(orderID)
		}
		return err
	}

	s.metrics.IncrementOrderFormatChanges()
	return nil
}

// GetOrder resolves an order by ID, scoped to the registration's token.
func (s *Service) GetOrder(ctx context.Context, reg regModel.Registration, orderID string) (orderModel.Order, error) {
	order, err := s.orders.FindByID(ctx, reg.Token, orderID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return orderModel.Order{}, orderNotFound(orderID)
		}
		return orderModel.Order{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not look up order")
	}
	return order, nil
}

// ListOrders returns all of the registration's orders in creation order.
func (s *Service) ListOrders(ctx context.Context, reg regModel.Registration) []orderModel.Order {
	return s.orders.ListByToken(ctx, reg.Token)
}

// IsOwned reports whether the registration owns the film. A nil registration
// (no identity supplied) owns nothing.
func (s *Service) IsOwned(ctx context.Context, reg *regModel.Registration, filmID int) bool {
	if reg == nil {
		return false
	}
	_, err := s.orders.Find(ctx, reg.Token, filmID)
	return err == nil
}

func formatUnavailable(format filmModel.Format) error {
	return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("This film is not available in %s format", format))
}

func orderNotFound(orderID string) error {
	return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("Order not found with ID %s", orderID))
}
