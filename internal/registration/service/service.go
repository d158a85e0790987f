// Package service orchestrates customer registration: token generation,
// uniqueness enforcement via the store, and sentinel-to-domain error
// translation.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filmgate/internal/platform/metrics"
	regModel "filmgate/internal/registration/models"
	"filmgate/internal/registration/store"
	dErrors "filmgate/pkg/domain-errors"
)

// TokenGenerator produces opaque bearer credentials with negligible collision
// probability and no predictable structure.
type TokenGenerator interface {
	Token() (string, error)
}

// Store is the registration persistence the service needs.
type Store interface {
	Create(ctx context.Context, reg regModel.Registration) error
	FindByToken(ctx context.Context, token string) (regModel.Registration, error)
}

// Service creates registrations. Card shape validation (exactly 16 digits) is
// the transport layer's precondition; the service enforces uniqueness only.
type Service struct {
	registrations Store
	tokens        TokenGenerator
	metrics       *metrics.Metrics
}

func New(registrations Store, tokens TokenGenerator, m *metrics.Metrics) *Service {
	return &Service{registrations: registrations, tokens: tokens, metrics: m}
}

// Register creates a registration with a fresh bearer token. Name uniqueness
// is case-insensitive and checked before card uniqueness, so a registration
// colliding on both reports the duplicate name.
func (s *Service) Register(ctx context.Context, name, creditCardNumber string) (regModel.Registration, error) {
	token, err := s.tokens.Token()
	if err != nil {
		return regModel.Registration{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not generate token")
	}

	reg := regModel.Registration{
		Token:            token,
		Name:             name,
		CreditCardNumber: creditCardNumber,
		CreatedAt:        time.Now(),
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		switch {
		case errors.Is(err, store.ErrNameTaken):
			return regModel.Registration{}, dErrors.New(dErrors.CodeDuplicate, "Same name has already been registered")
		case errors.Is(err, store.ErrCardUsed):
			return regModel.Registration{}, dErrors.New(dErrors.CodeDuplicate, "Same credit card number has already been registered")
		default:
			return regModel.Registration{}, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("could not register %q", name))
		}
	}

	s.metrics.IncrementRegistrationsCreated()
	return reg, nil
}
