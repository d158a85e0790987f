// Package store holds the mutable registration set. The in-memory
// implementation favors clarity over performance; token lookup is a map hit,
// uniqueness checks scan all registrations.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	regModel "filmgate/internal/registration/models"
	"filmgate/pkg/platform/sentinel"
)

// Uniqueness violations, distinguished so the service can report which field
// collided. Both unwrap to sentinel.ErrAlreadyUsed.
var (
	ErrNameTaken = fmt.Errorf("name %w", sentinel.ErrAlreadyUsed)
	ErrCardUsed  = fmt.Errorf("credit card number %w", sentinel.ErrAlreadyUsed)
)

// InMemory stores registrations keyed by token. All uniqueness checks and the
// insert run under one write lock, so two concurrent registrations with the
// same name cannot both pass the check.
type InMemory struct {
	mu      sync.RWMutex
	byToken map[string]regModel.Registration
}

func NewInMemory() *InMemory {
	return &InMemory{byToken: make(map[string]regModel.Registration)}
}

// Create inserts the registration if its name and credit card number are
// still available. The name is compared case-insensitively and checked
// first, so a registration colliding on both fields reports ErrNameTaken.
func (s *InMemory) Create(_ context.Context, reg regModel.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byToken {
		if strings.EqualFold(existing.Name, reg.Name) {
			return ErrNameTaken
		}
	}
	for _, existing := range s.byToken {
		if existing.CreditCardNumber == reg.CreditCardNumber {
			return ErrCardUsed
		}
	}

	s.byToken[reg.Token] = reg
	return nil
}

// FindByToken resolves a bearer token to its registration.
func (s *InMemory) FindByToken(_ context.Context, token string) (regModel.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if reg, ok := s.byToken[token]; ok {
		return reg, nil
	}
	return regModel.Registration{}, sentinel.ErrNotFound
}
