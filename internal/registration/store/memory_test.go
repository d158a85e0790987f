package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	regModel "filmgate/internal/registration/models"
	"filmgate/pkg/platform/sentinel"
)

type RegistrationStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *RegistrationStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestRegistrationStoreSuite(t *testing.T) {
	suite.Run(t, new(RegistrationStoreSuite))
}

func (s *RegistrationStoreSuite) newRegistration(token, name, card string) regModel.Registration {
	return regModel.Registration{
		Token:            token,
		Name:             name,
		CreditCardNumber: card,
		CreatedAt:        time.Now(),
	}
}

// TestCreationAndLookup verifies the store creates registrations and resolves
// them by token.
func (s *RegistrationStoreSuite) TestCreationAndLookup() {
	s.Run("creates and finds registration by token", func() {
		reg := s.newRegistration("tok-alice", "Alice", "1234567890123456")
		s.Require().NoError(s.store.Create(s.ctx, reg))

		found, err := s.store.FindByToken(s.ctx, "tok-alice")
		s.Require().NoError(err)
		s.Equal("Alice", found.Name)
	})

	s.Run("returns ErrNotFound for unknown token", func() {
		_, err := s.store.FindByToken(s.ctx, "tok-nobody")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestNameUniqueness verifies case-insensitive name uniqueness enforcement.
func (s *RegistrationStoreSuite) TestNameUniqueness() {
	s.Run("rejects duplicate name even with a different card", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("t1", "Alice", "1111111111111111")))

		err := s.store.Create(s.ctx, s.newRegistration("t2", "Alice", "2222222222222222"))
		s.Require().ErrorIs(err, ErrNameTaken)
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("enforces case-insensitive uniqueness", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("t1", "Alice", "1111111111111111")))

		err := s.store.Create(s.ctx, s.newRegistration("t2", "ALICE", "2222222222222222"))
		s.Require().ErrorIs(err, ErrNameTaken)
	})
}

// TestCardUniqueness verifies exact credit card uniqueness enforcement.
func (s *RegistrationStoreSuite) TestCardUniqueness() {
	s.Run("rejects duplicate card under a different name", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("t1", "Alice", "1111111111111111")))

		err := s.store.Create(s.ctx, s.newRegistration("t2", "Bob", "1111111111111111"))
		s.Require().ErrorIs(err, ErrCardUsed)
	})

	s.Run("reports the name when both fields collide", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("t1", "Alice", "1111111111111111")))

		err := s.store.Create(s.ctx, s.newRegistration("t2", "alice", "1111111111111111"))
		s.Require().ErrorIs(err, ErrNameTaken)
	})
}
