package models

import "time"

// Registration is a customer identity bound to a unique bearer token.
//
// Invariants:
//   - Name is unique case-insensitively across all registrations
//   - CreditCardNumber is exactly 16 digits and unique across all registrations
//   - Token is opaque and unguessable; it is the sole credential
//
// Registrations are never mutated or deleted; their lifetime is the process
// lifetime. The credit card number is held only for the duplicate check and
// is never charged or exposed in any response.
type Registration struct {
	Token            string
	Name             string
	CreditCardNumber string
	CreatedAt        time.Time
}
