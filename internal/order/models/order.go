package models

import (
	"time"

	filmModel "filmgate/internal/catalog/models"
)

// Order records that a registration owns a specific film in a specific
// format.
//
// Invariants:
//   - At most one order exists per (token, film) pair (ownership exclusivity)
//   - Token and FilmID are immutable after creation; only Format may change
//   - Format is always one of the film's available formats at the time of
//     the last write
//   - Orders are never deleted (no cancellation or refund path)
//
// Title is a denormalized copy of the film title taken at order time. The
// owning token is a back-reference and is never serialized into responses.
type Order struct {
	ID        string           `json:"id"`
	Token     string           `json:"-"`
	FilmID    int              `json:"filmId"`
	Title     string           `json:"title"`
	Format    filmModel.Format `json:"format"`
	CreatedAt time.Time        `json:"-"`
}
