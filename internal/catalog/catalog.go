// Package catalog holds the immutable, process-lifetime film catalog and its
// derived genre index. It is built once at startup and never mutated, so
// reads need no synchronization.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	filmModel "filmgate/internal/catalog/models"
	dErrors "filmgate/pkg/domain-errors"
)

// Source produces the film dataset the catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]filmModel.Film, error)
}

// Catalog is the read-only film set. Films keep dataset rank order; the genre
// index is the sorted lowercase union of every film's genres.
type Catalog struct {
	films  []filmModel.Film
	byID   map[int]filmModel.Film
	genres []string
}

// NoLimit disables truncation in a Filter.
const NoLimit = -1

// Filter narrows a listing. Genre must be one of the catalog's known genres
// when non-empty; Limit truncates the result and must be NoLimit or >= 0.
type Filter struct {
	Genre string
	Limit int
}

// New builds the catalog from the source. Duplicate film IDs are a dataset
// defect and fail construction.
func New(ctx context.Context, src Source) (*Catalog, error) {
	films, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[int]filmModel.Film, len(films))
	genreSet := make(map[string]struct{})
	for _, film := range films {
		if _, exists := byID[film.ID]; exists {
			return nil, fmt.Errorf("load catalog: duplicate film ID %d", film.ID)
		}
		byID[film.ID] = film
		for _, g := range film.Genres {
			genreSet[g] = struct{}{}
		}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	return &Catalog{films: films, byID: byID, genres: genres}, nil
}

// Film looks up a film by ID.
func (c *Catalog) Film(id int) (filmModel.Film, bool) {
	film, ok := c.byID[id]
	return film, ok
}

// List returns films matching the filter in dataset order. An unrecognized
// genre is a validation error, not an empty result. Limit 0 yields an empty
// list.
func (c *Catalog) List(filter Filter) ([]filmModel.Film, error) {
	films := c.films
	if filter.Genre != "" {
		if !c.knownGenre(filter.Genre) {
			return nil, dErrors.New(dErrors.CodeInvalidInput,
				"genre must be one of: "+strings.Join(c.genres, ", "))
		}
		matched := make([]filmModel.Film, 0, len(films))
		for _, film := range films {
			if film.HasGenre(filter.Genre) {
				matched = append(matched, film)
			}
		}
		films = matched
	}

	if filter.Limit != NoLimit {
		if filter.Limit < 0 {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "limit must be an integer")
		}
		if filter.Limit < len(films) {
			films = films[:filter.Limit]
		}
	}

	// Callers get a copy so the backing slice stays immutable.
	out := make([]filmModel.Film, len(films))
	copy(out, films)
	return out, nil
}

// Genres returns the sorted genre universe.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Len reports the number of films in the catalog.
func (c *Catalog) Len() int {
	return len(c.films)
}

func (c *Catalog) knownGenre(genre string) bool {
	// The index is sorted, but at catalog scale a scan is fine.
	for _, g := range c.genres {
		if g == genre {
			return true
		}
	}
	return false
}
