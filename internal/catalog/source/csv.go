// Package source loads the film dataset the catalog is built from.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	filmModel "filmgate/internal/catalog/models"
)

// Expected dataset columns. Rank doubles as the film ID.
const (
	columnRank        = "Rank"
	columnTitle       = "Title"
	columnDescription = "Description"
	columnGenre       = "Genre"
	columnDirector    = "Director"
	columnActors      = "Actors"
	columnYear        = "Year"
	columnRuntime     = "Runtime (Minutes)"
)

// CSV reads films from a row-oriented CSV dataset. Genre and Actors cells are
// comma-separated lists; genres are normalized to lowercase.
type CSV struct {
	path string
}

func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

// Load parses the whole dataset. Rows appear in file order, which the catalog
// preserves as its canonical ordering.
func (c *CSV) Load(ctx context.Context) ([]filmModel.Film, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog dataset %s has no header row", c.path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnRank, columnTitle, columnDescription, columnGenre, columnDirector, columnActors, columnYear, columnRuntime} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog dataset %s is missing column %q", c.path, required)
		}
	}

	films := make([]filmModel.Film, 0, len(records)-1)
	for rowNum, record := range records[1:] {
		film, err := parseRow(columns, record)
		if err != nil {
			return nil, fmt.Errorf("catalog dataset row %d: %w", rowNum+2, err)
		}
		films = append(films, film)
	}
	return films, nil
}

func parseRow(columns map[string]int, record []string) (filmModel.Film, error) {
	cell := func(name string) string { return record[columns[name]] }

	rank, err := strconv.Atoi(cell(columnRank))
	if err != nil {
		return filmModel.Film{}, fmt.Errorf("invalid rank %q: %w", cell(columnRank), err)
	}
	year, err := strconv.Atoi(cell(columnYear))
	if err != nil {
		return filmModel.Film{}, fmt.Errorf("invalid year %q: %w", cell(columnYear), err)
	}
	runtime, err := strconv.Atoi(cell(columnRuntime))
	if err != nil {
		return filmModel.Film{}, fmt.Errorf("invalid runtime %q: %w", cell(columnRuntime), err)
	}

	return filmModel.Film{
		ID:          rank,
		Title:       cell(columnTitle),
		Description: cell(columnDescription),
		Genres:      splitList(cell(columnGenre), strings.ToLower),
		Director:    cell(columnDirector),
		Actors:      splitList(cell(columnActors), nil),
		Year:        year,
		Runtime:     runtime,
		Formats:     filmModel.FormatsForRank(rank),
	}, nil
}

// splitList splits a comma-separated cell, trims each entry, and applies an
// optional normalizer.
func splitList(cell string, normalize func(string) string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if normalize != nil {
			p = normalize(p)
		}
		out = append(out, p)
	}
	return out
}
