package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filmModel "filmgate/internal/catalog/models"
	dErrors "filmgate/pkg/domain-errors"
)

type staticSource []filmModel.Film

func (s staticSource) Load(context.Context) ([]filmModel.Film, error) {
	return s, nil
}

func testFilms() []filmModel.Film {
	return []filmModel.Film{
		{ID: 1, Title: "First", Genres: []string{"action", "sci-fi"}, Year: 2014, Formats: filmModel.FormatsForRank(1)},
		{ID: 2, Title: "Second", Genres: []string{"mystery"}, Year: 2012, Formats: filmModel.FormatsForRank(2)},
		{ID: 3, Title: "Third", Genres: []string{"action"}, Year: 2016, Formats: filmModel.FormatsForRank(3)},
		{ID: 4, Title: "Fourth", Genres: []string{"comedy"}, Year: 2016, Formats: filmModel.FormatsForRank(4)},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(context.Background(), staticSource(testFilms()))
	require.NoError(t, err)
	return c
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	films := testFilms()
	films[1].ID = 1
	_, err := New(context.Background(), staticSource(films))
	require.Error(t, err)
}

func TestGenresSortedUnion(t *testing.T) {
	c := newTestCatalog(t)
	assert.Equal(t, []string{"action", "comedy", "mystery", "sci-fi"}, c.Genres())
}

func TestFilmLookup(t *testing.T) {
	c := newTestCatalog(t)

	film, ok := c.Film(3)
	require.True(t, ok)
	assert.Equal(t, "Third", film.Title)

	_, ok = c.Film(99)
	assert.False(t, ok)
}

func TestListPreservesDatasetOrder(t *testing.T) {
	c := newTestCatalog(t)

	films, err := c.List(Filter{Limit: NoLimit})
	require.NoError(t, err)
	require.Len(t, films, 4)
	for i, film := range films {
		assert.Equal(t, i+1, film.ID)
	}
}

func TestListGenreFilter(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("matches films carrying the genre, in order", func(t *testing.T) {
		films, err := c.List(Filter{Genre: "action", Limit: NoLimit})
		require.NoError(t, err)
		require.Len(t, films, 2)
		assert.Equal(t, 1, films[0].ID)
		assert.Equal(t, 3, films[1].ID)
	})

	t.Run("unknown genre is a validation error, not an empty list", func(t *testing.T) {
		_, err := c.List(Filter{Genre: "western", Limit: NoLimit})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Contains(t, err.Error(), "genre must be one of: action, comedy, mystery, sci-fi")
	})
}

func TestListLimit(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("truncates without reordering", func(t *testing.T) {
		films, err := c.List(Filter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, films, 2)
		assert.Equal(t, 1, films[0].ID)
		assert.Equal(t, 2, films[1].ID)
	})

	t.Run("zero limit yields empty list", func(t *testing.T) {
		films, err := c.List(Filter{Limit: 0})
		require.NoError(t, err)
		assert.Empty(t, films)
	})

	t.Run("limit beyond catalog size returns everything", func(t *testing.T) {
		films, err := c.List(Filter{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, films, 4)
	})

	t.Run("negative limit is a validation error", func(t *testing.T) {
		_, err := c.List(Filter{Limit: -2})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestListCombinesGenreAndLimit(t *testing.T) {
	c := newTestCatalog(t)

	films, err := c.List(Filter{Genre: "action", Limit: 1})
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, 1, films[0].ID)
}
