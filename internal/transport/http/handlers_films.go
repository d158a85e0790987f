package httptransport

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"filmgate/internal/catalog"
	filmModel "filmgate/internal/catalog/models"
	dErrors "filmgate/pkg/domain-errors"
	"filmgate/pkg/platform/httputil"
)

// CatalogService is the read-only film catalog surface the handlers need.
type CatalogService interface {
	Film(id int) (filmModel.Film, bool)
	List(filter catalog.Filter) ([]filmModel.Film, error)
	Genres() []string
}

// filmSummary is the GET /films row. Owned appears only when the request
// carried a valid identity.
type filmSummary struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
	Owned  *bool    `json:"owned,omitempty"`
}

// filmDetail is the GET /films/{filmID} response: the full film plus the
// optional ownership annotation.
type filmDetail struct {
	filmModel.Film
	Owned *bool `json:"owned,omitempty"`
}

// handleListFilms serves GET /films: optional genre filter, optional limit,
// dataset order, ownership annotation for authenticated callers.
func (h *Handler) handleListFilms(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{Limit: catalog.NoLimit}
	filter.Genre = r.URL.Query().Get("genre")

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := parseID(raw, "limit must be an integer")
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		filter.Limit = limit
	}

	films, err := h.catalog.List(filter)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	reg := RegistrationFrom(r.Context())
	summaries := make([]filmSummary, 0, len(films))
	for _, film := range films {
		summary := filmSummary{
			ID:     film.ID,
			Title:  film.Title,
			Year:   film.Year,
			Genres: film.Genres,
		}
		if reg != nil {
			owned := h.ownership.IsOwned(r.Context(), reg, film.ID)
			summary.Owned = &owned
		}
		summaries = append(summaries, summary)
	}

	httputil.WriteJSON(w, http.StatusOK, summaries)
}

// handleGetFilm serves GET /films/{filmID}.
func (h *Handler) handleGetFilm(w http.ResponseWriter, r *http.Request) {
	filmID, err := parseID(chi.URLParam(r, "filmID"), "filmId must be an integer")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	film, ok := h.catalog.Film(filmID)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No film found with ID %d", filmID)))
		return
	}

	detail := filmDetail{Film: film}
	if reg := RegistrationFrom(r.Context()); reg != nil {
		owned := h.ownership.IsOwned(r.Context(), reg, film.ID)
		detail.Owned = &owned
	}

	httputil.WriteJSON(w, http.StatusOK, detail)
}
