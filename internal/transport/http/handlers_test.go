package httptransport

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"filmgate/internal/catalog"
	filmModel "filmgate/internal/catalog/models"
	orderStore "filmgate/internal/order/store"
	"filmgate/internal/ownership"
	regService "filmgate/internal/registration/service"
	regStore "filmgate/internal/registration/store"
	"filmgate/pkg/testutil"
)

type staticSource []filmModel.Film

func (s staticSource) Load(context.Context) ([]filmModel.Film, error) {
	return s, nil
}

// newTestRouter wires the full router over real in-memory stores. Formats
// follow the rank derivation: film 1 is SD-only, film 4 has all tiers.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat, err := catalog.New(context.Background(), staticSource([]filmModel.Film{
		{ID: 1, Title: "First", Description: "d1", Genres: []string{"action", "sci-fi"}, Director: "Dir One", Actors: []string{"A", "B"}, Year: 2014, Runtime: 121, Formats: filmModel.FormatsForRank(1)},
		{ID: 2, Title: "Second", Description: "d2", Genres: []string{"mystery"}, Director: "Dir Two", Actors: []string{"C"}, Year: 2012, Runtime: 124, Formats: filmModel.FormatsForRank(2)},
		{ID: 3, Title: "Third", Description: "d3", Genres: []string{"action"}, Director: "Dir Three", Actors: []string{"D"}, Year: 2016, Runtime: 117, Formats: filmModel.FormatsForRank(3)},
		{ID: 4, Title: "Fourth", Description: "d4", Genres: []string{"comedy"}, Director: "Dir Four", Actors: []string{"E"}, Year: 2016, Runtime: 108, Formats: filmModel.FormatsForRank(4)},
	}))
	require.NoError(t, err)

	registrations := regStore.NewInMemory()
	orders := orderStore.NewInMemory()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	return NewRouter(Config{
		Logger:        logger,
		Catalog:       cat,
		Registrations: regService.New(registrations, regService.NewRandomTokenGenerator(), nil),
		Ownership:     ownership.New(registrations, cat, orders, nil),
		DocsHTML:      []byte("<h1>films-api</h1>"),
	})
}

// register creates a registration through the API and returns its token.
func register(t *testing.T, router http.Handler, name, card string) string {
	t.Helper()

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/registrations",
		map[string]string{"name": name, "creditCardNumber": card}))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	resp := testutil.UnmarshalResponse[struct {
		Token string `json:"token"`
	}](t, rr)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// placeOrder creates an order through the API and returns its ID.
func placeOrder(t *testing.T, router http.Handler, token string, filmID int, format string) string {
	t.Helper()

	req := testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/orders",
		map[string]any{"filmId": filmID, "format": format}), token)
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	resp := testutil.UnmarshalResponse[struct {
		ID string `json:"id"`
	}](t, rr)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

// TestPurchaseLifecycle walks the whole registration/order/format flow end to
// end against film 1 (SD only) and checks the ownership annotation.
func TestPurchaseLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := register(t, router, "Alice", "1234567890123456")

	// HD is not available on film 1.
	req := testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/orders",
		map[string]any{"filmId": 1, "format": "HD"}), token)
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "This film is not available in HD format")

	// SD works.
	orderID := placeOrder(t, router, token, 1, "SD")

	// Buying the same film again conflicts, regardless of format.
	req = testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/orders",
		map[string]any{"filmId": 1, "format": "SD"}), token)
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "You already own this film")

	// Format change to HD still conflicts: eligibility is re-checked.
	req = testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPatch, "/orders/"+orderID,
		map[string]string{"format": "HD"}), token)
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusConflict, "This film is not available in HD format")

	// The film shows as owned with the token, and carries no owned field
	// without it.
	rr = testutil.DoRequest(router, testutil.WithBearer(testutil.NewRequest(t, http.MethodGet, "/films/1"), token))
	testutil.AssertStatus(t, rr, http.StatusOK)
	withIdentity := testutil.UnmarshalResponse[map[string]any](t, rr)
	require.Equal(t, true, (*withIdentity)["owned"])

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/films/1"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	anonymous := testutil.UnmarshalResponse[map[string]any](t, rr)
	require.NotContains(t, *anonymous, "owned")
}

func TestUnmatchedRoutesReturnJSON404(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nope"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "Cannot GET /nope")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/films"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "Cannot DELETE /films")
}

func TestDocsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	require.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	require.Contains(t, string(testutil.ReadBody(t, rr)), "films-api")
}
