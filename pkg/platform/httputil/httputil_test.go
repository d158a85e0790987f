package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "filmgate/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("maps code to status and returns message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeConflict, "You already own this film"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "You already own this film" {
			t.Fatalf("unexpected error message %q", body["error"])
		}
	})

	t.Run("duplicate code maps to bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeDuplicate, "Same name has already been registered"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("non-domain error becomes 500 with message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errBoom)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "boom" {
			t.Fatalf("unexpected error message %q", body["error"])
		}
	})
}

var errBoom = errTest("boom")

type errTest string

func (e errTest) Error() string { return string(e) }
