package httptransport

import "net/http"

// handleDocs serves GET /: the API documentation, rendered from Markdown to
// HTML once at startup.
func (h *Handler) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.docsHTML)
}
