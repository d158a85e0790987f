package config

import (
	"os"
	"strconv"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	CatalogPath string
	DocsPath    string
	// RateLimit is the per-client request rate (requests/second); 0 disables
	// rate limiting.
	RateLimit float64
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FILMGATE_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	catalogPath := os.Getenv("FILMGATE_CATALOG")
	if catalogPath == "" {
		catalogPath = "imdb-movie-data.csv"
	}

	docsPath := os.Getenv("FILMGATE_DOCS")
	if docsPath == "" {
		docsPath = "docs/films-api.md"
	}

	rateLimit := 0.0
	if raw := os.Getenv("FILMGATE_RATE_LIMIT"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			rateLimit = parsed
		}
	}

	return Server{
		Addr:        addr,
		CatalogPath: catalogPath,
		DocsPath:    docsPath,
		RateLimit:   rateLimit,
	}
}
