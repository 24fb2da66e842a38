// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubs

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHandler returns the HTTP surface the website build consumes:
//
//	GET /api/publications        the full list as JSON
//	GET /api/publications/{key}  one entry by citation key (keys contain slashes)
//	GET /healthz                 liveness probe
//
// The list endpoint inherits the Service contract: it always answers 200
// with a (possibly empty) JSON array.
func NewHandler(svc *Service, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/api/publications", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, svc.Publications(req.Context()))
	})

	// DBLP keys look like "journals/tcs/Smith19", so the key segment is a
	// wildcard rather than a single path parameter.
	r.Get("/api/publications/*", func(w http.ResponseWriter, req *http.Request) {
		key := chi.URLParam(req, "*")
		p, ok := svc.Lookup(req.Context(), key)
		if !ok {
			http.Error(w, "unknown publication key", http.StatusNotFound)
			return
		}
		writeJSON(w, p)
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}
