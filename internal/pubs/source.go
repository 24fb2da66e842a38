// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubs

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/labpubs/internal/httputil"
	"github.com/pdiddy/labpubs/pkg/types"
)

// dblpBase is the bibliography host. Declared as a var so tests can
// substitute an httptest server.
var dblpBase = "https://dblp.org"

// Source retrieves a raw bibliography document for parsing.
type Source interface {
	Name() string
	Fetch(ctx context.Context, cfg types.FetchConfig) (string, error)
}

// DBLPSource fetches a researcher's publication list from DBLP as BibTeX.
type DBLPSource struct {
	Client *http.Client
}

// Name returns the source identifier.
func (s *DBLPSource) Name() string { return "dblp" }

// Fetch issues a GET for the researcher's .bib document. The configured
// timeout bounds the whole request; a timeout surfaces as an ordinary error
// for the caller's fallback handling.
func (s *DBLPSource) Fetch(ctx context.Context, cfg types.FetchConfig) (string, error) {
	if cfg.PID == "" {
		return "", fmt.Errorf("dblp: no person ID configured")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/pid/%s.bib", dblpBase, cfg.PID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("dblp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dblp returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading dblp response: %w", err)
	}
	return string(body), nil
}
