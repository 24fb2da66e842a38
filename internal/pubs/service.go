// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubs

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/labpubs/internal/bibtex"
	"github.com/pdiddy/labpubs/internal/cache"
	"github.com/pdiddy/labpubs/pkg/types"
)

// Service is the publication list's single entry point for rendering
// collaborators. It fetches the bibliography through its Source, keeps the
// most recent successfully parsed list in a TTL cache, and serves stale
// data when a refresh fails. Publications never returns an error.
type Service struct {
	src   Source
	cfg   types.FetchConfig
	log   *log.Logger
	slot  *cache.Slot[[]types.Publication]
	group singleflight.Group
}

// NewService returns a Service with an empty cache. A nil logger discards
// all output.
func NewService(src Source, cfg types.FetchConfig, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		src:  src,
		cfg:  cfg,
		log:  logger,
		slot: cache.New[[]types.Publication](cfg.CacheTTL),
	}
}

// Publications returns the current best-known publication list, sorted by
// year descending. The cached list is served while younger than the TTL;
// otherwise one fetch is issued (concurrent callers share it) and on any
// failure the previous list, however old, is returned. With no previous
// list the result is empty. Failures are logged, never surfaced.
func (s *Service) Publications(ctx context.Context) []types.Publication {
	if pubs, ok := s.slot.Get(); ok {
		s.log.Debug("publication cache hit", "count", len(pubs))
		return pubs
	}

	v, err, _ := s.group.Do("publications", func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		s.log.Warn("publication fetch failed", "source", s.src.Name(), "err", err)
		if stale, ok := s.slot.Stale(); ok {
			age, _ := s.slot.Age()
			s.log.Info("serving stale publication list", "count", len(stale), "age", age)
			return stale
		}
		return []types.Publication{}
	}
	return v.([]types.Publication)
}

// Lookup returns the publication with the given citation key from the
// current best-known list.
func (s *Service) Lookup(ctx context.Context, key string) (types.Publication, bool) {
	for _, p := range s.Publications(ctx) {
		if p.Key == key {
			return p, true
		}
	}
	return types.Publication{}, false
}

func (s *Service) refresh(ctx context.Context) ([]types.Publication, error) {
	// Another caller may have refreshed while we waited on the flight group.
	if pubs, ok := s.slot.Get(); ok {
		return pubs, nil
	}

	s.log.Info("fetching publications", "source", s.src.Name())
	doc, err := s.src.Fetch(ctx, s.cfg)
	if err != nil {
		return nil, err
	}

	pubs := FromEntries(bibtex.Parse(doc), s.cfg.MinYear)
	Sort(pubs)
	s.slot.Set(pubs)
	s.log.Info("publication list refreshed", "count", len(pubs))
	return pubs, nil
}
