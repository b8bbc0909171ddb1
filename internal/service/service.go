package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/canon"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
)

// Config carries the resolution policy knobs read from the environment.
type Config struct {
	// ResolveThreshold is the minimum confidence that persists a match
	// outright; candidates below it are stored as suggestions.
	ResolveThreshold float64
	// BackfillWorkers bounds the backfill matching pool when the caller
	// doesn't pick a size.
	BackfillWorkers int
}

// Service holds all dependencies for the canonicalization service layer.
type Service struct {
	q     db.Querier
	sqlDB *sql.DB
	cfg   Config

	mu  sync.Mutex
	idx *canon.Index
}

// New creates a new Service.
func New(q db.Querier, sqlDB *sql.DB, cfg Config) *Service {
	return &Service{q: q, sqlDB: sqlDB, cfg: cfg}
}

// Queries exposes the underlying db.Querier for direct use by handlers that
// don't require service-layer logic.
func (s *Service) Queries() db.Querier {
	return s.q
}

// CatalogIndex returns the matcher index over the current catalog, building
// it on first use. Catalog writes invalidate the cached copy, so the next
// call sees a fresh snapshot.
func (s *Service) CatalogIndex(ctx context.Context) (*canon.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil {
		return s.idx, nil
	}

	items, err := s.q.ListCanonicalItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := make([]canon.Item, len(items))
	for i, it := range items {
		catalog[i] = canon.Item{
			ID:       it.ID,
			Name:     it.Name,
			Aliases:  it.Aliases,
			Category: it.Category.String,
		}
	}
	s.idx = canon.BuildIndex(catalog)
	return s.idx, nil
}

func (s *Service) invalidateIndex() {
	s.mu.Lock()
	s.idx = nil
	s.mu.Unlock()
}
