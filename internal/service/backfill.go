package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
)

const (
	defaultBackfillBatch   = 200
	defaultBackfillWorkers = 4
)

// BackfillOptions tunes one backfill run. Zero values fall back to the
// service config and the package defaults.
type BackfillOptions struct {
	// Limit caps how many rows the run processes; 0 means all pending rows.
	Limit int
	// Batch is the page size for fetching pending rows.
	Batch int
	// Workers bounds the concurrent matchers per page.
	Workers int
	// DryRun resolves without persisting anything.
	DryRun bool
}

// BackfillSummary counts the outcomes of one run.
type BackfillSummary struct {
	Processed int `json:"processed"`
	Matched   int `json:"matched"`
	Suggested int `json:"suggested"`
	Unmatched int `json:"unmatched"`
	Junk      int `json:"junk"`
}

// Backfill pages through pending ingredient rows and resolves each against
// one catalog snapshot. Matching fans out over a bounded worker pool;
// persistence stays serialized in the paging loop. Every processed row leaves
// the pending set (matched, suggested, unmatched, or junk), so the query
// keeps reading from offset zero; a dry run changes nothing and advances the
// offset instead.
func (s *Service) Backfill(ctx context.Context, opts BackfillOptions) (BackfillSummary, error) {
	if opts.Batch <= 0 {
		opts.Batch = defaultBackfillBatch
	}
	if opts.Workers <= 0 {
		opts.Workers = s.cfg.BackfillWorkers
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultBackfillWorkers
	}

	idx, err := s.CatalogIndex(ctx)
	if err != nil {
		return BackfillSummary{}, err
	}

	var summary BackfillSummary
	offset := int32(0)
	for {
		limit := opts.Batch
		if opts.Limit > 0 {
			remaining := opts.Limit - summary.Processed
			if remaining <= 0 {
				break
			}
			if remaining < limit {
				limit = remaining
			}
		}

		rows, err := s.q.ListUnresolvedIngredients(ctx, db.ListUnresolvedIngredientsParams{
			Limit:  int32(limit),
			Offset: offset,
		})
		if err != nil {
			return summary, err
		}
		if len(rows) == 0 {
			break
		}

		resolutions := make([]Resolution, len(rows))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i, row := range rows {
			i, row := i, row
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resolutions[i] = s.resolveAgainst(idx, row.RawText)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return summary, err
		}

		for i, row := range rows {
			res := resolutions[i]
			if !opts.DryRun {
				if _, err := s.applyResolution(ctx, row.ID, res); err != nil {
					return summary, err
				}
			}
			summary.Processed++
			switch res.Status {
			case StatusMatched:
				summary.Matched++
			case StatusSuggested:
				summary.Suggested++
			case StatusUnmatched:
				summary.Unmatched++
			case StatusJunk:
				summary.Junk++
			}
		}

		if opts.DryRun {
			offset += int32(len(rows))
		}
		if len(rows) < limit {
			break
		}
	}

	return summary, nil
}
