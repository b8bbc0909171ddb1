package service

import (
	"context"
	"database/sql"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/canon"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/google/uuid"
)

// Ingredient row statuses.
const (
	StatusPending   = "pending"
	StatusMatched   = "matched"
	StatusSuggested = "suggested"
	StatusUnmatched = "unmatched"
	StatusJunk      = "junk"
)

// Confidence per match tier, compared against Config.ResolveThreshold.
const (
	scoreExact = 1.0
	scoreAlias = 0.9
	scoreFuzzy = 0.7
)

// Resolution is the outcome of canonicalizing one raw line. Match is nil for
// junk and unmatched outcomes; Normalized stays empty for junk, which is
// rejected before normalization runs.
type Resolution struct {
	Status     string
	Normalized string
	Match      *canon.Match
	Confidence float64
}

// Resolve canonicalizes a raw line against the current catalog without
// persisting anything.
func (s *Service) Resolve(ctx context.Context, rawText string) (Resolution, error) {
	idx, err := s.CatalogIndex(ctx)
	if err != nil {
		return Resolution{}, err
	}
	return s.resolveAgainst(idx, rawText), nil
}

// resolveAgainst runs the pipeline over one index snapshot. It never touches
// the database, so the dry-run endpoint, intake, and the backfill workers all
// share it.
func (s *Service) resolveAgainst(idx *canon.Index, rawText string) Resolution {
	if canon.IsJunk(rawText) {
		return Resolution{Status: StatusJunk}
	}
	normalized := canon.Normalize(rawText)
	m, ok := canon.FindMatch(normalized, idx)
	if !ok {
		return Resolution{Status: StatusUnmatched, Normalized: normalized}
	}
	res := Resolution{Normalized: normalized, Match: &m, Confidence: tierScore(m.Tier)}
	if res.Confidence >= s.cfg.ResolveThreshold {
		res.Status = StatusMatched
	} else {
		res.Status = StatusSuggested
	}
	return res
}

func tierScore(t canon.Tier) float64 {
	switch t {
	case canon.TierExact:
		return scoreExact
	case canon.TierAlias:
		return scoreAlias
	default:
		return scoreFuzzy
	}
}

// IntakeIngredient stores a raw line and immediately resolves it. The row
// always persists; the resolution decides its status and canonical link.
func (s *Service) IntakeIngredient(ctx context.Context, rawText, source string) (db.Ingredient, Resolution, error) {
	idx, err := s.CatalogIndex(ctx)
	if err != nil {
		return db.Ingredient{}, Resolution{}, err
	}

	ing, err := s.q.CreateIngredient(ctx, db.CreateIngredientParams{
		RawText: rawText,
		Source:  sql.NullString{String: source, Valid: source != ""},
	})
	if err != nil {
		return db.Ingredient{}, Resolution{}, err
	}

	res := s.resolveAgainst(idx, rawText)
	ing, err = s.applyResolution(ctx, ing.ID, res)
	if err != nil {
		return db.Ingredient{}, Resolution{}, err
	}
	return ing, res, nil
}

// applyResolution persists one resolution outcome onto an ingredient row. A
// suggestion keeps the audit fields (tier, label, confidence) but not the
// canonical link: the foreign key is set only for confirmed matches.
func (s *Service) applyResolution(ctx context.Context, id uuid.UUID, res Resolution) (db.Ingredient, error) {
	params := db.UpdateIngredientResolutionParams{
		ID:     id,
		Status: res.Status,
	}
	if res.Match != nil {
		params.MatchTier = sql.NullString{String: res.Match.Tier.String(), Valid: true}
		params.MatchedLabel = sql.NullString{String: res.Match.MatchedLabel, Valid: true}
		params.Confidence = sql.NullFloat64{Float64: res.Confidence, Valid: true}
		if res.Status == StatusMatched {
			params.CanonicalID = uuid.NullUUID{UUID: res.Match.CanonicalID, Valid: true}
		}
	}
	return s.q.UpdateIngredientResolution(ctx, params)
}
