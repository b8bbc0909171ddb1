package service

import (
	"context"
	"errors"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/canon"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/google/uuid"
)

// ErrSelfMerge reports a merge where winner and loser are the same item.
var ErrSelfMerge = errors.New("cannot merge an item into itself")

// Merge folds loser into winner. The loser's name and aliases become winner
// aliases (deduplicated by normalized form), ingredient rows resolved to the
// loser are re-pointed at the winner, and the loser row is deleted. Runs in
// one transaction.
func (s *Service) Merge(ctx context.Context, winnerID, loserID uuid.UUID) (db.CanonicalItem, error) {
	if winnerID == loserID {
		return db.CanonicalItem{}, ErrSelfMerge
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return db.CanonicalItem{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := db.New(tx)

	winner, err := qtx.GetCanonicalItem(ctx, winnerID)
	if err != nil {
		return db.CanonicalItem{}, err
	}
	loser, err := qtx.GetCanonicalItem(ctx, loserID)
	if err != nil {
		return db.CanonicalItem{}, err
	}

	merged := mergeAliases(winner.Aliases, loser.Name, loser.Aliases, winner.Name)

	winner, err = qtx.UpdateCanonicalItem(ctx, db.UpdateCanonicalItemParams{
		ID:       winnerID,
		Aliases:  merged,
		Category: winner.Category,
	})
	if err != nil {
		return db.CanonicalItem{}, err
	}

	// Re-point resolved ingredient rows from loser to winner.
	if err := qtx.ReassignIngredientCanonical(ctx, db.ReassignIngredientCanonicalParams{
		CanonicalID:   uuid.NullUUID{UUID: winnerID, Valid: true},
		CanonicalID_2: uuid.NullUUID{UUID: loserID, Valid: true},
	}); err != nil {
		return db.CanonicalItem{}, err
	}

	if err := qtx.DeleteCanonicalItem(ctx, loserID); err != nil {
		return db.CanonicalItem{}, err
	}

	if err := tx.Commit(); err != nil {
		return db.CanonicalItem{}, err
	}

	s.invalidateIndex()
	return winner, nil
}

// mergeAliases combines existing winner aliases with the loser's name and
// aliases, excluding anything that normalizes to the winner's own name.
// Deduplication compares normalized forms, so "Roma Tomatoes" and "tomatoes"
// collapse to one entry; the first spelling encountered is kept.
func mergeAliases(winnerAliases []string, loserName string, loserAliases []string, winnerName string) []string {
	winnerNorm := canon.Normalize(winnerName)
	seen := make(map[string]struct{}, len(winnerAliases)+1+len(loserAliases))
	result := make([]string, 0, len(winnerAliases)+1+len(loserAliases))

	add := func(s string) {
		norm := canon.Normalize(s)
		if norm == "" || norm == winnerNorm {
			return
		}
		if _, ok := seen[norm]; !ok {
			seen[norm] = struct{}{}
			result = append(result, s)
		}
	}

	for _, a := range winnerAliases {
		add(a)
	}
	add(loserName)
	for _, a := range loserAliases {
		add(a)
	}

	return result
}
