package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/canon"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/google/uuid"
)

// ErrEmptyName reports a catalog name that normalizes to nothing.
var ErrEmptyName = errors.New("name normalizes to empty")

// CreateCatalogItem inserts a canonical item. The name is stored in
// normalized form so the unique constraint catches spelling-level duplicates;
// aliases keep their spelling but drop duplicates and self-aliases.
func (s *Service) CreateCatalogItem(ctx context.Context, name string, aliases []string, category string) (db.CanonicalItem, error) {
	norm := canon.Normalize(name)
	if norm == "" {
		return db.CanonicalItem{}, ErrEmptyName
	}
	item, err := s.q.CreateCanonicalItem(ctx, db.CreateCanonicalItemParams{
		Name:     norm,
		Aliases:  cleanAliases(norm, aliases),
		Category: sql.NullString{String: category, Valid: category != ""},
	})
	if err != nil {
		return db.CanonicalItem{}, err
	}
	s.invalidateIndex()
	return item, nil
}

// UpdateCatalogItem replaces an item's aliases and category. The name is
// immutable; renames go through Merge so ingredient rows stay consistent.
func (s *Service) UpdateCatalogItem(ctx context.Context, id uuid.UUID, aliases []string, category string) (db.CanonicalItem, error) {
	current, err := s.q.GetCanonicalItem(ctx, id)
	if err != nil {
		return db.CanonicalItem{}, err
	}
	item, err := s.q.UpdateCanonicalItem(ctx, db.UpdateCanonicalItemParams{
		ID:       id,
		Aliases:  cleanAliases(canon.Normalize(current.Name), aliases),
		Category: sql.NullString{String: category, Valid: category != ""},
	})
	if err != nil {
		return db.CanonicalItem{}, err
	}
	s.invalidateIndex()
	return item, nil
}

// DeleteCatalogItem removes a canonical item. Ingredient rows resolved to it
// go back to pending with their match fields cleared, in the same
// transaction, so no row is left claiming a match against a gone item.
func (s *Service) DeleteCatalogItem(ctx context.Context, id uuid.UUID) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := db.New(tx)

	if _, err := qtx.GetCanonicalItem(ctx, id); err != nil {
		return err
	}
	if err := qtx.ResetIngredientsForCanonical(ctx, uuid.NullUUID{UUID: id, Valid: true}); err != nil {
		return err
	}
	if err := qtx.DeleteCanonicalItem(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateIndex()
	return nil
}

// SeedSummary reports what a catalog seed changed.
type SeedSummary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// SeedCatalog loads canonical items from CSV rows of the form
// name,aliases,category with aliases pipe-separated. A first row whose name
// column is literally "name" is treated as a header. Names already in the
// catalog are left untouched and counted as skipped, so seeding is
// idempotent.
func (s *Service) SeedCatalog(ctx context.Context, r io.Reader) (SeedSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var summary SeedSummary
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read csv: %w", err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}

		name := canon.Normalize(record[0])
		if name == "" {
			summary.Skipped++
			continue
		}
		var aliases []string
		if len(record) > 1 && strings.TrimSpace(record[1]) != "" {
			aliases = strings.Split(record[1], "|")
		}
		category := ""
		if len(record) > 2 {
			category = strings.TrimSpace(record[2])
		}

		_, err = s.q.UpsertCanonicalItem(ctx, db.UpsertCanonicalItemParams{
			Name:     name,
			Aliases:  cleanAliases(name, aliases),
			Category: sql.NullString{String: category, Valid: category != ""},
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// ON CONFLICT DO NOTHING returned no row: the name exists.
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("seed %q: %w", name, err)
		}
		summary.Created++
	}

	if summary.Created > 0 {
		s.invalidateIndex()
	}
	return summary, nil
}

// cleanAliases dedups aliases by normalized form and drops self-aliases and
// anything that normalizes to nothing. Stored spelling is preserved.
func cleanAliases(nameNorm string, aliases []string) []string {
	seen := make(map[string]struct{}, len(aliases))
	result := make([]string, 0, len(aliases))
	for _, a := range aliases {
		norm := canon.Normalize(a)
		if norm == "" || norm == nameNorm {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		result = append(result, strings.TrimSpace(a))
	}
	return result
}
