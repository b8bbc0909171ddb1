package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/canon"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// helpers

func newCatalogItem(name string, aliases []string) db.CanonicalItem {
	return db.CanonicalItem{
		ID:        uuid.New(),
		Name:      name,
		Aliases:   aliases,
		Category:  sql.NullString{},
		CreatedAt: time.Now(),
	}
}

func newService(t *testing.T, threshold float64) (*mocks.MockQuerier, *Service) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	return mockQ, New(mockQ, nil, Config{ResolveThreshold: threshold})
}

// ---------------------------------------------------------------------------
// tierScore() unit tests
// ---------------------------------------------------------------------------

func TestTierScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, tierScore(canon.TierExact))
	assert.Equal(t, 0.9, tierScore(canon.TierAlias))
	assert.Equal(t, 0.7, tierScore(canon.TierFuzzy))
}

// ---------------------------------------------------------------------------
// Resolve() unit tests
// ---------------------------------------------------------------------------

func TestResolve_ExactMatch(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	oliveOil := newCatalogItem("olive oil", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{oliveOil}, nil)

	res, err := svc.Resolve(context.Background(), "2 tablespoons extra virgin olive oil, divided")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)
	assert.Equal(t, "olive oil", res.Normalized)
	require.NotNil(t, res.Match)
	assert.Equal(t, oliveOil.ID, res.Match.CanonicalID)
	assert.Equal(t, canon.TierExact, res.Match.Tier)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestResolve_AliasMatchScoresBelowExact(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	greenOnion := newCatalogItem("green onion", []string{"scallions"})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{greenOnion}, nil)

	res, err := svc.Resolve(context.Background(), "3 scallions, thinly sliced")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)
	require.NotNil(t, res.Match)
	assert.Equal(t, greenOnion.ID, res.Match.CanonicalID)
	assert.Equal(t, canon.TierAlias, res.Match.Tier)
	assert.Equal(t, 0.9, res.Confidence)
}

func TestResolve_FuzzyBecomesSuggestion(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	bellPepper := newCatalogItem("bell pepper", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{bellPepper}, nil)

	res, err := svc.Resolve(context.Background(), "bell papper")
	require.NoError(t, err)
	assert.Equal(t, StatusSuggested, res.Status)
	require.NotNil(t, res.Match)
	assert.Equal(t, bellPepper.ID, res.Match.CanonicalID)
	assert.Equal(t, canon.TierFuzzy, res.Match.Tier)
	assert.Equal(t, canon.StrategyFuzzy, res.Match.Strategy)
	assert.Equal(t, 0.7, res.Confidence)
}

func TestResolve_ThresholdGateIsPolicy(t *testing.T) {
	t.Parallel()

	// Same fuzzy hit, lower threshold: the match persists outright.
	mockQ, svc := newService(t, 0.7)

	bellPepper := newCatalogItem("bell pepper", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{bellPepper}, nil)

	res, err := svc.Resolve(context.Background(), "bell papper")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)
	assert.Equal(t, 0.7, res.Confidence)
}

func TestResolve_JunkShortCircuits(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{}, nil)

	res, err := svc.Resolve(context.Background(), "For the Dressing:")
	require.NoError(t, err)
	assert.Equal(t, StatusJunk, res.Status)
	assert.Nil(t, res.Match)
	assert.Empty(t, res.Normalized)
}

func TestResolve_UnmatchedKeepsNormalized(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	garlic := newCatalogItem("garlic", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{garlic}, nil)

	res, err := svc.Resolve(context.Background(), "completely unrelated text")
	require.NoError(t, err)
	assert.Equal(t, StatusUnmatched, res.Status)
	assert.Nil(t, res.Match)
	assert.Equal(t, "completely unrelated text", res.Normalized)
}

func TestResolve_CatalogLoadedOnce(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	garlic := newCatalogItem("garlic", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{garlic}, nil).Once()

	res, err := svc.Resolve(context.Background(), "garlic")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)

	// Second resolve rides the cached index; a second catalog load would
	// trip the Once expectation.
	res, err = svc.Resolve(context.Background(), "2 garlic cloves")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)
	assert.Equal(t, "garlic", res.Normalized)
}

// ---------------------------------------------------------------------------
// IntakeIngredient() unit tests
// ---------------------------------------------------------------------------

func TestIntakeIngredient_PersistsMatch(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	oliveOil := newCatalogItem("olive oil", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{oliveOil}, nil)

	row := db.Ingredient{
		ID:        uuid.New(),
		RawText:   "2 tbsp olive oil",
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	mockQ.EXPECT().CreateIngredient(mock.Anything, mock.MatchedBy(func(p db.CreateIngredientParams) bool {
		return p.RawText == "2 tbsp olive oil" && p.Source.String == "recipe-import" && p.Source.Valid
	})).Return(row, nil)

	resolved := row
	resolved.Status = StatusMatched
	resolved.CanonicalID = uuid.NullUUID{UUID: oliveOil.ID, Valid: true}
	mockQ.EXPECT().UpdateIngredientResolution(mock.Anything, mock.MatchedBy(func(p db.UpdateIngredientResolutionParams) bool {
		return p.ID == row.ID &&
			p.Status == StatusMatched &&
			p.CanonicalID.Valid && p.CanonicalID.UUID == oliveOil.ID &&
			p.MatchTier.String == "exact" &&
			p.Confidence.Float64 == 1.0
	})).Return(resolved, nil)

	ing, res, err := svc.IntakeIngredient(context.Background(), "2 tbsp olive oil", "recipe-import")
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Status)
	assert.Equal(t, StatusMatched, ing.Status)
	assert.Equal(t, oliveOil.ID, ing.CanonicalID.UUID)
}

func TestIntakeIngredient_SuggestionCarriesNoLink(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	bellPepper := newCatalogItem("bell pepper", []string{})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{bellPepper}, nil)

	row := db.Ingredient{ID: uuid.New(), RawText: "bell papper", Status: StatusPending, CreatedAt: time.Now()}
	mockQ.EXPECT().CreateIngredient(mock.Anything, mock.Anything).Return(row, nil)

	resolved := row
	resolved.Status = StatusSuggested
	mockQ.EXPECT().UpdateIngredientResolution(mock.Anything, mock.MatchedBy(func(p db.UpdateIngredientResolutionParams) bool {
		return p.ID == row.ID &&
			p.Status == StatusSuggested &&
			!p.CanonicalID.Valid &&
			p.MatchTier.String == "fuzzy" &&
			p.MatchedLabel.String == "bell pepper" &&
			p.Confidence.Float64 == 0.7
	})).Return(resolved, nil)

	_, res, err := svc.IntakeIngredient(context.Background(), "bell papper", "")
	require.NoError(t, err)
	assert.Equal(t, StatusSuggested, res.Status)
	require.NotNil(t, res.Match)
	assert.Equal(t, bellPepper.ID, res.Match.CanonicalID)
}

func TestIntakeIngredient_JunkRowStillPersisted(t *testing.T) {
	t.Parallel()

	mockQ, svc := newService(t, 0.8)

	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{}, nil)

	row := db.Ingredient{ID: uuid.New(), RawText: "For the Sauce:", Status: StatusPending, CreatedAt: time.Now()}
	mockQ.EXPECT().CreateIngredient(mock.Anything, mock.MatchedBy(func(p db.CreateIngredientParams) bool {
		return p.RawText == "For the Sauce:" && !p.Source.Valid
	})).Return(row, nil)

	resolved := row
	resolved.Status = StatusJunk
	mockQ.EXPECT().UpdateIngredientResolution(mock.Anything, mock.MatchedBy(func(p db.UpdateIngredientResolutionParams) bool {
		return p.ID == row.ID &&
			p.Status == StatusJunk &&
			!p.CanonicalID.Valid &&
			!p.MatchTier.Valid &&
			!p.Confidence.Valid
	})).Return(resolved, nil)

	ing, res, err := svc.IntakeIngredient(context.Background(), "For the Sauce:", "")
	require.NoError(t, err)
	assert.Equal(t, StatusJunk, res.Status)
	assert.Nil(t, res.Match)
	assert.Equal(t, StatusJunk, ing.Status)
}
