package api_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/api"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/mocks"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/service"
)

// helpers

func newTestCatalogItem(name string, aliases []string) db.CanonicalItem {
	if aliases == nil {
		aliases = []string{}
	}
	return db.CanonicalItem{
		ID:        uuid.New(),
		Name:      name,
		Aliases:   aliases,
		CreatedAt: time.Now(),
	}
}

func newTestIngredientRow(raw string) db.Ingredient {
	return db.Ingredient{
		ID:        uuid.New(),
		RawText:   raw,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
}

func setupRouter(t *testing.T) (*mocks.MockQuerier, http.Handler) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	svc := service.New(mockQ, nil, service.Config{ResolveThreshold: 0.8})
	router := api.NewRouter(svc)
	return mockQ, router
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// ---------------------------------------------------------------------------
// GET /healthz
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

// ---------------------------------------------------------------------------
// GET /catalog
// ---------------------------------------------------------------------------

func TestListCatalog_Empty(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []db.CanonicalItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	assert.Empty(t, items)
}

func TestListCatalog_WithItems(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	garlic := newTestCatalogItem("garlic", nil)
	salt := newTestCatalogItem("salt", nil)
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{garlic, salt}, nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	assert.Len(t, items, 2)
}

// ---------------------------------------------------------------------------
// POST /catalog
// ---------------------------------------------------------------------------

func TestCreateCatalogItem_Success(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	created := newTestCatalogItem("olive oil", []string{"EVOO"})
	mockQ.EXPECT().CreateCanonicalItem(mock.Anything, mock.MatchedBy(func(p db.CreateCanonicalItemParams) bool {
		return p.Name == "olive oil" &&
			len(p.Aliases) == 1 && p.Aliases[0] == "EVOO" &&
			p.Category.String == "pantry"
	})).Return(created, nil)

	body := jsonBody(t, map[string]any{
		"name":     "Extra-Virgin Olive Oil",
		"aliases":  []string{"EVOO", "olive oil"},
		"category": "pantry",
	})
	req := httptest.NewRequest(http.MethodPost, "/catalog", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID.String(), got["id"])
	assert.Equal(t, "olive oil", got["name"])
}

func TestCreateCatalogItem_MissingName(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	body := jsonBody(t, map[string]any{"name": ""})
	req := httptest.NewRequest(http.MethodPost, "/catalog", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Contains(t, got["error"], "name is required")
}

func TestCreateCatalogItem_NameNormalizesToEmpty(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	body := jsonBody(t, map[string]any{"name": "2 cups of"})
	req := httptest.NewRequest(http.MethodPost, "/catalog", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Contains(t, got["error"], "normalizes to empty")
}

func TestCreateCatalogItem_DuplicateName(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().CreateCanonicalItem(mock.Anything, mock.Anything).
		Return(db.CanonicalItem{}, &pq.Error{Code: "23505"})

	body := jsonBody(t, map[string]any{"name": "garlic"})
	req := httptest.NewRequest(http.MethodPost, "/catalog", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ---------------------------------------------------------------------------
// GET /catalog/:id
// ---------------------------------------------------------------------------

func TestGetCatalogItem_Success(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	garlic := newTestCatalogItem("garlic", nil)
	mockQ.EXPECT().GetCanonicalItem(mock.Anything, garlic.ID).Return(garlic, nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog/"+garlic.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, garlic.ID.String(), got["id"])
}

func TestGetCatalogItem_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().GetCanonicalItem(mock.Anything, id).Return(db.CanonicalItem{}, sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/catalog/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCatalogItem_InvalidID(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// PUT /catalog/:id
// ---------------------------------------------------------------------------

func TestUpdateCatalogItem_Success(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	current := newTestCatalogItem("green onion", nil)
	mockQ.EXPECT().GetCanonicalItem(mock.Anything, current.ID).Return(current, nil)

	updated := newTestCatalogItem("green onion", []string{"scallion", "spring onion"})
	updated.ID = current.ID
	mockQ.EXPECT().UpdateCanonicalItem(mock.Anything, mock.MatchedBy(func(p db.UpdateCanonicalItemParams) bool {
		return p.ID == current.ID &&
			len(p.Aliases) == 2 && p.Aliases[0] == "scallion" && p.Aliases[1] == "spring onion"
	})).Return(updated, nil)

	body := jsonBody(t, map[string]any{
		"aliases":  []string{"scallion", "Green Onion", "spring onion"},
		"category": "",
	})
	req := httptest.NewRequest(http.MethodPut, "/catalog/"+current.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, current.ID.String(), got["id"])
}

func TestUpdateCatalogItem_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().GetCanonicalItem(mock.Anything, id).Return(db.CanonicalItem{}, sql.ErrNoRows)

	body := jsonBody(t, map[string]any{"aliases": []string{}})
	req := httptest.NewRequest(http.MethodPut, "/catalog/"+id.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// DELETE /catalog/:id
// ---------------------------------------------------------------------------

func TestDeleteCatalogItem_InvalidID(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/catalog/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// POST /catalog/merge
// ---------------------------------------------------------------------------

func TestMerge_InvalidIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]string
	}{
		{
			name: "invalid winner_id",
			body: map[string]string{"winner_id": "bad", "loser_id": uuid.New().String()},
		},
		{
			name: "invalid loser_id",
			body: map[string]string{"winner_id": uuid.New().String(), "loser_id": "bad"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, router := setupRouter(t)

			body := jsonBody(t, tc.body)
			req := httptest.NewRequest(http.MethodPost, "/catalog/merge", body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMerge_SelfMergeRejected(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	id := uuid.New().String()
	body := jsonBody(t, map[string]string{"winner_id": id, "loser_id": id})
	req := httptest.NewRequest(http.MethodPost, "/catalog/merge", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Contains(t, got["error"], "must differ")
}

// ---------------------------------------------------------------------------
// POST /catalog/seed
// ---------------------------------------------------------------------------

func TestSeedCatalog(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	created := newTestCatalogItem("olive oil", []string{"EVOO"})
	mockQ.EXPECT().UpsertCanonicalItem(mock.Anything, mock.MatchedBy(func(p db.UpsertCanonicalItemParams) bool {
		return p.Name == "olive oil" && len(p.Aliases) == 1 && p.Aliases[0] == "EVOO"
	})).Return(created, nil)

	csv := "name,aliases,category\nolive oil,EVOO,pantry\n"
	req := httptest.NewRequest(http.MethodPost, "/catalog/seed", bytes.NewBufferString(csv))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 1, got["created"])
	assert.Equal(t, 0, got["skipped"])
}

func TestSeedCatalog_MalformedCSV(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/catalog/seed", bytes.NewBufferString(`"unterminated`))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// POST /resolve
// ---------------------------------------------------------------------------

func TestResolve_Matched(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	oil := newTestCatalogItem("olive oil", []string{"EVOO"})
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{oil}, nil)

	body := jsonBody(t, map[string]string{"text": "1 tbsp EVOO"})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "matched", resp["status"])
	assert.Equal(t, "evoo", resp["normalized"])
	assert.Equal(t, oil.ID.String(), resp["canonical_id"])
	assert.Equal(t, "EVOO", resp["matched_label"])
	assert.Equal(t, "alias", resp["tier"])
	assert.Equal(t, "exact_alias", resp["strategy"])
	assert.Equal(t, 0.9, resp["confidence"])
}

func TestResolve_Junk(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return(nil, nil)

	body := jsonBody(t, map[string]string{"text": "For the Sauce:"})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "junk", resp["status"])
	assert.NotContains(t, resp, "canonical_id")
	assert.NotContains(t, resp, "confidence")
}

func TestResolve_MissingText(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	body := jsonBody(t, map[string]string{"text": ""})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// POST /ingredients
// ---------------------------------------------------------------------------

func TestIntake_Created(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	flour := newTestCatalogItem("flour", nil)
	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return([]db.CanonicalItem{flour}, nil)

	row := newTestIngredientRow("2 cups flour")
	mockQ.EXPECT().CreateIngredient(mock.Anything, mock.MatchedBy(func(p db.CreateIngredientParams) bool {
		return p.RawText == "2 cups flour" && p.Source.String == "recipe-import"
	})).Return(row, nil)

	resolved := row
	resolved.Status = "matched"
	resolved.CanonicalID = uuid.NullUUID{UUID: flour.ID, Valid: true}
	mockQ.EXPECT().UpdateIngredientResolution(mock.Anything, mock.MatchedBy(func(p db.UpdateIngredientResolutionParams) bool {
		return p.ID == row.ID && p.Status == "matched" && p.CanonicalID.UUID == flour.ID
	})).Return(resolved, nil)

	body := jsonBody(t, map[string]string{"raw_text": "2 cups flour", "source": "recipe-import"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	ing := resp["ingredient"].(map[string]any)
	assert.Equal(t, row.ID.String(), ing["id"])
	res := resp["resolution"].(map[string]any)
	assert.Equal(t, "matched", res["status"])
	assert.Equal(t, "exact", res["tier"])
	assert.Equal(t, 1.0, res["confidence"])
}

func TestIntake_MissingRawText(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	body := jsonBody(t, map[string]string{"raw_text": ""})
	req := httptest.NewRequest(http.MethodPost, "/ingredients", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// POST /ingredients/backfill
// ---------------------------------------------------------------------------

func TestBackfill_EmptyBodyRunsDefaults(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().ListCanonicalItems(mock.Anything).Return(nil, nil)
	mockQ.EXPECT().ListUnresolvedIngredients(mock.Anything, mock.MatchedBy(func(p db.ListUnresolvedIngredientsParams) bool {
		return p.Offset == 0
	})).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/ingredients/backfill", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 0, got["processed"])
}

// ---------------------------------------------------------------------------
// GET /ingredients/unmatched
// ---------------------------------------------------------------------------

func TestListUnmatched_DefaultLimit(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	row := newTestIngredientRow("unknowable scribble")
	row.Status = "unmatched"
	mockQ.EXPECT().ListIngredientsByStatus(mock.Anything, db.ListIngredientsByStatusParams{
		Status: "unmatched",
		Limit:  50,
	}).Return([]db.Ingredient{row}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/unmatched", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	assert.Len(t, rows, 1)
}

func TestListUnmatched_CustomLimit(t *testing.T) {
	t.Parallel()
	mockQ, router := setupRouter(t)

	mockQ.EXPECT().ListIngredientsByStatus(mock.Anything, db.ListIngredientsByStatusParams{
		Status: "unmatched",
		Limit:  5,
	}).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/unmatched?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []db.Ingredient
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	assert.Empty(t, rows)
}

func TestListUnmatched_InvalidLimit(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/unmatched?limit=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
