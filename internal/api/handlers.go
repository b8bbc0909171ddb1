package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/logging"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/service"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/catalog", handleListCatalog(svc))
	r.Post("/catalog", handleCreateCatalogItem(svc))
	r.Post("/catalog/merge", handleMerge(svc))
	r.Post("/catalog/seed", handleSeedCatalog(svc))
	r.Get("/catalog/{id}", handleGetCatalogItem(svc))
	r.Put("/catalog/{id}", handleUpdateCatalogItem(svc))
	r.Delete("/catalog/{id}", handleDeleteCatalogItem(svc))

	r.Post("/resolve", handleResolve(svc))

	r.Post("/ingredients", handleIntake(svc))
	r.Post("/ingredients/backfill", handleBackfill(svc))
	r.Get("/ingredients/unmatched", handleListUnmatched(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- catalog list ---

func handleListCatalog(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListCanonicalItems(r.Context())
		if err != nil {
			jsonError(w, "failed to list catalog", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.CanonicalItem{}
		}
		jsonOK(w, items)
	}
}

// --- catalog create ---

type createCatalogRequest struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Category string   `json:"category"`
}

func handleCreateCatalogItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCatalogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			jsonError(w, "name is required", http.StatusBadRequest)
			return
		}
		item, err := svc.CreateCatalogItem(r.Context(), req.Name, req.Aliases, req.Category)
		if err != nil {
			if errors.Is(err, service.ErrEmptyName) {
				jsonError(w, "name normalizes to empty", http.StatusBadRequest)
				return
			}
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				jsonError(w, "an item with that name already exists", http.StatusConflict)
				return
			}
			jsonError(w, "failed to create catalog item", http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item) //nolint:errcheck
	}
}

// --- catalog get ---

func handleGetCatalogItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		item, err := svc.Queries().GetCanonicalItem(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "catalog item not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to get catalog item", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, item)
	}
}

// --- catalog update ---

type updateCatalogRequest struct {
	Aliases  []string `json:"aliases"`
	Category string   `json:"category"`
}

func handleUpdateCatalogItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req updateCatalogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		item, err := svc.UpdateCatalogItem(r.Context(), id, req.Aliases, req.Category)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "catalog item not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to update catalog item", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, item)
	}
}

// --- catalog delete ---

func handleDeleteCatalogItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteCatalogItem(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "catalog item not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to delete catalog item", http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- merge ---

type mergeRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

func handleMerge(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		winnerID, err := uuid.Parse(req.WinnerID)
		if err != nil {
			jsonError(w, "invalid winner_id", http.StatusBadRequest)
			return
		}
		loserID, err := uuid.Parse(req.LoserID)
		if err != nil {
			jsonError(w, "invalid loser_id", http.StatusBadRequest)
			return
		}
		winner, err := svc.Merge(r.Context(), winnerID, loserID)
		if err != nil {
			if errors.Is(err, service.ErrSelfMerge) {
				jsonError(w, "winner_id and loser_id must differ", http.StatusBadRequest)
				return
			}
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "catalog item not found", http.StatusNotFound)
				return
			}
			jsonError(w, "merge failed", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, winner)
	}
}

// --- seed ---

func handleSeedCatalog(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.SeedCatalog(r.Context(), r.Body)
		if err != nil {
			jsonError(w, "seed failed: "+err.Error(), http.StatusBadRequest)
			return
		}
		jsonOK(w, summary)
	}
}

// --- resolve ---

type resolveRequest struct {
	Text string `json:"text"`
}

type resolveResponse struct {
	Status       string  `json:"status"`
	Normalized   string  `json:"normalized,omitempty"`
	CanonicalID  string  `json:"canonical_id,omitempty"`
	MatchedLabel string  `json:"matched_label,omitempty"`
	Tier         string  `json:"tier,omitempty"`
	Strategy     string  `json:"strategy,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
}

func newResolveResponse(res service.Resolution) resolveResponse {
	out := resolveResponse{
		Status:     res.Status,
		Normalized: res.Normalized,
		Confidence: res.Confidence,
	}
	if res.Match != nil {
		out.CanonicalID = res.Match.CanonicalID.String()
		out.MatchedLabel = res.Match.MatchedLabel
		out.Tier = res.Match.Tier.String()
		out.Strategy = string(res.Match.Strategy)
	}
	return out
}

func handleResolve(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Text == "" {
			jsonError(w, "text is required", http.StatusBadRequest)
			return
		}
		res, err := svc.Resolve(r.Context(), req.Text)
		if err != nil {
			jsonError(w, "resolve failed", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, newResolveResponse(res))
	}
}

// --- intake ---

type intakeRequest struct {
	RawText string `json:"raw_text"`
	Source  string `json:"source"`
}

type intakeResponse struct {
	Ingredient db.Ingredient   `json:"ingredient"`
	Resolution resolveResponse `json:"resolution"`
}

func handleIntake(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req intakeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.RawText == "" {
			jsonError(w, "raw_text is required", http.StatusBadRequest)
			return
		}
		ing, res, err := svc.IntakeIngredient(r.Context(), req.RawText, req.Source)
		if err != nil {
			jsonError(w, "intake failed", http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(intakeResponse{ //nolint:errcheck
			Ingredient: ing,
			Resolution: newResolveResponse(res),
		})
	}
}

// --- backfill ---

type backfillRequest struct {
	Limit   int  `json:"limit"`
	Workers int  `json:"workers"`
	DryRun  bool `json:"dry_run"`
}

func handleBackfill(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// An empty body means run with defaults.
		var req backfillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		summary, err := svc.Backfill(r.Context(), service.BackfillOptions{
			Limit:   req.Limit,
			Workers: req.Workers,
			DryRun:  req.DryRun,
		})
		if err != nil {
			jsonError(w, "backfill failed", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, summary)
	}
}

// --- unmatched list ---

func handleListUnmatched(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				jsonError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		rows, err := svc.Queries().ListIngredientsByStatus(r.Context(), db.ListIngredientsByStatusParams{
			Status: service.StatusUnmatched,
			Limit:  int32(limit),
		})
		if err != nil {
			jsonError(w, "failed to list unmatched ingredients", http.StatusInternalServerError, err)
			return
		}
		if rows == nil {
			rows = []db.Ingredient{}
		}
		jsonOK(w, rows)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
