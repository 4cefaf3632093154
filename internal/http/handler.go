package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

// RecommendRequest asks for recommendations from a single seed title.
type RecommendRequest struct {
	Catalog string `json:"catalog"`
	Title   string `json:"title"`
	TopN    *int   `json:"top_n,omitempty"`
}

// PreferencesRequest asks for recommendations aggregated over several seed titles.
type PreferencesRequest struct {
	Catalog string   `json:"catalog"`
	Titles  []string `json:"titles"`
	TopN    *int     `json:"top_n,omitempty"`
}

// CatalogSummary describes a registered catalog.
type CatalogSummary struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler handles HTTP requests.
type Handler struct {
	recommender *domain.RecommendationService
	catalogs    domain.CatalogRegistry
	engine      *config.EngineConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	recommender *domain.RecommendationService,
	catalogs domain.CatalogRegistry,
	engine *config.EngineConfig,
) *Handler {
	return &Handler{
		recommender: recommender,
		catalogs:    catalogs,
		engine:      engine,
	}
}

// HandleListCatalogs lists the registered catalogs.
func (h *Handler) HandleListCatalogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.catalogs.List(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to list catalogs", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list catalogs")
		return
	}

	out := make([]CatalogSummary, 0, len(list))
	for _, c := range list {
		out = append(out, CatalogSummary{Name: c.Name(), Items: c.Len()})
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleListItems lists the items of one catalog in catalog order.
func (h *Handler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	c, ok := h.lookupCatalog(w, r, name)
	if !ok {
		return
	}

	observability.FromContext(observability.WithCatalog(ctx, name)).Debug("listing catalog items")
	writeJSON(w, http.StatusOK, c.Items())
}

// HandleRecommend returns the most similar titles to one seed title.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.FromContext(r.Context()).Warn("failed to decode request body", observability.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	c, ok := h.lookupCatalog(w, r, req.Catalog)
	if !ok {
		return
	}

	ctx := observability.WithCatalog(r.Context(), c.Name())
	topN := h.resolveTopN(req.TopN)

	logger := observability.FromContext(ctx)
	logger.Info("recommendation request received",
		observability.String("title", req.Title),
		observability.Int("top_n", topN))

	result := h.recommender.Recommend(ctx, c, req.Title, topN)
	if result.Outcome == domain.OutcomeNotFound {
		writeError(w, http.StatusNotFound, "title not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandlePreferences aggregates recommendations over several seed titles.
func (h *Handler) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.FromContext(r.Context()).Warn("failed to decode request body", observability.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, ok := h.lookupCatalog(w, r, req.Catalog)
	if !ok {
		return
	}

	ctx := observability.WithCatalog(r.Context(), c.Name())
	topN := h.resolveTopN(req.TopN)

	observability.FromContext(ctx).Info("preferences request received",
		observability.Int("seeds", len(req.Titles)),
		observability.Int("top_n", topN))

	writeJSON(w, http.StatusOK, h.recommender.Aggregate(ctx, c, req.Titles, topN))
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handler) lookupCatalog(w http.ResponseWriter, r *http.Request, name string) (*domain.Catalog, bool) {
	if name == "" {
		writeError(w, http.StatusBadRequest, "catalog is required")
		return nil, false
	}

	c, err := h.catalogs.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			writeError(w, http.StatusNotFound, "catalog not found")
			return nil, false
		}
		observability.FromContext(r.Context()).Error("catalog lookup failed", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "catalog lookup failed")
		return nil, false
	}

	return c, true
}

// resolveTopN applies the default when unset, clamps to the configured
// maximum and treats negative values as zero.
func (h *Handler) resolveTopN(requested *int) int {
	topN := h.engine.DefaultTopN
	if requested != nil {
		topN = *requested
	}

	if h.engine.MaxTopN > 0 && topN > h.engine.MaxTopN {
		topN = h.engine.MaxTopN
	}

	return max(topN, 0)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
