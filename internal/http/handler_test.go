package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/genrerec/internal/cache/memory"
	"github.com/davidbz/genrerec/internal/catalog"
	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/domain"
	apphttp "github.com/davidbz/genrerec/internal/http"
	"github.com/davidbz/genrerec/internal/http/middleware"
	"github.com/davidbz/genrerec/internal/vectorizer/tfidf"
)

func newRoutes(t *testing.T) http.Handler {
	t.Helper()

	reg := catalog.NewRegistry()
	for _, c := range catalog.Builtin() {
		require.NoError(t, reg.Register(context.Background(), c))
	}

	engine := domain.NewSimilarityEngine(tfidf.NewVectorizer(), memory.NewCache(0))
	svc := domain.NewRecommendationService(engine, nil)
	handler := apphttp.NewHandler(svc, reg, &config.EngineConfig{DefaultTopN: 3, MaxTopN: 10})

	server := apphttp.NewServer(&config.ServerConfig{Port: 0}, handler, middleware.Chain(middleware.Trace()))
	return server.Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, reader))
	return w
}

func intPtr(v int) *int { return &v }

func TestHandleHealth(t *testing.T) {
	t.Run("should report healthy", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "healthy")
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})
}

func TestHandleListCatalogs(t *testing.T) {
	t.Run("should list catalogs with sizes", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodGet, "/v1/catalogs", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out []apphttp.CatalogSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
		require.Equal(t, []apphttp.CatalogSummary{
			{Name: "books", Items: 51},
			{Name: "movies", Items: 50},
		}, out)
	})
}

func TestHandleListItems(t *testing.T) {
	t.Run("should list items in catalog order", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodGet, "/v1/catalogs/movies/items", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []domain.Item
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		require.Len(t, items, 50)
		require.Equal(t, domain.Item{Title: "Interstellar", Genre: "Sci-Fi, Action"}, items[0])
	})

	t.Run("should return 404 for unknown catalog", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodGet, "/v1/catalogs/games/items", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleRecommend(t *testing.T) {
	t.Run("should return ranked recommendations", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{
			Catalog: "movies",
			Title:   "Interstellar",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.SeedResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Equal(t, domain.OutcomeFound, result.Outcome)
		require.Len(t, result.Recommendations, 3)
	})

	t.Run("should clamp top n to the configured maximum", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{
			Catalog: "movies",
			Title:   "Interstellar",
			TopN:    intPtr(100),
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.SeedResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result.Recommendations, 10)
	})

	t.Run("should return empty list for top n zero", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{
			Catalog: "movies",
			Title:   "Interstellar",
			TopN:    intPtr(0),
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.SeedResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Empty(t, result.Recommendations)
	})

	t.Run("should return 404 for unknown title", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{
			Catalog: "movies",
			Title:   "NotARealTitle",
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var errResp apphttp.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
		require.Equal(t, "title not found", errResp.Error)
	})

	t.Run("should return 404 for unknown catalog", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{
			Catalog: "games",
			Title:   "Interstellar",
		})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should reject missing title", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{Catalog: "movies"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRoutes(t).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString("{")))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var errResp apphttp.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
		require.Equal(t, "invalid request body", errResp.Error)
	})

	t.Run("should not echo decoder errors for preferences", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRoutes(t).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/preferences/recommendations",
			bytes.NewBufferString(`{"titles": 5}`)))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.NotContains(t, w.Body.String(), "cannot unmarshal")
		require.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("should reject non post methods", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodGet, "/v1/recommendations", nil)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandlePreferences(t *testing.T) {
	t.Run("should aggregate and report per seed status", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/preferences/recommendations", apphttp.PreferencesRequest{
			Catalog: "movies",
			Titles:  []string{"Inception", "NotARealTitle"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, `"status":"not_found"`)
		require.Contains(t, body, `"status":"found"`)

		var result domain.AggregateResult
		require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&result))
		require.Len(t, result.Recommendations, 3)
		require.Len(t, result.Seeds, 2)
		require.Equal(t, domain.OutcomeFound, result.Seeds[0].Outcome)
		require.Equal(t, domain.OutcomeNotFound, result.Seeds[1].Outcome)
	})

	t.Run("should return empty result for no titles", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/preferences/recommendations", apphttp.PreferencesRequest{
			Catalog: "books",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.AggregateResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Empty(t, result.Recommendations)
	})

	t.Run("should require a catalog", func(t *testing.T) {
		w := do(t, newRoutes(t), http.MethodPost, "/v1/preferences/recommendations", apphttp.PreferencesRequest{
			Titles: []string{"Dune"},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Run("should expose prometheus metrics", func(t *testing.T) {
		h := newRoutes(t)
		do(t, h, http.MethodPost, "/v1/recommendations", apphttp.RecommendRequest{Catalog: "movies", Title: "Titanic"})

		w := do(t, h, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "genrerec_recommendation_outcomes_total")
	})
}
