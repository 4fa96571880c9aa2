package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/app/services"
	"github.com/yigit/coursemap/internal/config"
)

type noHistograms struct{}

func (noHistograms) Semesters(context.Context, string) []string { return nil }
func (noHistograms) Exam(context.Context, string, string, string) (*models.ExamGrades, bool) {
	return nil, false
}
func (noHistograms) Average(context.Context, string) (float64, bool) { return 0, false }

const catalogJSON = `[
    {
        "מספר מקצוע": "00234218",
        "שם מקצוע": "מבני נתונים 1",
        "מקצועות קדם": [],
        "מקצועות חסומים": [],
        "tag": "00234218 - מבני נתונים 1"
    }
]`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Courses.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Catalog.Path = path
	cfg.Server.AllowedOrigins = []string{"https://courses.example"}
	return cfg
}

func TestRouterServesCatalog(t *testing.T) {
	cfg := testConfig(t)
	source, err := CatalogSource(cfg, nil)
	require.NoError(t, err)

	deps, err := BuildDependencies(context.Background(), cfg, source, noHistograms{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, deps.CatalogService.Len())

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/00234218", nil)
	req.Header.Set("Origin", "https://courses.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://courses.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/courses/search")
}

func TestBuildDependenciesFailsOnMissingCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.json")

	_, err := BuildDependencies(context.Background(), cfg, services.NewFileCatalogSource(cfg.Catalog.Path), noHistograms{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestCatalogSourceRequiresPool(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Source = config.SourcePostgres

	_, err := CatalogSource(cfg, nil)
	assert.Error(t, err)
}

func TestCorsConfigWildcard(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.AllowedOrigins = []string{"https://a.example", "*"}

	c := corsConfig(cfg)
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)
}
