package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/handlers"
	"job-board/internal/models"
	"job-board/internal/notify"
	"job-board/internal/service"
	"job-board/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewRouter loads templates relative to the repo root.
func chdirRepoRoot(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(filepath.Join(wd, "..", "..")); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	chdirRepoRoot(t)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	resumes, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("resume store: %v", err)
	}
	apps := service.NewApplications(db, resumes, notify.LogNotifier{})
	h := handlers.NewApplicationHandler(apps, resumes)

	cfg := &config.Config{SessionSecret: "test-secret"}
	return NewRouter(cfg, h)
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	if w := get(r, "/health"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestGatedRoutesRedirectAnonymousToLogin(t *testing.T) {
	r := setupRouter(t)

	paths := []string{
		"/seeker/dashboard",
		"/recruiter/dashboard",
		"/post-job",
		"/upload/some-file.pdf",
	}
	for _, p := range paths {
		w := get(r, p)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s: got %d -> %q, want 302 -> /login", p, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestIndexRedirectsAnonymousToLogin(t *testing.T) {
	r := setupRouter(t)
	w := get(r, "/")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("got %d -> %q", w.Code, w.Header().Get("Location"))
	}
}
