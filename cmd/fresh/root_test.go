package fresh

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/123ang/expiry-alert-cli/internal/config"
)

func startBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/food-items", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id": "f1", "name": "Old Milk", "quantity": 1, "expiry_date": "2000-01-01", "category_name": "Dairy", "location_name": "Fridge - Door"},
  {"id": "f2", "name": "Rice", "quantity": 3, "expiry_date": "2099-01-01", "category_name": "Grains", "location_name": "Pantry"}
]`))
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id": "c1", "name": "Fruits", "translation_key": "category_fruits", "is_default": true},
  {"id": "c2", "name": "Meat / Seafood", "translation_key": "category_meat_seafood", "is_default": true}
]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func writeTestConfig(t *testing.T, backendURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(path, config.Config{BackendURL: backendURL}); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\noutput: %s", args, err, buf.String())
	}
	return buf.String()
}

func TestSummaryFiresReminderOncePerDay(t *testing.T) {
	ts := startBackend(t)
	cfgPath := writeTestConfig(t, ts.URL)
	statePath := filepath.Join(t.TempDir(), "state.db")

	args := []string{"summary", "--db", statePath, "--config", cfgPath, "--timezone", "UTC", "--lang", "en"}

	first := runCommand(t, args...)
	if !strings.Contains(first, "Expired: 1") {
		t.Fatalf("expected expired count in summary, got:\n%s", first)
	}
	if !strings.Contains(first, "You have 1 expired item(s)") {
		t.Fatalf("expected reminder alert on first run, got:\n%s", first)
	}

	second := runCommand(t, args...)
	if strings.Contains(second, "You have 1 expired item(s)") {
		t.Fatalf("reminder fired twice on the same day:\n%s", second)
	}
	if !strings.Contains(second, "Expired: 1") {
		t.Fatalf("expected counts to render on every run, got:\n%s", second)
	}

	if _, err := os.Stat(statePath); err != nil {
		t.Fatalf("expected state database to exist: %v", err)
	}
}

func TestCategoryListLocalizesAndTruncatesNames(t *testing.T) {
	ts := startBackend(t)
	cfgPath := writeTestConfig(t, ts.URL)
	statePath := filepath.Join(t.TempDir(), "state.db")

	out := runCommand(t, "category", "list", "--db", statePath, "--config", cfgPath, "--lang", "ja")
	if !strings.Contains(out, "果物") {
		t.Fatalf("expected Japanese category name, got:\n%s", out)
	}
	if !strings.Contains(out, "肉") || strings.Contains(out, "肉 / 魚介類") {
		t.Fatalf("expected compound name truncated at slash, got:\n%s", out)
	}
}

func TestItemsListRendersFreshnessStates(t *testing.T) {
	ts := startBackend(t)
	cfgPath := writeTestConfig(t, ts.URL)
	statePath := filepath.Join(t.TempDir(), "state.db")

	out := runCommand(t, "items", "list", "--db", statePath, "--config", cfgPath, "--timezone", "UTC", "--lang", "en")
	if !strings.Contains(out, "2 total, 1 fresh, 0 expiring soon, 1 expired") {
		t.Fatalf("unexpected counts line:\n%s", out)
	}
	if !strings.Contains(out, "Old Milk") || !strings.Contains(out, "Expired") {
		t.Fatalf("expected expired item row, got:\n%s", out)
	}
}
