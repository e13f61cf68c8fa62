package askcode_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sokinpui/askcode/askcode"
	"github.com/sokinpui/askcode/config"
	"github.com/sokinpui/askcode/extract"
)

// newProject creates a small project tree and returns its root.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write project file: %v", err)
	}
	return root
}

func newConfig(t *testing.T, apiURL string) config.Config {
	t.Helper()
	return config.Merge(config.Config{
		Directory:  newProject(t),
		Extensions: []string{".py"},
		Query:      "what does this do",
		APIURL:     apiURL,
		APIKey:     "secret",
		OutputDir:  filepath.Join(t.TempDir(), "diffs"),
	}, config.Config{})
}

func TestExecute(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"choices": [{"message": {"content": "hello"}}]}`))
	}))
	defer srv.Close()

	cfg := newConfig(t, srv.URL)
	app := askcode.New(cfg)

	summary, err := app.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected exactly one request, got %d", requests)
	}
	if summary.Reply != "hello" {
		t.Errorf("Reply = %q, want %q", summary.Reply, "hello")
	}
	// The default extractor recognizes nothing, so no diffs are written.
	if len(summary.DiffFiles) != 0 {
		t.Errorf("expected no diff files, got %v", summary.DiffFiles)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("output directory must not be created when no diffs were extracted")
	}
}

func TestExecuteWithMarkdownExtractor(t *testing.T) {
	const reply = "Guard the loader.\n\n" +
		"```diff\n" +
		"--- a/loader.py\n" +
		"+++ b/loader.py\n" +
		"@@ -1,1 +1,2 @@\n" +
		" load()\n" +
		"+check()\n" +
		"```\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": reply}}},
		}
		writeJSON(t, w, resp)
	}))
	defer srv.Close()

	cfg := newConfig(t, srv.URL)
	app := askcode.New(cfg)
	app.SetExtractor(extract.Markdown{})

	summary, err := app.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(summary.DiffFiles) != 1 {
		t.Fatalf("expected 1 diff file, got %v", summary.DiffFiles)
	}
	data, err := os.ReadFile(summary.DiffFiles[0])
	if err != nil {
		t.Fatalf("failed to read written diff: %v", err)
	}
	if !strings.Contains(string(data), "+check()") {
		t.Errorf("diff file missing content: %q", data)
	}
}

func TestExecuteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "bad key"}`))
	}))
	defer srv.Close()

	cfg := newConfig(t, srv.URL)
	summary, err := askcode.New(cfg).Execute(context.Background())
	if err != nil {
		t.Fatalf("an HTTP error status must not crash the run: %v", err)
	}
	if summary.Message == "" || !strings.Contains(summary.Message, "bad key") {
		t.Errorf("expected the raw response body in the message, got %q", summary.Message)
	}
	if summary.Reply != "" || len(summary.DiffFiles) != 0 {
		t.Errorf("no reply or diffs expected, got %+v", summary)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("output directory must not be created on an error status")
	}
}

func TestExecuteMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "resp-1"}`))
	}))
	defer srv.Close()

	summary, err := askcode.New(newConfig(t, srv.URL)).Execute(context.Background())
	if err != nil {
		t.Fatalf("a response without choices must not crash the run: %v", err)
	}
	if summary.Message != "No valid response from the LLM." {
		t.Errorf("Message = %q", summary.Message)
	}
}

func TestExecuteMissingDirectory(t *testing.T) {
	cfg := newConfig(t, "http://127.0.0.1:0")
	cfg.Directory = filepath.Join(t.TempDir(), "nope")

	if _, err := askcode.New(cfg).Execute(context.Background()); err == nil {
		t.Fatal("expected a filesystem error for a missing directory, got nil")
	}
}

func TestAskValidatesBeforeRequest(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	cfg := config.Config{
		Directory:  newProject(t),
		Extensions: []string{".py"},
		Query:      "q",
		APIURL:     srv.URL,
		// APIKey left unset.
	}
	if _, err := askcode.Ask(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if requests != 0 {
		t.Errorf("validation must happen before any request, got %d requests", requests)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}
