package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestServer(t *testing.T, store *storage.Store) *httptest.Server {
	t.Helper()
	s := New(store, config.Default().Game, config.NewLoggerTo(io.Discard, "error"))
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("GET %s Content-Type = %q", url, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	var body map[string]bool
	if code := getJSON(t, srv.URL+"/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !body["ok"] {
		t.Errorf("body = %v, want ok=true", body)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	var body map[string]string
	if code := getJSON(t, srv.URL+"/nope", &body); code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["error"] != "not_found" {
		t.Errorf("error = %q, want not_found", body["error"])
	}
}

func TestVariants(t *testing.T) {
	srv := newTestServer(t, nil)

	var body []struct {
		ID   string `json:"id"`
		Size int    `json:"size"`
	}
	if code := getJSON(t, srv.URL+"/variants", &body); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	sizes := map[string]int{}
	for _, v := range body {
		sizes[v.ID] = v.Size
	}
	for id, want := range map[string]int{"mini": 3, "classic": 4, "big": 5, "huge": 6} {
		if sizes[id] != want {
			t.Errorf("variant %q size = %d, want %d", id, sizes[id], want)
		}
	}
}

func TestScores(t *testing.T) {
	store := openTestStore(t)
	for _, e := range []storage.ScoreEntry{
		{Variant: "classic", Score: 100, MaxTile: 16, Player: "a"},
		{Variant: "classic", Score: 300, MaxTile: 64, Player: "b"},
		{Variant: "classic", Score: 200, MaxTile: 32, Player: "c"},
		{Variant: "mini", Score: 999, MaxTile: 128, Player: "d"},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	srv := newTestServer(t, store)

	var all []storage.ScoreEntry
	if code := getJSON(t, srv.URL+"/scores/classic", &all); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	want := []int{300, 200, 100}
	if len(all) != len(want) {
		t.Fatalf("got %d entries, want %d", len(all), len(want))
	}
	for i, e := range all {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, want[i])
		}
	}

	var top []storage.ScoreEntry
	getJSON(t, srv.URL+"/scores/classic?limit=1", &top)
	if len(top) != 1 || top[0].Player != "b" {
		t.Errorf("limit=1 returned %+v, want only player b", top)
	}

	var empty []storage.ScoreEntry
	getJSON(t, srv.URL+"/scores/huge", &empty)
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty variant returned %v, want []", empty)
	}
}

func TestScoresErrors(t *testing.T) {
	store := openTestStore(t)
	srv := newTestServer(t, store)

	tests := []struct {
		path string
		code int
		err  string
	}{
		{"/scores/tiny", http.StatusNotFound, "unknown_variant"},
		{"/scores/classic?limit=x", http.StatusBadRequest, "bad_limit"},
		{"/scores/classic?limit=0", http.StatusBadRequest, "bad_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var body map[string]string
			if code := getJSON(t, srv.URL+tt.path, &body); code != tt.code {
				t.Errorf("status = %d, want %d", code, tt.code)
			}
			if body["error"] != tt.err {
				t.Errorf("error = %q, want %q", body["error"], tt.err)
			}
		})
	}
}

func TestScoresWithoutStore(t *testing.T) {
	srv := newTestServer(t, nil)

	var body map[string]string
	if code := getJSON(t, srv.URL+"/scores/classic", &body); code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", code)
	}
}
