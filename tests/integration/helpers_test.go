package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"scanoverlay/internal/api"
	"scanoverlay/internal/database"
	"scanoverlay/internal/models"
	"scanoverlay/internal/session"
)

type TestServer struct {
	Server   *httptest.Server
	App      *api.App
	DB       *database.DB
	Sessions *session.Manager
}

// setupTestServer starts a full server over a temp sqlite database with a
// short clear delay so debounce expiry can be observed without long waits.
func setupTestServer(t *testing.T, clearDelay time.Duration) *TestServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "integration_test.db")
	db, err := database.NewDB(database.Config{Path: dbPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sessions := session.NewManager(clearDelay, session.SystemClock())

	app := &api.App{
		Sessions: sessions,
		Profiles: database.NewProfileRepo(db),
		DefaultMetrics: models.DisplayMetrics{
			ScreenWidth:  1080,
			ScreenHeight: 2400,
			PixelRatio:   3,
		},
	}

	ts := &TestServer{
		Server:   httptest.NewServer(api.NewRouter(app)),
		App:      app,
		DB:       db,
		Sessions: sessions,
	}
	return ts
}

func (ts *TestServer) Cleanup() {
	ts.Server.Close()
	ts.Sessions.Shutdown()
	ts.DB.Close()
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func getSnapshot(t *testing.T, baseURL, sessionID string) session.Snapshot {
	t.Helper()

	resp, err := http.Get(baseURL + "/api/sessions/" + sessionID + "/state")
	if err != nil {
		t.Fatalf("GET state failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET state returned %d", resp.StatusCode)
	}

	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("Failed to decode snapshot: %v", err)
	}
	return snap
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

func createSession(t *testing.T, baseURL string) string {
	t.Helper()

	resp := postJSON(t, baseURL+"/api/sessions", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create session returned %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	return created.ID
}
