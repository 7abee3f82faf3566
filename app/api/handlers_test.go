package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eubelhor/house-scraper/app/dataset"
	"github.com/eubelhor/house-scraper/app/member"
	"github.com/eubelhor/house-scraper/app/scraper"
)

type stubRefresher struct {
	called bool
	err    error
}

func (s *stubRefresher) Refresh(ctx context.Context) error {
	s.called = true
	return s.err
}

func newTestServer(t *testing.T, apiAccessKey string, refresher *stubRefresher) (*dataset.Store, http.Handler) {
	t.Helper()

	store := dataset.NewStore()
	cache := scraper.NewConfigCache(t.TempDir())
	if err := cache.Run(); err != nil {
		t.Fatalf("Failed to initialize config cache: %v", err)
	}

	handler := NewHandler(store, cache, refresher)
	return store, NewServer(handler, apiAccessKey)
}

func seedStore(store *dataset.Store) {
	store.Set([]member.Member{
		{Name: "Nick Begich", State: "AK", District: "At-Large", Party: "Republican", Source: "house"},
		{Name: "Jared Huffman", State: "CA", District: "2", Party: "Democrat", Source: "house"},
	}, &scraper.Stats{Seats: 2, Parsed: 2, Consulted: []string{"house"}})
}

func doRequest(router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestGetRepresentatives(t *testing.T) {
	store, router := newTestServer(t, "", &stubRefresher{})
	seedStore(store)

	w := doRequest(router, "GET", "/representatives", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Count           int             `json:"count"`
		Representatives []member.Member `json:"representatives"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body.Count != 2 || len(body.Representatives) != 2 {
		t.Errorf("Expected 2 representatives, got count=%d len=%d", body.Count, len(body.Representatives))
	}
	if w.Header().Get("X-Record-Count") != "2" {
		t.Errorf("Expected X-Record-Count header, got '%s'", w.Header().Get("X-Record-Count"))
	}
}

func TestGetRepresentatives_EmptyStore(t *testing.T) {
	_, router := newTestServer(t, "", &stubRefresher{})

	w := doRequest(router, "GET", "/representatives", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before first acquisition, got %d", w.Code)
	}
}

func TestGetRepresentativesCSV(t *testing.T) {
	store, router := newTestServer(t, "", &stubRefresher{})
	seedStore(store)

	w := doRequest(router, "GET", "/representatives.csv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/csv") {
		t.Errorf("Expected CSV content type, got '%s'", w.Header().Get("Content-Type"))
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "name,state,district,party,office_address,source" {
		t.Errorf("Unexpected CSV header: %s", lines[0])
	}
}

func TestGetHealth(t *testing.T) {
	store, router := newTestServer(t, "", &stubRefresher{})
	seedStore(store)

	w := doRequest(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if health["seats"].(float64) != 2 {
		t.Errorf("Expected 2 seats in health, got %v", health["seats"])
	}
}

func TestGetStats(t *testing.T) {
	store, router := newTestServer(t, "", &stubRefresher{})
	seedStore(store)

	w := doRequest(router, "GET", "/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var stats map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if stats["parsed"].(float64) != 2 {
		t.Errorf("Expected parsed=2, got %v", stats["parsed"])
	}
}

func TestAPIRefresh_RequiresKey(t *testing.T) {
	refresher := &stubRefresher{}
	_, router := newTestServer(t, "secret", refresher)

	w := doRequest(router, "POST", "/api/refresh", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without key, got %d", w.Code)
	}
	if refresher.called {
		t.Error("Refresher must not run without authentication")
	}

	w = doRequest(router, "POST", "/api/refresh", map[string]string{"X-API-Key": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with wrong key, got %d", w.Code)
	}

	w = doRequest(router, "POST", "/api/refresh", map[string]string{"X-API-Key": "secret"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with valid key, got %d", w.Code)
	}
	if !refresher.called {
		t.Error("Expected refresher to run")
	}
}

func TestAPIRefresh_BearerToken(t *testing.T) {
	refresher := &stubRefresher{}
	_, router := newTestServer(t, "secret", refresher)

	w := doRequest(router, "POST", "/api/refresh", map[string]string{"Authorization": "Bearer secret"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with bearer token, got %d", w.Code)
	}
}

func TestAPIRefresh_Failure(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("all sources down")}
	_, router := newTestServer(t, "secret", refresher)

	w := doRequest(router, "POST", "/api/refresh", map[string]string{"X-API-Key": "secret"})
	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 on refresh failure, got %d", w.Code)
	}
}

func TestAPIDisabledWithoutKey(t *testing.T) {
	_, router := newTestServer(t, "", &stubRefresher{})

	w := doRequest(router, "POST", "/api/refresh", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 when API endpoints are disabled, got %d", w.Code)
	}
}
