// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/songvote/game"
	"github.com/danielhkuo/songvote/handlers"
	"github.com/danielhkuo/songvote/models"
	"github.com/danielhkuo/songvote/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg.Rules, []string{"A", "B", "C"}, []string{"P1", "P2"})
	return NewRouter(handlers.NewEventHandler(engine, testutil.TestEventID, cfg))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "songvote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)

	// Presenter routes answer 401 without a key, which still proves the route matched
	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/event", http.StatusOK},
		{"GET", "/event/ranking", http.StatusOK},
		{"GET", "/display", http.StatusOK},
		{"GET", "/display/standings", http.StatusOK},
		{"POST", "/turn/votes", http.StatusUnauthorized},
		{"POST", "/turn/finalize", http.StatusUnauthorized},
		{"POST", "/turn/reset", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/event"},
		{"DELETE", "/turn/votes"},
		{"PUT", "/turn/finalize"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPresenterFlow(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := newTestMux(t)
	headers := map[string]string{models.HeaderPresenterKey: testutil.PresenterKey(t, cfg)}

	for _, song := range []int{1, 2, 3, 3} {
		req := testutil.MakeRequest("POST", "/turn/votes", models.AssignPointRequest{Song: song}, headers)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/turn/finalize", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/event/ranking", nil))
	var ranking models.RankingResponse
	testutil.AssertJSON(t, w, &ranking)
	if ranking.Rankings[0].Name != "C" || ranking.Rankings[0].Total != 15 {
		t.Errorf("Expected C first with 15, got %+v", ranking.Rankings[0])
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/display/standings", nil))
	if !strings.Contains(w.Body.String(), "Player: P2 | Next Point: 1") {
		t.Errorf("Expected P2 status line, got:\n%s", w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/event", nil))
	var event models.EventResponse
	testutil.AssertJSON(t, w, &event)
	if event.Snapshot.TotalPoints() != game.DefaultPoints.Sum() {
		t.Errorf("Expected %d points committed, got %d", game.DefaultPoints.Sum(), event.Snapshot.TotalPoints())
	}
}
