// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/songvote/auth"
	"github.com/danielhkuo/songvote/cliparse"
	"github.com/danielhkuo/songvote/db"
	"github.com/danielhkuo/songvote/game"
)

// TestEventID is the event ID used by handler and router tests
const TestEventID = "00000000-0000-4000-8000-000000000001"

// SetupTestDB opens an in-memory SQLite database with the roster schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		SongsFile:        "songs.txt",
		PlayersFile:      "players.txt",
		DatabaseType:     db.TypeSQLite,
		Points:           game.DefaultPoints.String(),
		EndPolicy:        string(game.EndTerminate),
		FinalizePolicy:   string(game.FinalizeBlock),
		RevotePolicy:     string(game.RevoteAccumulate),
		PresenterKeySalt: "test-presenter-salt",
		Rules:            game.DefaultRules(),
	}
}

// PresenterKey returns the valid presenter key for TestEventID
func PresenterKey(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	key, err := auth.GeneratePresenterKey(TestEventID, cfg.PresenterKeySalt)
	if err != nil {
		t.Fatalf("Failed to generate presenter key: %v", err)
	}
	return key
}

// NewTestEngine creates an engine with the given rules
func NewTestEngine(t *testing.T, rules game.Rules, songs, players []string) *game.Engine {
	t.Helper()

	e, err := game.New(songs, players, rules)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

// WriteLines writes a newline-delimited file into dir and returns its path
func WriteLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
