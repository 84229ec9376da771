package roster

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/songvote/db"
	"github.com/danielhkuo/songvote/testutil"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "A\nB\nC\n", []string{"A", "B", "C"}},
		{"blank lines skipped", "\nA\n\n   \nB", []string{"A", "B"}},
		{"trimmed", "  Song - Artist  \r\n\tOther\t\n", []string{"Song - Artist", "Other"}},
		{"byte order mark", "\ufeffFirst\nSecond\n", []string{"First", "Second"}},
		{"nfc", "Cafe\u0301\n", []string{"Caf\u00e9"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteLines(t, dir, "songs.txt", "Первая - Артист", "", "Second")

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := []string{"Первая - Артист", "Second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	got, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("Missing file must not be an error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
}

func TestLoadFileIsDirectory(t *testing.T) {
	if _, err := LoadFile(t.TempDir()); err == nil {
		t.Error("Expected error when reading a directory")
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	src := Source{
		SongsFile:   testutil.WriteLines(t, dir, "songs.txt", "A", "B"),
		PlayersFile: filepath.Join(dir, "players.txt"),
	}

	r, err := Load(context.Background(), src, func(string, string) (*sql.DB, error) {
		t.Fatal("Database must not be opened without a URL")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(r.Songs, []string{"A", "B"}) {
		t.Errorf("Unexpected songs %v", r.Songs)
	}
	if len(r.Players) != 0 {
		t.Errorf("Expected no players, got %v", r.Players)
	}
}

func TestLoadDB(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := db.SeedRoster(ctx, conn, db.TypeSQLite, []string{"A", "  ", " B "}, []string{"P1", "P2"}); err != nil {
		t.Fatalf("SeedRoster failed: %v", err)
	}

	r, err := LoadDB(ctx, conn)
	if err != nil {
		t.Fatalf("LoadDB failed: %v", err)
	}
	if !reflect.DeepEqual(r.Songs, []string{"A", "B"}) {
		t.Errorf("Expected [A B], got %q", r.Songs)
	}
	if !reflect.DeepEqual(r.Players, []string{"P1", "P2"}) {
		t.Errorf("Expected [P1 P2], got %q", r.Players)
	}
}

func TestLoadPrefersDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.db")

	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatal(err)
	}
	if err := db.SeedRoster(context.Background(), conn, db.TypeSQLite, []string{"From DB"}, []string{"Judge"}); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	src := Source{
		SongsFile:    testutil.WriteLines(t, dir, "songs.txt", "From file"),
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  path,
	}
	r, err := Load(context.Background(), src, db.Open)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(r.Songs, []string{"From DB"}) {
		t.Errorf("Expected songs from database, got %q", r.Songs)
	}
}

func TestLoadOpenError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), Source{DatabaseURL: "x"}, func(string, string) (*sql.DB, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected open error to propagate, got %v", err)
	}
}

func TestLoadDBWithoutSchema(t *testing.T) {
	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if _, err := LoadDB(context.Background(), conn); err == nil {
		t.Error("Expected error when tables are missing")
	}
}
