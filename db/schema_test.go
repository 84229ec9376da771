package db

import (
	"context"
	"errors"
	"testing"
)

func TestOpenUnsupportedType(t *testing.T) {
	_, err := Open("mysql", "whatever")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		dbType string
		query  string
		want   string
	}{
		{TypeSQLite, "INSERT INTO song (position, name) VALUES (?, ?)", "INSERT INTO song (position, name) VALUES (?, ?)"},
		{TypePostgres, "INSERT INTO song (position, name) VALUES (?, ?)", "INSERT INTO song (position, name) VALUES ($1, $2)"},
		{TypePostgres, "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType+" "+tt.query, func(t *testing.T) {
			if got := Rebind(tt.dbType, tt.query); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCreateSchemaAndSeed(t *testing.T) {
	conn, err := Open(TypeSQLite, "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	// Second call must be a no-op
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema is not idempotent: %v", err)
	}

	ctx := context.Background()
	if err := SeedRoster(ctx, conn, TypeSQLite, []string{"A", "B", "C"}, []string{"P1"}); err != nil {
		t.Fatalf("SeedRoster failed: %v", err)
	}
	if err := SeedRoster(ctx, conn, TypeSQLite, []string{"X", "Y"}, []string{"P1", "P2"}); err != nil {
		t.Fatalf("Reseeding failed: %v", err)
	}

	var songs, players int
	if err := conn.QueryRow("SELECT COUNT(*) FROM song").Scan(&songs); err != nil {
		t.Fatal(err)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM player").Scan(&players); err != nil {
		t.Fatal(err)
	}
	if songs != 2 || players != 2 {
		t.Errorf("Expected 2 songs and 2 players after reseed, got %d and %d", songs, players)
	}

	var name string
	if err := conn.QueryRow("SELECT name FROM song WHERE position = 2").Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "Y" {
		t.Errorf("Expected Y at position 2, got %q", name)
	}
}
