// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnsupportedType = errors.New("unsupported database type")

// Open connects to a roster database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// CreateSchema creates the roster tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites ? placeholders to $N for postgres
func Rebind(dbType, query string) string {
	if dbType != TypePostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SeedRoster replaces the song and player tables with the given names, in order
func SeedRoster(ctx context.Context, db *sql.DB, dbType string, songs, players []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []struct {
		name  string
		names []string
	}{
		{"song", songs},
		{"player", players},
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table.name); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table.name, err)
		}
		insert := Rebind(dbType, "INSERT INTO "+table.name+" (position, name) VALUES (?, ?)")
		for i, name := range table.names {
			if _, err := tx.ExecContext(ctx, insert, i+1, name); err != nil {
				return fmt.Errorf("failed to insert %s %q: %w", table.name, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster: %w", err)
	}
	return nil
}

const schema = `
-- Songs, in presentation order
CREATE TABLE IF NOT EXISTS song (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- Players (judges), in turn order
CREATE TABLE IF NOT EXISTS player (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);
`
