// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Roster is the ordered input of one event
type Roster struct {
	Songs   []string
	Players []string
}

// Source says where a roster comes from. A non-empty DatabaseURL wins over files.
type Source struct {
	SongsFile    string
	PlayersFile  string
	DatabaseType string
	DatabaseURL  string
}

// Opener opens a roster database; db.Open satisfies it
type Opener func(dbType, url string) (*sql.DB, error)

// Load reads the roster from the configured source
func Load(ctx context.Context, src Source, open Opener) (Roster, error) {
	if src.DatabaseURL != "" {
		conn, err := open(src.DatabaseType, src.DatabaseURL)
		if err != nil {
			return Roster{}, err
		}
		defer conn.Close()
		return LoadDB(ctx, conn)
	}

	songs, err := LoadFile(src.SongsFile)
	if err != nil {
		return Roster{}, err
	}
	players, err := LoadFile(src.PlayersFile)
	if err != nil {
		return Roster{}, err
	}
	return Roster{Songs: songs, Players: players}, nil
}

// LoadFile reads one name per line. A missing file yields an empty list.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	names, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return names, nil
}

// ReadLines returns every non-blank line, trimmed and NFC-normalized
func ReadLines(r io.Reader) ([]string, error) {
	names := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name, ok := clean(scanner.Text()); ok {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadDB reads the song and player tables ordered by position
func LoadDB(ctx context.Context, db *sql.DB) (Roster, error) {
	songs, err := loadTable(ctx, db, "song")
	if err != nil {
		return Roster{}, err
	}
	players, err := loadTable(ctx, db, "player")
	if err != nil {
		return Roster{}, err
	}
	return Roster{Songs: songs, Players: players}, nil
}

func loadTable(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM "+table+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		if name, ok := clean(raw); ok {
			names = append(names, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return names, nil
}

func clean(line string) (string, bool) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if line == "" {
		return "", false
	}
	return norm.NFC.String(line), true
}
