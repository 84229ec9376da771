// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster loads the songs and players of an event.

# Text Sources

Each file holds one name per line:

	songs, err := roster.LoadFile("songs.txt")

Lines are trimmed and blank lines skipped. A leading byte order mark is
dropped and names are normalized to Unicode NFC, so the same title typed
on different systems compares equal. A missing file is not an error: it
yields an empty list.

# Database Source

LoadDB reads the song and player tables (see package db) ordered by
position, applying the same cleanup.

# Choosing a Source

Load picks the database when Source.DatabaseURL is set, otherwise the two
files:

	r, err := roster.Load(ctx, roster.Source{
		SongsFile:   "songs.txt",
		PlayersFile: "players.txt",
	}, db.Open)
*/
package roster
