// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - SongsFile / PlayersFile: roster files (default: songs.txt, players.txt)
  - DatabaseURL: optional roster database; when set the files are ignored
  - DatabaseType: sqlite (default) or postgres
  - SeedDatabase: copy the roster files into the database before loading
  - Points: point sequence (default: 1,3,6,9)
  - EndPolicy: terminate (default) or wrap
  - FinalizePolicy: block (default) or allow
  - RevotePolicy: accumulate (default), overwrite or reject
  - PresenterKeySalt: Secret for presenter key HMAC (required)
  - Rules: game.Rules built from the four settings above

# CLI Flags

	-env             .env file (default .env, ignored when missing)
	-p               Server port
	-songs, -players Roster files
	-d, -t           Roster database URL and type
	-seed            Seed the database from the roster files
	-points          Point sequence
	-end, -finalize, -revote
	-presenter-salt  Presenter key salt

# Environment Variables

Flags fall back to environment variables, parsed with caarlos0/env:

	PORT               → -p
	SONGS_FILE         → -songs
	PLAYERS_FILE       → -players
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	SEED_DATABASE      → -seed
	POINT_SEQUENCE     → -points
	END_POLICY         → -end
	FINALIZE_POLICY    → -finalize
	REVOTE_POLICY      → -revote
	PRESENTER_KEY_SALT → -presenter-salt

The .env file is loaded first with godotenv and never overrides variables
already set in the environment. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - PRESENTER_KEY_SALT is missing
  - the port or database type is invalid
  - the point sequence is not strictly ascending positive integers
  - a policy name is unknown
  - -seed is given without a database URL
*/
package cliparse
