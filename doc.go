// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the songvote API server.

songvote runs a live song-ranking event. Players take turns handing out a
fixed sequence of points (1, 3, 6, 9 by default) to songs, a presenter
records each point, and spectators watch a board that re-sorts after
every completed turn.

# Starting the Server

The server reads the roster from songs.txt and players.txt by default:

	PRESENTER_KEY_SALT=secret go run .

Or with flags:

	go run . -p 3318 -songs songs.txt -players players.txt -presenter-salt secret

To keep the roster in a database instead:

	go run . -d file:event.db -seed -presenter-salt secret

The event ID and presenter key are logged at startup. The presenter sends
the key in the X-Presenter-Key header.

# Configuration

Required settings:

  - PRESENTER_KEY_SALT (-presenter-salt): Secret for presenter key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - POINT_SEQUENCE (-points): Points per turn (default: 1,3,6,9)
  - END_POLICY, FINALIZE_POLICY, REVOTE_POLICY: game rules
  - DATABASE_URL (-d), DATABASE_TYPE (-t): roster database

# Architecture

  - game: Voting engine, rules, snapshots and command dispatch
  - display: Frozen-order board and text standings
  - roster: Song and player loading from files or SQL
  - handlers: HTTP request handlers for the event
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Event IDs and presenter keys
  - db: Roster schema, connections and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
