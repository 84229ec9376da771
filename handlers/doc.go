// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the songvote API.

# EventHandler

A running server hosts exactly one event. EventHandler owns its voting
engine and the display board that follows it:

	engine, _ := game.New(songs, players, cfg.Rules)
	h := handlers.NewEventHandler(engine, eventID, cfg)

Every command is turned into a game.Command and applied with
game.Dispatch under a mutex, so concurrent presenter requests are
handled one at a time. The resulting Change is forwarded to the board
before the response is written.

# Presenter Commands

Commands require the X-Presenter-Key header:

	POST /turn/votes     → AssignPoint (body {"song": 2}, returns 201)
	POST /turn/finalize  → FinalizeTurn
	POST /turn/reset     → ResetTurn

A rejected command leaves the event untouched. Unknown songs return 404,
every other rejection (game over, turn allocated, turn incomplete, song
already voted) returns 409 with a presenter-facing message.

# Read Endpoints

	GET /event              → GetEvent (rules, songs, players, snapshot)
	GET /event/ranking      → GetRanking (live order)
	GET /display            → GetBoard (frozen order, JSON rows)
	GET /display/standings  → GetStandings (plain text table)

The live ranking re-sorts on every vote. The board only re-sorts once a
turn is fully allocated, so spectators are not shown a half-finished turn.
*/
package handlers
