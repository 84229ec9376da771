// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the songvote API.

# Route Registration

NewRouter creates a configured http.ServeMux around the event handler:

	h := handlers.NewEventHandler(engine, eventID, cfg)
	mux := router.NewRouter(h)

# Endpoints

Health:

	GET /health

Event state (public):

	GET /event         - Rules, songs, players and current snapshot
	GET /event/ranking - Songs ordered by combined score

Display (public):

	GET /display           - Board rows in frozen order plus status line
	GET /display/standings - Board as a plain text table

Presenter commands (require X-Presenter-Key):

	POST /turn/votes    - Give the next point to a song
	POST /turn/finalize - Commit the turn and advance to the next player
	POST /turn/reset    - Discard the current turn's points

Every route except health and root is wrapped in middleware.WithLogging.
*/
package router
