// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - AssignPointRequest: song (original 1-based position)

# Response Types

  - CommandResponse: command, points, status, snapshot
  - EventResponse: event_id, rules, songs, players, snapshot
  - RankingResponse: rankings (live, combined score order)
  - BoardResponse: status, game_over, rows (frozen display order)
  - ErrorResponse: error, message

Snapshots and rows are the game.Snapshot and display.Row types, encoded
as-is.

# Headers

	HeaderPresenterKey = "X-Presenter-Key"
*/
package models
