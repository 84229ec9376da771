// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game implements the song voting state machine.

# Model

An Engine owns the loaded songs and players, two score tables (total and
current) and two cursors: how many point values have been consumed in the
running turn, and whose turn it is.

	e, err := game.New(songs, players, game.DefaultRules())

A turn is one player's allocation of the whole PointSequence (by default
1, 3, 6, 9). Votes consume the sequence in order:

	points, err := e.AssignPoint(2) // song at original position 2 gets 1
	...
	if e.TurnComplete() {
		err = e.FinalizeTurn() // totals += current, next player
	}

ResetTurn throws away the running turn for the same player.

# States

	AWAITING_VOTE(k) --AssignPoint--> AWAITING_VOTE(k+1) | TURN_COMPLETE
	TURN_COMPLETE    --FinalizeTurn--> AWAITING_VOTE(0) next player | GAME_OVER
	any but GAME_OVER --ResetTurn--> AWAITING_VOTE(0) same player

An engine with no players starts in GAME_OVER.

# Rejections

Operations never panic. A rejected call returns one of ErrGameOver,
ErrTurnAllocated, ErrTurnIncomplete, ErrUnknownSong or ErrAlreadyVoted
and leaves every field untouched.

# Rules

Rules holds the point sequence plus three policies:

  - End: EndTerminate (default) or EndWrap back to the first player
  - Finalize: FinalizeBlock (default) or FinalizeAllow for incomplete turns
  - Revote: RevoteAccumulate (default), RevoteOverwrite or RevoteReject

Under RevoteOverwrite a second vote replaces the song's current points, so
the finalized totals no longer add up to the points consumed.

# Commands

Presentation layers do not call mutators directly; they send a Command
through Dispatch and forward the returned Change to each display:

	change := game.Dispatch(e, game.Assign(3))
	board.Apply(change)

Rank is a pure function over a Snapshot: combined score descending, ties
in original load order.
*/
package game
