// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package display holds the spectator board: frozen ranking order,
// last-vote highlight, status banner and a plain-text standings table.
// It reads game snapshots and never touches the engine.
package display
