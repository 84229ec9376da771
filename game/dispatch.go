// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"errors"
	"fmt"
)

type CommandKind string

const (
	CommandAssign   CommandKind = "assign"
	CommandFinalize CommandKind = "finalize"
	CommandReset    CommandKind = "reset"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one presenter action. Song is only read by CommandAssign.
type Command struct {
	Kind CommandKind
	Song int
}

func Assign(position int) Command { return Command{Kind: CommandAssign, Song: position} }
func Finalize() Command          { return Command{Kind: CommandFinalize} }
func Reset() Command             { return Command{Kind: CommandReset} }

// Change describes the outcome of one command. Err is nil when the command
// was applied; otherwise it names the rejection and Snapshot is unchanged.
type Change struct {
	Command  Command
	Points   int
	Err      error
	Snapshot Snapshot
}

func (c Change) Applied() bool {
	return c.Err == nil
}

// Dispatch runs one command against e and reports the resulting state
func Dispatch(e *Engine, cmd Command) Change {
	change := Change{Command: cmd}

	switch cmd.Kind {
	case CommandAssign:
		change.Points, change.Err = e.AssignPoint(cmd.Song)
	case CommandFinalize:
		change.Err = e.FinalizeTurn()
	case CommandReset:
		change.Err = e.ResetTurn()
	default:
		change.Err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	change.Snapshot = e.Snapshot()
	return change
}
