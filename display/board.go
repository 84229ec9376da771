// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/songvote/game"
)

// Board is the spectator-side view of an event. It keeps the ranking
// frozen while a turn is in progress and only re-sorts once the turn is
// fully allocated, so standings do not reshuffle vote by vote.
type Board struct {
	snapshot game.Snapshot
	order    []int // song positions, best first
}

// Row is one line of the board in display order
type Row struct {
	Place     int    `json:"place"`
	Tied      bool   `json:"tied"`
	Position  int    `json:"position"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Total     int    `json:"total"`
	Current   int    `json:"current"`
	Combined  int    `json:"combined"`
	Highlight bool   `json:"highlight"`
}

func NewBoard(s game.Snapshot) *Board {
	b := &Board{}
	b.snapshot = s
	b.rerank()
	return b
}

// Apply forwards one command outcome to the board
func (b *Board) Apply(c game.Change) {
	b.Update(c.Snapshot)
}

// Update replaces the scores shown and re-ranks when the turn is complete
func (b *Board) Update(s game.Snapshot) {
	b.snapshot = s
	if s.TurnComplete || len(b.order) != len(s.Scores) {
		b.rerank()
	}
}

func (b *Board) rerank() {
	ranked := game.Rank(b.snapshot)
	b.order = make([]int, len(ranked))
	for i, sc := range ranked {
		b.order[i] = sc.Position
	}
}

// Snapshot returns the last snapshot applied
func (b *Board) Snapshot() game.Snapshot {
	return b.snapshot
}

// Order returns song positions in frozen display order
func (b *Board) Order() []int {
	return append([]int(nil), b.order...)
}

// Rows lists every song in display order. Songs whose combined score equals
// the row above share its place.
func (b *Board) Rows() []Row {
	rows := make([]Row, 0, len(b.order))
	for i, pos := range b.order {
		sc, ok := b.snapshot.Score(pos)
		if !ok {
			continue
		}
		row := Row{
			Place:     i + 1,
			Position:  sc.Position,
			Name:      sc.Name,
			ShortName: ShortName(sc.Name),
			Total:     sc.Total,
			Current:   sc.Current,
			Combined:  sc.Combined(),
			Highlight: b.snapshot.PointIndex > 0 && sc.Position == b.snapshot.LastVoted,
		}
		if n := len(rows); n > 0 && rows[n-1].Combined == row.Combined {
			row.Place = rows[n-1].Place
			row.Tied = true
			rows[n-1].Tied = true
		}
		rows = append(rows, row)
	}
	return rows
}

// Status is the one-line banner shown to presenter and spectators
func (b *Board) Status() string {
	s := b.snapshot
	if s.GameOver {
		return "Game Over"
	}
	player := "N/A"
	if s.HasPlayer {
		player = s.Player
	}
	next := "Turn complete"
	if !s.TurnComplete {
		next = strconv.Itoa(s.NextPoint)
	}
	return fmt.Sprintf("Player: %s | Next Point: %s", player, next)
}

// Standings renders the board as an aligned plain-text table
func (b *Board) Standings() string {
	type line struct{ place, num, song, total, now string }

	var lines []line
	prevPlace := 0
	for _, r := range b.Rows() {
		l := line{
			num:   fmt.Sprintf("(%d)", r.Position),
			song:  r.ShortName,
			total: strconv.Itoa(r.Combined),
		}
		if r.Current > 0 {
			l.now = "+" + strconv.Itoa(r.Current)
		}
		if r.Highlight {
			l.song += " *"
		}
		// tied rows after the first leave the place blank
		if r.Place != prevPlace {
			l.place = humanize.Ordinal(r.Place)
		}
		prevPlace = r.Place
		lines = append(lines, l)
	}

	maxP, maxN, maxS, maxT := len("Place"), len("#"), len("Song"), len("Points")
	for _, l := range lines {
		maxP = max(maxP, len(l.place))
		maxN = max(maxN, len(l.num))
		maxS = max(maxS, len([]rune(l.song)))
		maxT = max(maxT, len(l.total))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s  %*s\n", maxP, "Place", maxN, "#", pad("Song", maxS), maxT, "Points"))
	for _, l := range lines {
		row := fmt.Sprintf("%-*s  %-*s  %s  %*s", maxP, l.place, maxN, l.num, pad(l.song, maxS), maxT, l.total)
		if l.now != "" {
			row += "  " + l.now
		}
		sb.WriteString(row + "\n")
	}
	sb.WriteString("\n" + b.Status() + "\n")
	return sb.String()
}

// pad right-pads by rune count; %-*s counts bytes and misaligns Cyrillic titles
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// ShortName keeps the part of a "Title - Artist" name before the first hyphen
func ShortName(name string) string {
	before, _, found := strings.Cut(name, "-")
	if !found {
		return name
	}
	if short := strings.TrimSpace(before); short != "" {
		return short
	}
	return name
}
