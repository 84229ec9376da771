// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "sort"

// SongScore is one song's standing at the time of a snapshot
type SongScore struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Current  int    `json:"current"`
}

// Combined is the score used for ranking: finalized plus in-progress points
func (s SongScore) Combined() int {
	return s.Total + s.Current
}

// Snapshot is an immutable copy of the engine state handed to display collaborators.
type Snapshot struct {
	Player       string      `json:"player,omitempty"`
	HasPlayer    bool        `json:"has_player"`
	PlayerIndex  int         `json:"player_index"`
	Lap          int         `json:"lap"`
	PointIndex   int         `json:"point_index"`
	NextPoint    int         `json:"next_point"` // 0 once the turn is complete
	TurnComplete bool        `json:"turn_complete"`
	GameOver     bool        `json:"game_over"`
	LastVoted    int         `json:"last_voted,omitempty"`
	Scores       []SongScore `json:"scores"`
}

// TotalPoints sums the finalized totals of every song
func (s Snapshot) TotalPoints() int {
	sum := 0
	for _, sc := range s.Scores {
		sum += sc.Total
	}
	return sum
}

// Score looks up a song by position
func (s Snapshot) Score(position int) (SongScore, bool) {
	if position < 1 || position > len(s.Scores) {
		return SongScore{}, false
	}
	return s.Scores[position-1], true
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		PlayerIndex:  e.playerIndex,
		Lap:          e.lap,
		PointIndex:   e.pointIndex,
		TurnComplete: e.TurnComplete(),
		GameOver:     e.gameOver,
		LastVoted:    e.lastVoted,
		Scores:       make([]SongScore, len(e.songs)),
	}
	if p, ok := e.CurrentPlayer(); ok {
		s.Player = p.Name
		s.HasPlayer = true
	}
	if next, ok := e.NextPoint(); ok {
		s.NextPoint = next
	}
	for i, song := range e.songs {
		s.Scores[i] = SongScore{
			Position: song.Position,
			Name:     song.Name,
			Total:    e.total[i],
			Current:  e.current[i],
		}
	}
	return s
}

// Rank orders songs by combined score, highest first. Equal scores keep
// their original load order.
func Rank(s Snapshot) []SongScore {
	ranked := append([]SongScore(nil), s.Scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Combined(), ranked[j].Combined()
		if a != b {
			return a > b
		}
		return ranked[i].Position < ranked[j].Position
	})
	return ranked
}

// Ranking is Rank over the current state
func (e *Engine) Ranking() []SongScore {
	return Rank(e.Snapshot())
}
