// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "errors"

// Rejections. A call that returns one of these leaves the engine untouched.
var (
	ErrGameOver       = errors.New("game is over")
	ErrTurnAllocated  = errors.New("all points have been distributed this turn")
	ErrTurnIncomplete = errors.New("not all points have been assigned yet")
	ErrUnknownSong    = errors.New("unknown song")
	ErrAlreadyVoted   = errors.New("song already received points this turn")
)

// Song is a loaded song. Position is its 1-based line in the load source.
type Song struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Player is a judge. Position is its 1-based place in turn order.
type Player struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Engine owns songs, players, scores and the turn/player cursors.
// It is not safe for concurrent use; callers serialize commands.
type Engine struct {
	rules   Rules
	songs   []Song
	players []Player

	total   []int
	current []int
	voted   []bool

	pointIndex  int
	playerIndex int
	lap         int
	gameOver    bool
	lastVoted   int
}

// New builds an engine from already loaded song and player names.
// An empty player list starts the engine in the game-over state.
func New(songs, players []string, rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		rules:   rules,
		songs:   make([]Song, len(songs)),
		players: make([]Player, len(players)),
		total:   make([]int, len(songs)),
		current: make([]int, len(songs)),
		voted:   make([]bool, len(songs)),
	}
	e.rules.Points = append(PointSequence(nil), rules.Points...)

	for i, name := range songs {
		e.songs[i] = Song{Name: name, Position: i + 1}
	}
	for i, name := range players {
		e.players[i] = Player{Name: name, Position: i + 1}
	}
	e.gameOver = len(e.players) == 0

	return e, nil
}

func (e *Engine) Rules() Rules {
	r := e.rules
	r.Points = append(PointSequence(nil), e.rules.Points...)
	return r
}

func (e *Engine) Songs() []Song {
	return append([]Song(nil), e.songs...)
}

func (e *Engine) Players() []Player {
	return append([]Player(nil), e.players...)
}

// CurrentPlayer returns the player whose turn it is, false if there are no players
func (e *Engine) CurrentPlayer() (Player, bool) {
	if len(e.players) == 0 {
		return Player{}, false
	}
	return e.players[e.playerIndex], true
}

// NextPoint returns the value the next vote will award, false when the turn is complete
func (e *Engine) NextPoint() (int, bool) {
	if e.pointIndex >= len(e.rules.Points) {
		return 0, false
	}
	return e.rules.Points[e.pointIndex], true
}

func (e *Engine) TurnComplete() bool {
	return e.pointIndex == len(e.rules.Points)
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

// AssignPoint awards the next value of the point sequence to the song at
// the given 1-based position and returns the points awarded.
func (e *Engine) AssignPoint(position int) (int, error) {
	if e.gameOver {
		return 0, ErrGameOver
	}
	if e.pointIndex >= len(e.rules.Points) {
		return 0, ErrTurnAllocated
	}
	if position < 1 || position > len(e.songs) {
		return 0, ErrUnknownSong
	}
	i := position - 1
	if e.voted[i] && e.rules.Revote == RevoteReject {
		return 0, ErrAlreadyVoted
	}

	points := e.rules.Points[e.pointIndex]
	if e.rules.Revote == RevoteOverwrite {
		e.current[i] = points
	} else {
		e.current[i] += points
	}
	e.voted[i] = true
	e.pointIndex++
	e.lastVoted = position

	return points, nil
}

// FinalizeTurn commits the turn into the running totals and moves to the
// next player. After the last player the game ends or wraps, per Rules.End.
func (e *Engine) FinalizeTurn() error {
	if e.gameOver {
		return ErrGameOver
	}
	if !e.TurnComplete() && e.rules.Finalize == FinalizeBlock {
		return ErrTurnIncomplete
	}

	for i := range e.songs {
		e.total[i] += e.current[i]
	}
	e.clearTurn()

	if e.playerIndex+1 < len(e.players) {
		e.playerIndex++
		return nil
	}
	if e.rules.End == EndWrap {
		e.playerIndex = 0
		e.lap++
		return nil
	}
	e.gameOver = true
	return nil
}

// ResetTurn discards the in-progress turn without touching totals or the player cursor
func (e *Engine) ResetTurn() error {
	if e.gameOver {
		return ErrGameOver
	}
	e.clearTurn()
	return nil
}

func (e *Engine) clearTurn() {
	for i := range e.current {
		e.current[i] = 0
		e.voted[i] = false
	}
	e.pointIndex = 0
	e.lastVoted = 0
}
