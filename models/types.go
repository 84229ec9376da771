package models

import (
	"github.com/danielhkuo/songvote/display"
	"github.com/danielhkuo/songvote/game"
)

// HeaderPresenterKey carries the presenter key on command routes
const HeaderPresenterKey = "X-Presenter-Key"

// Request types

// Song is the original 1-based position of the song
type AssignPointRequest struct {
	Song int `json:"song"`
}

// Response types

type CommandResponse struct {
	Command  string        `json:"command"`
	Points   int           `json:"points,omitempty"`
	Status   string        `json:"status"`
	Snapshot game.Snapshot `json:"snapshot"`
}

type RulesInfo struct {
	Points   []int  `json:"points"`
	End      string `json:"end"`
	Finalize string `json:"finalize"`
	Revote   string `json:"revote"`
}

type EventResponse struct {
	EventID  string        `json:"event_id"`
	Rules    RulesInfo     `json:"rules"`
	Songs    []game.Song   `json:"songs"`
	Players  []game.Player `json:"players"`
	Snapshot game.Snapshot `json:"snapshot"`
}

type RankingResponse struct {
	Rankings []game.SongScore `json:"rankings"`
}

type BoardResponse struct {
	Status   string        `json:"status"`
	GameOver bool          `json:"game_over"`
	Rows     []display.Row `json:"rows"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewRulesInfo flattens game rules for JSON
func NewRulesInfo(r game.Rules) RulesInfo {
	return RulesInfo{
		Points:   append([]int{}, r.Points...),
		End:      string(r.End),
		Finalize: string(r.Finalize),
		Revote:   string(r.Revote),
	}
}
