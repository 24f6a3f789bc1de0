package entity

import (
	"encoding/json"
	"time"
)

// Status - is the lifecycle shared by every game state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

func (that Difficulty) IsValid() bool {
	switch that {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

// Options - parameters a game is created with. Games ignore what they do not use.
type Options struct {
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
}

// Session - one match in progress. Only the action log is stored, the state is rebuilt by replay.
type Session struct {
	ID      string            `json:"id"`
	Game    string            `json:"game"`
	Options Options           `json:"options"`
	Actions []json.RawMessage `json:"actions"`
	// Cursor - number of active actions, the ones after it were undone and can be redone.
	Cursor       int       `json:"cursor"`
	HintsEnabled bool      `json:"hints_enabled"`
	Selected     *Position `json:"selected,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Snapshot - what the outer surfaces hand to the presentation layer.
type Snapshot struct {
	SessionID     string    `json:"session_id"`
	Game          string    `json:"game"`
	State         any       `json:"state"`
	DisplayStatus string    `json:"display_status"`
	Hints         HintState `json:"hints"`
	CanUndo       bool      `json:"can_undo"`
	CanRedo       bool      `json:"can_redo"`
	HistoryLength int       `json:"history_length"`
}
