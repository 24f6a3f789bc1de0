package tictactoe

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

type Player string

const (
	PlayerO Player = "O"
	PlayerX Player = "X"

	EmptyCell Player = ""
)

const boardSide = 3

type Board [9]Player

// Reach - an undecided line that Player completes by marking Index.
type Reach struct {
	Index  int    `json:"index"`
	Player Player `json:"player"`
}

type State struct {
	Board         Board         `json:"board"`
	CurrentPlayer Player        `json:"current_player"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	WinningLines  [][3]int      `json:"winning_lines"`
	ReachingLines []Reach       `json:"reaching_lines"`
	// PotentialLines - per empty cell, lines through it still winnable by someone. Nil for marked cells.
	PotentialLines [9]*int `json:"potential_lines"`
}

// NewState - empty board, O moves first.
func NewState() *State {
	state := &State{
		CurrentPlayer: PlayerO,
		Status:        entity.StatusPlaying,
	}
	state.PotentialLines = potentialLines(state.Board)

	return state
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}
