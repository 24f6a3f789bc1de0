package dotsandboxes

import (
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type Player string

const (
	Player1 Player = "PLAYER1"
	Player2 Player = "PLAYER2"

	None Player = ""
)

func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

type LineType string

const (
	Horizontal LineType = "horizontal"
	Vertical   LineType = "vertical"
)

type Scores struct {
	Player1 int `json:"PLAYER1"`
	Player2 int `json:"PLAYER2"`
}

func (that Scores) Of(player Player) int {
	if player == Player1 {
		return that.Player1
	}
	return that.Player2
}

type State struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	// HorizontalLines - (Rows+1) x Cols, owner of each claimed edge.
	HorizontalLines [][]Player `json:"horizontal_lines"`
	// VerticalLines - Rows x (Cols+1).
	VerticalLines [][]Player `json:"vertical_lines"`
	// Boxes - Rows x Cols, who completed each box.
	Boxes         [][]Player    `json:"boxes"`
	CurrentPlayer Player        `json:"current_player"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	Scores        Scores        `json:"scores"`
}

// BoardSize - boxes per side for a difficulty.
func BoardSize(difficulty entity.Difficulty) (int, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return 2, nil
	case entity.DifficultyNormal, "":
		return 4, nil
	case entity.DifficultyHard:
		return 6, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func NewState(difficulty entity.Difficulty) (*State, error) {
	size, err := BoardSize(difficulty)
	if err != nil {
		return nil, err
	}

	return &State{
		Rows:            size,
		Cols:            size,
		HorizontalLines: grid(size+1, size),
		VerticalLines:   grid(size, size+1),
		Boxes:           grid(size, size),
		CurrentPlayer:   Player1,
		Status:          entity.StatusPlaying,
	}, nil
}

func grid(rows, cols int) [][]Player {
	result := make([][]Player, rows)
	for i := range result {
		result[i] = make([]Player, cols)
	}

	return result
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}
