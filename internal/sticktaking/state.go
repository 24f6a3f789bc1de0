package sticktaking

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

type Stick struct {
	ID      int    `json:"id"`
	Taken   bool   `json:"taken"`
	TakenBy Player `json:"taken_by,omitempty"`
}

const noRow = -1

type State struct {
	Rows          [][]Stick     `json:"rows"`
	CurrentPlayer Player        `json:"current_player"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	// SelectedRow - row of the pending selection, -1 when nothing is selected.
	SelectedRow int   `json:"selected_row"`
	Selected    []int `json:"selected"`
	// Runs - per row, lengths of the contiguous groups of remaining sticks.
	Runs   [][]int `json:"runs"`
	NimSum int     `json:"nim_sum"`
}

// RowSizes - sticks per row for a difficulty.
func RowSizes(difficulty entity.Difficulty) ([]int, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return []int{1, 2, 3}, nil
	case entity.DifficultyNormal, "":
		return []int{1, 2, 3, 4, 5}, nil
	case entity.DifficultyHard:
		return []int{1, 2, 3, 4, 5, 6, 7}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func NewState(difficulty entity.Difficulty) (*State, error) {
	sizes, err := RowSizes(difficulty)
	if err != nil {
		return nil, err
	}

	id := 0
	rows := make([][]Stick, len(sizes))
	for i, size := range sizes {
		rows[i] = make([]Stick, size)
		for j := range rows[i] {
			rows[i][j] = Stick{ID: id}
			id++
		}
	}

	state := &State{
		Rows:          rows,
		CurrentPlayer: Player1,
		Status:        entity.StatusPlaying,
		SelectedRow:   noRow,
	}
	state.Runs, state.NimSum = Runs(rows)

	return state, nil
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}

// Remaining - sticks not taken yet.
func (that *State) Remaining() int {
	n := 0
	for _, row := range that.Rows {
		for _, stick := range row {
			if !stick.Taken {
				n++
			}
		}
	}

	return n
}

// Runs - contiguous groups of remaining sticks per row and the xor of their lengths.
func Runs(rows [][]Stick) ([][]int, int) {
	runs := make([][]int, len(rows))
	nimSum := 0

	for i, row := range rows {
		runs[i] = []int{}
		length := 0

		for _, stick := range row {
			if !stick.Taken {
				length++
				continue
			}

			if length > 0 {
				runs[i] = append(runs[i], length)
				nimSum ^= length
			}
			length = 0
		}

		if length > 0 {
			runs[i] = append(runs[i], length)
			nimSum ^= length
		}
	}

	return runs, nimSum
}
