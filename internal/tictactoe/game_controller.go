package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Reduce - applies one action. Occupied cells and moves after the end return the same state.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case Place:
		if act.Row < 0 || act.Row >= boardSide || act.Col < 0 || act.Col >= boardSide {
			return state, fmt.Errorf("%w: row %d col %d", ErrInvalidCell, act.Row, act.Col)
		}

		return MakeTurn(state, act.Row*boardSide+act.Col)
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// MakeTurn - marks the cell for the current player.
func MakeTurn(state *State, cell int) (*State, error) {
	if err := validateMove(state, cell); err != nil {
		if errors.Is(err, ErrCellOccupied) || errors.Is(err, apperror.ErrGameFinished) {
			return state, nil
		}

		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := *state
	next.Board[cell] = state.CurrentPlayer
	updateGameStatus(&next)

	return &next, nil
}

// validateMove - checks if the move is valid.
func validateMove(state *State, cell int) error {
	if cell < 0 || cell >= len(state.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if state.Board[cell] != EmptyCell {
		return ErrCellOccupied
	}

	return nil
}

// updateGameStatus - settles the result and the hint data after a mark was placed.
func updateGameStatus(state *State) {
	state.WinningLines = winningLines(state.Board)
	state.PotentialLines = potentialLines(state.Board)

	switch {
	case len(state.WinningLines) > 0:
		state.Winner = state.CurrentPlayer
		state.Status = entity.StatusEnded
		state.ReachingLines = nil
	case isBoardFull(state.Board):
		state.IsDraw = true
		state.Status = entity.StatusEnded
		state.ReachingLines = nil
	default:
		state.ReachingLines = reachingLines(state.Board)
		state.CurrentPlayer = toggleMark(state.CurrentPlayer)
	}
}

func toggleMark(currentMark Player) Player {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func winningLines(board Board) [][3]int {
	var lines [][3]int

	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			lines = append(lines, combo)
		}
	}

	return lines
}

func isBoardFull(board Board) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func reachingLines(board Board) []Reach {
	var reaches []Reach

	for _, player := range []Player{PlayerX, PlayerO} {
		for _, combo := range WinCombos {
			own, empty := 0, -1

			for _, cell := range combo {
				switch board[cell] {
				case player:
					own++
				case EmptyCell:
					empty = cell
				}
			}

			if own == 2 && empty >= 0 {
				reaches = append(reaches, Reach{Index: empty, Player: player})
			}
		}
	}

	return reaches
}

func potentialLines(board Board) [9]*int {
	var potential [9]*int

	for cell := range board {
		if board[cell] != EmptyCell {
			continue
		}

		count := 0
		for _, combo := range WinCombos {
			if !containsCell(combo, cell) {
				continue
			}

			hasX, hasO := false, false
			for _, c := range combo {
				hasX = hasX || board[c] == PlayerX
				hasO = hasO || board[c] == PlayerO
			}

			if !hasX || !hasO {
				count++
			}
		}

		potential[cell] = &count
	}

	return potential
}

func containsCell(combo [3]int, cell int) bool {
	return combo[0] == cell || combo[1] == cell || combo[2] == cell
}

// Cell - maps a board index back to its position.
func Cell(index int) entity.Position {
	return entity.NewPosition(index/boardSide, index%boardSide)
}
