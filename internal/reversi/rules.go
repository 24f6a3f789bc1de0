package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// Reduce - applies one action. Illegal placements return the same state.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case Place:
		pos := entity.NewPosition(act.Row, act.Col)
		if !pos.In(Size, Size) {
			return state, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
		}

		return MakeMove(state, pos), nil
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// MakeMove - places a disc for the current player and flips every captured run.
func MakeMove(state *State, pos entity.Position) *State {
	if state.IsFinished() {
		return state
	}

	flips, ok := state.ValidMoves[pos.Key()]
	if !ok {
		return state
	}

	mover := state.CurrentPlayer
	next := &State{
		Board:     state.Board,
		MoveCount: state.MoveCount + 1,
		Status:    entity.StatusPlaying,
		LastMove:  &pos,
	}

	next.Board[pos.Row][pos.Col] = mover
	for _, flip := range flips {
		next.Board[flip.Row][flip.Col] = mover
	}

	next.Scores = countDiscs(next.Board)

	opponentMoves := ValidMoves(next.Board, mover.Opponent())
	moverMoves := ValidMoves(next.Board, mover)

	switch {
	case next.Scores.Black+next.Scores.White == Size*Size:
		next.CurrentPlayer = mover.Opponent()
		finish(next)
	case len(opponentMoves) > 0:
		next.CurrentPlayer = mover.Opponent()
		next.ValidMoves = opponentMoves
		next.Phase = PhasePlaying
	case len(moverMoves) > 0:
		next.CurrentPlayer = mover
		next.ValidMoves = moverMoves
		next.Phase = PhaseSkipped
	default:
		next.CurrentPlayer = mover.Opponent()
		finish(next)
	}

	return next
}

// ValidMoves - every legal cell of player keyed "r,c", with the discs it flips.
func ValidMoves(board Board, player Player) map[string][]entity.Position {
	moves := make(map[string][]entity.Position)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] != Empty {
				continue
			}

			pos := entity.NewPosition(row, col)
			if flips := Flips(board, player, pos); len(flips) > 0 {
				moves[pos.Key()] = flips
			}
		}
	}

	return moves
}

// Flips - discs captured by player placing at pos, in all eight directions.
func Flips(board Board, player Player, pos entity.Position) []entity.Position {
	var flips []entity.Position

	for _, dir := range entity.AllAround {
		var run []entity.Position

		cur := pos.Add(dir)
		for cur.In(Size, Size) && board[cur.Row][cur.Col] == player.Opponent() {
			run = append(run, cur)
			cur = cur.Add(dir)
		}

		if len(run) > 0 && cur.In(Size, Size) && board[cur.Row][cur.Col] == player {
			flips = append(flips, run...)
		}
	}

	return flips
}

func countDiscs(board Board) Scores {
	var scores Scores

	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case Black:
				scores.Black++
			case White:
				scores.White++
			}
		}
	}

	return scores
}

func finish(state *State) {
	state.Phase = PhaseGameOver
	state.Status = entity.StatusEnded
	state.ValidMoves = map[string][]entity.Position{}

	switch {
	case state.Scores.Black > state.Scores.White:
		state.Winner = Black
	case state.Scores.White > state.Scores.Black:
		state.Winner = White
	default:
		state.IsDraw = true
	}
}
