package hasami

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

var ErrUnknownWinCondition = errors.New("unknown win condition")

// Reduce - applies one action. Moves out of turn or after the end return the same state,
// moves the piece cannot make are reported.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case MovePiece:
		return MakeMove(state, act.From, act.To)
	case SetWinCondition:
		if !act.Condition.IsValid() {
			return state, fmt.Errorf("%w: %q", ErrUnknownWinCondition, act.Condition)
		}

		if state.MoveCount > 0 || state.Board != initialBoard() || state.WinCondition == act.Condition {
			return state, nil
		}

		next := *state
		next.WinCondition = act.Condition

		return &next, nil
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// MakeMove - slides the current player's piece and resolves captures.
func MakeMove(state *State, from, to entity.Position) (*State, error) {
	if !from.In(Size, Size) || !to.In(Size, Size) {
		return state, fmt.Errorf("%w: %s -> %s", apperror.ErrOutOfBounds, from, to)
	}

	mover := state.CurrentPlayer
	if state.IsFinished() || state.Board.at(from) != mover {
		return state, nil
	}

	if !isPathClear(&state.Board, from, to) {
		return state, fmt.Errorf("%w: cannot move piece from %s to %s", apperror.ErrIllegalMove, from, to)
	}

	next := &State{
		Board:         state.Board,
		CurrentPlayer: mover.Opponent(),
		Status:        entity.StatusPlaying,
		Scores:        state.Scores,
		WinCondition:  state.WinCondition,
		MoveCount:     state.MoveCount + 1,
		LastMove:      &Move{From: from, To: to},
	}

	next.Board.set(from, Empty)
	next.Board.set(to, mover)

	captured := Captures(&next.Board, to, mover)
	for _, pos := range captured {
		next.Board.set(pos, Empty)
	}

	next.JustCaptured = captured
	next.Scores = next.Scores.add(mover, len(captured))

	if hasWon(next, mover) {
		next.Winner = mover
		next.Status = entity.StatusEnded
	}

	return next, nil
}

// isPathClear - orthogonal slide over empty cells only.
func isPathClear(board *Board, from, to entity.Position) bool {
	if from == to || (from.Row != to.Row && from.Col != to.Col) {
		return false
	}

	dir := entity.Direction{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
	for cur := from.Add(dir); ; cur = cur.Add(dir) {
		if board.at(cur) != Empty {
			return false
		}

		if cur == to {
			return true
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Captures - enemy pieces taken by mover's piece arriving at to, without duplicates.
func Captures(board *Board, to entity.Position, mover Player) []entity.Position {
	enemy := mover.Opponent()
	seen := make(map[entity.Position]struct{})

	var captured []entity.Position
	add := func(pos entity.Position) {
		if _, ok := seen[pos]; ok {
			return
		}
		seen[pos] = struct{}{}
		captured = append(captured, pos)
	}

	// linear sandwich, with the edge trap as a run of one
	for _, dir := range entity.Orthogonal {
		var run []entity.Position

		cur := to.Add(dir)
		for cur.In(Size, Size) && board.at(cur) == enemy {
			run = append(run, cur)
			cur = cur.Add(dir)
		}

		if len(run) > 0 && cur.In(Size, Size) && board.at(cur) == mover {
			for _, pos := range run {
				add(pos)
			}
		}
	}

	// corner trap
	for _, corner := range corners {
		if board.at(corner.cell) != enemy {
			continue
		}

		first, second := corner.neighbours[0], corner.neighbours[1]
		if (to == first || to == second) && board.at(first) == mover && board.at(second) == mover {
			add(corner.cell)
		}
	}

	return captured
}

type cornerTrap struct {
	cell       entity.Position
	neighbours [2]entity.Position
}

var corners = []cornerTrap{
	{cell: entity.Position{Row: 0, Col: 0}, neighbours: [2]entity.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}}},
	{cell: entity.Position{Row: 0, Col: Size - 1}, neighbours: [2]entity.Position{{Row: 0, Col: Size - 2}, {Row: 1, Col: Size - 1}}},
	{cell: entity.Position{Row: Size - 1, Col: 0}, neighbours: [2]entity.Position{{Row: Size - 2, Col: 0}, {Row: Size - 1, Col: 1}}},
	{cell: entity.Position{Row: Size - 1, Col: Size - 1}, neighbours: [2]entity.Position{{Row: Size - 2, Col: Size - 1}, {Row: Size - 1, Col: Size - 2}}},
}

func hasWon(state *State, player Player) bool {
	own := state.Scores.Of(player)
	other := state.Scores.Of(player.Opponent())

	switch state.WinCondition {
	case WinFiveCaptures:
		return own >= 5
	case WinTotalCapture:
		return state.Board.count(player.Opponent()) <= 1
	default:
		return own >= 5 || (own >= 3 && own-other >= 3)
	}
}
