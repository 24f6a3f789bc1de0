package animalchess

import (
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// templates - steps of each kind as seen by OKASHI, rows are mirrored for OHANA.
var templates = map[Kind][]entity.Direction{
	Lion:     entity.AllAround,
	Giraffe:  entity.Orthogonal,
	Elephant: entity.Diagonal,
	Chick:    {{Row: -1, Col: 0}},
	Rooster:  {{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1}, {Row: 0, Col: -1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
}

// Reduce - applies one action. Out of turn, after the end or with nothing to drop the same state
// is returned, steps a piece cannot make are reported.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case MovePiece:
		return MakeMove(state, act.From, act.To)
	case DropPiece:
		return Drop(state, act.Kind, act.To)
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

func MakeMove(state *State, from, to entity.Position) (*State, error) {
	if !from.In(Rows, Cols) || !to.In(Rows, Cols) {
		return state, fmt.Errorf("%w: %s -> %s", apperror.ErrOutOfBounds, from, to)
	}

	mover := state.CurrentPlayer
	piece := state.Board.at(from)
	if state.IsFinished() || piece.IsEmpty() || piece.Owner != mover {
		return state, nil
	}

	if !canReach(&state.Board, from, to) {
		return state, fmt.Errorf("%w: cannot move %s from %s to %s", apperror.ErrIllegalMove, piece.Kind, from, to)
	}

	next := advance(state, to)

	if captured := next.Board.at(to); !captured.IsEmpty() {
		next.Hands = next.Hands.add(mover, demote(captured.Kind))
	}

	if piece.Kind == Chick && to.Row == mover.farRank() {
		piece.Kind = Rooster
	}

	next.Board.set(from, Piece{})
	next.Board.set(to, piece)
	settle(next, mover)

	return next, nil
}

// Drop - puts a piece from the hand on an empty square.
func Drop(state *State, kind Kind, to entity.Position) (*State, error) {
	if !to.In(Rows, Cols) {
		return state, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, to)
	}

	mover := state.CurrentPlayer
	if state.IsFinished() || !state.Board.at(to).IsEmpty() || !canDrop(kind, mover, to) {
		return state, nil
	}

	hands, ok := state.Hands.remove(mover, kind)
	if !ok {
		return state, nil
	}

	next := advance(state, to)
	next.Hands = hands
	next.Board.set(to, Piece{Kind: kind, Owner: mover})
	settle(next, mover)

	return next, nil
}

func canDrop(kind Kind, player Player, to entity.Position) bool {
	return kind != Chick || to.Row != player.farRank()
}

func advance(state *State, to entity.Position) *State {
	return &State{
		Board:         state.Board,
		CurrentPlayer: state.CurrentPlayer.Opponent(),
		Status:        entity.StatusPlaying,
		Hands:         state.Hands,
		MoveCount:     state.MoveCount + 1,
		LastMove:      &to,
	}
}

// settle - terminal checks after mover's turn: Try, then Catch.
func settle(state *State, mover Player) {
	switch {
	case isTry(&state.Board, mover):
		state.WinReason = WinTry
	case findLion(&state.Board, mover.Opponent()) == nil:
		state.WinReason = WinCatch
	default:
		return
	}

	state.Winner = mover
	state.Status = entity.StatusEnded
}

func isTry(board *Board, player Player) bool {
	lion := findLion(board, player)
	return lion != nil && lion.Row == player.farRank()
}

func findLion(board *Board, owner Player) *entity.Position {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if piece := board[row][col]; piece.Kind == Lion && piece.Owner == owner {
				pos := entity.NewPosition(row, col)
				return &pos
			}
		}
	}

	return nil
}

func demote(kind Kind) Kind {
	if kind == Rooster {
		return Chick
	}
	return kind
}

func canReach(board *Board, from, to entity.Position) bool {
	for _, dest := range Attacks(board, from) {
		if dest == to {
			return true
		}
	}

	return false
}

// Attacks - squares the piece on from can step to, own pieces excluded.
func Attacks(board *Board, from entity.Position) []entity.Position {
	piece := board.at(from)
	if piece.IsEmpty() {
		return nil
	}

	var result []entity.Position
	for _, step := range templates[piece.Kind] {
		dest := from.Add(entity.Direction{Row: step.Row * piece.Owner.orientation(), Col: step.Col})
		if dest.In(Rows, Cols) && board.at(dest).Owner != piece.Owner {
			result = append(result, dest)
		}
	}

	return result
}

// IsThreatened - some piece of by can step onto pos.
func IsThreatened(board *Board, pos entity.Position, by Player) bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			from := entity.NewPosition(row, col)
			if board.at(from).Owner != by {
				continue
			}

			if canReach(board, from, pos) {
				return true
			}
		}
	}

	return false
}
