package hasami

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

// MoveInfo - what a destination of a selected piece leads to.
type MoveInfo struct {
	To       entity.Position   `json:"to"`
	Captured []entity.Position `json:"captured"`
	// Unsafe - the opponent can capture the moved piece right after.
	Unsafe bool `json:"unsafe"`
}

// MovesFrom - destinations of the piece on from, keyed "r,c". Empty when it is not the mover's piece.
func MovesFrom(state *State, from entity.Position) map[string]MoveInfo {
	moves := make(map[string]MoveInfo)
	if state.IsFinished() || !from.In(Size, Size) || state.Board.at(from) != state.CurrentPlayer {
		return moves
	}

	mover := state.CurrentPlayer
	for _, to := range destinations(&state.Board, from) {
		board := state.Board
		board.set(from, Empty)
		board.set(to, mover)

		captured := Captures(&board, to, mover)
		for _, pos := range captured {
			board.set(pos, Empty)
		}

		moves[to.Key()] = MoveInfo{
			To:       to,
			Captured: captured,
			Unsafe:   canBeCaptured(&board, to, mover.Opponent()),
		}
	}

	return moves
}

func destinations(board *Board, from entity.Position) []entity.Position {
	var result []entity.Position

	for _, dir := range entity.Orthogonal {
		for cur := from.Add(dir); cur.In(Size, Size) && board.at(cur) == Empty; cur = cur.Add(dir) {
			result = append(result, cur)
		}
	}

	return result
}

// canBeCaptured - attacker has a move on board that takes the piece on target.
func canBeCaptured(board *Board, target entity.Position, attacker Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			from := entity.NewPosition(row, col)
			if board.at(from) != attacker {
				continue
			}

			for _, to := range destinations(board, from) {
				after := *board
				after.set(from, Empty)
				after.set(to, attacker)

				for _, pos := range Captures(&after, to, attacker) {
					if pos == target {
						return true
					}
				}
			}
		}
	}

	return false
}
