package animalchess

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

// MoveHint - a legal destination of the selected board or hand piece.
type MoveHint struct {
	To      entity.Position `json:"to"`
	Capture bool            `json:"capture"`
	// Threatened - the opponent can take the piece on To right after.
	Threatened bool `json:"threatened"`
}

// MovesFrom - destinations of the current player's piece on from, keyed "r,c".
func MovesFrom(state *State, from entity.Position) map[string]MoveHint {
	hints := make(map[string]MoveHint)
	if state.IsFinished() || !from.In(Rows, Cols) || state.Board.at(from).Owner != state.CurrentPlayer {
		return hints
	}

	for _, to := range Attacks(&state.Board, from) {
		next, err := MakeMove(state, from, to)
		if err != nil || next == state {
			continue
		}

		hints[to.Key()] = MoveHint{
			To:         to,
			Capture:    !state.Board.at(to).IsEmpty(),
			Threatened: !next.IsFinished() && IsThreatened(&next.Board, to, next.CurrentPlayer),
		}
	}

	return hints
}

// DropsFor - squares where the current player may drop kind from the hand, keyed "r,c".
func DropsFor(state *State, kind Kind) map[string]MoveHint {
	hints := make(map[string]MoveHint)
	if state.IsFinished() {
		return hints
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			to := entity.NewPosition(row, col)

			next, err := Drop(state, kind, to)
			if err != nil || next == state {
				continue
			}

			hints[to.Key()] = MoveHint{
				To:         to,
				Threatened: IsThreatened(&next.Board, to, next.CurrentPlayer),
			}
		}
	}

	return hints
}

// AttackedPieces - the current player's pieces the opponent could take now.
func AttackedPieces(state *State) []entity.Position {
	var result []entity.Position
	if state.IsFinished() {
		return result
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			pos := entity.NewPosition(row, col)
			if state.Board.at(pos).Owner == state.CurrentPlayer && IsThreatened(&state.Board, pos, state.CurrentPlayer.Opponent()) {
				result = append(result, pos)
			}
		}
	}

	return result
}
