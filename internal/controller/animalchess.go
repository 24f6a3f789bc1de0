package controller

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop-backend/internal/animalchess"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// HandRow - row of a selected position that points into the current player's hand,
// the column is the index in the hand.
const HandRow = -1

type AnimalChess struct {
	*Game[*animalchess.State, animalchess.Action]
}

func NewAnimalChess(logger *slog.Logger) *AnimalChess {
	return &AnimalChess{
		Game: newGame(GameAnimalChess, logger, animalchess.Reduce, animalchess.NewState(),
			animalchess.DecodeAction, animalChessStatus, animalChessHints),
	}
}

func (that *AnimalChess) MovePiece(from, to entity.Position) error {
	return that.Apply(animalchess.MovePiece{From: from, To: to})
}

func (that *AnimalChess) DropPiece(kind animalchess.Kind, to entity.Position) error {
	return that.Apply(animalchess.DropPiece{Kind: kind, To: to})
}

// SelectHand - selects the piece at index of the current player's hand.
func (that *AnimalChess) SelectHand(index int) {
	that.Select(&entity.Position{Row: HandRow, Col: index})
}

func animalChessStatus(state *animalchess.State) string {
	if state.Winner != "" {
		return fmt.Sprintf("%s wins by %s", state.Winner, state.WinReason)
	}

	return fmt.Sprintf("%s's turn", state.CurrentPlayer)
}

// animalChessHints - destinations of the selected board or hand piece with capture and danger
// flags. With nothing selected, the pieces of the side to move that are under attack.
func animalChessHints(state *animalchess.State, selected *entity.Position) []entity.HintOverlay {
	var overlays []entity.HintOverlay

	if selected == nil {
		for _, pos := range animalchess.AttackedPieces(state) {
			overlays = append(overlays, entity.HintOverlay{
				Position: pos,
				Kind:     entity.HintThreatened,
				Style:    entity.StyleWarning,
			})
		}

		return overlays
	}

	var moves map[string]animalchess.MoveHint
	if selected.Row == HandRow {
		hand := state.Hands.Of(state.CurrentPlayer)
		if selected.Col < 0 || selected.Col >= len(hand) {
			return nil
		}
		moves = animalchess.DropsFor(state, hand[selected.Col])
	} else {
		moves = animalchess.MovesFrom(state, *selected)
	}

	for row := 0; row < animalchess.Rows; row++ {
		for col := 0; col < animalchess.Cols; col++ {
			move, ok := moves[entity.NewPosition(row, col).Key()]
			if !ok {
				continue
			}

			overlay := entity.HintOverlay{Position: move.To, Kind: entity.HintValidMove, Style: entity.StyleHighlight}
			switch {
			case move.Threatened:
				overlay.Kind, overlay.Style = entity.HintThreatened, entity.StyleWarning
			case move.Capture:
				overlay.Kind, overlay.Style = entity.HintCapturable, entity.StyleHighlight
			}
			overlays = append(overlays, overlay)
		}
	}

	return overlays
}
