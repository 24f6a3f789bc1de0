package controller

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/hasami"
)

type Hasami struct {
	*Game[*hasami.State, hasami.Action]
}

func NewHasami(logger *slog.Logger) *Hasami {
	return &Hasami{
		Game: newGame(GameHasami, logger, hasami.Reduce, hasami.NewState(),
			hasami.DecodeAction, hasamiStatus, hasamiHints),
	}
}

func (that *Hasami) MovePiece(from, to entity.Position) error {
	return that.Apply(hasami.MovePiece{From: from, To: to})
}

func (that *Hasami) SetWinCondition(condition hasami.WinCondition) error {
	return that.Apply(hasami.SetWinCondition{Condition: condition})
}

func hasamiStatus(state *hasami.State) string {
	score := fmt.Sprintf("%d-%d", state.Scores.Player1, state.Scores.Player2)

	if state.Winner != hasami.Empty {
		return fmt.Sprintf("%s wins %s", state.Winner, score)
	}
	if state.IsDraw {
		return "Draw " + score
	}

	return fmt.Sprintf("%s's turn (%s)", state.CurrentPlayer, score)
}

// hasamiHints - for a selected piece: destinations, the pieces each would capture
// and destinations where the piece could be taken back.
func hasamiHints(state *hasami.State, selected *entity.Position) []entity.HintOverlay {
	if selected == nil {
		return nil
	}

	var overlays []entity.HintOverlay
	for _, move := range sortedMoves(hasami.MovesFrom(state, *selected)) {
		overlay := entity.HintOverlay{
			Position: move.To,
			Kind:     entity.HintValidMove,
			Style:    entity.StyleHighlight,
		}
		if len(move.Captured) > 0 {
			overlay.Content = strconv.Itoa(len(move.Captured))
		}
		if move.Unsafe {
			overlay.Kind, overlay.Style = entity.HintThreatened, entity.StyleWarning
		}
		overlays = append(overlays, overlay)

		for _, captured := range move.Captured {
			overlays = append(overlays, entity.HintOverlay{
				Position: captured,
				Kind:     entity.HintCapturable,
				Style:    entity.StyleInfo,
				Content:  move.To.Key(),
			})
		}
	}

	return overlays
}

func sortedMoves(moves map[string]hasami.MoveInfo) []hasami.MoveInfo {
	result := make([]hasami.MoveInfo, 0, len(moves))
	for row := 0; row < hasami.Size; row++ {
		for col := 0; col < hasami.Size; col++ {
			if move, ok := moves[entity.NewPosition(row, col).Key()]; ok {
				result = append(result, move)
			}
		}
	}

	return result
}
