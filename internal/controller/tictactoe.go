package controller

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/tictactoe"
)

type TicTacToe struct {
	*Game[*tictactoe.State, tictactoe.Action]
}

func NewTicTacToe(logger *slog.Logger) *TicTacToe {
	return &TicTacToe{
		Game: newGame(GameTicTacToe, logger, tictactoe.Reduce, tictactoe.NewState(),
			tictactoe.DecodeAction, ticTacToeStatus, ticTacToeHints),
	}
}

func (that *TicTacToe) MakeMove(row, col int) error {
	return that.Apply(tictactoe.Place{Row: row, Col: col})
}

func ticTacToeStatus(state *tictactoe.State) string {
	switch {
	case state.Winner != tictactoe.EmptyCell:
		return fmt.Sprintf("%s wins!", state.Winner)
	case state.IsDraw:
		return "Draw"
	default:
		return fmt.Sprintf("%s's turn", state.CurrentPlayer)
	}
}

// ticTacToeHints - winning cells of the player to move, cells to block, open lines per empty cell.
func ticTacToeHints(state *tictactoe.State, _ *entity.Position) []entity.HintOverlay {
	var overlays []entity.HintOverlay

	for _, reach := range state.ReachingLines {
		overlay := entity.HintOverlay{Position: tictactoe.Cell(reach.Index)}
		if reach.Player == state.CurrentPlayer {
			overlay.Kind, overlay.Style, overlay.Content = entity.HintValidMove, entity.StyleHighlight, "win"
		} else {
			overlay.Kind, overlay.Style, overlay.Content = entity.HintThreatened, entity.StyleWarning, "block"
		}
		overlays = append(overlays, overlay)
	}

	for cell, count := range state.PotentialLines {
		if count == nil {
			continue
		}

		overlays = append(overlays, entity.HintOverlay{
			Position: tictactoe.Cell(cell),
			Kind:     entity.HintMoveCount,
			Style:    entity.StyleInfo,
			Content:  strconv.Itoa(*count),
		})
	}

	return overlays
}
