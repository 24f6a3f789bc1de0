package controller

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/reversi"
)

type Reversi struct {
	*Game[*reversi.State, reversi.Action]
}

func NewReversi(logger *slog.Logger) *Reversi {
	return &Reversi{
		Game: newGame(GameReversi, logger, reversi.Reduce, reversi.NewState(),
			reversi.DecodeAction, reversiStatus, reversiHints),
	}
}

func (that *Reversi) MakeMove(row, col int) error {
	return that.Apply(reversi.Place{Row: row, Col: col})
}

func playerName(player string) string {
	if player == "" {
		return ""
	}
	return strings.ToUpper(player[:1]) + strings.ToLower(player[1:])
}

func reversiStatus(state *reversi.State) string {
	score := fmt.Sprintf("%d-%d", state.Scores.Black, state.Scores.White)

	switch {
	case state.Winner != reversi.Empty:
		return fmt.Sprintf("%s wins %s", playerName(string(state.Winner)), score)
	case state.IsDraw:
		return "Draw " + score
	case state.Phase == reversi.PhaseSkipped:
		return fmt.Sprintf("%s passed, %s to move",
			playerName(string(state.CurrentPlayer.Opponent())), playerName(string(state.CurrentPlayer)))
	default:
		return fmt.Sprintf("%s's turn", playerName(string(state.CurrentPlayer)))
	}
}

// reversiHints - legal cells with their flip count. A selected legal cell previews its flips.
func reversiHints(state *reversi.State, selected *entity.Position) []entity.HintOverlay {
	var overlays []entity.HintOverlay

	for row := 0; row < reversi.Size; row++ {
		for col := 0; col < reversi.Size; col++ {
			pos := entity.NewPosition(row, col)

			flips, ok := state.ValidMoves[pos.Key()]
			if !ok {
				continue
			}

			overlays = append(overlays, entity.HintOverlay{
				Position: pos,
				Kind:     entity.HintValidMove,
				Style:    entity.StyleHighlight,
				Content:  strconv.Itoa(len(flips)),
			})
		}
	}

	if selected != nil {
		for _, flip := range state.ValidMoves[selected.Key()] {
			overlays = append(overlays, entity.HintOverlay{
				Position: flip,
				Kind:     entity.HintCapturable,
				Style:    entity.StyleInfo,
			})
		}
	}

	return overlays
}
