package controller

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/sticktaking"
)

type StickTaking struct {
	*Game[*sticktaking.State, sticktaking.Action]
}

func NewStickTaking(logger *slog.Logger, difficulty entity.Difficulty) (*StickTaking, error) {
	initial, err := sticktaking.NewState(difficulty)
	if err != nil {
		return nil, err
	}

	return &StickTaking{
		Game: newGame(GameStickTaking, logger, sticktaking.Reduce, initial,
			sticktaking.DecodeAction, stickTakingStatus, stickTakingHints),
	}, nil
}

func (that *StickTaking) SelectStick(row, stickID int) error {
	return that.Apply(sticktaking.SelectStick{Row: row, StickID: stickID})
}

func (that *StickTaking) TakeSticks() error {
	return that.Apply(sticktaking.TakeSticks{})
}

func stickTakingStatus(state *sticktaking.State) string {
	if state.Winner != sticktaking.None {
		return fmt.Sprintf("%s wins", state.Winner)
	}

	return fmt.Sprintf("%s's turn, %d left", state.CurrentPlayer, state.Remaining())
}

// stickTakingHints - the run lengths of each row with the nim-sum, plus the pending selection.
func stickTakingHints(state *sticktaking.State, _ *entity.Position) []entity.HintOverlay {
	var overlays []entity.HintOverlay

	for row, runs := range state.Runs {
		lengths := make([]string, 0, len(runs))
		for _, run := range runs {
			lengths = append(lengths, strconv.Itoa(run))
		}

		overlays = append(overlays, entity.HintOverlay{
			Position: entity.NewPosition(row, -1),
			Kind:     entity.HintMoveCount,
			Style:    entity.StyleInfo,
			Content:  strings.Join(lengths, "+"),
		})
	}

	overlays = append(overlays, entity.HintOverlay{
		Position: entity.NewPosition(-1, -1),
		Kind:     entity.HintScoreIndicator,
		Style:    entity.StyleInfo,
		Content:  fmt.Sprintf("nim-sum %d", state.NimSum),
	})

	for _, id := range state.Selected {
		overlays = append(overlays, entity.HintOverlay{
			Position: entity.NewPosition(state.SelectedRow, id),
			Kind:     entity.HintValidMove,
			Style:    entity.StyleHighlight,
		})
	}

	return overlays
}
