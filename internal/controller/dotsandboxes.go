package controller

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tabletop-backend/internal/dotsandboxes"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type DotsAndBoxes struct {
	*Game[*dotsandboxes.State, dotsandboxes.Action]
}

func NewDotsAndBoxes(logger *slog.Logger, difficulty entity.Difficulty) (*DotsAndBoxes, error) {
	initial, err := dotsandboxes.NewState(difficulty)
	if err != nil {
		return nil, err
	}

	return &DotsAndBoxes{
		Game: newGame(GameDotsAndBoxes, logger, dotsandboxes.Reduce, initial,
			dotsandboxes.DecodeAction, dotsAndBoxesStatus, dotsAndBoxesHints),
	}, nil
}

func (that *DotsAndBoxes) DrawLine(lineType dotsandboxes.LineType, row, col int) error {
	return that.Apply(dotsandboxes.DrawLine{LineType: lineType, Row: row, Col: col})
}

func dotsAndBoxesStatus(state *dotsandboxes.State) string {
	score := fmt.Sprintf("%d-%d", state.Scores.Player1, state.Scores.Player2)

	switch {
	case state.Winner != dotsandboxes.None:
		return fmt.Sprintf("%s wins %s", state.Winner, score)
	case state.IsDraw:
		return "Draw " + score
	default:
		return fmt.Sprintf("%s's turn (%s)", state.CurrentPlayer, score)
	}
}

// dotsAndBoxesHints - open boxes one line from completion and the owner of every claimed box.
func dotsAndBoxesHints(state *dotsandboxes.State, _ *entity.Position) []entity.HintOverlay {
	var overlays []entity.HintOverlay

	for row := 0; row < state.Rows; row++ {
		for col := 0; col < state.Cols; col++ {
			box := entity.NewPosition(row, col)

			if owner := state.Boxes[row][col]; owner != dotsandboxes.None {
				overlays = append(overlays, entity.HintOverlay{
					Position: box,
					Kind:     entity.HintScoreIndicator,
					Style:    entity.StyleInfo,
					Content:  string(owner),
				})
				continue
			}

			if sides := state.ClaimedSides(box); sides == 3 {
				overlays = append(overlays, entity.HintOverlay{
					Position: box,
					Kind:     entity.HintCapturable,
					Style:    entity.StyleHighlight,
					Content:  strconv.Itoa(sides),
				})
			}
		}
	}

	return overlays
}
