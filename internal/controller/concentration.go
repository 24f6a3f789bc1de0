package controller

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop-backend/internal/concentration"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type Concentration struct {
	*Game[*concentration.State, concentration.Action]
}

func NewConcentration(logger *slog.Logger, opts entity.Options) (*Concentration, error) {
	initial, err := concentration.NewState(opts.Difficulty, opts.Seed)
	if err != nil {
		return nil, err
	}

	return &Concentration{
		Game: newGame(GameConcentration, logger, concentration.Reduce, initial,
			concentration.DecodeAction, concentrationStatus, concentrationHints),
	}, nil
}

func (that *Concentration) RevealCard(index int) error {
	return that.Apply(concentration.RevealCard{Index: index})
}

func (that *Concentration) ConcealCards() error {
	return that.Apply(concentration.ConcealCards{})
}

func concentrationStatus(state *concentration.State) string {
	score := fmt.Sprintf("%d-%d", state.Scores.Player1, state.Scores.Player2)

	switch {
	case state.Winner != concentration.None:
		return fmt.Sprintf("%s wins %s", state.Winner, score)
	case state.IsDraw:
		return "Draw " + score
	case state.Phase == concentration.PhaseEvaluating:
		return fmt.Sprintf("%s: no match (%s)", state.CurrentPlayer, score)
	default:
		return fmt.Sprintf("%s's turn (%s)", state.CurrentPlayer, score)
	}
}

// concentrationHints - cards whose partner has already been seen. Cards are addressed by (0, index).
func concentrationHints(state *concentration.State, _ *entity.Position) []entity.HintOverlay {
	overlays := make([]entity.HintOverlay, 0, len(state.Hinted))
	for _, index := range state.Hinted {
		overlays = append(overlays, entity.HintOverlay{
			Position: entity.NewPosition(0, index),
			Kind:     entity.HintValidMove,
			Style:    entity.StyleHighlight,
			Content:  state.Board[index].MatchID,
		})
	}

	return overlays
}
