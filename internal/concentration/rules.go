package concentration

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// Reduce - applies one action. Clicks that cannot flip a card return the same state.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case RevealCard:
		return Reveal(state, act.Index)
	case ConcealCards:
		return Conceal(state), nil
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// Reveal - turns a card face up. The second card of a turn settles the pair:
// a match scores and keeps the turn, a mismatch waits for Conceal.
func Reveal(state *State, index int) (*State, error) {
	if index < 0 || index >= len(state.Board) {
		return state, fmt.Errorf("%w: card %d", apperror.ErrOutOfBounds, index)
	}

	card := state.Board[index]
	if state.IsFinished() || len(state.Flipped) >= 2 || card.Flipped || card.Matched {
		return state, nil
	}

	next := *state
	next.Board = slices.Clone(state.Board)
	next.Board[index].Flipped = true
	next.Flipped = append(slices.Clone(state.Flipped), index)

	if !slices.Contains(state.Revealed, index) {
		next.Revealed = append(slices.Clone(state.Revealed), index)
	}

	if len(next.Flipped) == 2 {
		first, second := next.Flipped[0], next.Flipped[1]

		if next.Board[first].MatchID == next.Board[second].MatchID {
			for _, i := range next.Flipped {
				next.Board[i].Matched = true
				next.Board[i].MatchedBy = state.CurrentPlayer
			}

			if state.CurrentPlayer == Player1 {
				next.Scores.Player1++
			} else {
				next.Scores.Player2++
			}

			next.Flipped = nil
			settle(&next)
		} else {
			next.Phase = PhaseEvaluating
		}
	}

	next.Hinted = hinted(next.Board, next.Revealed)

	return &next, nil
}

// Conceal - flips a mismatched pair back and passes the turn.
func Conceal(state *State) *State {
	if state.Phase != PhaseEvaluating {
		return state
	}

	next := *state
	next.Board = slices.Clone(state.Board)
	for _, i := range state.Flipped {
		next.Board[i].Flipped = false
	}

	next.Flipped = nil
	next.Phase = PhaseTurn
	next.CurrentPlayer = state.CurrentPlayer.Opponent()

	return &next
}

func settle(state *State) {
	for _, card := range state.Board {
		if !card.Matched {
			return
		}
	}

	state.Phase = PhaseGameOver
	state.Status = entity.StatusEnded

	switch {
	case state.Scores.Player1 > state.Scores.Player2:
		state.Winner = Player1
	case state.Scores.Player2 > state.Scores.Player1:
		state.Winner = Player2
	default:
		state.IsDraw = true
	}
}

// hinted - known but unmatched pairs, reported only once at least two pairs are known.
func hinted(board []Card, revealed []int) []int {
	groups := make(map[string][]int)
	for _, i := range revealed {
		if !board[i].Matched {
			groups[board[i].MatchID] = append(groups[board[i].MatchID], i)
		}
	}

	var result []int
	known := 0
	for _, group := range groups {
		if len(group) >= 2 {
			known++
			result = append(result, group...)
		}
	}

	if known < 2 {
		return nil
	}

	slices.Sort(result)

	return result
}
