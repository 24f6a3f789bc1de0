package sticktaking

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

var (
	ErrStickTaken     = errors.New("stick is already taken")
	ErrEmptySelection = errors.New("no sticks selected")
)

// Reduce - applies one action. Actions after the end return the same state.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case SelectStick:
		return Select(state, act.Row, act.StickID)
	case TakeSticks:
		return Take(state)
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// Select - toggles a stick in the pending selection. Selecting in another row starts over,
// and so does a click that would leave a gap. Deselecting from the middle clears the selection.
func Select(state *State, row, stickID int) (*State, error) {
	if row < 0 || row >= len(state.Rows) {
		return state, fmt.Errorf("%w: row %d", apperror.ErrOutOfBounds, row)
	}

	index := slices.IndexFunc(state.Rows[row], func(stick Stick) bool { return stick.ID == stickID })
	if index < 0 {
		return state, fmt.Errorf("%w: stick %d is not in row %d", apperror.ErrOutOfBounds, stickID, row)
	}

	if state.IsFinished() {
		return state, nil
	}

	if state.Rows[row][index].Taken {
		return state, fmt.Errorf("%w: stick %d", ErrStickTaken, stickID)
	}

	next := *state
	next.SelectedRow = row

	switch {
	case state.SelectedRow != row:
		next.Selected = []int{stickID}
	case slices.Contains(state.Selected, stickID):
		next.Selected = slices.DeleteFunc(slices.Clone(state.Selected), func(id int) bool { return id == stickID })
		if !isContiguous(state.Rows[row], next.Selected) {
			next.Selected = nil
		}
	default:
		next.Selected = append(slices.Clone(state.Selected), stickID)
		if !isContiguous(state.Rows[row], next.Selected) {
			next.Selected = []int{stickID}
		}
	}

	if len(next.Selected) == 0 {
		next.SelectedRow = noRow
	}

	return &next, nil
}

// Take - removes the selected sticks. Whoever takes the last stick loses.
func Take(state *State) (*State, error) {
	if state.IsFinished() {
		return state, nil
	}

	if len(state.Selected) == 0 {
		return state, ErrEmptySelection
	}

	mover := state.CurrentPlayer
	next := *state

	next.Rows = slices.Clone(state.Rows)
	next.Rows[state.SelectedRow] = slices.Clone(state.Rows[state.SelectedRow])
	for i, stick := range next.Rows[state.SelectedRow] {
		if slices.Contains(state.Selected, stick.ID) {
			next.Rows[state.SelectedRow][i] = Stick{ID: stick.ID, Taken: true, TakenBy: mover}
		}
	}

	next.Selected = nil
	next.SelectedRow = noRow
	next.Runs, next.NimSum = Runs(next.Rows)

	if next.Remaining() == 0 {
		next.Winner = mover.Opponent()
		next.Status = entity.StatusEnded
	} else {
		next.CurrentPlayer = mover.Opponent()
	}

	return &next, nil
}

// isContiguous - the selected sticks sit next to each other in the row.
func isContiguous(row []Stick, selected []int) bool {
	first, last := len(row), -1
	for i, stick := range row {
		if slices.Contains(selected, stick.ID) {
			first = min(first, i)
			last = max(last, i)
		}
	}

	return last-first+1 == len(selected)
}
