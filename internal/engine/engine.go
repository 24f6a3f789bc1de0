package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidIndex = errors.New("invalid index")

// Reducer - pure transition. It must return the very same state value when it rejects an action silently.
type Reducer[S, A any] func(state S, action A) (S, error)

// Engine - keeps an action log and derives the current state by folding it over the initial state.
// The last state is memoized, so Dispatch folds only the newest action. Undone actions stay in the
// log past the cursor until the next Dispatch drops them.
//
// Engine is not safe for concurrent use, callers serialize dispatches.
type Engine[S, A any] struct {
	reducer Reducer[S, A]
	initial S

	actions []A
	cursor  int
	current S
}

func New[S, A any](reducer Reducer[S, A], initial S) *Engine[S, A] {
	return &Engine[S, A]{
		reducer: reducer,
		initial: initial,
		current: initial,
	}
}

// State - current snapshot.
func (that *Engine[S, A]) State() S {
	return that.current
}

func (that *Engine[S, A]) Initial() S {
	return that.initial
}

// Actions - a copy of the active history, undone actions excluded.
func (that *Engine[S, A]) Actions() []A {
	actions := make([]A, that.cursor)
	copy(actions, that.actions[:that.cursor])

	return actions
}

// Len - length of the active history.
func (that *Engine[S, A]) Len() int {
	return that.cursor
}

// Dispatch - applies the action to the current state and appends it to the log.
// A reducer error leaves both the log and the state untouched.
func (that *Engine[S, A]) Dispatch(action A) error {
	next, err := that.reducer(that.current, action)
	if err != nil {
		return err
	}

	that.actions = append(that.actions[:that.cursor], action)
	that.cursor++
	that.current = next

	return nil
}

// Reset - drops the whole history.
func (that *Engine[S, A]) Reset() {
	that.actions = nil
	that.cursor = 0
	that.current = that.initial
}

// StateAt - replays the first i actions of the active history without touching it.
func (that *Engine[S, A]) StateAt(i int) (S, error) {
	if i < 0 || i > that.cursor {
		var zero S
		return zero, fmt.Errorf("%w: %d. Valid range: 0-%d", ErrInvalidIndex, i, that.cursor)
	}

	return that.Replay(that.actions[:i])
}

// Replay - folds the given actions over the initial state.
func (that *Engine[S, A]) Replay(actions []A) (S, error) {
	state := that.initial

	for i, action := range actions {
		next, err := that.reducer(state, action)
		if err != nil {
			var zero S
			return zero, fmt.Errorf("failed to replay action %d: %w", i, err)
		}

		state = next
	}

	return state, nil
}

func (that *Engine[S, A]) CanUndo() bool {
	return that.cursor > 0
}

func (that *Engine[S, A]) CanRedo() bool {
	return that.cursor < len(that.actions)
}

// Undo - steps the cursor back one action and re-derives the state by replay.
func (that *Engine[S, A]) Undo() bool {
	if !that.CanUndo() {
		return false
	}

	state, err := that.Replay(that.actions[:that.cursor-1])
	if err != nil {
		return false
	}

	that.cursor--
	that.current = state

	return true
}

// Redo - re-applies the next undone action.
func (that *Engine[S, A]) Redo() bool {
	if !that.CanRedo() {
		return false
	}

	next, err := that.reducer(that.current, that.actions[that.cursor])
	if err != nil {
		return false
	}

	that.cursor++
	that.current = next

	return true
}

// Load - replaces the log. The first cursor actions become the active history, the rest can be redone.
func (that *Engine[S, A]) Load(actions []A, cursor int) error {
	if cursor < 0 || cursor > len(actions) {
		return fmt.Errorf("%w: %d. Valid range: 0-%d", ErrInvalidIndex, cursor, len(actions))
	}

	state, err := that.Replay(actions[:cursor])
	if err != nil {
		return err
	}

	that.actions = append([]A(nil), actions...)
	that.cursor = cursor
	that.current = state

	return nil
}
