package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative step")

type counter struct {
	Value int
}

// add reducer: steps must be positive, zero is a silent no-op.
func add(state *counter, step int) (*counter, error) {
	switch {
	case step < 0:
		return state, errNegative
	case step == 0:
		return state, nil
	default:
		return &counter{Value: state.Value + step}, nil
	}
}

func TestEngine_Dispatch(t *testing.T) {
	t.Run("Folds actions over the initial state", func(t *testing.T) {
		// Given: a fresh engine
		eng := New(add, &counter{})

		// When: two actions are dispatched
		require.NoError(t, eng.Dispatch(2))
		require.NoError(t, eng.Dispatch(3))

		// Then: the state is the fold of both and the log holds them
		assert.Equal(t, 5, eng.State().Value)
		assert.Equal(t, []int{2, 3}, eng.Actions())
		assert.Equal(t, 2, eng.Len())
	})

	t.Run("Reducer error leaves log and state untouched", func(t *testing.T) {
		// Given: an engine with one action applied
		eng := New(add, &counter{})
		require.NoError(t, eng.Dispatch(1))
		before := eng.State()

		// When: a failing action is dispatched
		err := eng.Dispatch(-1)

		// Then: the error is returned and nothing changed
		require.ErrorIs(t, err, errNegative)
		assert.Same(t, before, eng.State())
		assert.Equal(t, 1, eng.Len())
	})

	t.Run("Reset clears the history", func(t *testing.T) {
		// Given: an engine with history
		initial := &counter{}
		eng := New(add, initial)
		require.NoError(t, eng.Dispatch(4))

		// When: reset
		eng.Reset()

		// Then: the initial state is current again
		assert.Same(t, initial, eng.State())
		assert.Empty(t, eng.Actions())
		assert.False(t, eng.CanUndo())
		assert.False(t, eng.CanRedo())
	})
}

func TestEngine_StateAt(t *testing.T) {
	eng := New(add, &counter{})
	for _, step := range []int{1, 2, 3} {
		require.NoError(t, eng.Dispatch(step))
	}

	t.Run("Replays a prefix without touching the history", func(t *testing.T) {
		// When: replaying the first two actions
		state, err := eng.StateAt(2)

		// Then: the prefix fold is returned and the live state is kept
		require.NoError(t, err)
		assert.Equal(t, 3, state.Value)
		assert.Equal(t, 6, eng.State().Value)
		assert.Equal(t, 3, eng.Len())
	})

	t.Run("Full length equals the live state", func(t *testing.T) {
		state, err := eng.StateAt(eng.Len())

		require.NoError(t, err)
		assert.Equal(t, eng.State(), state)
	})

	t.Run("Same prefix twice gives equal states", func(t *testing.T) {
		first, err := eng.StateAt(1)
		require.NoError(t, err)
		second, err := eng.StateAt(1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Out of range index is reported", func(t *testing.T) {
		for _, i := range []int{-1, 4} {
			_, err := eng.StateAt(i)

			require.ErrorIs(t, err, ErrInvalidIndex)
			assert.Contains(t, err.Error(), "Valid range: 0-3")
		}
	})
}

func TestEngine_UndoRedo(t *testing.T) {
	t.Run("Undo and redo walk the history", func(t *testing.T) {
		// Given: three applied actions
		eng := New(add, &counter{})
		for _, step := range []int{1, 2, 3} {
			require.NoError(t, eng.Dispatch(step))
		}

		// When: undo twice
		require.True(t, eng.Undo())
		require.True(t, eng.Undo())

		// Then: state is after the first action and redo is available
		assert.Equal(t, 1, eng.State().Value)
		assert.True(t, eng.CanRedo())
		assert.Equal(t, []int{1}, eng.Actions())

		// When: redo once
		require.True(t, eng.Redo())

		// Then: the second action is back
		assert.Equal(t, 3, eng.State().Value)
	})

	t.Run("Dispatch after undo drops the redo branch", func(t *testing.T) {
		// Given: an undone action
		eng := New(add, &counter{})
		require.NoError(t, eng.Dispatch(1))
		require.NoError(t, eng.Dispatch(2))
		require.True(t, eng.Undo())

		// When: a new action is dispatched
		require.NoError(t, eng.Dispatch(10))

		// Then: redo is gone and the log is the new branch
		assert.False(t, eng.CanRedo())
		assert.False(t, eng.Redo())
		assert.Equal(t, []int{1, 10}, eng.Actions())
		assert.Equal(t, 11, eng.State().Value)
	})

	t.Run("Undo on empty history does nothing", func(t *testing.T) {
		eng := New(add, &counter{})

		assert.False(t, eng.Undo())
	})
}

func TestEngine_Validate(t *testing.T) {
	eng := New(add, &counter{})
	same := func(prev, next *counter) bool { return prev == next }

	t.Run("Valid sequence", func(t *testing.T) {
		report := eng.Validate([]int{1, 2}, same)

		assert.True(t, report.Valid)
		assert.Equal(t, -1, report.Index)
	})

	t.Run("No-op action is reported", func(t *testing.T) {
		report := eng.Validate([]int{1, 0, 2}, same)

		assert.False(t, report.Valid)
		assert.Equal(t, 1, report.Index)
	})

	t.Run("Failing action is reported", func(t *testing.T) {
		report := eng.Validate([]int{1, -2}, same)

		assert.False(t, report.Valid)
		assert.Equal(t, 1, report.Index)
		assert.Equal(t, errNegative.Error(), report.Reason)
	})
}

func TestEngine_Load(t *testing.T) {
	t.Run("Cursor splits history and redo tail", func(t *testing.T) {
		// Given: a stored log of three actions with one undone
		eng := New(add, &counter{})

		// When: it is loaded
		require.NoError(t, eng.Load([]int{1, 2, 4}, 2))

		// Then: the state covers the first two and the third can be redone
		assert.Equal(t, 3, eng.State().Value)
		assert.Equal(t, 2, eng.Len())
		assert.True(t, eng.CanRedo())
		require.True(t, eng.Redo())
		assert.Equal(t, 7, eng.State().Value)
	})

	t.Run("Bad cursor is reported", func(t *testing.T) {
		eng := New(add, &counter{})

		err := eng.Load([]int{1}, 2)

		require.ErrorIs(t, err, ErrInvalidIndex)
		assert.Equal(t, "invalid index: 2. Valid range: 0-1", err.Error())
	})

	t.Run("Failing action keeps the old history", func(t *testing.T) {
		eng := New(add, &counter{})
		require.NoError(t, eng.Dispatch(5))

		err := eng.Load([]int{1, -1}, 2)

		require.ErrorIs(t, err, errNegative)
		assert.Equal(t, 5, eng.State().Value)
		assert.Equal(t, []int{5}, eng.Actions())
	})
}
