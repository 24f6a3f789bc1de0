package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, moves ...Place) *State {
	t.Helper()

	state := NewState()
	for _, move := range moves {
		next, err := Reduce(state, move)
		require.NoError(t, err)
		require.NotSame(t, state, next, "move %v was rejected", move)
		state = next
	}

	return state
}

func intPtr(v int) *int {
	return &v
}

func TestNewState(t *testing.T) {
	// Given: a new game
	state := NewState()

	// Then: O moves first on an empty board with every line open
	assert.Equal(t, PlayerO, state.CurrentPlayer)
	assert.Equal(t, entity.StatusPlaying, state.Status)
	assert.Equal(t, [9]*int{
		intPtr(3), intPtr(2), intPtr(3),
		intPtr(2), intPtr(4), intPtr(2),
		intPtr(3), intPtr(2), intPtr(3),
	}, state.PotentialLines)
}

func TestReduce(t *testing.T) {
	t.Run("Place marks the cell and passes the turn", func(t *testing.T) {
		// When: O marks the center
		state := play(t, Place{Row: 1, Col: 1})

		// Then: the cell is O and X is to move
		assert.Equal(t, PlayerO, state.Board[4])
		assert.Equal(t, PlayerX, state.CurrentPlayer)
		assert.Nil(t, state.PotentialLines[4])
	})

	t.Run("Occupied cell returns the same state", func(t *testing.T) {
		// Given: O on the center
		state := play(t, Place{Row: 1, Col: 1})

		// When: X tries the same cell
		next, err := Reduce(state, Place{Row: 1, Col: 1})

		// Then: no error and the very same state
		require.NoError(t, err)
		assert.Same(t, state, next)
	})

	t.Run("Previous state is not modified", func(t *testing.T) {
		// Given: a state after one move
		state := play(t, Place{Row: 0, Col: 0})
		board := state.Board

		// When: another move is applied
		_, err := Reduce(state, Place{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the old snapshot keeps its board
		assert.Equal(t, board, state.Board)
	})

	t.Run("Invalid cell is reported", func(t *testing.T) {
		state := NewState()

		for _, move := range []Place{{Row: 3, Col: 0}, {Row: 0, Col: -1}} {
			next, err := Reduce(state, move)

			require.ErrorIs(t, err, ErrInvalidCell)
			assert.Same(t, state, next)
		}
	})

	t.Run("Unknown action is reported", func(t *testing.T) {
		state := NewState()

		_, err := Reduce(state, nil)

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})
}

func TestReduce_Result(t *testing.T) {
	t.Run("Winner O keeps the turn", func(t *testing.T) {
		// When: O completes the top row with X interleaved
		state := play(t,
			Place{Row: 0, Col: 0}, Place{Row: 1, Col: 0},
			Place{Row: 0, Col: 1}, Place{Row: 1, Col: 1},
			Place{Row: 0, Col: 2},
		)

		// Then: O wins with the top row and stays current
		assert.Equal(t, PlayerO, state.Winner)
		assert.Equal(t, [][3]int{{0, 1, 2}}, state.WinningLines)
		assert.Equal(t, PlayerO, state.CurrentPlayer)
		assert.Equal(t, entity.StatusEnded, state.Status)
		assert.False(t, state.IsDraw)
		assert.Empty(t, state.ReachingLines)
	})

	t.Run("Full board without line is a draw", func(t *testing.T) {
		// When: the nine cells are filled alternately
		state := play(t,
			Place{Row: 0, Col: 0}, Place{Row: 0, Col: 1},
			Place{Row: 0, Col: 2}, Place{Row: 1, Col: 1},
			Place{Row: 1, Col: 0}, Place{Row: 1, Col: 2},
			Place{Row: 2, Col: 1}, Place{Row: 2, Col: 0},
			Place{Row: 2, Col: 2},
		)

		// Then: draw, no winner
		assert.True(t, state.IsDraw)
		assert.Equal(t, EmptyCell, state.Winner)
		assert.Equal(t, entity.StatusEnded, state.Status)
	})

	t.Run("Move after the end returns the same state", func(t *testing.T) {
		// Given: a finished game
		state := play(t,
			Place{Row: 0, Col: 0}, Place{Row: 1, Col: 0},
			Place{Row: 0, Col: 1}, Place{Row: 1, Col: 1},
			Place{Row: 0, Col: 2},
		)

		// When: X tries to play on
		next, err := Reduce(state, Place{Row: 2, Col: 2})

		// Then: nothing happens
		require.NoError(t, err)
		assert.Same(t, state, next)
	})

	t.Run("Double line is reported in full", func(t *testing.T) {
		// Given: O holds 1,2,3,6 and the last mark on 0 closes a row and a column at once
		state := play(t,
			Place{Row: 0, Col: 1}, Place{Row: 1, Col: 1},
			Place{Row: 0, Col: 2}, Place{Row: 2, Col: 2},
			Place{Row: 1, Col: 0}, Place{Row: 1, Col: 2},
			Place{Row: 2, Col: 0}, Place{Row: 2, Col: 1},
			Place{Row: 0, Col: 0},
		)

		// Then: both lines are listed
		assert.Equal(t, PlayerO, state.Winner)
		assert.ElementsMatch(t, [][3]int{{0, 1, 2}, {0, 3, 6}}, state.WinningLines)
	})
}

func TestReduce_Hints(t *testing.T) {
	t.Run("Reach is recorded for both players", func(t *testing.T) {
		// When: O has 0,1 and X has 3,4
		state := play(t,
			Place{Row: 0, Col: 0}, Place{Row: 1, Col: 0},
			Place{Row: 0, Col: 1}, Place{Row: 1, Col: 1},
		)

		// Then: O reaches on 2, X reaches on 5
		assert.ElementsMatch(t, []Reach{
			{Index: 5, Player: PlayerX},
			{Index: 2, Player: PlayerO},
		}, state.ReachingLines)
	})

	t.Run("Blocked lines stop counting", func(t *testing.T) {
		// When: O on the corner 0 and X on 1
		state := play(t, Place{Row: 0, Col: 0}, Place{Row: 0, Col: 1})

		// Then: cell 2 keeps column and diagonal, the top row is dead
		require.NotNil(t, state.PotentialLines[2])
		assert.Equal(t, 2, *state.PotentialLines[2])
		assert.Nil(t, state.PotentialLines[0])
	})
}

func TestCell(t *testing.T) {
	assert.Equal(t, entity.NewPosition(2, 1), Cell(7))
}

func TestDecodeAction(t *testing.T) {
	t.Run("Place", func(t *testing.T) {
		act, err := DecodeAction([]byte(`{"type":"place","row":1,"col":2}`))

		require.NoError(t, err)
		assert.Equal(t, Place{Row: 1, Col: 2}, act)
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := DecodeAction([]byte(`{"type":"jump"}`))

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := DecodeAction([]byte(`{`))

		require.ErrorIs(t, err, apperror.ErrMalformedAction)
	})
}
