package hasami

import (
	"testing"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) entity.Position {
	return entity.NewPosition(row, col)
}

func custom(next Player, cells map[entity.Position]Player) *State {
	state := &State{
		CurrentPlayer: next,
		Status:        entity.StatusPlaying,
		WinCondition:  WinStandard,
	}
	for cell, player := range cells {
		state.Board.set(cell, player)
	}

	return state
}

func TestNewState(t *testing.T) {
	state := NewState()

	assert.Equal(t, Player1, state.CurrentPlayer)
	assert.Equal(t, 9, state.Board.count(Player1))
	assert.Equal(t, 9, state.Board.count(Player2))
	assert.Equal(t, Player2, state.Board[0][4])
	assert.Equal(t, Player1, state.Board[8][4])
	assert.Equal(t, WinStandard, state.WinCondition)
}

func TestReduce_Move(t *testing.T) {
	t.Run("Slide passes the turn", func(t *testing.T) {
		// Given: the initial position
		state := NewState()

		// When: PLAYER1 slides (8,0) up to (5,0)
		next, err := Reduce(state, MovePiece{From: pos(8, 0), To: pos(5, 0)})
		require.NoError(t, err)

		// Then: the piece moved, PLAYER2 is to move
		assert.Equal(t, Empty, next.Board[8][0])
		assert.Equal(t, Player1, next.Board[5][0])
		assert.Equal(t, Player2, next.CurrentPlayer)
		assert.Equal(t, 1, next.MoveCount)
		assert.Equal(t, &Move{From: pos(8, 0), To: pos(5, 0)}, next.LastMove)
		assert.Equal(t, Player1, state.Board[8][0])
	})

	t.Run("Diagonal move is reported with both cells", func(t *testing.T) {
		state := NewState()

		next, err := Reduce(state, MovePiece{From: pos(8, 0), To: pos(7, 1)})

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Contains(t, err.Error(), "cannot move piece from (8,0) to (7,1)")
		assert.Same(t, state, next)
	})

	t.Run("Blocked path is reported", func(t *testing.T) {
		// Given: an enemy piece in the way
		state := custom(Player1, map[entity.Position]Player{pos(8, 0): Player1, pos(6, 0): Player2})

		// When: jumping over it
		next, err := Reduce(state, MovePiece{From: pos(8, 0), To: pos(4, 0)})

		// Then: rejected with an error
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Same(t, state, next)
	})

	t.Run("Opponent piece returns the same state", func(t *testing.T) {
		state := NewState()

		next, err := Reduce(state, MovePiece{From: pos(0, 0), To: pos(3, 0)})

		require.NoError(t, err)
		assert.Same(t, state, next)
	})

	t.Run("Off board is reported", func(t *testing.T) {
		state := NewState()

		_, err := Reduce(state, MovePiece{From: pos(8, 0), To: pos(9, 0)})

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Unknown action is reported", func(t *testing.T) {
		_, err := Reduce(NewState(), nil)

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})
}

func TestReduce_Captures(t *testing.T) {
	t.Run("Lone piece between two is captured", func(t *testing.T) {
		// Given: PLAYER2 on (4,3) next to PLAYER1 on (4,2)
		state := custom(Player1, map[entity.Position]Player{
			pos(4, 2): Player1, pos(4, 3): Player2, pos(6, 4): Player1,
		})

		// When: PLAYER1 closes the sandwich on (4,4)
		next, err := Reduce(state, MovePiece{From: pos(6, 4), To: pos(4, 4)})
		require.NoError(t, err)

		// Then: the piece is gone and the score grows by one
		assert.Equal(t, Empty, next.Board[4][3])
		assert.Equal(t, 1, next.Scores.Player1)
		assert.Equal(t, []entity.Position{pos(4, 3)}, next.JustCaptured)
		assert.Equal(t, Player2, next.CurrentPlayer)
	})

	t.Run("Whole run is captured", func(t *testing.T) {
		// Given: two PLAYER2 pieces in a row
		state := custom(Player1, map[entity.Position]Player{
			pos(4, 1): Player1, pos(4, 2): Player2, pos(4, 3): Player2, pos(6, 4): Player1,
		})

		// When: PLAYER1 closes the line
		next, err := Reduce(state, MovePiece{From: pos(6, 4), To: pos(4, 4)})
		require.NoError(t, err)

		// Then: the score grows by the run length
		assert.Equal(t, 2, next.Scores.Player1)
		assert.ElementsMatch(t, []entity.Position{pos(4, 2), pos(4, 3)}, next.JustCaptured)
	})

	t.Run("Open end captures nothing", func(t *testing.T) {
		state := custom(Player1, map[entity.Position]Player{pos(4, 3): Player2, pos(6, 4): Player1})

		next, err := Reduce(state, MovePiece{From: pos(6, 4), To: pos(4, 4)})
		require.NoError(t, err)

		assert.Equal(t, Player2, next.Board[4][3])
		assert.Empty(t, next.JustCaptured)
		assert.Equal(t, 0, next.Scores.Player1)
	})

	t.Run("Corner piece is trapped by both neighbours", func(t *testing.T) {
		// Given: PLAYER2 in the corner with PLAYER1 below it
		state := custom(Player1, map[entity.Position]Player{
			pos(0, 0): Player2, pos(1, 0): Player1, pos(3, 1): Player1,
		})

		// When: PLAYER1 takes the other neighbour
		next, err := Reduce(state, MovePiece{From: pos(3, 1), To: pos(0, 1)})
		require.NoError(t, err)

		// Then: the corner piece is captured
		assert.Equal(t, Empty, next.Board[0][0])
		assert.Equal(t, []entity.Position{pos(0, 0)}, next.JustCaptured)
	})

	t.Run("Edge piece flanked along the edge is captured once", func(t *testing.T) {
		// Given: PLAYER2 on the top edge next to PLAYER1
		state := custom(Player1, map[entity.Position]Player{
			pos(0, 4): Player2, pos(0, 3): Player1, pos(3, 5): Player1,
		})

		// When: PLAYER1 flanks it from the other side
		next, err := Reduce(state, MovePiece{From: pos(3, 5), To: pos(0, 5)})
		require.NoError(t, err)

		// Then: one capture, counted once
		assert.Equal(t, []entity.Position{pos(0, 4)}, next.JustCaptured)
		assert.Equal(t, 1, next.Scores.Player1)
	})
}

func TestReduce_WinConditions(t *testing.T) {
	sandwich := func(condition WinCondition, scores Scores, extra map[entity.Position]Player) *State {
		cells := map[entity.Position]Player{pos(4, 2): Player1, pos(4, 3): Player2, pos(6, 4): Player1}
		for cell, player := range extra {
			cells[cell] = player
		}

		state := custom(Player1, cells)
		state.WinCondition = condition
		state.Scores = scores

		return state
	}
	capture := MovePiece{From: pos(6, 4), To: pos(4, 4)}

	t.Run("Standard: fifth capture wins", func(t *testing.T) {
		state := sandwich(WinStandard, Scores{Player1: 4, Player2: 3}, nil)

		next, err := Reduce(state, capture)
		require.NoError(t, err)

		assert.Equal(t, Player1, next.Winner)
		assert.Equal(t, entity.StatusEnded, next.Status)
	})

	t.Run("Standard: three with a lead of three wins", func(t *testing.T) {
		state := sandwich(WinStandard, Scores{Player1: 2, Player2: 0}, nil)

		next, err := Reduce(state, capture)
		require.NoError(t, err)

		assert.Equal(t, Player1, next.Winner)
	})

	t.Run("Five captures: three is not enough", func(t *testing.T) {
		state := sandwich(WinFiveCaptures, Scores{Player1: 2, Player2: 0}, nil)

		next, err := Reduce(state, capture)
		require.NoError(t, err)

		assert.Equal(t, Empty, next.Winner)
		assert.Equal(t, entity.StatusPlaying, next.Status)
	})

	t.Run("Total capture: one piece left loses", func(t *testing.T) {
		state := sandwich(WinTotalCapture, Scores{}, map[entity.Position]Player{pos(0, 8): Player2})

		next, err := Reduce(state, capture)
		require.NoError(t, err)

		assert.Equal(t, Player1, next.Winner)

		// Then: moves after the end are ignored
		again, err := Reduce(next, MovePiece{From: pos(0, 8), To: pos(1, 8)})
		require.NoError(t, err)
		assert.Same(t, next, again)
	})
}

func TestReduce_SetWinCondition(t *testing.T) {
	t.Run("Allowed before the first move", func(t *testing.T) {
		next, err := Reduce(NewState(), SetWinCondition{Condition: WinTotalCapture})

		require.NoError(t, err)
		assert.Equal(t, WinTotalCapture, next.WinCondition)
	})

	t.Run("Ignored once the game started", func(t *testing.T) {
		state, err := Reduce(NewState(), MovePiece{From: pos(8, 0), To: pos(5, 0)})
		require.NoError(t, err)

		next, err := Reduce(state, SetWinCondition{Condition: WinTotalCapture})

		require.NoError(t, err)
		assert.Same(t, state, next)
	})

	t.Run("Unknown condition is reported", func(t *testing.T) {
		_, err := Reduce(NewState(), SetWinCondition{Condition: "sudden_death"})

		require.ErrorIs(t, err, ErrUnknownWinCondition)
	})
}

func TestMovesFrom(t *testing.T) {
	t.Run("Destinations carry captures", func(t *testing.T) {
		state := custom(Player1, map[entity.Position]Player{
			pos(4, 2): Player1, pos(4, 3): Player2, pos(6, 4): Player1,
		})

		moves := MovesFrom(state, pos(6, 4))

		require.Contains(t, moves, "4,4")
		assert.Equal(t, []entity.Position{pos(4, 3)}, moves["4,4"].Captured)
		assert.Contains(t, moves, "0,4")
		assert.NotContains(t, moves, "6,4")
	})

	t.Run("Destination the opponent can sandwich is unsafe", func(t *testing.T) {
		// Given: PLAYER2 on (4,5) and another PLAYER2 able to reach (4,3)
		state := custom(Player1, map[entity.Position]Player{
			pos(8, 4): Player1, pos(4, 5): Player2, pos(2, 3): Player2,
		})

		// When: listing the moves of (8,4)
		moves := MovesFrom(state, pos(8, 4))

		// Then: (4,4) is unsafe, (7,4) is not
		assert.True(t, moves["4,4"].Unsafe)
		assert.False(t, moves["7,4"].Unsafe)
	})

	t.Run("Opponent piece has no moves", func(t *testing.T) {
		assert.Empty(t, MovesFrom(NewState(), pos(0, 0)))
	})
}
