package entity

import (
	"testing"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	pos := NewPosition(2, 1)

	assert.Equal(t, "2,1", pos.Key())
	assert.Equal(t, "(2,1)", pos.String())
	assert.Equal(t, NewPosition(1, 2), pos.Add(Direction{Row: -1, Col: 1}))
	assert.True(t, pos.In(3, 3))
	assert.False(t, pos.In(2, 3))
	assert.False(t, NewPosition(-1, 0).In(3, 3))

	assert.Len(t, Orthogonal, 4)
	assert.Len(t, Diagonal, 4)
	assert.Len(t, AllAround, 8)
}

func TestDifficulty_IsValid(t *testing.T) {
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		assert.True(t, difficulty.IsValid(), difficulty)
	}

	assert.False(t, Difficulty("").IsValid())
	assert.False(t, Difficulty("extreme").IsValid())
}

func TestActionEnvelope(t *testing.T) {
	type place struct {
		Row int `json:"row"`
	}

	t.Run("Type and payload are read", func(t *testing.T) {
		raw := []byte(`{"type":"place","row":2}`)

		actionType, err := ActionType(raw)
		require.NoError(t, err)
		assert.Equal(t, "place", actionType)

		act, err := DecodeAs[place](raw)
		require.NoError(t, err)
		assert.Equal(t, place{Row: 2}, act)
	})

	t.Run("Broken JSON is malformed", func(t *testing.T) {
		_, err := ActionType([]byte(`[`))
		require.ErrorIs(t, err, apperror.ErrMalformedAction)

		_, err = DecodeAs[place]([]byte(`{"row":"two"}`))
		require.ErrorIs(t, err, apperror.ErrMalformedAction)
	})

	t.Run("Unknown type", func(t *testing.T) {
		err := UnknownActionType("jump")

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
		assert.Contains(t, err.Error(), `"jump"`)
	})
}
