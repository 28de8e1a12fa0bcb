package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Other(t *testing.T) {
	t.Run("Players alternate", func(t *testing.T) {
		assert.Equal(t, PlayerSecond, PlayerFirst.Other())
		assert.Equal(t, PlayerFirst, PlayerSecond.Other())
	})

	t.Run("NoPlayer has no opponent", func(t *testing.T) {
		assert.Equal(t, NoPlayer, NoPlayer.Other())
	})
}

func TestPlayer_Mark(t *testing.T) {
	assert.Equal(t, MarkO, PlayerFirst.Mark())
	assert.Equal(t, MarkX, PlayerSecond.Mark())
	assert.Equal(t, EmptyCell, NoPlayer.Mark())
	assert.Equal(t, "none", Player(7).String())
}

func TestPlayerFromMark(t *testing.T) {
	t.Run("Known marks", func(t *testing.T) {
		player, err := PlayerFromMark(MarkX)
		require.NoError(t, err)
		assert.Equal(t, PlayerSecond, player)
	})

	t.Run("Unknown mark", func(t *testing.T) {
		// When: parsing a mark that is not on the board
		_, err := PlayerFromMark("Z")

		// Then: ErrUnknownMark should be returned
		require.ErrorIs(t, err, ErrUnknownMark)
	})
}

func TestMove_JSON(t *testing.T) {
	// Given: a move made by the second player
	move := Move{Cell: 5, Player: PlayerSecond}

	// When: encoding it
	data, err := json.Marshal(move)
	require.NoError(t, err)

	// Then: the player is written as its mark
	assert.JSONEq(t, `{"cell":5,"player":"X"}`, string(data))
	assert.Equal(t, 1, move.Row())
	assert.Equal(t, 2, move.Col())
}

func TestStatus(t *testing.T) {
	t.Run("Terminal states", func(t *testing.T) {
		assert.False(t, InProgress().IsTerminal())
		assert.True(t, Draw().IsTerminal())
		assert.True(t, Won(PlayerFirst).IsTerminal())
		assert.Equal(t, "won(O)", Won(PlayerFirst).String())
	})

	t.Run("Encodes state names", func(t *testing.T) {
		data, err := json.Marshal(Won(PlayerSecond))
		require.NoError(t, err)
		assert.JSONEq(t, `{"state":"won","winner":"X"}`, string(data))

		var status Status
		require.NoError(t, json.Unmarshal([]byte(`{"state":"draw"}`), &status))
		assert.Equal(t, Draw(), status)
	})

	t.Run("Rejects unknown state", func(t *testing.T) {
		var state State
		err := state.UnmarshalText([]byte("paused"))
		require.ErrorIs(t, err, ErrUnknownState)
	})
}
