package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-tally/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tally/internal/tictactoe"
)

func TestTracker_RecordWin(t *testing.T) {
	t.Run("Second player wins once", func(t *testing.T) {
		// Given: a new tracker
		tracker := NewTracker()

		// When: the second player wins a round
		tracker.RecordWin(entity.PlayerSecond)

		// Then: the tally is 0 to 1
		assert.Equal(t, entity.Tally{First: 0, Second: 1}, tracker.CurrentTally())
	})

	t.Run("Unknown players are ignored", func(t *testing.T) {
		tracker := NewTracker()

		tracker.RecordWin(entity.NoPlayer)
		tracker.RecordWin(entity.Player(9))

		assert.Equal(t, entity.Tally{}, tracker.CurrentTally())
	})

	t.Run("Tally is returned by value", func(t *testing.T) {
		tracker := NewTracker()
		tracker.RecordWin(entity.PlayerFirst)

		tally := tracker.CurrentTally()
		tally.First = 100

		assert.Equal(t, 1, tracker.CurrentTally().First)
	})
}

func TestTracker_RestoreAndReset(t *testing.T) {
	// Given: a tracker restored from a stored tally
	tracker := NewTracker()
	tracker.Restore(entity.Tally{First: 3, Second: -2})
	assert.Equal(t, entity.Tally{First: 3, Second: 0}, tracker.CurrentTally())

	// When: a win is recorded and the match is reset
	tracker.RecordWin(entity.PlayerFirst)
	assert.Equal(t, 4, tracker.CurrentTally().First)
	tracker.Reset()

	// Then: both counters are zero
	assert.Equal(t, entity.Tally{}, tracker.CurrentTally())
}

func TestTracker_FollowsRounds(t *testing.T) {
	// Given: a tracker subscribed to a round
	tracker := NewTracker()
	round := tictactoe.NewRound()
	round.OnWin(tracker.RecordWin)

	// When: O wins, then a round is drawn, then X wins
	for _, cell := range []int{0, 4, 1, 5, 2} {
		_ = round.ApplyMove(cell)
	}
	round.Reset()
	for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		_ = round.ApplyMove(cell)
	}
	round.Reset()
	for _, cell := range []int{0, 3, 1, 4, 8, 5} {
		_ = round.ApplyMove(cell)
	}

	// Then: each decisive round is counted exactly once
	assert.Equal(t, entity.Tally{First: 1, Second: 1}, tracker.CurrentTally())
}
