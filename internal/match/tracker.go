package match

import "github.com/rocketscienceinc/tictactoe-tally/internal/entity"

// Tracker - counts rounds won by each player. It is not safe for concurrent use.
type Tracker struct {
	tally entity.Tally
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordWin - credits the player with one round. Anything but the two players is ignored.
func (that *Tracker) RecordWin(player entity.Player) {
	switch player {
	case entity.PlayerFirst:
		that.tally.First++
	case entity.PlayerSecond:
		that.tally.Second++
	}
}

func (that *Tracker) CurrentTally() entity.Tally {
	return that.tally
}

// Restore - continues counting from a stored tally. Negative counters are clamped to zero.
func (that *Tracker) Restore(tally entity.Tally) {
	that.tally = entity.Tally{
		First:  max(tally.First, 0),
		Second: max(tally.Second, 0),
	}
}

func (that *Tracker) Reset() {
	that.tally = entity.Tally{}
}
