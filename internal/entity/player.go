package entity

import (
	"errors"
	"fmt"
)

// Player identifies a side of the board. The zero value marks an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerFirst
	PlayerSecond
)

const (
	MarkO     = "O"
	MarkX     = "X"
	EmptyCell = ""
)

var ErrUnknownMark = errors.New("unknown player mark")

func (that Player) Valid() bool {
	return that == PlayerFirst || that == PlayerSecond
}

// Other - returns the opponent of the player. NoPlayer has no opponent.
func (that Player) Other() Player {
	switch that {
	case PlayerFirst:
		return PlayerSecond
	case PlayerSecond:
		return PlayerFirst
	default:
		return NoPlayer
	}
}

// Mark - is the symbol drawn on the board for the player.
func (that Player) Mark() string {
	switch that {
	case PlayerFirst:
		return MarkO
	case PlayerSecond:
		return MarkX
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	if !that.Valid() {
		return "none"
	}
	return that.Mark()
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.Mark()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := PlayerFromMark(string(text))
	if err != nil {
		return err
	}

	*that = player
	return nil
}

func PlayerFromMark(mark string) (Player, error) {
	switch mark {
	case MarkO:
		return PlayerFirst, nil
	case MarkX:
		return PlayerSecond, nil
	case EmptyCell:
		return NoPlayer, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}
