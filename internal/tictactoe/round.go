package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tally/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tally/internal/entity"
)

// minMovesToWin - no line can be completed before the fifth move.
const minMovesToWin = 5

// WinListener - receives the winner of a round.
type WinListener func(winner entity.Player)

// Round - owns the state of a single round. It is not safe for concurrent use.
type Round struct {
	moves  []entity.Move
	board  [entity.CellCount]entity.Player
	turn   entity.Player
	status entity.Status

	notified  bool
	listeners []WinListener
}

func NewRound() *Round {
	return &Round{
		moves:  make([]entity.Move, 0, entity.CellCount),
		turn:   entity.PlayerFirst,
		status: entity.InProgress(),
	}
}

// Replay - rebuilds a round from a stored move list.
func Replay(moves []entity.Move) (*Round, error) {
	round := NewRound()

	for i, move := range moves {
		if move.Player != round.turn {
			return nil, fmt.Errorf("%w: move %d made by %s out of turn", apperror.ErrCorruptedRound, i, move.Player)
		}

		if err := round.ApplyMove(move.Cell); err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", apperror.ErrCorruptedRound, i, err)
		}
	}

	return round, nil
}

// OnWin - subscribes the listener to the decisive outcome of every round played on this instance.
func (that *Round) OnWin(listener WinListener) {
	that.listeners = append(that.listeners, listener)
}

// ApplyMove - places the current player's mark on the cell. A rejected move leaves the round untouched.
func (that *Round) ApplyMove(cell int) error {
	if that.status.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrRoundNotInProgress, that.status)
	}

	if cell < 0 || cell >= entity.CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board[cell] != entity.NoPlayer {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.board[cell] = that.turn
	that.moves = append(that.moves, entity.Move{Cell: cell, Player: that.turn})
	that.turn = that.turn.Other()

	that.evaluate()

	return nil
}

// Reset - starts a new round. Subscriptions are kept.
func (that *Round) Reset() {
	that.moves = that.moves[:0]
	that.board = [entity.CellCount]entity.Player{}
	that.turn = entity.PlayerFirst
	that.status = entity.InProgress()
	that.notified = false
}

func (that *Round) Status() entity.Status {
	return that.status
}

func (that *Round) CurrentPlayer() entity.Player {
	return that.turn
}

// Moves - returns the moves in play order.
func (that *Round) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// Board - returns the owner of every cell, NoPlayer for empty cells.
func (that *Round) Board() [entity.CellCount]entity.Player {
	return that.board
}

func (that *Round) evaluate() {
	that.status = determineStatus(that.board, len(that.moves))

	if that.status.IsWon() && !that.notified {
		that.notified = true
		for _, listener := range that.listeners {
			listener(that.status.Winner)
		}
	}
}

func determineStatus(board [entity.CellCount]entity.Player, moveCount int) entity.Status {
	if moveCount < minMovesToWin {
		return entity.InProgress()
	}

	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.NoPlayer && a == b && b == c {
			return entity.Won(a)
		}
	}

	// the round continues until all the cells are taken
	if moveCount == entity.CellCount {
		return entity.Draw()
	}

	return entity.InProgress()
}
