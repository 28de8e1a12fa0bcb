package entity

import (
	"errors"
	"fmt"
)

const (
	BoardSide = 3
	CellCount = BoardSide * BoardSide
)

var ErrUnknownState = errors.New("unknown round state")

// WinCombos - rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Move struct {
	Cell   int    `json:"cell"`
	Player Player `json:"player"`
}

// Row and Col place the move on the 3x3 grid.
func (that Move) Row() int { return that.Cell / BoardSide }
func (that Move) Col() int { return that.Cell % BoardSide }

type State uint8

const (
	StateInProgress State = iota
	StateWon
	StateDraw
)

const (
	stateInProgressText = "in_progress"
	stateWonText        = "won"
	stateDrawText       = "draw"
)

func (that State) String() string {
	switch that {
	case StateInProgress:
		return stateInProgressText
	case StateWon:
		return stateWonText
	case StateDraw:
		return stateDrawText
	default:
		return fmt.Sprintf("state(%d)", uint8(that))
	}
}

func (that State) MarshalText() ([]byte, error) {
	switch that {
	case StateInProgress, StateWon, StateDraw:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(that))
	}
}

func (that *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case stateInProgressText:
		*that = StateInProgress
	case stateWonText:
		*that = StateWon
	case stateDrawText:
		*that = StateDraw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, text)
	}
	return nil
}

// Status - is the derived status of a round. Winner is set only for StateWon.
type Status struct {
	State  State  `json:"state"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Status { return Status{State: StateInProgress} }
func Draw() Status       { return Status{State: StateDraw} }
func Won(player Player) Status {
	return Status{State: StateWon, Winner: player}
}

func (that Status) IsTerminal() bool {
	return that.State == StateWon || that.State == StateDraw
}

func (that Status) IsWon() bool {
	return that.State == StateWon
}

func (that Status) String() string {
	if that.IsWon() {
		return fmt.Sprintf("%s(%s)", that.State, that.Winner)
	}
	return that.State.String()
}

// Tally - counts rounds won by each player over a match.
type Tally struct {
	First  int `json:"o"`
	Second int `json:"x"`
}
