package apperror

import "errors"

var (
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrRoundNotInProgress = errors.New("round is not in progress")
	ErrCorruptedRound     = errors.New("stored round is not a legal move sequence")
	ErrSessionNotFound    = errors.New("session not found")
)
