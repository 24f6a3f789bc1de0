package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownAction     = errors.New("unknown action")
	ErrOutOfBounds       = errors.New("position is out of the board")
	ErrIllegalMove       = errors.New("invalid move")
	ErrUnknownGame       = errors.New("unknown game")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrSessionNotFound   = errors.New("session not found")
	ErrMalformedAction   = errors.New("malformed action")
)
