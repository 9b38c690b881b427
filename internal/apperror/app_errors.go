package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrUnknownCommand = errors.New("unknown command")
)
