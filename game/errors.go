package game

import "errors"

var (
	ErrInvalidPlayer = errors.New("player must be 0 or 1")
	ErrInvalidColumn = errors.New("column must be between 0 and 2")
	ErrInvalidDie    = errors.New("die must be between 1 and 6")
	ErrColumnFull    = errors.New("column has no empty row")
)
