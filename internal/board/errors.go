package board

import "errors"

// Sentinel errors for the board store.
var (
	ErrUnknownColumn = errors.New("board: unknown column")
	ErrDuplicateCard = errors.New("board: duplicate card id")
)
