package board

import "errors"

var (
	ErrSquareOutOfRange = errors.New("square out of range")
	ErrSquareOccupied   = errors.New("square already occupied")
	ErrKingCount        = errors.New("each player needs exactly one king")
	ErrPawnOwner        = errors.New("pawn kind does not match its owner")
	ErrUnknownTag       = errors.New("unknown piece kind")
	ErrInvalidFEN       = errors.New("invalid FEN")
)
