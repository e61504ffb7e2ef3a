package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN of the standard starting position under these
// rules: castling and en passant fields are always "-".
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN serializes the position rank 7 down to rank 0. Two boards with the same
// placement, side to move and clocks always produce the same string, which
// makes it usable as a deduplication key.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.Grow(64)
	for r := Size - 1; r >= 0; r-- {
		empty := 0
		for f := 0; f < Size; f++ {
			p := b.grid[r][f]
			if p.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.turn.String())
	sb.WriteString(" - - ")
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// ParseFEN builds a Board from a FEN string. Castling and en passant fields
// are accepted but ignored; missing clock fields default to "0 1". Options
// are applied after parsing.
func ParseFEN(fen string, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: not enough fields in %q", ErrInvalidFEN, fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	b := newEmpty()
	for i, rankStr := range ranks {
		rank := Size - 1 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, owner, ok := pieceFromSymbol(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece %q", ErrInvalidFEN, ch)
			}
			if file >= Size {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			if err := b.place(kind, owner, Sq(rank, file)); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
			}
			file++
		}
		if file != Size {
			return nil, fmt.Errorf("%w: rank %d describes %d squares", ErrInvalidFEN, rank+1, file)
		}
	}
	if err := b.finish(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	switch fields[1] {
	case "w":
		b.turn = Player0
	case "b":
		b.turn = Player1
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		b.halfmove = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		b.fullmove = n
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MustParseFEN is like ParseFEN but panics on error.
func MustParseFEN(fen string, opts ...Option) *Board {
	b, err := ParseFEN(fen, opts...)
	if err != nil {
		panic(err)
	}
	return b
}
