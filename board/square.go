package board

import "fmt"

// Size is the number of ranks and files on the board.
const Size = 8

// Player identifies a side. Player0 moves first in the standard layout and is
// written "w" in FEN; Player1 is "b".
type Player uint8

const (
	Player0 Player = 0
	Player1 Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player { return 1 - p }

func (p Player) String() string {
	if p == Player1 {
		return "b"
	}
	return "w"
}

// Square is a (rank, file) pair. File 0 is the a-file, rank 0 the first rank.
type Square struct {
	Rank int
	File int
}

// Sq is shorthand for Square{rank, file}.
func Sq(rank, file int) Square { return Square{Rank: rank, File: file} }

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < Size && s.File >= 0 && s.File < Size
}

// Offset returns the square shifted by the given rank and file deltas. The
// result may be off the board; callers check Valid before using it.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File)) + string(rune('1'+s.Rank))
}

// ParseSquare converts algebraic notation like "e2" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return Square{}, fmt.Errorf("invalid square %q: %w", alg, ErrSquareOutOfRange)
	}
	file := int(alg[0]) - 'a'
	rank := int(alg[1]) - '1'
	s := Sq(rank, file)
	if !s.Valid() {
		return Square{}, fmt.Errorf("invalid square %q: %w", alg, ErrSquareOutOfRange)
	}
	return s, nil
}

// Move is a source/destination pair. Promotion is implied: a pawn reaching
// the far rank always becomes a queen.
type Move struct {
	From Square
	To   Square
}

// String renders the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }

// ParseMove parses coordinate notation ("e2e4"). A trailing promotion letter
// is accepted only if it is 'q'.
func ParseMove(s string) (Move, error) {
	if len(s) == 5 && (s[4] == 'q' || s[4] == 'Q') {
		s = s[:4]
	}
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// mustValid panics when s is off the board. Reaching it means generated
// coordinates escaped bounds checking.
func mustValid(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("board: square %d,%d out of range", s.Rank, s.File))
	}
}
