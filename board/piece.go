package board

import "math"

// Kind is the closed set of piece kinds. Pawns are split by owner because
// their direction of travel depends on it.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn0
	Pawn1
	Knight
	Bishop
	Rook
	Queen
	King
)

// Value returns the material value of the kind. The king carries +Inf as a
// sentinel and is never summed into material.
func (k Kind) Value() float64 {
	switch k {
	case Pawn0, Pawn1:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return math.Inf(1)
	}
	return 0
}

// IsPawn reports whether k is either pawn variant.
func (k Kind) IsPawn() bool { return k == Pawn0 || k == Pawn1 }

// PawnFor returns the pawn kind that belongs to p.
func PawnFor(p Player) Kind {
	if p == Player1 {
		return Pawn1
	}
	return Pawn0
}

func (k Kind) letter() byte {
	switch k {
	case Pawn0, Pawn1:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

func (k Kind) String() string {
	switch k {
	case Pawn0:
		return "Pawn0"
	case Pawn1:
		return "Pawn1"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}

// Piece is a piece standing on a square. It has no identity beyond its
// position; the zero value is an empty slot.
type Piece struct {
	Kind  Kind
	Owner Player
	Pos   Square
}

// Empty reports whether the slot holds no piece.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// Symbol returns the FEN letter: uppercase for Player0, lowercase for Player1.
func (p Piece) Symbol() byte {
	c := p.Kind.letter()
	if p.Owner == Player1 {
		c += 'a' - 'A'
	}
	return c
}

// pieceFromSymbol is the inverse of Symbol.
func pieceFromSymbol(c byte) (Kind, Player, bool) {
	owner := Player0
	if c >= 'a' && c <= 'z' {
		owner = Player1
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return PawnFor(owner), owner, true
	case 'N':
		return Knight, owner, true
	case 'B':
		return Bishop, owner, true
	case 'R':
		return Rook, owner, true
	case 'Q':
		return Queen, owner, true
	case 'K':
		return King, owner, true
	}
	return NoKind, owner, false
}
