// Package board holds the chess position model: an immutable snapshot of the
// grid, per-player rosters, side to move and clocks, together with pseudo-legal
// move generation and the legality, checkmate and stalemate rules layered on
// top of it. Castling and en passant are not part of these rules.
package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DefaultStalemateThreshold is the halfmove clock value at which a position
// stops being legal unless the halfmove check is explicitly ignored.
const DefaultStalemateThreshold = 20

// Board is an immutable position. Every transition returns a fresh Board and
// leaves the receiver untouched, so a Board may be shared freely between
// goroutines.
type Board struct {
	grid      [Size][Size]Piece
	roster    [2][]Square // piece squares per player, in insertion order
	kings     [2]Square
	turn      Player
	halfmove  int
	fullmove  int
	threshold int
}

// Option adjusts a Board while it is being constructed.
type Option func(*Board)

// WithTurn sets the side to move.
func WithTurn(p Player) Option {
	return func(b *Board) { b.turn = p }
}

// WithClocks sets the halfmove clock and the fullmove number.
func WithClocks(halfmove, fullmove int) Option {
	return func(b *Board) {
		b.halfmove = halfmove
		b.fullmove = fullmove
	}
}

// WithStalemateThreshold sets the halfmove clock limit used by IsLegal.
func WithStalemateThreshold(n int) Option {
	return func(b *Board) { b.threshold = n }
}

func newEmpty() *Board {
	return &Board{
		fullmove:  1,
		threshold: DefaultStalemateThreshold,
		kings:     [2]Square{{-1, -1}, {-1, -1}},
	}
}

// New returns the standard starting position.
func New(opts ...Option) *Board {
	b, err := NewBoard(nil, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoard builds a position from a placement specification. A nil placement
// yields the standard starting layout.
func NewBoard(pl Placement, opts ...Option) (*Board, error) {
	if pl == nil {
		pl = DefaultPlacement()
	}
	b := newEmpty()
	for _, tag := range pl.tags() {
		g := pl[tag]
		for _, s := range g.Spots {
			if err := b.place(g.Kind, s.Owner, Sq(s.Rank, s.File)); err != nil {
				return nil, fmt.Errorf("placement %q: %w", tag, err)
			}
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Board) place(k Kind, owner Player, sq Square) error {
	switch {
	case k == NoKind || k > King:
		return fmt.Errorf("kind %d: %w", k, ErrUnknownTag)
	case owner > Player1:
		return fmt.Errorf("owner %d: %w", owner, ErrUnknownTag)
	case !sq.Valid():
		return fmt.Errorf("%d,%d: %w", sq.Rank, sq.File, ErrSquareOutOfRange)
	case b.IsOccupied(sq):
		return fmt.Errorf("%s: %w", sq, ErrSquareOccupied)
	case k.IsPawn() && k != PawnFor(owner):
		return fmt.Errorf("%s owned by %d on %s: %w", k, owner, sq, ErrPawnOwner)
	}
	if k == King {
		if b.kings[owner].Valid() {
			return fmt.Errorf("second king for player %d on %s: %w", owner, sq, ErrKingCount)
		}
		b.kings[owner] = sq
	}
	b.grid[sq.Rank][sq.File] = Piece{Kind: k, Owner: owner, Pos: sq}
	b.roster[owner] = append(b.roster[owner], sq)
	return nil
}

func (b *Board) finish() error {
	for p := Player0; p <= Player1; p++ {
		if !b.kings[p].Valid() {
			return fmt.Errorf("no king for player %d: %w", p, ErrKingCount)
		}
	}
	return nil
}

func (b *Board) at(sq Square) Piece { return b.grid[sq.Rank][sq.File] }

func (b *Board) clone() *Board {
	nb := *b
	nb.roster[0] = slices.Clone(b.roster[0])
	nb.roster[1] = slices.Clone(b.roster[1])
	return &nb
}

// At returns the piece on sq; the zero Piece when the square is empty.
func (b *Board) At(sq Square) Piece {
	mustValid(sq)
	return b.at(sq)
}

// IsOccupied reports whether any piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	mustValid(sq)
	return !b.at(sq).Empty()
}

// IsOccupiedBy reports whether a piece of player p stands on sq.
func (b *Board) IsOccupiedBy(sq Square, p Player) bool {
	mustValid(sq)
	pc := b.at(sq)
	return !pc.Empty() && pc.Owner == p
}

// PiecesOf returns p's pieces in roster order.
func (b *Board) PiecesOf(p Player) []Piece {
	pieces := make([]Piece, len(b.roster[p]))
	for i, sq := range b.roster[p] {
		pieces[i] = b.at(sq)
	}
	return pieces
}

// PieceCount is the total number of pieces on the board, kings included.
func (b *Board) PieceCount() int { return len(b.roster[0]) + len(b.roster[1]) }

// KingSquare returns where p's king stands.
func (b *Board) KingSquare(p Player) Square { return b.kings[p] }

func (b *Board) Turn() Player            { return b.turn }
func (b *Board) HalfmoveClock() int      { return b.halfmove }
func (b *Board) FullmoveNumber() int     { return b.fullmove }
func (b *Board) StalemateThreshold() int { return b.threshold }

// Move plays src to dst and returns the resulting position. It does not check
// legality; callers filter the result with IsLegal. A pawn reaching the far
// rank is replaced by a queen of the same owner.
func (b *Board) Move(src, dst Square) *Board {
	mustValid(src)
	mustValid(dst)
	nb := b.clone()
	if src == dst {
		return nb
	}

	piece := nb.at(src)
	if piece.Empty() {
		panic(fmt.Sprintf("board: no piece on %s", src))
	}
	owner := piece.Owner

	if captured := nb.at(dst); !captured.Empty() {
		if captured.Kind == King {
			panic(fmt.Sprintf("board: move %s%s captures a king", src, dst))
		}
		nb.dropFromRoster(captured.Owner, dst)
		nb.halfmove = 0
	} else {
		nb.halfmove++
	}
	if owner == Player1 {
		nb.fullmove++
	}

	if (piece.Kind == Pawn0 && dst.Rank == Size-1) || (piece.Kind == Pawn1 && dst.Rank == 0) {
		nb.dropFromRoster(owner, src)
		nb.grid[dst.Rank][dst.File] = Piece{Kind: Queen, Owner: owner, Pos: dst}
		nb.roster[owner] = append(nb.roster[owner], dst)
		nb.halfmove = 0
	} else {
		piece.Pos = dst
		nb.grid[dst.Rank][dst.File] = piece
		nb.roster[owner][slices.Index(nb.roster[owner], src)] = dst
		if piece.Kind == King {
			nb.kings[owner] = dst
		}
	}
	nb.grid[src.Rank][src.File] = Piece{}
	nb.turn = nb.turn.Other()
	return nb
}

func (b *Board) dropFromRoster(p Player, sq Square) {
	i := slices.Index(b.roster[p], sq)
	if i < 0 {
		panic(fmt.Sprintf("board: roster of player %d has no piece on %s", p, sq))
	}
	b.roster[p] = slices.Delete(b.roster[p], i, i+1)
}

// IsLegal reports whether the position could have been reached by a legal
// move: the side to move must not be able to capture the king of the side
// that just moved, and unless ignoreHalfmove is set the halfmove clock must
// be below the stalemate threshold.
func (b *Board) IsLegal(ignoreHalfmove bool) bool {
	if b.Attacks(b.turn, b.kings[b.turn.Other()]) {
		return false
	}
	return ignoreHalfmove || b.halfmove < b.threshold
}

// InCheck reports whether the side to move has its king capturable by the
// opponent.
func (b *Board) InCheck() bool {
	return b.Attacks(b.turn.Other(), b.kings[b.turn])
}

// Successor is a legal move together with the position it produces.
type Successor struct {
	Move  Move
	Board *Board
}

// Successors returns every legal move for the side to move, in roster order
// and then generation order. Moves onto the enemy king are never generated;
// they only exist in positions that are already illegal.
func (b *Board) Successors(ignoreHalfmove bool) []Successor {
	var out []Successor
	b.eachLegal(ignoreHalfmove, func(s Successor) bool {
		out = append(out, s)
		return true
	})
	return out
}

// LegalMoves returns the moves of Successors without the resulting boards.
func (b *Board) LegalMoves(ignoreHalfmove bool) []Move {
	var out []Move
	b.eachLegal(ignoreHalfmove, func(s Successor) bool {
		out = append(out, s.Move)
		return true
	})
	return out
}

// HasLegalMove reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMove(ignoreHalfmove bool) bool {
	found := false
	b.eachLegal(ignoreHalfmove, func(Successor) bool {
		found = true
		return false
	})
	return found
}

func (b *Board) eachLegal(ignoreHalfmove bool, fn func(Successor) bool) {
	enemyKing := b.kings[b.turn.Other()]
	for _, sq := range b.roster[b.turn] {
		p := b.at(sq)
		for _, dst := range PseudoLegalMoves(p, b) {
			if dst == enemyKing {
				continue
			}
			nb := b.Move(sq, dst)
			if !nb.IsLegal(ignoreHalfmove) {
				continue
			}
			if !fn(Successor{Move: Move{From: sq, To: dst}, Board: nb}) {
				return
			}
		}
	}
}

// IsCheckmate reports whether the side to move is in check and has no move
// that leads to a legal position. The halfmove clock is ignored here.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMove(true)
}

// IsStalemate reports whether the side to move is not in check yet has no
// legal move. The halfmove threshold is respected, so an exhausted clock
// also counts as stalemate unless a capture or promotion is still available.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMove(false)
}

// IsExhausted reports whether the halfmove clock has reached the threshold.
func (b *Board) IsExhausted() bool { return b.halfmove >= b.threshold }

// Equal reports whether two boards hold the same position, rosters and
// clocks.
func (b *Board) Equal(o *Board) bool {
	if b.grid != o.grid || b.kings != o.kings || b.turn != o.turn ||
		b.halfmove != o.halfmove || b.fullmove != o.fullmove || b.threshold != o.threshold {
		return false
	}
	return slices.Equal(b.roster[0], o.roster[0]) && slices.Equal(b.roster[1], o.roster[1])
}
