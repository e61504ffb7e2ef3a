package board

import "golang.org/x/exp/slices"

// Leaper offsets as (rank, file) deltas.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Slider directions. Queens use both sets.
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// PseudoLegalMoves returns every destination p can reach by its movement
// pattern on b, without checking whether the move exposes the owner's king.
// Off-board squares are never produced or queried.
func PseudoLegalMoves(p Piece, b *Board) []Square {
	switch p.Kind {
	case Pawn0:
		return pawnMoves(p, b, 1, 1, Size-1)
	case Pawn1:
		return pawnMoves(p, b, -1, Size-2, 0)
	case Knight:
		return leaperMoves(p, b, knightOffsets[:])
	case King:
		return leaperMoves(p, b, kingOffsets[:])
	case Bishop:
		return sliderMoves(p, b, diagonalDirs[:], nil)
	case Rook:
		return sliderMoves(p, b, orthogonalDirs[:], nil)
	case Queen:
		return sliderMoves(p, b, diagonalDirs[:], orthogonalDirs[:])
	}
	return nil
}

func pawnMoves(p Piece, b *Board, dir, startRank, lastRank int) []Square {
	if p.Pos.Rank == lastRank {
		return nil
	}
	var moves []Square
	one := p.Pos.Offset(dir, 0)
	if one.Valid() && !b.IsOccupied(one) {
		moves = append(moves, one)
		two := one.Offset(dir, 0)
		if p.Pos.Rank == startRank && two.Valid() && !b.IsOccupied(two) {
			moves = append(moves, two)
		}
	}
	enemy := p.Owner.Other()
	for _, df := range [2]int{-1, 1} {
		t := p.Pos.Offset(dir, df)
		if t.Valid() && b.IsOccupiedBy(t, enemy) {
			moves = append(moves, t)
		}
	}
	return moves
}

func leaperMoves(p Piece, b *Board, offsets [][2]int) []Square {
	moves := make([]Square, 0, len(offsets))
	for _, off := range offsets {
		t := p.Pos.Offset(off[0], off[1])
		if t.Valid() && !b.IsOccupiedBy(t, p.Owner) {
			moves = append(moves, t)
		}
	}
	return moves
}

func sliderMoves(p Piece, b *Board, dirs, more [][2]int) []Square {
	var moves []Square
	walk := func(dr, df int) {
		for t := p.Pos.Offset(dr, df); t.Valid(); t = t.Offset(dr, df) {
			if !b.IsOccupied(t) {
				moves = append(moves, t)
				continue
			}
			if !b.IsOccupiedBy(t, p.Owner) {
				moves = append(moves, t)
			}
			return
		}
	}
	for _, d := range dirs {
		walk(d[0], d[1])
	}
	for _, d := range more {
		walk(d[0], d[1])
	}
	return moves
}

// canReach reports whether target is among p's pseudo-legal destinations.
// Leapers and sliders are tested directly instead of generating the full list.
func canReach(p Piece, target Square, b *Board) bool {
	dr, df := target.Rank-p.Pos.Rank, target.File-p.Pos.File
	if dr == 0 && df == 0 {
		return false
	}
	switch p.Kind {
	case Knight:
		if abs(dr)*abs(df) != 2 {
			return false
		}
		return !b.IsOccupiedBy(target, p.Owner)
	case King:
		if abs(dr) > 1 || abs(df) > 1 {
			return false
		}
		return !b.IsOccupiedBy(target, p.Owner)
	case Bishop, Rook, Queen:
		orthogonal := dr == 0 || df == 0
		diagonal := abs(dr) == abs(df)
		switch {
		case orthogonal && p.Kind == Bishop, diagonal && p.Kind == Rook, !orthogonal && !diagonal:
			return false
		}
		sr, sf := sign(dr), sign(df)
		for s := p.Pos.Offset(sr, sf); s != target; s = s.Offset(sr, sf) {
			if b.IsOccupied(s) {
				return false
			}
		}
		return !b.IsOccupiedBy(target, p.Owner)
	}
	return slices.Contains(PseudoLegalMoves(p, b), target)
}

// Attacks reports whether any piece of player by can move onto sq.
func (b *Board) Attacks(by Player, sq Square) bool {
	for _, s := range b.roster[by] {
		if canReach(b.at(s), sq, b) {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
