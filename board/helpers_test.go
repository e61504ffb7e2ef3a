package board_test

import (
	"testing"

	"github.com/turnip314/chess-alts/board"
)

func sq(t *testing.T, alg string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func mustFEN(t *testing.T, fen string, opts ...board.Option) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen, opts...)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// checkInvariants verifies roster/grid agreement and the one-king rule.
func checkInvariants(t *testing.T, b *board.Board) {
	t.Helper()
	seen := make(map[board.Square]bool)
	for _, p := range []board.Player{board.Player0, board.Player1} {
		kings := 0
		for _, pc := range b.PiecesOf(p) {
			if pc.Owner != p {
				t.Fatalf("%s: roster of %d holds piece owned by %d", b.FEN(), p, pc.Owner)
			}
			if !pc.Pos.Valid() {
				t.Fatalf("%s: roster piece off board: %+v", b.FEN(), pc)
			}
			if seen[pc.Pos] {
				t.Fatalf("%s: duplicate roster square %s", b.FEN(), pc.Pos)
			}
			seen[pc.Pos] = true
			if got := b.At(pc.Pos); got != pc {
				t.Fatalf("%s: grid %+v disagrees with roster %+v", b.FEN(), got, pc)
			}
			if pc.Kind == board.King {
				kings++
				if b.KingSquare(p) != pc.Pos {
					t.Fatalf("%s: cached king %s, roster king %s", b.FEN(), b.KingSquare(p), pc.Pos)
				}
			}
		}
		if kings != 1 {
			t.Fatalf("%s: player %d has %d kings", b.FEN(), p, kings)
		}
	}
	occupied := 0
	for r := 0; r < board.Size; r++ {
		for f := 0; f < board.Size; f++ {
			s := board.Sq(r, f)
			if b.IsOccupied(s) {
				occupied++
				if b.At(s).Pos != s {
					t.Fatalf("%s: piece on %s thinks it is on %s", b.FEN(), s, b.At(s).Pos)
				}
			}
		}
	}
	if occupied != len(seen) || occupied != b.PieceCount() {
		t.Fatalf("%s: grid has %d pieces, rosters %d", b.FEN(), occupied, len(seen))
	}
}
