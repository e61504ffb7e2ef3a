package board_test

import (
	"sort"
	"testing"

	"github.com/turnip314/chess-alts/board"
)

func destinations(t *testing.T, b *board.Board, from string) []string {
	t.Helper()
	pc := b.At(sq(t, from))
	if pc.Empty() {
		t.Fatalf("no piece on %s in %s", from, b.FEN())
	}
	var out []string
	for _, s := range board.PseudoLegalMoves(pc, b) {
		if !s.Valid() {
			t.Fatalf("off-board destination %+v from %s", s, from)
		}
		out = append(out, s.String())
	}
	sort.Strings(out)
	return out
}

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight corner", "7k/8/8/8/8/8/8/N6K w - - 0 1", "a1", []string{"b3", "c2"}},
		{"knight blocked by own piece", "7k/8/8/8/8/1P6/8/N6K w - - 0 1", "a1", []string{"c2"}},
		{"knight captures enemy", "7k/8/8/8/8/1p6/8/N6K w - - 0 1", "a1", []string{"b3", "c2"}},
		{"rook reaches both edges", "7k/8/8/8/8/8/8/R6K w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1", "e1", "f1", "g1"}},
		{"rook stops on capture", "7k/8/8/8/r7/8/8/R6K w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "b1", "c1", "d1", "e1", "f1", "g1"}},
		{"bishop rays", "8/8/8/8/3B4/8/8/K6k w - - 0 1", "d4",
			[]string{"a7", "b2", "b6", "c3", "c5", "e3", "e5", "f2", "f6", "g1", "g7", "h8"}},
		{"king corner", "7k/8/8/8/8/8/8/K7 w - - 0 1", "a1", []string{"a2", "b1", "b2"}},
		{"pawn0 start with captures", "4k3/8/8/8/8/2p1p3/3P4/4K3 w - - 0 1", "d2", []string{"c3", "d3", "d4", "e3"}},
		{"pawn0 blocked", "4k3/8/8/8/8/3n4/3P4/4K3 w - - 0 1", "d2", nil},
		{"pawn0 two-step blocked", "4k3/8/8/8/3n4/8/3P4/4K3 w - - 0 1", "d2", []string{"d3"}},
		{"pawn0 ignores friendly diagonal", "4k3/8/8/8/8/2N5/3P4/4K3 w - - 0 1", "d2", []string{"d3", "d4"}},
		{"pawn0 off start rank", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "d3", []string{"d4"}},
		{"pawn1 start", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", []string{"d5", "d6"}},
		{"pawn1 captures", "4k3/8/8/8/8/8/1p6/B3K3 b - - 0 1", "b2", []string{"a1", "b1"}},
		{"pawn0 on far rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", nil},
		{"pawn on edge file", "4k3/8/8/8/8/1p6/P7/4K3 w - - 0 1", "a2", []string{"a3", "a4", "b3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			got := destinations(t, b, tt.from)
			if len(got) != len(tt.want) {
				t.Fatalf("moves from %s: got %v want %v", tt.from, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("moves from %s: got %v want %v", tt.from, got, tt.want)
				}
			}
		})
	}
}

func TestQueenMoveCount(t *testing.T) {
	b := mustFEN(t, "8/8/8/8/3Q4/8/8/K6k w - - 0 1")
	if got := len(destinations(t, b, "d4")); got != 26 {
		t.Fatalf("queen on d4: got %d moves want 26", got)
	}
}

func TestAttacksMatchesMoveLists(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		for _, p := range []board.Player{board.Player0, board.Player1} {
			reach := make(map[board.Square]bool)
			for _, pc := range b.PiecesOf(p) {
				for _, s := range board.PseudoLegalMoves(pc, b) {
					reach[s] = true
				}
			}
			for r := 0; r < board.Size; r++ {
				for f := 0; f < board.Size; f++ {
					s := board.Sq(r, f)
					if got := b.Attacks(p, s); got != reach[s] {
						t.Fatalf("%s: Attacks(%d, %s) = %v, move lists say %v", fen, p, s, got, reach[s])
					}
				}
			}
		}
	}
}
