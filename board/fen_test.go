package board_test

import (
	"errors"
	"testing"

	"github.com/turnip314/chess-alts/board"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 13 47",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
		checkInvariants(t, b)
	}
}

func TestFENPlaceholdersIgnored(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if b.FEN() != want {
		t.Fatalf("got %q want %q", b.FEN(), want)
	}
}

func TestFENMatchesMoveHistory(t *testing.T) {
	b := board.New()
	b = b.Move(sq(t, "e2"), sq(t, "e4"))
	b = b.Move(sq(t, "c7"), sq(t, "c5"))
	b = b.Move(sq(t, "g1"), sq(t, "f3"))
	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 3 2"
	if b.FEN() != want {
		t.Fatalf("got %q want %q", b.FEN(), want)
	}
}

func TestFENKeyIsCanonical(t *testing.T) {
	// Two move orders reaching the same position give the same key.
	a := board.New().
		Move(sq(t, "g1"), sq(t, "f3")).Move(sq(t, "g8"), sq(t, "f6")).
		Move(sq(t, "b1"), sq(t, "c3")).Move(sq(t, "b8"), sq(t, "c6"))
	b := board.New().
		Move(sq(t, "b1"), sq(t, "c3")).Move(sq(t, "b8"), sq(t, "c6")).
		Move(sq(t, "g1"), sq(t, "f3")).Move(sq(t, "g8"), sq(t, "f6"))
	if a.FEN() != b.FEN() {
		t.Fatalf("transposition keys differ: %q vs %q", a.FEN(), b.FEN())
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("transposition hashes differ")
	}
	if a.Hash() == board.New().Hash() {
		t.Fatalf("different positions share a hash")
	}
}

func TestHashCoversStalemateThreshold(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/R3K3 w - - 10 30"
	short := mustFEN(t, fen)
	long := mustFEN(t, fen, board.WithStalemateThreshold(60))
	if short.FEN() != long.FEN() {
		t.Fatalf("threshold leaked into FEN: %q vs %q", short.FEN(), long.FEN())
	}
	if short.Hash() == long.Hash() {
		t.Fatalf("boards with thresholds 20 and 60 share a hash")
	}
	if short.Hash() != mustFEN(t, fen).Hash() {
		t.Fatalf("equal boards hash differently")
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - a 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 -3",
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); !errors.Is(err, board.ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): expected ErrInvalidFEN, got %v", fen, err)
		}
	}
}

func TestDisplay(t *testing.T) {
	got := mustFEN(t, "7k/8/8/8/8/8/8/K7 w - - 0 1").String()
	want := "   │   │   │   │   │   │   │ k" +
		"\n───┼───┼───┼───┼───┼───┼───┼───\n" +
		"   │   │   │   │   │   │   │  "
	if len(got) < len(want) || got[:len(want)] != want {
		t.Fatalf("unexpected display prefix:\n%s", got)
	}
}

func TestPlanes(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 10 1")
	planes := b.Planes()
	if planes[board.PlanePieces][0][0] != 1 || planes[board.PlanePieces][7][4] != -1 {
		t.Fatalf("piece plane wrong")
	}
	if planes[board.PlaneDiagonal][0][0] != 1 || planes[board.PlaneOrthogonal][0][0] != 1 {
		t.Fatalf("queen should mark both slider planes")
	}
	if planes[board.PlaneKings][7][4] != -1 || planes[board.PlaneKnights][0][0] != 0 {
		t.Fatalf("king/knight planes wrong")
	}
	if planes[board.PlaneHalfmove][3][3] != 0.5 {
		t.Fatalf("halfmove plane: got %v want 0.5", planes[board.PlaneHalfmove][3][3])
	}
}
