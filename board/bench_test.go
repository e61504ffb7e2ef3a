package board_test

import (
	"testing"

	"github.com/turnip314/chess-alts/board"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, board.FENStartPos, 3)
}

func BenchmarkPerft_Kiwipete_D2(b *testing.B) {
	benchPerft(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1", 2)
}

func BenchmarkFEN(b *testing.B) {
	pos := board.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = pos.FEN()
	}
}
