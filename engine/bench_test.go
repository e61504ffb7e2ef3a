package engine

import (
	"testing"

	"github.com/turnip314/chess-alts/board"
)

func benchRank(b *testing.B, eval Evaluator, depth, width int, opts ...SearchOption) {
	pos := board.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSearcher(eval, depth, width, opts...)
		if _, err := s.RankMoves(pos); err != nil {
			b.Fatalf("rank moves: %v", err)
		}
	}
}

func BenchmarkRankMoves_Material_D3W8(b *testing.B) {
	benchRank(b, MaterialEvaluator{}, 3, 8)
}

func BenchmarkRankMoves_Mobility_D3W8(b *testing.B) {
	benchRank(b, MobilityEvaluator{}, 3, 8)
}

func BenchmarkRankMoves_Mobility_D3W8_NoCache(b *testing.B) {
	benchRank(b, MobilityEvaluator{}, 3, 8, WithEvalCache(0))
}

func BenchmarkMobilityEvaluate(b *testing.B) {
	pos := board.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = MobilityEvaluator{}.Evaluate(pos)
	}
}
