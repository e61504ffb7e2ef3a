package engine

import (
	"math"

	"github.com/turnip314/chess-alts/board"
)

// Evaluator scores a position from Player0's point of view: +Inf means
// Player0 has delivered checkmate, -Inf means Player1 has, and finite values
// are estimates favouring Player0 when positive.
type Evaluator interface {
	Evaluate(b *board.Board) (float64, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(b *board.Board) (float64, error)

func (f EvaluatorFunc) Evaluate(b *board.Board) (float64, error) { return f(b) }

// mateScore returns ±Inf when the side to move is checkmated.
func mateScore(b *board.Board) (float64, bool) {
	if !b.IsCheckmate() {
		return 0, false
	}
	if b.Turn() == board.Player0 {
		return math.Inf(-1), true
	}
	return math.Inf(1), true
}

// Material returns Player0's material minus Player1's, kings excluded.
func Material(b *board.Board) float64 {
	var val float64
	for _, pc := range b.PiecesOf(board.Player0) {
		if pc.Kind != board.King {
			val += pc.Kind.Value()
		}
	}
	for _, pc := range b.PiecesOf(board.Player1) {
		if pc.Kind != board.King {
			val -= pc.Kind.Value()
		}
	}
	return val
}

// MaterialEvaluator scores checkmates as ±Inf and everything else by the
// material balance.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(b *board.Board) (float64, error) {
	if score, ok := mateScore(b); ok {
		return score, nil
	}
	return Material(b), nil
}

// MobilityEvaluator adds a tenth of a point per pseudo-legal move and half a
// point of tempo to the material balance, then damps the total as the
// halfmove clock approaches the stalemate threshold.
type MobilityEvaluator struct{}

func (MobilityEvaluator) Evaluate(b *board.Board) (float64, error) {
	if score, ok := mateScore(b); ok {
		return score, nil
	}
	var val float64
	for _, pc := range b.PiecesOf(board.Player0) {
		val += float64(len(board.PseudoLegalMoves(pc, b))) / 10
	}
	for _, pc := range b.PiecesOf(board.Player1) {
		val -= float64(len(board.PseudoLegalMoves(pc, b))) / 10
	}
	val += Material(b)
	if b.Turn() == board.Player1 {
		val -= 0.5
	} else {
		val += 0.5
	}
	threshold := float64(b.StalemateThreshold())
	remaining := Clamp(threshold-float64(b.HalfmoveClock())+1, 0, threshold+1)
	return val * remaining / (threshold + 1), nil
}

// NewEvaluator returns a reference evaluator by name: "material" or
// "mobility".
func NewEvaluator(name string) (Evaluator, error) {
	switch name {
	case "material":
		return MaterialEvaluator{}, nil
	case "mobility":
		return MobilityEvaluator{}, nil
	}
	return nil, &UnknownEvaluatorError{Name: name}
}

type UnknownEvaluatorError struct {
	Name string
}

func (e *UnknownEvaluatorError) Error() string {
	return "unknown evaluator " + `"` + e.Name + `"`
}
