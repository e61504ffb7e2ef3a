package engine

import (
	"fmt"

	"github.com/turnip314/chess-alts/board"
)

// TriggerKind selects the position feature a widening Trigger watches.
type TriggerKind uint8

const (
	// PiecesBelow fires once the total piece count drops below Threshold.
	PiecesBelow TriggerKind = iota
	// FullmoveAbove fires once the fullmove number exceeds Threshold.
	FullmoveAbove
)

func (k TriggerKind) String() string {
	switch k {
	case PiecesBelow:
		return "pieces<"
	case FullmoveAbove:
		return "fullmove>"
	}
	return fmt.Sprintf("TriggerKind(%d)", uint8(k))
}

// Trigger permanently raises a Searcher's depth and width the first time its
// condition holds at the start of a RankMoves call. Negative bonuses count
// as zero.
type Trigger struct {
	Kind      TriggerKind
	Threshold int
	Depth     int
	Width     int

	fired bool
}

// Fired reports whether the latch has already been spent.
func (t Trigger) Fired() bool { return t.fired }

func (t Trigger) holds(b *board.Board) bool {
	switch t.Kind {
	case PiecesBelow:
		return b.PieceCount() < t.Threshold
	case FullmoveAbove:
		return b.FullmoveNumber() > t.Threshold
	}
	return false
}

func (t Trigger) String() string {
	return fmt.Sprintf("%s%d +depth %d +width %d", t.Kind, t.Threshold, t.Depth, t.Width)
}

// DefaultTriggers widens the beam as material comes off and deepens the
// search in sparse or long-running games.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Kind: PiecesBelow, Threshold: 16, Width: 2},
		{Kind: PiecesBelow, Threshold: 8, Depth: 1, Width: 2},
		{Kind: FullmoveAbove, Threshold: 60, Depth: 1},
	}
}

// widen fires every unspent trigger whose condition holds on b.
func (s *Searcher) widen(b *board.Board) {
	for i := range s.triggers {
		t := &s.triggers[i]
		if t.fired || !t.holds(b) {
			continue
		}
		t.fired = true
		s.depth += Max(t.Depth, 0)
		s.width += Max(t.Width, 0)
		s.stats.Widenings++
		s.logger.Printf("info string widen %s -> depth %d width %d", t, s.depth, s.width)
	}
}
