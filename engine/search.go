package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/turnip314/chess-alts/board"
)

// DefaultEvalCacheEntries is the evaluation cache size used unless
// WithEvalCache overrides it.
const DefaultEvalCacheEntries = 1 << 16

var ErrNaNScore = errors.New("evaluator returned NaN")

// Candidate is one ranked first move. Board is the position right after Move;
// Score is the evaluation of the deepest line kept for that move and Depth
// the ply at which it was taken.
type Candidate struct {
	Board *board.Board
	Move  board.Move
	Score float64
	Depth int
}

// Searcher ranks the moves of a position with a beam-limited lookahead. It
// keeps widening latches, statistics and an evaluation cache, so one Searcher
// belongs to one goroutine.
type Searcher struct {
	eval     Evaluator
	depth    int
	width    int
	triggers []Trigger
	cache    *evalCache
	stats    SearchStats
	logger   *log.Logger
}

// SearchOption configures a Searcher.
type SearchOption func(*Searcher)

// WithTriggers replaces the default widening triggers. Each Searcher keeps its
// own copy, so latches never leak between searchers.
func WithTriggers(triggers ...Trigger) SearchOption {
	return func(s *Searcher) {
		s.triggers = append([]Trigger(nil), triggers...)
	}
}

// WithEvalCache sets the evaluation cache size in entries; 0 disables it.
func WithEvalCache(entries int) SearchOption {
	return func(s *Searcher) { s.cache = newEvalCache(entries) }
}

// WithSearchLogger sends per-call search statistics to l.
func WithSearchLogger(l *log.Logger) SearchOption {
	return func(s *Searcher) { s.logger = l }
}

// NewSearcher returns a Searcher looking depth plies ahead and keeping width
// positions per ply. Both are raised to at least 1.
func NewSearcher(eval Evaluator, depth, width int, opts ...SearchOption) *Searcher {
	s := &Searcher{
		eval:     eval,
		depth:    Max(depth, 1),
		width:    Max(width, 1),
		triggers: DefaultTriggers(),
		cache:    newEvalCache(DefaultEvalCacheEntries),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Searcher) Evaluator() Evaluator { return s.eval }
func (s *Searcher) Depth() int           { return s.depth }
func (s *Searcher) Width() int           { return s.width }

// Stats returns the statistics of the most recent RankMoves call.
func (s *Searcher) Stats() SearchStats { return s.stats }

// Triggers returns a copy of the widening triggers with their latch state.
func (s *Searcher) Triggers() []Trigger { return append([]Trigger(nil), s.triggers...) }

// node is a position in the beam, tagged with the first move of its line.
type node struct {
	board *board.Board
	score float64
	depth int
	first board.Move
	root  *board.Board // position after first
}

// RankMoves returns the legal moves of b ordered best-first for the side to
// move. An empty result means the side to move has no legal move; whether
// that is checkmate or stalemate must be asked of the board itself.
func (s *Searcher) RankMoves(b *board.Board) ([]Candidate, error) {
	s.stats = SearchStats{}
	s.widen(b)

	us := b.Turn()
	seen := make(map[string]struct{})

	frontier, _, err := s.expand([]node{{board: b}}, seen, true)
	if err != nil {
		return nil, err
	}
	s.stats.Plies = 1
	if len(frontier) == 0 {
		s.stats.dump(s.logger, s.depth, s.width)
		return nil, nil
	}
	s.rank(frontier, us)
	frontier = frontier[:Min(len(frontier), s.width)]
	if isMateFor(frontier[0].score, us) {
		return s.finish(frontier[:1], us), nil
	}

	mover := us
	for ply := 2; ply <= s.depth; ply++ {
		mover = mover.Other()
		children, ended, err := s.expand(frontier, seen, false)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		s.stats.Plies = ply
		// Lines that already ended stay in the beam with their last score.
		children = append(children, ended...)
		s.rank(children, mover)
		frontier = children[:Min(len(children), s.width)]
		if isMateFor(frontier[0].score, us) {
			return s.finish(frontier[:1], us), nil
		}
	}
	return s.finish(frontier, us), nil
}

// expand generates the legal, not yet seen successors of every parent and
// scores them. Parents without any legal move are returned in ended.
func (s *Searcher) expand(parents []node, seen map[string]struct{}, root bool) (out, ended []node, err error) {
	for _, parent := range parents {
		succs := parent.board.Successors(false)
		if len(succs) == 0 {
			ended = append(ended, parent)
			continue
		}
		for _, succ := range succs {
			s.stats.Nodes++
			key := succ.Board.FEN()
			if _, dup := seen[key]; dup {
				s.stats.Duplicates++
				continue
			}
			seen[key] = struct{}{}

			score, err := s.score(succ.Board)
			if err != nil {
				return nil, nil, err
			}
			child := node{board: succ.Board, score: score, depth: parent.depth + 1}
			if root {
				child.first, child.root = succ.Move, succ.Board
			} else {
				child.first, child.root = parent.first, parent.root
			}
			out = append(out, child)
		}
	}
	return out, ended, nil
}

func (s *Searcher) score(b *board.Board) (float64, error) {
	hash := b.Hash()
	if v, ok := s.cache.probe(hash); ok {
		s.stats.CacheHits++
		return v, nil
	}
	s.stats.Evaluations++
	v, err := s.eval.Evaluate(b)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", b.FEN(), err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("evaluate %s: %w", b.FEN(), ErrNaNScore)
	}
	s.cache.store(hash, v)
	return v, nil
}

// rank sorts nodes best-first for mover: descending for Player0, ascending
// for Player1. Ties keep generation order.
func (s *Searcher) rank(nodes []node, mover board.Player) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if mover == board.Player0 {
			return nodes[i].score > nodes[j].score
		}
		return nodes[i].score < nodes[j].score
	})
}

// finish keeps the first beam entry of each first move and orders the result
// for the root mover.
func (s *Searcher) finish(frontier []node, us board.Player) []Candidate {
	best := make([]node, 0, len(frontier))
	taken := make(map[board.Move]bool, len(frontier))
	for _, n := range frontier {
		if taken[n.first] {
			continue
		}
		taken[n.first] = true
		best = append(best, n)
	}
	s.rank(best, us)

	out := make([]Candidate, len(best))
	for i, n := range best {
		out[i] = Candidate{Board: n.root, Move: n.first, Score: n.score, Depth: n.depth}
	}
	s.stats.Candidates = len(out)
	s.stats.dump(s.logger, s.depth, s.width)
	return out
}

// isMateFor reports whether score is a checkmate delivered by p.
func isMateFor(score float64, p board.Player) bool {
	return IsMateScore(score) && (score > 0) == (p == board.Player0)
}

// ClearCache drops every cached evaluation.
func (s *Searcher) ClearCache() { s.cache.clear() }
