package engine

import "log"

// SearchStats counts the work done by one RankMoves call.
type SearchStats struct {
	Plies       int
	Nodes       uint64
	Duplicates  uint64
	Evaluations uint64
	CacheHits   uint64
	Widenings   int
	Candidates  int
}

func (s SearchStats) dump(l *log.Logger, depth, width int) {
	l.Printf("info depth %d width %d plies %d nodes %d dups %d evals %d cachehits %d widenings %d candidates %d",
		depth, width, s.Plies, s.Nodes, s.Duplicates, s.Evaluations, s.CacheHits, s.Widenings, s.Candidates)
}
