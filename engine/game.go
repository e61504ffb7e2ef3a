package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/turnip314/chess-alts/board"
)

const (
	// DefaultMaxMoves is the fullmove number past which a game is stopped.
	DefaultMaxMoves = 100
	// DefaultStopThreshold is the score magnitude Outcome treats as decisive
	// when a game ends without checkmate.
	DefaultStopThreshold = 2000
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidP     = errors.New("selection probability must be in (0, 1]")
	ErrNilSearcher  = errors.New("nil searcher")
)

// State is the life-cycle state of a Game.
type State uint8

const (
	InProgress State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "in progress"
}

// Reason says why a game stopped.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonNoMoves // no legal move and not checkmate: stalemate or exhausted clock
	ReasonMoveLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonNoMoves:
		return "no moves"
	case ReasonMoveLimit:
		return "move limit"
	}
	return "none"
}

// Outcome classifies a finished game.
type Outcome int8

const (
	Player1Win Outcome = -1
	Draw       Outcome = 0
	Player0Win Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Player0Win:
		return "1-0"
	case Player1Win:
		return "0-1"
	}
	return "1/2-1/2"
}

// Result is what Play returns. History starts with the initial position and
// ends with the terminal one. Score is the terminal position as judged by the
// evaluator of the side to move there.
type Result struct {
	History   []*board.Board
	Checkmate bool
	Stalemate bool
	Reason    Reason
	Score     float64
}

// Final returns the terminal position.
func (r *Result) Final() *board.Board { return r.History[len(r.History)-1] }

// Outcome maps the final score to a result: beyond +threshold Player0 wins,
// below -threshold Player1 wins, anything else is a draw.
func (r *Result) Outcome(threshold float64) Outcome {
	switch {
	case r.Score > threshold:
		return Player0Win
	case r.Score < -threshold:
		return Player1Win
	}
	return Draw
}

// Game plays one searcher against another. A Game is not safe for concurrent
// use; independent games share nothing and may run in parallel.
type Game struct {
	searchers [2]*Searcher
	p         float64
	maxMoves  int
	start     *board.Board
	rng       *rand.Rand
	logger    *log.Logger

	state   State
	history []*board.Board
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithP sets the probability of stopping at each rank when picking a
// candidate. 1 always plays the top-ranked move.
func WithP(p float64) GameOption {
	return func(g *Game) { g.p = p }
}

// WithMaxMoves sets the fullmove ceiling.
func WithMaxMoves(n int) GameOption {
	return func(g *Game) { g.maxMoves = n }
}

// WithSeed seeds the selection random source.
func WithSeed(seed int64) GameOption {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the selection random source.
func WithRand(r *rand.Rand) GameOption {
	return func(g *Game) { g.rng = r }
}

// WithStart sets the starting position; the default is the standard layout.
func WithStart(b *board.Board) GameOption {
	return func(g *Game) { g.start = b }
}

// WithGameLogger logs every position played.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) { g.logger = l }
}

// NewGame binds s0 to Player0 and s1 to Player1. The same Searcher may be
// passed for both sides.
func NewGame(s0, s1 *Searcher, opts ...GameOption) (*Game, error) {
	if s0 == nil || s1 == nil {
		return nil, ErrNilSearcher
	}
	g := &Game{
		searchers: [2]*Searcher{s0, s1},
		p:         1,
		maxMoves:  DefaultMaxMoves,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !(g.p > 0 && g.p <= 1) {
		return nil, fmt.Errorf("p=%v: %w", g.p, ErrInvalidP)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	g.Reset()
	return g, nil
}

// Reset discards the history and returns the game to InProgress.
func (g *Game) Reset() {
	start := g.start
	if start == nil {
		start = board.New()
	}
	g.history = []*board.Board{start}
	g.state = InProgress
}

func (g *Game) State() State { return g.state }

// History returns the positions played so far.
func (g *Game) History() []*board.Board { return append([]*board.Board(nil), g.history...) }

// Play runs the game to the end. A finished game must be Reset before it can
// be played again. A search or evaluation error also finishes the game;
// History keeps the plies played up to the failure.
func (g *Game) Play() (*Result, error) {
	if g.state == Finished {
		return nil, ErrGameFinished
	}
	cur := g.history[len(g.history)-1]
	g.logger.Printf("start %s\n%s", cur.FEN(), cur)

	reason := ReasonNone
	for reason == ReasonNone {
		if cur.FullmoveNumber() > g.maxMoves {
			reason = ReasonMoveLimit
			break
		}
		next, err := g.step(cur)
		if err != nil {
			g.state = Finished
			return nil, fmt.Errorf("move %d: %w", cur.FullmoveNumber(), err)
		}
		if next == nil {
			reason = ReasonNoMoves
			if cur.IsCheckmate() {
				reason = ReasonCheckmate
			}
			break
		}
		g.history = append(g.history, next)
		g.logger.Printf("move %d turn %s %s\n%s", next.FullmoveNumber(), next.Turn(), next.FEN(), next)
		cur = next

		switch {
		case cur.IsCheckmate():
			reason = ReasonCheckmate
		case cur.FullmoveNumber() > g.maxMoves:
			reason = ReasonMoveLimit
		}
	}
	g.state = Finished

	score, err := g.searchers[cur.Turn()].Evaluator().Evaluate(cur)
	if err != nil {
		return nil, fmt.Errorf("final evaluation: %w", err)
	}
	res := &Result{
		History:   g.History(),
		Checkmate: reason == ReasonCheckmate,
		Stalemate: cur.IsStalemate(),
		Reason:    reason,
		Score:     score,
	}
	g.logger.Printf("end %s after %d plies score %v", reason, len(res.History)-1, score)
	return res, nil
}

// step asks the searcher of the side to move for candidates and picks one.
// It returns nil when there is nothing to play.
func (g *Game) step(cur *board.Board) (*board.Board, error) {
	cands, err := g.searchers[cur.Turn()].RankMoves(cur)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, nil
	}
	return cands[g.pick(len(cands))].Board, nil
}

// pick counts consecutive draws above p, wrapping at n.
func (g *Game) pick(n int) int {
	i := 0
	for g.rng.Float64() > g.p {
		i++
	}
	return i % n
}
