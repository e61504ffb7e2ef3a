package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/turnip314/chess-alts/board"
	"github.com/turnip314/chess-alts/config"
	"github.com/turnip314/chess-alts/engine"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/chess-alts/config.json)")
	games := flag.Int("games", 1, "number of games; odd games start with player 1 to move")
	seed := flag.Int64("seed", 0, "selection seed (0 = from config, else random)")
	p := flag.Float64("p", 0, "probability of taking each ranked move (0 = from config)")
	maxMoves := flag.Int("max-moves", 0, "fullmove ceiling (0 = from config)")
	fen := flag.String("fen", "", "starting FEN (empty = from config, else startpos)")
	verbose := flag.Bool("v", false, "log search statistics and every position")
	save := flag.Bool("save", false, "write the effective config to the XDG config dir and exit")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *p != 0 {
		cfg.Game.P = *p
	}
	if *maxMoves != 0 {
		cfg.Game.MaxMoves = *maxMoves
	}
	if *fen != "" {
		cfg.Game.Start = *fen
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Println(path)
		return
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	tally := map[engine.Outcome]int{}
	for i := 0; i < *games; i++ {
		res, err := playOne(cfg, i, logger)
		if err != nil {
			log.Fatalf("game %d: %v", i+1, err)
		}
		for _, b := range res.History {
			fmt.Println(b.FEN())
		}
		outcome := res.Outcome(cfg.Game.StopThreshold)
		tally[outcome]++
		fmt.Printf("game %d: %s after %d plies, score %v, result %s\n\n",
			i+1, res.Reason, len(res.History)-1, res.Score, outcome)
	}
	if *games > 1 {
		fmt.Printf("1-0: %d  0-1: %d  1/2-1/2: %d\n", tally[engine.Player0Win], tally[engine.Player1Win], tally[engine.Draw])
	}
}

func playOne(cfg *config.Config, n int, logger *log.Logger) (*engine.Result, error) {
	opts := []board.Option{board.WithStalemateThreshold(cfg.Game.StalemateThreshold)}
	if n%2 == 1 {
		opts = append(opts, board.WithTurn(board.Player1))
	}
	var (
		start *board.Board
		err   error
	)
	if cfg.Game.Start != "" {
		start, err = board.ParseFEN(cfg.Game.Start, opts...)
	} else {
		start, err = board.NewBoard(nil, opts...)
	}
	if err != nil {
		return nil, err
	}

	s0, err := newSearcher(cfg.White, cfg.Search, logger)
	if err != nil {
		return nil, err
	}
	s1, err := newSearcher(cfg.Black, cfg.Search, logger)
	if err != nil {
		return nil, err
	}

	gameOpts := []engine.GameOption{
		engine.WithP(cfg.Game.P),
		engine.WithMaxMoves(cfg.Game.MaxMoves),
		engine.WithStart(start),
		engine.WithGameLogger(logger),
	}
	if cfg.Game.Seed != 0 {
		gameOpts = append(gameOpts, engine.WithSeed(cfg.Game.Seed+int64(n)))
	}
	g, err := engine.NewGame(s0, s1, gameOpts...)
	if err != nil {
		return nil, err
	}
	return g.Play()
}

func newSearcher(side config.SideConfig, sc config.SearchConfig, logger *log.Logger) (*engine.Searcher, error) {
	eval, err := engine.NewEvaluator(side.Evaluator)
	if err != nil {
		return nil, err
	}
	triggers := make([]engine.Trigger, 0, len(sc.Triggers))
	for _, t := range sc.Triggers {
		kind := engine.PiecesBelow
		if t.Kind == "fullmove_above" {
			kind = engine.FullmoveAbove
		}
		triggers = append(triggers, engine.Trigger{Kind: kind, Threshold: t.Threshold, Depth: t.Depth, Width: t.Width})
	}
	return engine.NewSearcher(eval, side.Depth, side.Width,
		engine.WithTriggers(triggers...),
		engine.WithEvalCache(sc.EvalCacheEntries),
		engine.WithSearchLogger(logger),
	), nil
}
