package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/turnip314/chess-alts/board"
	"github.com/turnip314/chess-alts/engine"
)

func main() {
	depthFlag := flag.Int("depth", 3, "search depth in plies")
	widthFlag := flag.Int("width", 8, "beam width")
	evalFlag := flag.String("eval", "mobility", "evaluator: material or mobility")
	cacheFlag := flag.Int("cache", engine.DefaultEvalCacheEntries, "evaluation cache entries (0 disables)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	eval, err := engine.NewEvaluator(*evalFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("searchbench: fen=%q eval=%s depth=%d width=%d repeat=%d\n",
		fen, *evalFlag, *depthFlag, *widthFlag, *repeatFlag)

	logger := log.New(os.Stdout, "", 0)
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position and searcher for each run.
		pos, err := board.ParseFEN(fen)
		if err != nil {
			log.Fatalf("parse FEN: %v", err)
		}
		s := engine.NewSearcher(eval, *depthFlag, *widthFlag,
			engine.WithEvalCache(*cacheFlag), engine.WithSearchLogger(logger))

		iterStart := time.Now()
		cands, err := s.RankMoves(pos)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		iterElapsed := time.Since(iterStart)

		best := "(none)"
		if len(cands) > 0 {
			best = fmt.Sprintf("%s %v", cands[0].Move, cands[0].Score)
		}
		fmt.Printf("iteration %d: bestmove %s  time=%v\n", i+1, best, iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
