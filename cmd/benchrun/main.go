package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// run streams a command's output to w as it runs, then reports the elapsed
// time. Returns the exit code.
func run(w io.Writer, name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = w
	cmd.Stderr = w
	start := time.Now()
	err := cmd.Run()
	fmt.Fprintf(w, "(%s %s: %s)\n", name, strings.Join(args, " "), time.Since(start).Round(time.Millisecond))
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run(os.Stdout, "go", "test", "./board", "./engine", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, depth := range []string{"2", "3", "4"} {
		run(os.Stdout, "go", "run", "./cmd/perft", "-depth", depth, "-label", "Initial")
	}
	_ = run(os.Stdout, "go", "run", "./cmd/perft", "-fen",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"-depth", "4", "-label", "Endgame")

	fmt.Println("\nSearch:")
	_ = run(os.Stdout, "go", "run", "./cmd/searchbench", "-depth", "3", "-width", "8", "-repeat", "3")
	os.Exit(0)
}
