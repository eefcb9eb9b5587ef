package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type perftCase struct {
	label string
	fen   string
	depth int
}

var suite = []perftCase{
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
	{"Position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4},
	{"Position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4},
}

// Runs the bench/ package with benchmem, then the perft suite through
// cmd/perft with one line per position.
// Usage: go run ./cmd/benchrun [-skipbench] [-parallel N]
func main() {
	skipBench := flag.Bool("skipbench", false, "Skip the go test benchmarks")
	parallel := flag.Int("parallel", 1, "Workers passed through to cmd/perft")
	flag.Parse()

	if !*skipBench {
		// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
		fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
		if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
			os.Exit(code)
		}
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, c := range suite {
		args := []string{"run", "./cmd/perft",
			"-depth", strconv.Itoa(c.depth),
			"-label", c.label,
			"-parallel", strconv.Itoa(*parallel),
		}
		if c.fen != "" {
			args = append(args, "-fen", c.fen)
		}
		if run("go", args...) != 0 {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d perft runs failed\n", failed)
		os.Exit(1)
	}
}
