package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"chesscore/chess"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	parallel := flag.Int("parallel", 1, "Split root moves across N workers (0 = GOMAXPROCS)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	workers := *parallel
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pos, err := chess.NewPosition(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "NewPosition error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div, err := splitPerft(pos, *depth, workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
		printDivide(div)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if workers == 1 {
			totalNodes += chess.Perft(pos, *depth)
			continue
		}
		div, err := splitPerft(pos, *depth, workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
		for _, n := range div {
			totalNodes += n
		}
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// splitPerft counts the subtree of every root move, handing root moves to
// at most 'workers' goroutines. Each goroutine works on its own clone.
func splitPerft(pos *chess.Position, depth, workers int) (map[string]uint64, error) {
	moves := pos.LegalMoves()
	counts := make([]uint64, len(moves))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			p := pos.Clone()
			p.MakeMove(m)
			counts[i] = chess.Perft(p, depth-1)
			p.UndoMove()
			if p.Hash() != pos.Hash() {
				return fmt.Errorf("hash mismatch after undoing %v", m)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	div := make(map[string]uint64, len(moves))
	for i, m := range moves {
		div[m.String()] = counts[i]
	}
	return div, nil
}

func printDivide(div map[string]uint64) {
	keys := maps.Keys(div)
	slices.Sort(keys)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("Total: %d\n", sum)
}
