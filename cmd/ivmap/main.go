package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/akmistry/intervalmap/internal/app/ivmap"
	"github.com/akmistry/intervalmap/internal/exercise"
	"github.com/akmistry/intervalmap/internal/intervalmap"
)

var (
	backgroundFlag = flag.String("background", "X", "Background value, a single character")
	windowFlag     = flag.String("window", "-10:10", "Key window to print, as min:max")
	verboseFlag    = flag.Bool("verbose", false, "Verbose logging")

	randomFlag = flag.Int("random", 0, "Number of random assignments to exercise after the given ones")
	seedFlag   = flag.Int64("seed", 1, "Seed for random assignments")
)

func printWindow(m *intervalmap.Map[int, byte], min, max int) {
	err := ivmap.PrintWindow(os.Stdout, m, min, max)
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	background, err := ivmap.ParseValue(*backgroundFlag)
	if err != nil {
		log.Printf("Invalid background flag: %s", *backgroundFlag)
		os.Exit(1)
	}
	minKey, maxKey, err := ivmap.ParseWindow(*windowFlag)
	if err != nil {
		log.Printf("Invalid window flag: %s", *windowFlag)
		os.Exit(1)
	}

	var assignments []ivmap.Assignment
	for _, arg := range flag.Args() {
		a, err := ivmap.ParseAssignment(arg)
		if err != nil {
			log.Printf("Invalid assignment %q: %v", arg, err)
			log.Print("Usage: ivmap [flags] [<begin>,<end>,<value> ...]")
			os.Exit(1)
		}
		assignments = append(assignments, a)
	}

	m := intervalmap.New[int](background)
	printWindow(m, minKey, maxKey)
	for _, a := range assignments {
		log.Printf("assign(%v)", a)
		m.Assign(a.Begin, a.End, a.Value)
		slog.Debug("ivmap: assigned", "map", m.String(), "boundaries", m.Len())
		printWindow(m, minKey, maxKey)
	}

	if *randomFlag <= 0 {
		return
	}

	opts := exercise.Options{
		Min:        minKey,
		Max:        maxKey,
		Iterations: *randomFlag,
		Seed:       *seedFlag,
		Background: background,
		Observer: func(s exercise.Step, rm *exercise.Map) {
			log.Printf("random %d: assign(%d, %d, %c)", s.Index, s.Begin, s.End, s.Value)
			printWindow(rm, minKey, maxKey)
		},
	}
	rep, err := exercise.Run(opts)
	if err != nil {
		log.Printf("Random exercise failed: %v", err)
		os.Exit(1)
	}
	log.Printf("Random exercise passed: %d steps, %d no-ops, at most %d boundaries",
		rep.Steps, rep.NoOps, rep.MaxBoundaries)
}
