// Command analyze prints quick, human-readable heuristics about shuffled
// boards for every supported grid size. For each size it summarizes the
// average number of misplaced tiles, the average total Manhattan distance
// and how often a shuffle comes out already solved.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/tty-fifteen/game/engine"
)

// Summary holds the heuristics gathered for one grid size
type Summary struct {
	Lines, Rows  int
	Samples      int
	AvgMisplaced float64
	AvgDistance  float64
	MaxDistance  int
	Solved       int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "summarize shuffled boards for each grid size",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "samples",
				Aliases: []string{"n"},
				Value:   1000,
				Usage:   "shuffles per grid size",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			samples := int(cmd.Int("samples"))
			if samples < 1 {
				return cli.Exit("analyze: samples must be positive", 1)
			}
			return analyzeAll(os.Stdout, samples)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func analyzeAll(w io.Writer, samples int) error {
	rnd := engine.NewRand()

	fmt.Fprintf(w, "%-6s %10s %10s %8s %8s\n", "size", "misplaced", "distance", "max", "solved")
	for lines := engine.MinDimension; lines <= engine.MaxDimension; lines++ {
		for rows := engine.MinDimension; rows <= engine.MaxDimension; rows++ {
			puzzle, err := engine.NewPuzzle(lines, rows, rnd)
			if err != nil {
				return err
			}
			s := analyze(puzzle, samples)
			fmt.Fprintf(w, "%dx%-4d %10.2f %10.2f %8d %8d\n",
				s.Rows, s.Lines, s.AvgMisplaced, s.AvgDistance, s.MaxDistance, s.Solved)
		}
	}

	return nil
}

// analyze reshuffles puzzle samples times and aggregates the heuristics
func analyze(puzzle *engine.Puzzle, samples int) Summary {
	s := Summary{Lines: puzzle.Lines(), Rows: puzzle.Rows(), Samples: samples}

	var misplaced, distance int
	for range samples {
		puzzle.Shuffle()
		view := puzzle.View()

		misplaced += engine.Misplaced(view)
		d := engine.ManhattanDistance(view)
		distance += d
		if d > s.MaxDistance {
			s.MaxDistance = d
		}
		if view.Solved {
			s.Solved++
		}
	}

	s.AvgMisplaced = float64(misplaced) / float64(samples)
	s.AvgDistance = float64(distance) / float64(samples)

	return s
}
