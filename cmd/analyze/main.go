// Command analyze prints quick, human-readable statistics about the boards
// described by configuration files in the project's configs directory. Fixed
// boards are solved outright; random boards are sampled a number of times
// and summarized by the average words and points available.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/boggle/game/dictionary"
	"github.com/wricardo/mcp-training/boggle/game/engine"
)

// BoardStats summarizes every word available on one board
type BoardStats struct {
	Words    int
	Points   int
	Longest  string
	ByLength map[int]int
}

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "Summarize how many words the configured boards hold",
		ArgsUsage: "[file.json ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "Directory containing game configurations"},
			&cli.StringFlag{Name: "dictionary", Usage: "Word list, one word per line (default: embedded list)"},
			&cli.IntFlag{Name: "samples", Value: 20, Usage: "Boards to roll for random configurations"},
			&cli.IntFlag{Name: "seed", Value: 1, Usage: "Random seed for sampling"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				matches, err := filepath.Glob(filepath.Join(cmd.String("config-dir"), "*.json"))
				if err != nil {
					return err
				}
				files = matches
			}

			dict, err := dictionary.Open(cmd.String("dictionary"))
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(int64(cmd.Int("seed"))))
			for _, file := range files {
				fmt.Fprintf(cmd.Writer, "\n=== Analyzing %s ===\n", filepath.Base(file))
				analyzeConfig(cmd.Writer, file, dict, rng, cmd.Int("samples"))
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeConfig(w io.Writer, path string, dict engine.Dictionary, rng *rand.Rand, samples int) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Fprintf(w, "Error loading config: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Name: %s\n", config.Name)
	fmt.Fprintf(w, "Board: %s\n", engine.BoardSize(config.BoardSize))

	if config.Letters != "" {
		board, err := engine.BuildBoard(config, nil)
		if err != nil {
			fmt.Fprintf(w, "Error building board: %v\n", err)
			return
		}
		stats := analyzeBoard(board, dict)
		fmt.Fprintf(w, "Letters: %s\n", board.Letters())
		printStats(w, stats)
		if stats.Words == 0 {
			fmt.Fprintf(w, "⚠️  WARNING: the fixed board holds no dictionary words\n")
		}
		return
	}

	if samples < 1 {
		samples = 1
	}
	totalWords, totalPoints, empty := 0, 0, 0
	richest := BoardStats{}
	for i := 0; i < samples; i++ {
		board, err := engine.BuildBoard(config, rng)
		if err != nil {
			fmt.Fprintf(w, "Error rolling board: %v\n", err)
			return
		}
		stats := analyzeBoard(board, dict)
		totalWords += stats.Words
		totalPoints += stats.Points
		if stats.Words == 0 {
			empty++
		}
		if stats.Points > richest.Points {
			richest = stats
		}
	}

	fmt.Fprintf(w, "Random board, %d samples\n", samples)
	fmt.Fprintf(w, "Average words: %.1f\n", float64(totalWords)/float64(samples))
	fmt.Fprintf(w, "Average points: %.1f\n", float64(totalPoints)/float64(samples))
	fmt.Fprintf(w, "Richest sample: %d words, %d points\n", richest.Words, richest.Points)
	if empty > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d of %d sampled boards held no words\n", empty, samples)
	} else {
		fmt.Fprintf(w, "✅ Every sampled board held at least one word\n")
	}
}

// analyzeBoard solves board and tallies the result
func analyzeBoard(board *engine.Board, dict engine.Dictionary) BoardStats {
	var words []engine.FoundWord
	engine.EnumerateFunc(board, dict, engine.NewSeenWords(), func(d engine.Discovery) {
		words = append(words, engine.FoundWord{Word: d.Word, Path: d.Path, Score: engine.Score(d.Word)})
	})

	stats := BoardStats{
		Words:    len(words),
		Points:   engine.TotalScore(words),
		ByLength: engine.CountByLength(words),
	}
	if longest, ok := engine.LongestWord(words); ok {
		stats.Longest = longest.Word
	}
	return stats
}

func printStats(w io.Writer, stats BoardStats) {
	fmt.Fprintf(w, "Words: %d\n", stats.Words)
	fmt.Fprintf(w, "Points: %d\n", stats.Points)
	if stats.Longest != "" {
		fmt.Fprintf(w, "Longest: %s\n", stats.Longest)
	}

	lengths := make([]int, 0, len(stats.ByLength))
	for n := range stats.ByLength {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	for _, n := range lengths {
		fmt.Fprintf(w, "  %2d letters: %d\n", n, stats.ByLength[n])
	}
}
