package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/boggle/game/dictionary"
	"github.com/wricardo/mcp-training/boggle/game/engine"
)

// boardFlags are shared by solve and play
func boardFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "size", Value: int(engine.Standard), Usage: "Board size: 4 or 5"},
		&cli.StringFlag{Name: "letters", Usage: "Fixed board letters in row-major order (default: roll the dice)"},
		&cli.IntFlag{Name: "seed", Usage: "Random seed for rolling the board (default: current time)"},
	}
}

// boardConfig turns the board flags into a game config
func boardConfig(cmd *cli.Command) (*engine.GameConfig, *rand.Rand, error) {
	config := engine.DefaultGameConfig()
	config.Name = "cli"
	config.BoardSize = cmd.Int("size")
	if !engine.BoardSize(config.BoardSize).Valid() {
		return nil, nil, fmt.Errorf("board size must be %d or %d, got %d", engine.Standard, engine.Big, config.BoardSize)
	}

	if letters := cmd.String("letters"); letters != "" {
		board, err := engine.ParseBoard(engine.BoardSize(config.BoardSize), letters)
		if err != nil {
			return nil, nil, err
		}
		config.Letters = board.Letters()
	}

	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return config, rand.New(rand.NewSource(seed)), nil
}

// loadDictionary opens the word list behind a spinner
func loadDictionary(path string, w io.Writer) (*dictionary.Trie, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " loading dictionary"
	s.Start()
	dict, err := dictionary.Open(path)
	s.Stop()
	return dict, err
}

func printBoard(w io.Writer, board *engine.Board) {
	for _, row := range board.Rows() {
		fmt.Fprintln(w, strings.Join(strings.Split(row, ""), " "))
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Print every dictionary word on a board",
		Flags: boardFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer

			config, rng, err := boardConfig(cmd)
			if err != nil {
				return err
			}
			board, err := engine.BuildBoard(config, rng)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cmd.String("dictionary"), cmd.Root().ErrWriter)
			if err != nil {
				return err
			}

			printBoard(out, board)
			fmt.Fprintln(out)

			found := engine.Enumerate(board, dict, engine.NewSeenWords())
			sort.SliceStable(found, func(i, j int) bool {
				si, sj := engine.Score(found[i].Word), engine.Score(found[j].Word)
				if si != sj {
					return si > sj
				}
				return found[i].Word < found[j].Word
			})

			total := 0
			for _, d := range found {
				score := engine.Score(d.Word)
				total += score
				fmt.Fprintf(out, "%-16s %2d  %s\n", d.Word, score, d.Path)
			}
			fmt.Fprintf(out, "\n%d words, %d points\n", len(found), total)
			return nil
		},
	}
}

var playIntro = heredoc.Doc(`
	Find words of four or more letters by tracing tiles that touch
	horizontally, vertically or diagonally. Each tile may be used once per
	word. Type one word per line and an empty line when you are done; the
	computer then claims every word you missed.
`)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play a round against the computer in the terminal",
		Flags: boardFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer

			config, rng, err := boardConfig(cmd)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cmd.String("dictionary"), cmd.Root().ErrWriter)
			if err != nil {
				return err
			}
			eng, err := engine.NewEngine(config, dict, rng)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, playIntro)
			printBoard(out, eng.GetBoard())
			fmt.Fprintln(out)

			return playRound(ctx, eng, cmd.Root().Reader, out)
		},
	}
}

// playRound reads words until a blank line or EOF, then lets the computer play
func playRound(ctx context.Context, eng *engine.GameEngine, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for ctx.Err() == nil {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		eng.SubmitWord(line)
		fmt.Fprintln(out, eng.GetState().Message)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	words := eng.ComputerTurn()
	state := eng.GetState()
	for _, fw := range engine.SortByScore(words) {
		fmt.Fprintf(out, "  %-16s %2d\n", fw.Word, fw.Score)
	}
	fmt.Fprintln(out, state.Message)
	fmt.Fprintf(out, "You: %d  Computer: %d\n", state.HumanScore, state.ComputerScore)

	switch eng.Winner() {
	case engine.Human:
		fmt.Fprintln(out, "You win!")
	case engine.Computer:
		fmt.Fprintln(out, "The computer wins.")
	default:
		fmt.Fprintln(out, "It's a tie.")
	}
	return nil
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate game configuration files",
		ArgsUsage: "[file.json ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				matches, err := filepath.Glob(filepath.Join(cmd.String("config-dir"), "*.json"))
				if err != nil {
					return err
				}
				files = matches
			}
			if len(files) == 0 {
				return fmt.Errorf("no configuration files found in %s", cmd.String("config-dir"))
			}

			dict, err := dictionary.Open(cmd.String("dictionary"))
			if err != nil {
				return err
			}

			failed := 0
			out := cmd.Root().Writer
			for _, file := range files {
				result := validateConfig(file, dict)
				if !result.Valid {
					failed++
				}
				result.Print(out)
			}

			fmt.Fprintf(out, "\n%d of %d configurations valid\n", len(files)-failed, len(files))
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d invalid configuration(s)", failed), 1)
			}
			return nil
		},
	}
}

// ValidationResult captures the outcome of validating a single file.
// Notes are informational; Errors make the file invalid.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Notes  []string
}

// Print writes the result in a compact, human readable form
func (r ValidationResult) Print(w io.Writer) {
	mark := "✓"
	if !r.Valid {
		mark = "✗"
	}
	fmt.Fprintf(w, "%s %s\n", mark, r.File)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "    error: %s\n", e)
	}
	for _, n := range r.Notes {
		fmt.Fprintf(w, "    %s\n", n)
	}
}

// validateConfig loads a configuration file and, for fixed boards, checks
// that the board has at least one word
func validateConfig(path string, dict engine.Dictionary) ValidationResult {
	result := ValidationResult{File: filepath.Base(path), Valid: true}

	if _, err := os.Stat(path); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("failed to read file: %v", err))
		return result
	}

	config, err := engine.LoadGameConfig(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	size := engine.BoardSize(config.BoardSize)
	result.Notes = append(result.Notes, fmt.Sprintf("name: %s, board: %s", config.Name, size))

	if config.Letters == "" {
		result.Notes = append(result.Notes, "random board")
		return result
	}

	board, err := engine.BuildBoard(config, nil)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	words := engine.Enumerate(board, dict, engine.NewSeenWords())
	if len(words) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "fixed board has no dictionary words")
		return result
	}
	points := 0
	for _, d := range words {
		points += engine.Score(d.Word)
	}
	result.Notes = append(result.Notes, fmt.Sprintf("fixed board: %d words, %d points available", len(words), points))
	return result
}
