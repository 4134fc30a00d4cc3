package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/render"
	"github.com/rmerry/dusudoku/internal/solver"
	"github.com/rmerry/dusudoku/internal/validator"
)

var logger = log.New(os.Stderr)

var (
	logLevel     string
	solveTimeout time.Duration
)

var mainCommand = &cobra.Command{
	Use:   "dusudoku <puzzle>",
	Short: "Solve a Sudoku puzzle by recursive backtracking",
	Long: `dusudoku solves a standard 9x9 Sudoku given as an 81 character long
string of numerals and/or dashes, row by row. Both '0' and '-' represent
an empty square.

example:
  dusudoku 53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lvl, err := log.ParseLevel(logLevel); err == nil {
			logger.SetLevel(lvl)
		}
	},
	Run: runSolve,
}

func init() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	mainCommand.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this duration (0 = none)")
}

func main() {
	mainCommand.SetArgs(normalizeArgs(os.Args[1:]))
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

// looksLikePuzzle reports whether arg has the shape of an 81-character
// puzzle string: numerals and dashes only.
func looksLikePuzzle(arg string) bool {
	if len(arg) != domain.Cells {
		return false
	}
	for i := 0; i < len(arg); i++ {
		if ch := arg[i]; ch != '-' && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

// normalizeArgs inserts a "--" terminator before a puzzle argument whose
// first cell is an empty square written as '-', which flag parsing would
// otherwise read as a shorthand flag.
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") && looksLikePuzzle(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

func runSolve(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = cmd.Help()
		os.Exit(1)
	}
	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	st, err := validator.New().Parse(ctx, args[0])
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		_ = cmd.Help()
		os.Exit(1)
	}

	fmt.Print("solving...")
	grid, stats, err := solver.NewBacktrackingSolver().Solve(ctx, st)
	switch {
	case err == nil:
		fmt.Println("solution found!")
		_ = render.Plain(os.Stdout, grid)
		logger.Debug("search finished", "nodes", stats.Nodes, "dur", stats.Duration)
	case errors.Is(err, solver.ErrUnsolvable):
		fmt.Println("no solution")
	default:
		fmt.Println()
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
