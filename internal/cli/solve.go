package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"srither/internal/config"
	"srither/internal/puzzle"
	"srither/internal/search"
)

func newSolveCommand(cfg *config.Config) *cobra.Command {
	var mode string
	var compact bool
	var budget int

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a single puzzle and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return &ExitError{Code: 2, Err: errors.New("solve: configuration failed to load")}
			}
			return runSolve(cmd, args[0], mode, compact, budget, cfg)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "unique", "search mode: unique or first")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit the ? filler for Unknown edges")
	cmd.Flags().IntVar(&budget, "budget", 0, "DFS choice-point budget (0 = use config default)")

	return cmd
}

func runSolve(cmd *cobra.Command, file, mode string, compact bool, budget int, cfg *config.Config) error {
	logger := log.New(os.Stderr, "srither: ", 0)

	searchMode, err := parseMode(mode)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	if budget == 0 {
		budget = cfg.Budget
	}

	p, err := puzzle.ParseFile(file)
	if err != nil {
		logger.Printf("parse error: %v", err)
		return &ExitError{Code: 2, Err: err}
	}

	result := search.Run(p, searchMode, budget)
	if result.BudgetExceeded {
		logger.Printf("%s: budget exceeded before the search could conclude", file)
		return &ExitError{Code: 2, Err: fmt.Errorf("solve: %s: budget exceeded", file)}
	}
	switch result.Outcome {
	case search.None:
		logger.Printf("%s: no solution", file)
		return &ExitError{Code: 1, Err: fmt.Errorf("solve: %s: unsatisfiable", file)}
	case search.Multiple:
		logger.Printf("%s: multiple solutions, puzzle is not unique", file)
		return &ExitError{Code: 2, Err: fmt.Errorf("solve: %s: not unique", file)}
	case search.Found, search.Unique:
		geo := result.Solution.Geometry()
		var out string
		if compact {
			out = puzzle.RenderCompact(geo, p, result.Solution.Side)
		} else {
			out = puzzle.Render(geo, p, result.Solution.Side)
		}
		cmd.Print(out)
		return nil
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("solve: unexpected outcome %v", result.Outcome)}
	}
}

func parseMode(s string) (search.Mode, error) {
	switch s {
	case "unique":
		return search.ModeUnique, nil
	case "first":
		return search.ModeFirst, nil
	default:
		return 0, fmt.Errorf("solve: unknown --mode %q, want unique or first", s)
	}
}
