package cli

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"srither/internal/config"
	"srither/internal/puzzle"
	"srither/internal/search"
)

type fileOutcome struct {
	file    string
	outcome search.Outcome
	err     error
}

func newTestCommand(cfg *config.Config) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "test <files...>",
		Short: "Solve many puzzle files in parallel and summarize outcomes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return &ExitError{Code: 2, Err: errors.New("test: configuration failed to load")}
			}
			if workers == 0 {
				workers = cfg.Workers
			}
			return runTest(cmd, args, workers, cfg.Budget)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = use config default)")
	return cmd
}

func runTest(cmd *cobra.Command, files []string, workers, budget int) error {
	jobs := make(chan string, len(files))
	results := make(chan fileOutcome, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				results <- solveOne(file, budget)
			}
		}()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]fileOutcome, 0, len(files))
	for r := range results {
		outcomes = append(outcomes, r)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].file < outcomes[j].file })

	counts := map[search.Outcome]int{}
	failed := 0
	for _, r := range outcomes {
		if r.err != nil {
			failed++
			cmd.Printf("%s: error: %v\n", r.file, r.err)
			continue
		}
		counts[r.outcome]++
		cmd.Printf("%s: %s\n", r.file, r.outcome)
	}
	cmd.Printf("\n%d files: %d unique, %d found, %d multiple, %d none, %d errors\n",
		len(outcomes), counts[search.Unique], counts[search.Found], counts[search.Multiple], counts[search.None], failed)

	if failed > 0 || counts[search.Multiple] > 0 || counts[search.None] > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("test: %d of %d files did not solve uniquely", failed+counts[search.Multiple]+counts[search.None], len(outcomes))}
	}
	return nil
}

func solveOne(file string, budget int) fileOutcome {
	p, err := puzzle.ParseFile(file)
	if err != nil {
		return fileOutcome{file: file, err: err}
	}
	result := search.Run(p, search.ModeUnique, budget)
	return fileOutcome{file: file, outcome: result.Outcome}
}
