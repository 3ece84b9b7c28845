package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	_ "github.com/ncruces/go-sqlite3/driver"

	"srither/internal/config"
	"srither/internal/puzzle"
	"srither/internal/search"
)

type benchRecord struct {
	file           string
	outcome        search.Outcome
	choicePoints   int
	budgetExceeded bool
	elapsed        time.Duration
	err            error
}

func newBenchCommand(cfg *config.Config) *cobra.Command {
	var workers int
	var onlyHardest int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "bench <files...>",
		Short: "Measure solver difficulty (choice points) across puzzle files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return &ExitError{Code: 2, Err: errors.New("bench: configuration failed to load")}
			}
			if workers == 0 {
				workers = cfg.Workers
			}
			if dbPath == "" {
				dbPath = cfg.BenchDB
			}
			return runBench(cmd, args, workers, cfg.Budget, onlyHardest, dbPath)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = use config default)")
	cmd.Flags().IntVar(&onlyHardest, "only-hardest", 0, "print only the N hardest puzzles (0 = all)")
	cmd.Flags().StringVar(&dbPath, "db", "", "optional SQLite database to append run history to")

	return cmd
}

func runBench(cmd *cobra.Command, files []string, workers, budget, onlyHardest int, dbPath string) error {
	jobs := make(chan string, len(files))
	results := make(chan benchRecord, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				results <- benchOne(file, budget)
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

	records := make([]benchRecord, 0, len(files))
	for r := range results {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].choicePoints > records[j].choicePoints })

	shown := records
	if onlyHardest > 0 && onlyHardest < len(records) {
		shown = records[:onlyHardest]
	}
	for _, r := range shown {
		if r.err != nil {
			cmd.Printf("%s: error: %v\n", r.file, r.err)
			continue
		}
		cmd.Printf("%s: %s choice_points=%d budget_exceeded=%v elapsed=%s\n",
			r.file, r.outcome, r.choicePoints, r.budgetExceeded, r.elapsed)
	}
	printSummary(cmd, records)

	if dbPath != "" {
		if err := persistBench(dbPath, records); err != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("bench: %w", err)}
		}
	}
	return nil
}

func benchOne(file string, budget int) benchRecord {
	p, err := puzzle.ParseFile(file)
	if err != nil {
		return benchRecord{file: file, err: err}
	}
	start := time.Now()
	result := search.Run(p, search.ModeUnique, budget)
	elapsed := time.Since(start)
	return benchRecord{
		file:           file,
		outcome:        result.Outcome,
		choicePoints:   result.ChoicePoints,
		budgetExceeded: result.BudgetExceeded,
		elapsed:        elapsed,
	}
}

// printSummary reports the min/max/mean/total elapsed time across every
// successfully benched file, skipping entries that failed to parse.
func printSummary(cmd *cobra.Command, records []benchRecord) {
	var total time.Duration
	var min, max time.Duration
	n := 0
	for _, r := range records {
		if r.err != nil {
			continue
		}
		if n == 0 || r.elapsed < min {
			min = r.elapsed
		}
		if r.elapsed > max {
			max = r.elapsed
		}
		total += r.elapsed
		n++
	}
	if n == 0 {
		cmd.Printf("\nno puzzles benched\n")
		return
	}
	mean := total / time.Duration(n)
	cmd.Printf("\n%d puzzles: min=%s max=%s mean=%s total=%s\n", n, min, max, mean, total)
}

// persistBench appends one run (identified by a fresh UUID) and one row
// per puzzle file to a SQLite database, creating the schema on first
// use. It is the only place this module touches a database.
func persistBench(dbPath string, records []benchRecord) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS bench_runs (
			run_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			file TEXT NOT NULL,
			outcome TEXT NOT NULL,
			choice_points INTEGER NOT NULL,
			budget_exceeded INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	runID := uuid.New().String()
	startedAt := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO bench_runs (run_id, started_at, file, outcome, choice_points, budget_exceeded, elapsed_ms) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if r.err != nil {
			continue
		}
		if _, err := stmt.Exec(runID, startedAt, r.file, r.outcome.String(), r.choicePoints, r.budgetExceeded, r.elapsed.Milliseconds()); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", r.file, err)
		}
	}
	return tx.Commit()
}
