// Command puzzlegen batch-generates uniquely solvable Sudoku puzzles and
// writes them as grid-exchange JSON for the book-assembly pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"svw.info/puzzlegen/internal/config"
	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/generator"
	"svw.info/puzzlegen/internal/infrastructure/storage"
	"svw.info/puzzlegen/internal/logging"
	"svw.info/puzzlegen/internal/ports"
	"svw.info/puzzlegen/internal/solver"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	count := flag.Int("count", 1, "puzzles per difficulty")
	diffStr := flag.String("difficulty", "all", "easy|medium|hard|expert|all")
	seed := flag.Int64("seed", 0, "base RNG seed; 0 derives one from the clock")
	outDir := flag.String("out", envOr("PUZZLEGEN_OUT", "./data"), "output directory")
	solverKind := flag.String("solver", "backtrack", "uniqueness oracle: backtrack|dlx")
	profilesPath := flag.String("profiles", os.Getenv("PUZZLEGEN_PROFILES"), "YAML difficulty-band overrides")
	levelStr := flag.String("log-level", envOr("PUZZLEGEN_LOG_LEVEL", "info"), "debug|info|warn|error")
	logFile := flag.String("log-file", os.Getenv("PUZZLEGEN_LOG_FILE"), "rotated JSON log file (optional)")
	verify := flag.Bool("verify", false, "independently re-check uniqueness of every result")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*levelStr), *logFile)
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if *profilesPath != "" {
		var err error
		cfg, err = config.LoadProfiles(*profilesPath)
		if err != nil {
			logger.Fatal("load profiles", zap.String("path", *profilesPath), zap.Error(err))
		}
	}

	var oracle ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "dlx":
		oracle = solver.NewDLX()
	default:
		oracle = solver.NewBacktracking()
	}

	var diffs []domain.Difficulty
	if strings.EqualFold(*diffStr, "all") {
		diffs = domain.Difficulties()
	} else {
		d, err := domain.ParseDifficulty(*diffStr)
		if err != nil {
			logger.Fatal("bad difficulty", zap.Error(err))
		}
		diffs = []domain.Difficulty{d}
	}

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	eng := generator.New(generator.NewFactory(), generator.NewReducer(oracle, cfg.ExtraRemovalTries), cfg, logger)
	sink := storage.NewFS(*outDir)
	logger.Info("batch start",
		zap.Int("count", *count),
		zap.Int64("seed", base),
		zap.String("solver", *solverKind),
		zap.String("out", *outDir))

	ctx := context.Background()
	start := time.Now()
	made := 0
	for _, d := range diffs {
		for i := 0; i < *count; i++ {
			res, st, err := eng.Generate(ctx, base+int64(made), d)
			if err != nil {
				logger.Error("generate failed", zap.String("difficulty", d.String()), zap.Error(err))
				color.Red("✗ %s: %v", d, err)
				os.Exit(1)
			}
			if *verify {
				if err := recheck(ctx, oracle, res); err != nil {
					logger.Error("verification failed", zap.String("difficulty", d.String()), zap.Error(err))
					color.Red("✗ %s: %v", d, err)
					os.Exit(1)
				}
			}
			res.ID = uuid.NewString()
			if err := sink.Save(ctx, res); err != nil {
				logger.Error("save failed", zap.String("id", res.ID), zap.Error(err))
				os.Exit(1)
			}
			made++
			color.Green("✔ %-6s %s  clues=%d  nodes=%d  %s",
				d, res.ID[:8], res.Clues, st.Nodes, st.Duration.Round(time.Millisecond))
		}
	}
	color.Cyan("%d puzzles in %s → %s", made, time.Since(start).Round(time.Millisecond), *outDir)
}

// recheck re-runs the oracle against a finished result: the puzzle must
// have exactly one completion and it must equal the recorded solution.
func recheck(ctx context.Context, oracle ports.Solver, res *domain.PuzzleResult) error {
	n, _, err := oracle.CountSolutions(ctx, &res.Puzzle, 2)
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("expected exactly 1 solution, counted %d", n)
	}
	solved, _, err := oracle.Solve(ctx, &res.Puzzle)
	if err != nil {
		return err
	}
	if *solved != res.Solution {
		return fmt.Errorf("completion does not match recorded solution")
	}
	return nil
}
