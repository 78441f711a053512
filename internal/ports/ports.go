package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/puzzlegen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver counts completions of a grid and can produce one.
type Solver interface {
	// CountSolutions counts completions up to limit and stops there; callers
	// pass limit=2 when they only need {0, 1, >=2}. The input grid is left
	// untouched.
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Filler produces one complete, valid, randomized solution grid per call.
type Filler interface {
	Fill(ctx context.Context, rng *rand.Rand) (*domain.Grid, Stats, error)
}

// Reducer carves clues out of a solution while preserving uniqueness and
// honoring the profile's clue bounds.
type Reducer interface {
	Reduce(ctx context.Context, solution *domain.Grid, profile domain.DifficultyProfile, rng *rand.Rand) (*domain.Grid, Stats, error)
}

// Storage files away finished puzzles for the book pipeline.
type Storage interface {
	Save(ctx context.Context, p *domain.PuzzleResult) error
	Load(ctx context.Context, id string) (*domain.PuzzleResult, error)
	List(ctx context.Context) ([]domain.PuzzleResult, error)
}
