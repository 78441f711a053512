package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/puzzlegen/internal/config"
	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// Reducer carves clues out of a complete solution while the uniqueness
// oracle confirms exactly one completion remains.
type Reducer struct {
	Solver ports.Solver
	// ExtraTries bounds the second carve pass used when the shuffle pass
	// leaves more clues than the profile's maximum.
	ExtraTries int
}

func NewReducer(s ports.Solver, extraTries int) *Reducer {
	if extraTries <= 0 {
		extraTries = config.DefaultExtraRemovalTries
	}
	return &Reducer{Solver: s, ExtraTries: extraTries}
}

// Reduce copies the solution and visits all 81 cells in a shuffled order,
// zeroing each cell whose removal keeps the solution count at exactly 1.
// Carving stops at the profile's target clue count and never crosses the
// 17-clue floor. If too few cells were safely removable to reach the
// profile's maximum, a bounded second pass over a fresh shuffle takes
// another run at the still-filled cells. Finally any all-zero row or column
// gets one cell restored from the solution.
func (rd *Reducer) Reduce(ctx context.Context, solution *domain.Grid, profile domain.DifficultyProfile, rng *rand.Rand) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	puzzle := *solution
	clues := 81
	nodes := 0

	floor := profile.MinClues
	if floor < config.MinClueFloor {
		floor = config.MinClueFloor
	}

	carve := func(r, c int) (bool, error) {
		old := puzzle[r][c]
		puzzle[r][c] = 0
		n, st, err := rd.Solver.CountSolutions(ctx, &puzzle, 2)
		nodes += st.Nodes
		if err != nil {
			puzzle[r][c] = old
			return false, err
		}
		if n != 1 {
			puzzle[r][c] = old
			return false, nil
		}
		clues--
		return true, nil
	}

	for _, pos := range rng.Perm(81) {
		if clues == profile.TargetClues || clues <= floor {
			break
		}
		r, c := pos/9, pos%9
		if puzzle[r][c] == 0 {
			continue
		}
		if _, err := carve(r, c); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
	}

	// Second chance: the shuffle order may have locked in cells whose
	// removal would have been safe later. Bounded, so convergence to the
	// band is best-effort; the facade re-checks and retries.
	if clues > profile.MaxClues {
		tries := rd.ExtraTries
		for _, pos := range rng.Perm(81) {
			if tries == 0 || clues <= profile.MaxClues || clues <= floor {
				break
			}
			r, c := pos/9, pos%9
			if puzzle[r][c] == 0 {
				continue
			}
			tries--
			if _, err := carve(r, c); err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
		}
	}

	rd.fixEmptyLines(&puzzle, solution, rng)
	return &puzzle, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fixEmptyLines restores one removed cell in every all-zero row and column.
// Restoring a clue can only strengthen uniqueness, so no oracle call is
// needed.
func (rd *Reducer) fixEmptyLines(puzzle, solution *domain.Grid, rng *rand.Rand) {
	for r := 0; r < 9; r++ {
		empty := true
		for c := 0; c < 9; c++ {
			if puzzle[r][c] != 0 {
				empty = false
				break
			}
		}
		if empty {
			c := rng.Intn(9)
			puzzle[r][c] = solution[r][c]
		}
	}
	for c := 0; c < 9; c++ {
		empty := true
		for r := 0; r < 9; r++ {
			if puzzle[r][c] != 0 {
				empty = false
				break
			}
		}
		if empty {
			r := rng.Intn(9)
			puzzle[r][c] = solution[r][c]
		}
	}
}
