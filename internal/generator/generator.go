package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"svw.info/puzzlegen/internal/config"
	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// ErrStructuralFailure is returned when the retry budget is exhausted
// without producing a puzzle that meets the clue-floor and no-empty-line
// invariants. Hitting it indicates an RNG or implementation defect, not a
// property of any particular input.
var ErrStructuralFailure = errors.New("generation retry budget exhausted")

var errNotConfigured = errors.New("engine dependency not configured")

// Engine is the generation facade: fill a solution, carve it down to a
// puzzle, re-check the invariants, retry on the rare miss. Each Generate
// call owns its own grids and RNG; the engine itself is stateless and safe
// for concurrent use.
type Engine struct {
	Filler  ports.Filler
	Reducer ports.Reducer

	cfg config.Config
	log *zap.Logger
}

// New wires an engine. A nil logger is replaced with a nop logger.
func New(f ports.Filler, r ports.Reducer, cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = config.DefaultMaxAttempts
	}
	return &Engine{Filler: f, Reducer: r, cfg: cfg, log: log}
}

// Generate produces one uniquely solvable puzzle at the requested
// difficulty. The seed fully determines the result. Returns a complete,
// valid PuzzleResult or an error; never a partial result.
func (e *Engine) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.PuzzleResult, ports.Stats, error) {
	start := time.Now()
	if e.Filler == nil || e.Reducer == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	profile := e.cfg.Profile(d)
	rng := rand.New(rand.NewSource(seed))
	nodes := 0

	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		solution, st, err := e.Filler.Fill(ctx, rng)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		puzzle, st, err := e.Reducer.Reduce(ctx, solution, profile, rng)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}

		clues := puzzle.Clues()
		if clues < config.MinClueFloor {
			e.log.Warn("puzzle below clue floor, retrying",
				zap.String("difficulty", d.String()),
				zap.Int("clues", clues),
				zap.Int("attempt", attempt))
			continue
		}
		if clues > profile.MaxClues {
			// carving got stuck early; a fresh solution almost always fixes it
			e.log.Debug("puzzle above difficulty band, retrying",
				zap.String("difficulty", d.String()),
				zap.Int("clues", clues),
				zap.Int("attempt", attempt))
			continue
		}
		if puzzle.HasEmptyLine() {
			// the reducer's fix-up should have prevented this
			e.log.Warn("puzzle has empty line, retrying",
				zap.String("difficulty", d.String()),
				zap.Int("attempt", attempt))
			continue
		}

		res := &domain.PuzzleResult{
			Seed:       seed,
			Difficulty: d,
			Puzzle:     *puzzle,
			Solution:   *solution,
			Clues:      clues,
			CreatedAt:  time.Now().UnixNano(),
		}
		stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		e.log.Debug("puzzle generated",
			zap.String("difficulty", d.String()),
			zap.Int("clues", clues),
			zap.Int("attempt", attempt),
			zap.Int("nodes", stats.Nodes),
			zap.Duration("dur", stats.Duration))
		return res, stats, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrStructuralFailure
}
