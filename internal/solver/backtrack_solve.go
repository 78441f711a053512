package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// ErrUnsolvable is returned when no completion of the grid exists.
var ErrUnsolvable = errors.New("unsolvable or canceled")

// Solve returns a completion of g, searching empty cells in row-major order.
func (s *Backtracking) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	out := grid
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
