package solver

import (
	"context"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// CountSolutions counts completions of g up to limit, pruning the search the
// moment the limit is reached. The search runs on a by-value copy of the
// grid with strict place/recurse/unplace discipline, so the caller's grid is
// bit-for-bit unchanged on return.
func (s *Backtracking) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					grid[r][c] = 0
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
