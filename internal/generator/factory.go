package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
	"svw.info/puzzlegen/internal/validator"
)

// Factory produces complete, valid, randomized solution grids.
type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

// Fill seeds row 0 with a random permutation of 1..9 and completes the rest
// by backtracking in row-major order with shuffled candidates per cell. A
// complete grid exists for every legal row 0, so the search only fails on
// context cancellation.
func (f *Factory) Fill(ctx context.Context, rng *rand.Rand) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	var g domain.Grid
	for i, v := range rng.Perm(9) {
		g[0][i] = uint8(v + 1)
	}

	nodes := 0
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			nodes++
			if validator.CanPlace(&g, r, c, v) {
				g[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	if !dfs(1, 0) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
	}
	out := g
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
