package solver

import (
	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/validator"
)

// Backtracking is a straightforward recursive solver. It is the default
// uniqueness oracle: on the near-complete grids the reducer probes, plain
// depth-first search beats the DLX setup cost.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func canPlace(g *domain.Grid, r, c int, v uint8) bool {
	return validator.CanPlace(g, r, c, v)
}
