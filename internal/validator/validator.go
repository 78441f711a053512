package validator

import (
	"svw.info/puzzlegen/internal/domain"
)

// CanPlace reports whether v may legally occupy (r, c): it must not already
// appear in row r, column c, or the containing 3x3 box. Pure, O(27);
// indices and value are assumed well-formed.
func CanPlace(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Conflicts scans the whole grid with row/col/box bitmasks and returns the
// cells that duplicate an earlier value in their unit. Empty cells are
// skipped. A complete grid with no conflicts is a valid solution.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					val := g[br*3+dr][bc*3+dc]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}

// IsComplete reports whether the grid is fully filled and conflict-free,
// i.e. every row, column, and box is a permutation of 1..9.
func IsComplete(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return len(Conflicts(g)) == 0
}
