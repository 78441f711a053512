package domain

// Grid is a 9x9 Sudoku board; 0 marks an empty cell. It is a plain value
// type: assignment copies the whole array, which the solver and reducer rely
// on to keep caller-owned grids untouched.
type Grid [9][9]uint8

// Clues returns the number of filled cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// HasEmptyLine reports whether any row or column contains no clue at all.
// An all-zero line is a presentation defect in print, independent of
// uniqueness.
func (g *Grid) HasEmptyLine() bool {
	for i := 0; i < 9; i++ {
		rowEmpty, colEmpty := true, true
		for j := 0; j < 9; j++ {
			if g[i][j] != 0 {
				rowEmpty = false
			}
			if g[j][i] != 0 {
				colEmpty = false
			}
		}
		if rowEmpty || colEmpty {
			return true
		}
	}
	return false
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DifficultyProfile bounds how aggressively the reducer removes clues.
type DifficultyProfile struct {
	Name        string `json:"name" yaml:"name"`
	MinClues    int    `json:"minClues" yaml:"min_clues"`
	MaxClues    int    `json:"maxClues" yaml:"max_clues"`
	TargetClues int    `json:"targetClues" yaml:"target_clues"`
}

// PuzzleResult is the engine's sole output: a puzzle, the solution it was
// carved from, and enough metadata for the book pipeline to file it away.
// Immutable once constructed.
type PuzzleResult struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Puzzle     Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Clues      int        `json:"clueCount"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}
