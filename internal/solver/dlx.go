package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// DLX counts and produces solutions via Algorithm X with dancing links.
// Exact-cover mapping: 324 constraint columns, 729 candidate rows (r,c,v).
// Columns: 0..80    cell (r,c) is filled
//          81..161  row r contains digit v
//          162..242 col c contains digit v
//          243..323 box b contains digit v, b = (r/3)*3 + c/3
//
// Interchangeable with Backtracking behind ports.Solver; worthwhile for very
// sparse grids where plain depth-first search degenerates.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	dlxCols = 324
	dlxRows = 729
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxCol
	cand                  int // 0..728 encodes (r,c,v)
}

type dlxCol struct {
	head    dlxNode
	size    int
	covered bool
}

type dlxMatrix struct {
	root  dlxNode
	cols  [dlxCols]dlxCol
	rows  [dlxRows]*dlxNode
	stack  [81]*dlxNode
	sol    [81]int
	solLen int
	depth  int
	nodes  int
}

func candIndex(r, c int, v uint8) int { return (r*9+c)*9 + int(v) - 1 }

func candDecode(cand int) (r, c int, v uint8) {
	cell := cand / 9
	return cell / 9, cell % 9, uint8(cand%9) + 1
}

func candColumns(r, c int, v uint8) [4]int {
	d := int(v) - 1
	box := (r/3)*3 + c/3
	return [4]int{r*9 + c, 81 + r*9 + d, 162 + c*9 + d, 243 + box*9 + d}
}

func newMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	// column header ring hanging off the root
	m.root.left = &m.root
	m.root.right = &m.root
	for i := range m.cols {
		h := &m.cols[i].head
		h.col = &m.cols[i]
		h.up = h
		h.down = h
		h.left = m.root.left
		h.right = &m.root
		m.root.left.right = h
		m.root.left = h
	}
	// one 4-node row per (r,c,v) candidate
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				cand := candIndex(r, c, v)
				var first, prev *dlxNode
				for _, ci := range candColumns(r, c, v) {
					col := &m.cols[ci]
					n := &dlxNode{col: col, cand: cand}
					n.down = &col.head
					n.up = col.head.up
					col.head.up.down = n
					col.head.up = n
					col.size++
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rows[cand] = first
			}
		}
	}
	return m
}

func (m *dlxMatrix) cover(c *dlxCol) {
	c.covered = true
	c.head.right.left = c.head.left
	c.head.left.right = c.head.right
	for i := c.head.down; i != &c.head; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(c *dlxCol) {
	for i := c.head.up; i != &c.head; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	c.head.right.left = &c.head
	c.head.left.right = &c.head
	c.covered = false
}

// minColumn picks the uncovered column with the fewest candidates.
func (m *dlxMatrix) minColumn() *dlxCol {
	var best *dlxCol
	for h := m.root.right; h != &m.root; h = h.right {
		if best == nil || h.col.size < best.size {
			best = h.col
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven pre-selects the candidate row for a clue by covering its four
// constraint columns. Conflicting clues hit an already-covered column.
func (m *dlxMatrix) applyGiven(r, c int, v uint8) error {
	head := m.rows[candIndex(r, c, v)]
	n := head
	for {
		if n.col.covered {
			return errors.New("conflicting givens")
		}
		m.cover(n.col)
		n = n.right
		if n == head {
			return nil
		}
	}
}

// search explores candidate rows depth-first, recording each complete cover
// and stopping once limit covers have been seen. Returns true to unwind.
func (m *dlxMatrix) search(ctx context.Context, limit int, found *int) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.root.right == &m.root {
		for i := 0; i < m.depth; i++ {
			m.sol[i] = m.stack[i].cand
		}
		m.solLen = m.depth
		*found++
		return *found >= limit
	}
	c := m.minColumn()
	if c.size == 0 {
		return false
	}
	m.cover(c)
	for i := c.head.down; i != &c.head; i = i.down {
		m.nodes++
		m.stack[m.depth] = i
		m.depth++
		for j := i.right; j != i; j = j.right {
			m.cover(j.col)
		}
		stop := m.search(ctx, limit, found)
		for j := i.left; j != i; j = j.left {
			m.uncover(j.col)
		}
		m.depth--
		if stop {
			m.uncover(c)
			return true
		}
	}
	m.uncover(c)
	return false
}

func (m *dlxMatrix) load(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				if v > 9 {
					return errors.New("invalid cell value")
				}
				if err := m.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CountSolutions counts completions of g up to limit. The matrix is built
// fresh per call, so the input grid is never touched.
func (s *DLX) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if err := m.load(g); err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = m.search(ctx, limit, &found)
	return found, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}, ctx.Err()
}

// Solve returns a completion of g reconstructed from the first exact cover.
func (s *DLX) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if err := m.load(g); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = m.search(ctx, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if found < 1 {
		return nil, st, ErrUnsolvable
	}
	// givens are already in g; the cover stack holds only the carved cells
	out := *g
	for i := 0; i < m.solLen; i++ {
		r, c, v := candDecode(m.sol[i])
		out[r][c] = v
	}
	return &out, st, nil
}
