// Package storage files finished puzzles away as JSON, one file per puzzle
// under a per-difficulty directory. The on-disk shape is the grid-exchange
// contract the rendering pipeline consumes: plain 9x9 arrays, each flagged
// as puzzle or solution.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/puzzlegen/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// exchangeGrid is one 9x9 array plus the flag telling the renderer whether
// to typeset it as givens or as the answer page.
type exchangeGrid struct {
	Cells      domain.Grid `json:"cells"`
	IsSolution bool        `json:"isSolution"`
}

type exchangeFile struct {
	ID         string            `json:"id"`
	Seed       int64             `json:"seed,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty"`
	ClueCount  int               `json:"clueCount"`
	CreatedAt  int64             `json:"createdAt,omitempty"`
	Grids      []exchangeGrid    `json:"grids"`
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.PuzzleResult) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(exchangeFile{
		ID:         p.ID,
		Seed:       p.Seed,
		Difficulty: p.Difficulty,
		ClueCount:  p.Clues,
		CreatedAt:  p.CreatedAt,
		Grids: []exchangeGrid{
			{Cells: p.Puzzle, IsSolution: false},
			{Cells: p.Solution, IsSolution: true},
		},
	})
}

func fromExchange(x *exchangeFile) (*domain.PuzzleResult, error) {
	out := &domain.PuzzleResult{
		ID:         x.ID,
		Seed:       x.Seed,
		Difficulty: x.Difficulty,
		Clues:      x.ClueCount,
		CreatedAt:  x.CreatedAt,
	}
	seen := 0
	for _, g := range x.Grids {
		if g.IsSolution {
			out.Solution = g.Cells
		} else {
			out.Puzzle = g.Cells
		}
		seen++
	}
	if seen != 2 {
		return nil, errors.New("exchange file must carry a puzzle and a solution grid")
	}
	return out, nil
}

func (s *FS) Load(ctx context.Context, id string) (*domain.PuzzleResult, error) {
	for _, d := range domain.Difficulties() {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var x exchangeFile
		if err := json.Unmarshal(data, &x); err != nil {
			return nil, err
		}
		return fromExchange(&x)
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleResult, error) {
	var out []domain.PuzzleResult
	for _, d := range domain.Difficulties() {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			var x exchangeFile
			if err := json.Unmarshal(data, &x); err != nil || x.ID == "" {
				continue
			}
			p, err := fromExchange(&x)
			if err != nil {
				continue
			}
			out = append(out, *p)
		}
	}
	return out, nil
}
