package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/puzzlegen/internal/domain"
)

func TestDLXAgreesWithBacktracking(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	d := NewDLX()
	b := NewBacktracking()

	grids := map[string]domain.Grid{
		"unique puzzle": sample,
		"solved":        sampleSolved,
		"empty":         {},
	}
	for name, g := range grids {
		g := g
		t.Run(name, func(t *testing.T) {
			nd, _, err := d.CountSolutions(ctx, &g, 2)
			if err != nil {
				t.Fatalf("dlx count: %v", err)
			}
			nb, _, err := b.CountSolutions(ctx, &g, 2)
			if err != nil {
				t.Fatalf("backtrack count: %v", err)
			}
			if nd != nb {
				t.Fatalf("oracles disagree: dlx=%d backtrack=%d", nd, nb)
			}
		})
	}
}

func TestDLXSolveMatchesKnownSolution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewDLX().Solve(ctx, &sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if *out != sampleSolved {
		t.Fatal("dlx found a different completion than the known solution")
	}
	t.Logf("dlx solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestDLXLeavesInputUntouched(t *testing.T) {
	g := sample
	before := g
	if _, _, err := NewDLX().CountSolutions(context.Background(), &g, 2); err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if g != before {
		t.Fatal("input grid modified")
	}
}

func TestDLXConflictingGivens(t *testing.T) {
	g := sample
	g[0][1] = 5 // duplicates the 5 at (0,0)
	if _, _, err := NewDLX().CountSolutions(context.Background(), &g, 2); err == nil {
		t.Fatal("expected error for conflicting givens")
	}
}
