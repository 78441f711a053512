package validator

import (
	"testing"

	"svw.info/puzzlegen/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestCanPlace(t *testing.T) {
	g := solved
	g[0][2] = 0 // open one cell; its only legal value is 4

	cases := []struct {
		name string
		v    uint8
		want bool
	}{
		{"only legal value", 4, true},
		{"duplicate in row", 5, false},
		{"duplicate in col", 2, false},
		{"duplicate in box", 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlace(&g, 0, 2, tc.v); got != tc.want {
				t.Fatalf("CanPlace(0,2,%d) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	if conf := Conflicts(&solved); len(conf) != 0 {
		t.Fatalf("valid solution reported conflicts: %v", conf)
	}

	g := solved
	g[8][8] = g[8][0] // duplicate in row 8 and in col 8
	conf := Conflicts(&g)
	if len(conf) == 0 {
		t.Fatal("duplicate value not reported")
	}
	for _, c := range conf {
		if c.Row != 8 && c.Col != 8 {
			t.Fatalf("conflict reported outside the tampered units: %v", c)
		}
	}
}

func TestIsComplete(t *testing.T) {
	if !IsComplete(&solved) {
		t.Fatal("valid solution reported incomplete")
	}
	g := solved
	g[4][4] = 0
	if IsComplete(&g) {
		t.Fatal("grid with an empty cell reported complete")
	}
}
