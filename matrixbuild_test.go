package qrsymbol

import "testing"

func TestEnsureBuiltFinderPatterns(t *testing.T) {
	cfg := NewConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("01234567"); err != nil {
		t.Fatal(err)
	}
	grid, err := s.Get(0).ModuleMatrix()
	if err != nil {
		t.Fatal(err)
	}
	// The finder pattern's center module, three cells in from each
	// corner, must be dark (function-dark, value +2) in every symbol.
	if grid[3][3] != 2 {
		t.Errorf("top-left finder center = %d, want 2", grid[3][3])
	}
	n := len(grid)
	if grid[3][n-4] != 2 {
		t.Errorf("top-right finder center = %d, want 2", grid[3][n-4])
	}
	if grid[n-4][3] != 2 {
		t.Errorf("bottom-left finder center = %d, want 2", grid[n-4][3])
	}
}

func TestEnsureBuiltCachesMatrix(t *testing.T) {
	cfg := NewConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("TEST"); err != nil {
		t.Fatal(err)
	}
	sym := s.Get(0)
	m1, err := sym.ensureBuilt()
	if err != nil {
		t.Fatal(err)
	}
	m2, err := sym.ensureBuilt()
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Error("ensureBuilt() should return the cached matrix on a second call")
	}
}
