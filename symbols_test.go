package qrsymbol

import "testing"

func TestAppendStringNumeric(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = 0 // L
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("01234567"); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
	grid, err := s.Get(0).ModuleMatrix()
	if err != nil {
		t.Fatal(err)
	}
	want := 17 + 4*s.Get(0).Version()
	if len(grid) != want {
		t.Errorf("matrix side = %d, want %d", len(grid), want)
	}
	for _, row := range grid {
		for _, v := range row {
			if v == 0 {
				t.Fatalf("cell left unset after masking")
			}
		}
	}
}

func TestAppendStringAlphanumericHighLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = 2 // Q
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("HELLO WORLD"); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestAppendStringMixedModes(t *testing.T) {
	cfg := NewConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("012345abcdefg"); err != nil {
		t.Fatal(err)
	}
	sym := s.Get(0)
	if len(sym.segments) < 2 {
		t.Fatalf("expected at least 2 segments for mixed digit/lowercase input, got %d", len(sym.segments))
	}
}

func TestAppendStringStructuredAppendSplitsAtMaxVersion(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxVersion = 1
	cfg.AllowStructuredAppend = true
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	big := make([]byte, 60)
	for i := range big {
		big[i] = byte('0' + i%10)
	}
	if err := s.AppendString(string(big)); err != nil {
		t.Fatal(err)
	}
	if s.Count() < 2 {
		t.Fatalf("expected structured append to split into multiple symbols, got %d", s.Count())
	}
	for i := 0; i < s.Count(); i++ {
		if s.Get(i).Version() != 1 {
			t.Errorf("symbol %d version = %d, want 1 (max version cap)", i, s.Get(i).Version())
		}
	}
}

func TestAppendStringCapacityExceededWithoutStructuredAppend(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxVersion = 1
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	big := make([]byte, 200)
	for i := range big {
		big[i] = byte('0' + i%10)
	}
	err = s.AppendString(string(big))
	if err == nil {
		t.Fatal("expected CapacityExceededError, got nil")
	}
	if _, ok := err.(*CapacityExceededError); !ok {
		t.Errorf("error type = %T, want *CapacityExceededError", err)
	}
}

func TestAppendStringLongNumeric(t *testing.T) {
	cfg := NewConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	digits := make([]byte, 500)
	for i := range digits {
		digits[i] = byte('0' + i%10)
	}
	if err := s.AppendString(string(digits)); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestAppendStringKanji(t *testing.T) {
	cfg := NewConfig()
	cfg.ByteModeCharset = ShiftJIS
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("日本"); err != nil {
		t.Fatal(err)
	}
	sym := s.Get(0)
	if len(sym.segments) != 1 || sym.segments[0].mode.String() != "kanji" {
		t.Fatalf("expected a single Kanji segment, got %d segments", len(sym.segments))
	}
}

func TestModuleMatrixIdempotent(t *testing.T) {
	cfg := NewConfig()
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendString("TEST"); err != nil {
		t.Fatal(err)
	}
	g1, err := s.Get(0).ModuleMatrix()
	if err != nil {
		t.Fatal(err)
	}
	g2, err := s.Get(0).ModuleMatrix()
	if err != nil {
		t.Fatal(err)
	}
	for r := range g1 {
		for c := range g1[r] {
			if g1[r][c] != g2[r][c] {
				t.Fatalf("ModuleMatrix not idempotent at (%d,%d)", r, c)
			}
		}
	}
}

func TestNewRejectsBadVersionRange(t *testing.T) {
	cfg := NewConfig()
	cfg.MinVersion = 10
	cfg.MaxVersion = 5
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for min > max version")
	}
}
