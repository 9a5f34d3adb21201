package qrsymbol

import (
	"github.com/vvdqr/qrsymbol/coding"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		mode coding.Mode
	}{
		{'5', coding.Numeric},
		{'A', coding.Alphanumeric},
		{'日', coding.Kanji},
		{'!', coding.Byte},
	}
	for _, c := range cases {
		mode, ok := classify(c.r, ISO8859_1)
		if !ok || mode != c.mode {
			t.Errorf("classify(%q) = %v, %v; want %v, true", c.r, mode, ok, c.mode)
		}
	}
}

func TestModeAccepts(t *testing.T) {
	if !modeAccepts(coding.Numeric, '5', ISO8859_1) {
		t.Error("Numeric should accept '5'")
	}
	if modeAccepts(coding.Numeric, 'A', ISO8859_1) {
		t.Error("Numeric should not accept 'A'")
	}
}

func TestSymbolTryAppendEscalatesVersion(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxVersion = 40
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sym := s.Get(0)
	startVersion := sym.Version()

	digits := make([]byte, 2000)
	for i := range digits {
		digits[i] = byte('0' + i%10)
	}
	if err := s.AppendString(string(digits)); err != nil {
		t.Fatal(err)
	}
	if sym.Version() <= startVersion {
		t.Errorf("expected version to escalate beyond %d, got %d", startVersion, sym.Version())
	}
	if sym.dataBitCounter > sym.dataBitCapacity {
		t.Errorf("dataBitCounter %d exceeds dataBitCapacity %d", sym.dataBitCounter, sym.dataBitCapacity)
	}
}
