package qrsymbol

import "github.com/vvdqr/qrsymbol/coding"

// structuredAppendHeaderLen is the bit length of the mode indicator,
// position, total-count and parity fields written ahead of a
// symbol's segments when the parent holds more than one symbol.
const structuredAppendHeaderLen = 4 + 4 + 4 + 8

// Symbol is a single QR Code symbol under construction or, once
// sealed, ready to render. Its zero value is not usable; obtain one
// through Symbols.AppendString.
type Symbol struct {
	parent   *Symbols
	position int

	version  coding.Version
	segments []*segment
	segCount [4]int // indexed by coding.Mode

	dataBitCounter  int
	dataBitCapacity int

	sealed bool
	matrix *coding.Matrix
	mask   int
}

func newSymbol(parent *Symbols) *Symbol {
	s := &Symbol{
		parent:   parent,
		position: len(parent.symbolList),
		version:  parent.minVersion,
	}
	s.dataBitCapacity = 8 * s.version.TotalDataCodewords(parent.level)
	if parent.allowStructuredAppend {
		s.dataBitCapacity -= structuredAppendHeaderLen
	}
	return s
}

// Version returns the symbol's QR version, 1 to 40.
func (s *Symbol) Version() int { return int(s.version) }

// charBits returns the marginal payload bit cost of appending r as
// the (priorCount+1)th character of a segment in mode.
func (s *Symbol) charBits(mode coding.Mode, priorCount int, r rune) int {
	switch mode {
	case coding.Numeric:
		return coding.NumericSegmentBits(priorCount+1) - coding.NumericSegmentBits(priorCount)
	case coding.Alphanumeric:
		return coding.AlphanumericSegmentBits(priorCount+1) - coding.AlphanumericSegmentBits(priorCount)
	case coding.Kanji:
		return 13
	default:
		enc, _ := s.parent.charset.encode(r)
		return len(enc) * 8
	}
}

// tryAppend charges the marginal cost of r against the currently
// open segment, escalating the version as needed. It reports whether
// r fit, even after escalating to the parent's max version.
func (s *Symbol) tryAppend(r rune) bool {
	seg := s.segments[len(s.segments)-1]
	bitLen := s.charBits(seg.mode, len(seg.text), r)

	for s.dataBitCapacity < s.dataBitCounter+bitLen {
		if s.version >= s.parent.maxVersion {
			return false
		}
		s.selectVersion()
		bitLen = s.charBits(seg.mode, len(seg.text), r)
	}

	seg.text = append(seg.text, r)
	s.dataBitCounter += bitLen
	return true
}

// trySetEncodingMode opens a new segment in mode, charging its mode
// and char-count indicator bits (but not yet r's own payload bits:
// the caller must follow with tryAppend). It reports whether the
// header fit, even after escalating to the parent's max version.
func (s *Symbol) trySetEncodingMode(mode coding.Mode, r rune) bool {
	bitLen := s.charBits(mode, 0, r)

	header := func() int { return 4 + coding.CharCountBits(mode, s.version) }

	for s.dataBitCapacity < s.dataBitCounter+header()+bitLen {
		if s.version >= s.parent.maxVersion {
			return false
		}
		s.selectVersion()
		bitLen = s.charBits(mode, 0, r)
	}

	s.dataBitCounter += header()
	s.segments = append(s.segments, &segment{mode: mode})
	s.segCount[mode]++
	return true
}

// selectVersion escalates the symbol's version by one, re-accounting
// every open segment's char-count indicator width across the version
// band boundary, per spec.md §4.3. Ported from Symbol.java's
// selectVersion: num is a count of SEGMENTS of the mode, not
// characters, since each segment carries its own indicator.
func (s *Symbol) selectVersion() {
	for mode := coding.Numeric; mode <= coding.Kanji; mode++ {
		num := s.segCount[mode]
		if num == 0 {
			continue
		}
		oldWidth := coding.CharCountBits(mode, s.version)
		newWidth := coding.CharCountBits(mode, s.version+1)
		s.dataBitCounter += num * (newWidth - oldWidth)
	}

	s.version++
	s.dataBitCapacity = 8 * s.version.TotalDataCodewords(s.parent.level)
	if s.parent.allowStructuredAppend {
		s.dataBitCapacity -= structuredAppendHeaderLen
	}
	if s.version > s.parent.minVersion {
		s.parent.minVersion = s.version
	}
}

// modeAccepts reports whether r can continue the given mode.
func modeAccepts(mode coding.Mode, r rune, charset Charset) bool {
	switch mode {
	case coding.Numeric:
		return coding.NumericAccepts(r)
	case coding.Alphanumeric:
		return coding.AlphanumericAccepts(r)
	case coding.Kanji:
		return coding.KanjiAccepts(r)
	default:
		return charset.accepts(r)
	}
}

// classify picks the most compact mode that accepts r, in the order
// spec.md §4.1 names: Numeric, Alphanumeric, Kanji, Byte.
func classify(r rune, charset Charset) (coding.Mode, bool) {
	switch {
	case coding.NumericAccepts(r):
		return coding.Numeric, true
	case coding.AlphanumericAccepts(r):
		return coding.Alphanumeric, true
	case coding.KanjiAccepts(r):
		return coding.Kanji, true
	case charset.accepts(r):
		return coding.Byte, true
	}
	return 0, false
}

// appendRune attempts to append r to s, selecting or continuing a
// mode per spec.md §4.1's greedy policy: if the currently open
// segment's mode still accepts r, stay in it even if a more compact
// mode is also available (source ambiguity, preserved per spec.md §9).
// It reports whether r fit in s.
func (s *Symbol) appendRune(r rune) (bool, error) {
	if n := len(s.segments); n > 0 && modeAccepts(s.segments[n-1].mode, r, s.parent.charset) {
		return s.tryAppend(r), nil
	}

	mode, ok := classify(r, s.parent.charset)
	if !ok {
		return false, &EncodingFailedError{Char: r, Err: errUnrepresentable}
	}
	if !s.trySetEncodingMode(mode, r) {
		return false, nil
	}
	return s.tryAppend(r), nil
}
