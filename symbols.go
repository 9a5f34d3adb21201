package qrsymbol

import (
	"fmt"

	"github.com/vvdqr/qrsymbol/coding"
)

// maxStructuredAppendSymbols is the largest number of symbols a
// structured-append sequence may hold, per spec.md §4.9 (the
// 4-bit total-count-minus-one field caps it at 16).
const maxStructuredAppendSymbols = 16

// Config selects the error-correction level, version range, charset
// and structured-append policy for a Symbols collection. New accepts
// the zero value: a zero MinVersion or MaxVersion stands for 1 or 40,
// and the zero Level is L, not NewConfig's M.
type Config struct {
	Level                 coding.Level
	MinVersion            int
	MaxVersion            int
	ByteModeCharset       Charset
	AllowStructuredAppend bool
}

// NewConfig returns a Config with spec.md §6's defaults: level M,
// version range 1..40, ISO-8859-1 byte mode, structured append
// disabled.
func NewConfig() Config {
	return Config{
		Level:           coding.M,
		MinVersion:      1,
		MaxVersion:      40,
		ByteModeCharset: ISO8859_1,
	}
}

// Symbols is an ordered collection of one or more QR Code symbols
// built from a single input string, split across symbols only when
// structured append is enabled and a single symbol's capacity, even
// at the configured max version, is exceeded.
type Symbols struct {
	symbolList []*Symbol

	level                 coding.Level
	minVersion            coding.Version
	maxVersion            coding.Version
	allowStructuredAppend bool
	charset               Charset

	parity byte
}

// New validates cfg and returns an empty Symbols ready for
// AppendString, per spec.md §6.
func New(cfg Config) (*Symbols, error) {
	if cfg.MinVersion == 0 {
		cfg.MinVersion = 1
	}
	if cfg.MaxVersion == 0 {
		cfg.MaxVersion = 40
	}
	if cfg.MinVersion < 1 || cfg.MinVersion > 40 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("min version %d out of range 1..40", cfg.MinVersion)}
	}
	if cfg.MaxVersion < 1 || cfg.MaxVersion > 40 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("max version %d out of range 1..40", cfg.MaxVersion)}
	}
	if cfg.MinVersion > cfg.MaxVersion {
		return nil, &InvalidArgumentError{Msg: "min version exceeds max version"}
	}
	switch cfg.ByteModeCharset {
	case ISO8859_1, UTF8, ShiftJIS:
	default:
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("unknown byte-mode charset %d", int(cfg.ByteModeCharset))}
	}
	switch cfg.Level {
	case coding.L, coding.M, coding.Q, coding.H:
	default:
		cfg.Level = coding.M
	}
	s := &Symbols{
		level:                 cfg.Level,
		minVersion:            coding.Version(cfg.MinVersion),
		maxVersion:            coding.Version(cfg.MaxVersion),
		allowStructuredAppend: cfg.AllowStructuredAppend,
		charset:               cfg.ByteModeCharset,
	}
	s.symbolList = append(s.symbolList, newSymbol(s))
	return s, nil
}

// Count returns the number of symbols in the collection.
func (s *Symbols) Count() int { return len(s.symbolList) }

// Get returns the i'th symbol, 0-based.
func (s *Symbols) Get(i int) *Symbol { return s.symbolList[i] }

// updateParity XORs r's encoded bytes into the running
// structured-append parity byte, per spec.md §4.4: Shift-JIS bytes
// for Kanji, the configured charset's bytes otherwise.
func (s *Symbols) updateParity(r rune, mode coding.Mode) {
	var enc []byte
	var err error
	if mode == coding.Kanji {
		enc, err = ShiftJIS.encode(r)
	} else {
		enc, err = s.charset.encode(r)
	}
	if err != nil {
		return
	}
	for _, b := range enc {
		s.parity ^= b
	}
}

// currentSymbol is the symbol currently accepting characters: the
// last one in the list. Its sealed flag is not consulted.
func (s *Symbols) currentSymbol() *Symbol {
	return s.symbolList[len(s.symbolList)-1]
}

// segmentModeFor reports the mode r actually landed in within sym,
// after a successful appendRune.
func segmentModeFor(sym *Symbol) coding.Mode {
	return sym.segments[len(sym.segments)-1].mode
}

// AppendString encodes every rune of str into the collection,
// opening new structured-append symbols as needed. Failure is per
// rune: the rune that cannot be encoded or does not fit is not added,
// but the runes of str before it stay appended, and the current
// symbol's version may already have been raised while trying to fit
// it.
func (s *Symbols) AppendString(str string) error {
	for _, r := range str {
		cur := s.currentSymbol()

		ok, err := cur.appendRune(r)
		if err != nil {
			return err
		}
		if ok {
			s.updateParity(r, segmentModeFor(cur))
			continue
		}

		if !s.allowStructuredAppend {
			return &CapacityExceededError{Msg: "input exceeds a single symbol's capacity at the configured max version"}
		}
		if len(s.symbolList) >= maxStructuredAppendSymbols {
			return &CapacityExceededError{Msg: "input requires more than 16 structured-append symbols"}
		}

		cur.sealed = true
		next := newSymbol(s)
		s.symbolList = append(s.symbolList, next)

		ok, err = next.appendRune(r)
		if err != nil {
			s.symbolList = s.symbolList[:len(s.symbolList)-1]
			return err
		}
		if !ok {
			s.symbolList = s.symbolList[:len(s.symbolList)-1]
			return &CapacityExceededError{Msg: "a single character does not fit even in a fresh symbol at the configured max version"}
		}
		s.updateParity(r, segmentModeFor(next))
	}

	for _, sym := range s.symbolList {
		sym.sealed = true
	}
	return nil
}
