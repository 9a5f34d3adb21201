package qrsymbol

import "github.com/vvdqr/qrsymbol/coding"

// segment is one run of characters encoded in a single mode. Segments
// are immutable once their Symbol is sealed.
type segment struct {
	mode coding.Mode
	text []rune
}

// charCount returns the value written in the segment's character
// count indicator: the character count for Numeric/Alphanumeric/Kanji,
// or the encoded byte count for Byte mode.
func (s *segment) charCount(charset Charset) int {
	if s.mode != coding.Byte {
		return len(s.text)
	}
	n := 0
	for _, r := range s.text {
		b, _ := charset.encode(r)
		n += len(b)
	}
	return n
}

// bitLen returns the total payload bits (excluding the mode and
// char-count indicators) the segment occupies.
func (s *segment) bitLen(charset Charset) int {
	switch s.mode {
	case coding.Numeric:
		return coding.NumericSegmentBits(len(s.text))
	case coding.Alphanumeric:
		return coding.AlphanumericSegmentBits(len(s.text))
	case coding.Kanji:
		return coding.KanjiSegmentBits(len(s.text))
	default:
		return coding.ByteSegmentBits(s.charCount(charset))
	}
}

func (s *segment) writePayload(b *coding.Bits, charset Charset) error {
	switch s.mode {
	case coding.Numeric:
		coding.EncodeNumeric(b, string(s.text))
	case coding.Alphanumeric:
		coding.EncodeAlphanumeric(b, string(s.text))
	case coding.Kanji:
		coding.EncodeKanji(b, string(s.text))
	default:
		for _, r := range s.text {
			enc, err := charset.encode(r)
			if err != nil {
				return &EncodingFailedError{Char: r, Err: err}
			}
			coding.EncodeByte(b, enc)
		}
	}
	return nil
}
