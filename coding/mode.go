package coding

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Mode is one of the four QR encoding modes spec.md names. Numeric,
// Alphanumeric, Byte (with a single fixed byte charset) and Kanji are
// the only modes this encoder implements; ECI is not supported. This
// matches the teacher's four-mode core before its split/ package
// layers on pluggable charsets.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	case Kanji:
		return "kanji"
	}
	return "invalid"
}

// Indicator returns the 4-bit mode indicator written ahead of a
// segment's character count, per ISO/IEC 18004 table 2.
func (m Mode) Indicator() uint32 {
	switch m {
	case Numeric:
		return 0x1
	case Alphanumeric:
		return 0x2
	case Byte:
		return 0x4
	case Kanji:
		return 0x8
	}
	panic("coding: invalid mode")
}

const alnumCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alnumIndex returns the Alphanumeric mode code value of c, or -1 if c
// is not a member of the 45-character Alphanumeric charset.
func alnumIndex(c byte) int {
	for i := 0; i < len(alnumCharset); i++ {
		if alnumCharset[i] == c {
			return i
		}
	}
	return -1
}

// NumericAccepts reports whether r can be encoded in Numeric mode.
func NumericAccepts(r rune) bool { return r >= '0' && r <= '9' }

// AlphanumericAccepts reports whether r can be encoded in
// Alphanumeric mode.
func AlphanumericAccepts(r rune) bool {
	return r < 128 && alnumIndex(byte(r)) >= 0
}

// KanjiAccepts reports whether r round-trips through Shift-JIS as a
// two-byte character whose lead byte falls in the ranges JIS X 0208
// reserves for double-byte kanji/kana (0x81-0x9F or 0xE0-0xEB), per
// spec.md §4.1's own definition of Kanji mode acceptance. Porting the
// teacher's generated jis0208qr classification table was not possible
// since the JIS index file gen.go fetches it from was unavailable, so
// acceptance is instead derived directly from the encoded form.
func KanjiAccepts(r rune) bool {
	_, ok := kanjiValue(r)
	return ok
}

func kanjiValue(r rune) (uint32, bool) {
	enc := japanese.ShiftJIS.NewEncoder()
	p, err := enc.Bytes([]byte(string(r)))
	if err != nil || len(p) != 2 {
		return 0, false
	}
	b1, b2 := p[0], p[1]
	var base uint32
	switch {
	case b1 >= 0x81 && b1 <= 0x9f:
		base = 0x8140
	case b1 >= 0xe0 && b1 <= 0xeb:
		base = 0xc140
	default:
		return 0, false
	}
	if b2 < 0x40 || b2 == 0x7f || b2 > 0xfc {
		return 0, false
	}
	v := uint32(b1)<<8 | uint32(b2)
	v -= base
	hi, lo := v>>8, v&0xff
	return hi*0xc0 + lo, true
}

// NumericSegmentBits returns the number of data bits a run of n
// consecutive Numeric-mode characters occupies: 10 bits per full
// group of three digits, plus 7 or 4 bits for a trailing group of two
// or one.
func NumericSegmentBits(n int) int {
	bits := (n / 3) * 10
	switch n % 3 {
	case 1:
		bits += 4
	case 2:
		bits += 7
	}
	return bits
}

// AlphanumericSegmentBits returns the number of data bits a run of n
// consecutive Alphanumeric-mode characters occupies: 11 bits per pair,
// plus 6 bits for a trailing single character.
func AlphanumericSegmentBits(n int) int {
	bits := (n / 2) * 11
	if n%2 == 1 {
		bits += 6
	}
	return bits
}

// ByteSegmentBits returns the number of data bits n encoded bytes
// occupy: 8 bits each.
func ByteSegmentBits(n int) int { return n * 8 }

// KanjiSegmentBits returns the number of data bits a run of n
// consecutive Kanji-mode characters occupies: 13 bits each.
func KanjiSegmentBits(n int) int { return n * 13 }

// EncodeNumeric writes s, which must consist only of ASCII digits, to
// b in Numeric mode: groups of three digits as 10 bits, a final pair
// as 7 bits, a final single digit as 4 bits.
func EncodeNumeric(b *Bits, s string) {
	for i := 0; i < len(s); {
		switch rem := len(s) - i; {
		case rem >= 3:
			v := uint32(s[i]-'0')*100 + uint32(s[i+1]-'0')*10 + uint32(s[i+2]-'0')
			b.WriteBits(v, 10)
			i += 3
		case rem == 2:
			v := uint32(s[i]-'0')*10 + uint32(s[i+1]-'0')
			b.WriteBits(v, 7)
			i += 2
		default:
			b.WriteBits(uint32(s[i]-'0'), 4)
			i++
		}
	}
}

// EncodeAlphanumeric writes s, which must consist only of characters
// in the Alphanumeric charset, to b: pairs of characters as 11 bits
// (c1*45+c2), a final single character as 6 bits.
func EncodeAlphanumeric(b *Bits, s string) {
	for i := 0; i < len(s); {
		if len(s)-i >= 2 {
			v := uint32(alnumIndex(s[i]))*45 + uint32(alnumIndex(s[i+1]))
			b.WriteBits(v, 11)
			i += 2
		} else {
			b.WriteBits(uint32(alnumIndex(s[i])), 6)
			i++
		}
	}
}

// EncodeByte writes data to b verbatim, 8 bits per byte.
func EncodeByte(b *Bits, data []byte) {
	b.AppendBytes(data)
}

// EncodeKanji writes s, which must consist only of runes accepted by
// KanjiAccepts, to b: 13 bits per character.
func EncodeKanji(b *Bits, s string) {
	for _, r := range s {
		v, ok := kanjiValue(r)
		if !ok {
			panic("coding: EncodeKanji: character not representable in Shift-JIS")
		}
		b.WriteBits(v, 13)
	}
}

// EncodeText transforms s into dst's encoding, returning an error if
// any rune in s cannot be represented. Nothing in this module calls
// it; Byte-mode segments are encoded rune by rune through the root
// package's Charset.
func EncodeText(dst encoding.Encoding, s string) ([]byte, error) {
	return dst.NewEncoder().Bytes([]byte(s))
}
