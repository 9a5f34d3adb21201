package qrsymbol

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Charset selects the byte-mode character set used to turn input
// runes into Byte-mode codewords, per spec.md §4.1/§6.
type Charset int

const (
	// ISO8859_1 is the default byte-mode charset: it can encode all
	// of ASCII and every Latin-1 character as a single byte.
	ISO8859_1 Charset = iota
	UTF8
	ShiftJIS
)

// String names the charset the way the constructor's charset
// parameter accepts it, per spec.md §6 ("ISO-8859-1").
func (c Charset) String() string {
	switch c {
	case ISO8859_1:
		return "ISO-8859-1"
	case UTF8:
		return "UTF-8"
	case ShiftJIS:
		return "Shift-JIS"
	}
	return "unknown"
}

// ParseCharset recognizes the charset names spec.md §6 and §7 call
// out: "ISO-8859-1", "UTF-8" and "Shift-JIS" (case-insensitive).
func ParseCharset(name string) (Charset, bool) {
	switch strings.ToLower(name) {
	case "iso-8859-1", "latin1":
		return ISO8859_1, true
	case "utf-8", "utf8":
		return UTF8, true
	case "shift-jis", "shiftjis", "sjis":
		return ShiftJIS, true
	}
	return 0, false
}

// encode transforms a single rune into its Byte-mode codeword bytes.
func (c Charset) encode(r rune) ([]byte, error) {
	s := string(r)
	switch c {
	case UTF8:
		return []byte(s), nil
	case ShiftJIS:
		return japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	default:
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	}
}

// accepts reports whether r can be represented in c.
func (c Charset) accepts(r rune) bool {
	_, err := c.encode(r)
	return err == nil
}
