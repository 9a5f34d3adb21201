package qrsymbol

import (
	"github.com/vvdqr/qrsymbol/coding"
	"testing"
)

func TestSegmentCharCount(t *testing.T) {
	seg := &segment{mode: coding.Numeric, text: []rune("012345")}
	if got := seg.charCount(ISO8859_1); got != 6 {
		t.Errorf("charCount() = %d, want 6", got)
	}

	byteSeg := &segment{mode: coding.Byte, text: []rune("日")}
	if got := byteSeg.charCount(UTF8); got != 3 {
		t.Errorf("UTF-8 byte segment charCount() = %d, want 3", got)
	}
}

func TestSegmentBitLen(t *testing.T) {
	seg := &segment{mode: coding.Numeric, text: []rune("01234567")}
	if got := seg.bitLen(ISO8859_1); got != 27 {
		t.Errorf("bitLen() = %d, want 27", got)
	}
}

func TestSegmentWritePayload(t *testing.T) {
	seg := &segment{mode: coding.Alphanumeric, text: []rune("HELLO WORLD")}
	var b coding.Bits
	if err := seg.writePayload(&b, ISO8859_1); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 61 {
		t.Errorf("Len() = %d, want 61", b.Len())
	}
}
