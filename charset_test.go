package qrsymbol

import "testing"

func TestParseCharset(t *testing.T) {
	cases := map[string]Charset{
		"ISO-8859-1": ISO8859_1,
		"UTF-8":      UTF8,
		"Shift-JIS":  ShiftJIS,
		"sjis":       ShiftJIS,
	}
	for name, want := range cases {
		got, ok := ParseCharset(name)
		if !ok || got != want {
			t.Errorf("ParseCharset(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := ParseCharset("EBCDIC"); ok {
		t.Error("ParseCharset(\"EBCDIC\") = true, want false")
	}
}

func TestCharsetAccepts(t *testing.T) {
	if !ISO8859_1.accepts('A') {
		t.Error("ISO8859_1 should accept 'A'")
	}
	if ISO8859_1.accepts('日') {
		t.Error("ISO8859_1 should not accept '日'")
	}
	if !UTF8.accepts('日') {
		t.Error("UTF8 should accept '日'")
	}
	if !ShiftJIS.accepts('日') {
		t.Error("ShiftJIS should accept '日'")
	}
}

func TestCharsetEncode(t *testing.T) {
	b, err := ISO8859_1.encode('A')
	if err != nil || len(b) != 1 || b[0] != 'A' {
		t.Errorf("ISO8859_1.encode('A') = %v, %v", b, err)
	}
	b, err = UTF8.encode('日')
	if err != nil || len(b) != 3 {
		t.Errorf("UTF8.encode('日') len = %d, want 3, err %v", len(b), err)
	}
}
