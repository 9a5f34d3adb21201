package coding

import "testing"

func TestBuildCodewordsSingleBlock(t *testing.T) {
	// Version 1-Q: single block, 13 data + 13 EC codewords.
	v := Version(1)
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236}
	if got := v.TotalDataCodewords(Q); got != len(data) {
		t.Fatalf("TotalDataCodewords(Q) = %d, want %d", got, len(data))
	}
	out := BuildCodewords(v, Q, data)
	if len(out) != v.TotalCodewords() {
		t.Fatalf("len(out) = %d, want %d", len(out), v.TotalCodewords())
	}
	for i, d := range data {
		if out[i] != d {
			t.Errorf("out[%d] = %d, want data byte %d", i, out[i], d)
		}
	}
}

func TestBuildCodewordsInterleavesTwoGroups(t *testing.T) {
	// Version 5-Q: group 1 has 2 blocks of 15, group 2 has 2 blocks of 16.
	v := Version(5)
	data := make([]byte, v.TotalDataCodewords(Q))
	for i := range data {
		data[i] = byte(i)
	}
	out := BuildCodewords(v, Q, data)
	if len(out) != v.TotalCodewords() {
		t.Fatalf("len(out) = %d, want %d", len(out), v.TotalCodewords())
	}
	// First codeword of each of the 4 blocks, in block order, then
	// second codeword of each, etc: block i, group1 starts at i*15.
	wantFirstCol := []byte{data[0], data[15], data[30], data[46]}
	for i, want := range wantFirstCol {
		if out[i] != want {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want)
		}
	}
}
