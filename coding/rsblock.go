package coding

// BuildCodewords splits data (which must hold exactly
// v.TotalDataCodewords(level) bytes) into the group-1/group-2 blocks
// standard for (v, level), computes each block's Reed-Solomon EC
// codewords, and interleaves data and EC codewords column-major for
// placement, per spec.md §4.5.
func BuildCodewords(v Version, level Level, data []byte) []byte {
	blocks1, data1, blocks2, data2, ec := v.Blocks(level)
	nblocks := blocks1 + blocks2
	dataBlocks := make([][]byte, nblocks)
	ecBlocks := make([][]byte, nblocks)
	rs := NewRSEncoder(ec)

	off := 0
	for i := 0; i < blocks1; i++ {
		dataBlocks[i] = data[off : off+data1]
		off += data1
	}
	for i := 0; i < blocks2; i++ {
		dataBlocks[blocks1+i] = data[off : off+data2]
		off += data2
	}
	for i, b := range dataBlocks {
		ecBlocks[i] = make([]byte, ec)
		rs.ECC(b, ecBlocks[i])
	}

	out := make([]byte, 0, v.TotalCodewords())
	maxData := data2
	if maxData == 0 {
		maxData = data1
	}
	for col := 0; col < maxData; col++ {
		for _, b := range dataBlocks {
			if col < len(b) {
				out = append(out, b[col])
			}
		}
	}
	for col := 0; col < ec; col++ {
		for _, b := range ecBlocks {
			out = append(out, b[col])
		}
	}
	return out
}
