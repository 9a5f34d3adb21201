package qrsymbol

import "github.com/vvdqr/qrsymbol/coding"

// ensureBuilt assembles the message bit stream, Reed-Solomon
// codewords, module matrix and best mask the first time it is
// called, caching the result: rendering reads sealed symbols only,
// per spec.md §3's lifecycle note.
func (s *Symbol) ensureBuilt() (*coding.Matrix, error) {
	if s.matrix != nil {
		return s.matrix, nil
	}

	data, err := s.messageBytes()
	if err != nil {
		return nil, err
	}

	codewords := coding.BuildCodewords(s.version, s.parent.level, data)

	base := coding.Build(s.version)
	base.PlaceData(codewords)

	mask, masked := coding.BestMask(base)
	masked.WriteFormatInfo(coding.FormatInfo(s.parent.level, mask))
	masked.WriteVersionInfo(s.version, coding.VersionInfo(s.version))

	s.matrix = masked
	s.mask = mask
	return s.matrix, nil
}

// ModuleMatrix returns the symbol's N x N module grid, where N is
// 17+4*version. Cell values follow spec.md §3: ±1 dark/light data,
// ±2 dark/light function pattern; no 0 remains after masking.
func (s *Symbol) ModuleMatrix() ([][]int, error) {
	m, err := s.ensureBuilt()
	if err != nil {
		return nil, err
	}
	grid := make([][]int, m.Size)
	for r := range grid {
		row := make([]int, m.Size)
		for c := range row {
			row[c] = int(m.At(r, c))
		}
		grid[r] = row
	}
	return grid, nil
}
