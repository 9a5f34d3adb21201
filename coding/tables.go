// Package coding implements the low-level QR Code wire-format
// details: capacity and block-layout tables, the bit sequence buffer,
// mode encoders, module matrix placement, masking and the format/version
// BCH codes.
package coding

import "github.com/vvdqr/qrsymbol/gf256"

// Level is a QR error correction level.
type Level int

// Error correction levels, from least to most tolerant of errors.
const (
	L Level = iota // 7% of codewords recoverable
	M              // 15%
	Q              // 25%
	H              // 30%
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return "?"
}

// Version is a QR code version, 1 to 40. A QR code of version v has
// 17+4v modules on a side.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// SizeClass returns the char-count-indicator band for v: 0 for
// versions 1-9, 1 for 10-26, 2 for 27-40.
func (v Version) SizeClass() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}

// Size returns the number of modules on a side of a version v symbol.
func (v Version) Size() int { return 17 + 4*int(v) }

// capacityRow describes the total codewords and per-level EC codeword
// counts for one version. Ported verbatim from the teacher's
// coding/gen.go capacity/eccTable arrays (sourced there from
// qrencode-3.1.1/qrspec.c), which are themselves a direct transcription
// of ISO/IEC 18004 Annex table entries.
type capacityRow struct {
	words int    // total codewords (data + EC)
	ec     [4]int // total EC codewords per level [L,M,Q,H]
	blocks [4][2]int // [level] = {blocks in group 1, blocks in group 2}
}

var capacity = [41]capacityRow{
	{},
	{26, [4]int{7, 10, 13, 17}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{44, [4]int{10, 16, 22, 28}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{70, [4]int{15, 26, 36, 44}, [4][2]int{{1, 0}, {1, 0}, {2, 0}, {2, 0}}},
	{100, [4]int{20, 36, 52, 64}, [4][2]int{{1, 0}, {2, 0}, {2, 0}, {4, 0}}},
	{134, [4]int{26, 48, 72, 88}, [4][2]int{{1, 0}, {2, 0}, {2, 2}, {2, 2}}},
	{172, [4]int{36, 64, 96, 112}, [4][2]int{{2, 0}, {4, 0}, {4, 0}, {4, 0}}},
	{196, [4]int{40, 72, 108, 130}, [4][2]int{{2, 0}, {4, 0}, {2, 4}, {4, 1}}},
	{242, [4]int{48, 88, 132, 156}, [4][2]int{{2, 0}, {2, 2}, {4, 2}, {4, 2}}},
	{292, [4]int{60, 110, 160, 192}, [4][2]int{{2, 0}, {3, 2}, {4, 4}, {4, 4}}},
	{346, [4]int{72, 130, 192, 224}, [4][2]int{{2, 2}, {4, 1}, {6, 2}, {6, 2}}}, // 10
	{404, [4]int{80, 150, 224, 264}, [4][2]int{{4, 0}, {1, 4}, {4, 4}, {3, 8}}},
	{466, [4]int{96, 176, 260, 308}, [4][2]int{{2, 2}, {6, 2}, {4, 6}, {7, 4}}},
	{532, [4]int{104, 198, 288, 352}, [4][2]int{{4, 0}, {8, 1}, {8, 4}, {12, 4}}},
	{581, [4]int{120, 216, 320, 384}, [4][2]int{{3, 1}, {4, 5}, {11, 5}, {11, 5}}},
	{655, [4]int{132, 240, 360, 432}, [4][2]int{{5, 1}, {5, 5}, {5, 7}, {11, 7}}},
	{733, [4]int{144, 280, 408, 480}, [4][2]int{{5, 1}, {7, 3}, {15, 2}, {3, 13}}},
	{815, [4]int{168, 308, 448, 532}, [4][2]int{{1, 5}, {10, 1}, {1, 15}, {2, 17}}},
	{901, [4]int{180, 338, 504, 588}, [4][2]int{{5, 1}, {9, 4}, {17, 1}, {2, 19}}},
	{991, [4]int{196, 364, 546, 650}, [4][2]int{{3, 4}, {3, 11}, {17, 4}, {9, 16}}},
	{1085, [4]int{224, 416, 600, 700}, [4][2]int{{3, 5}, {3, 13}, {15, 5}, {15, 10}}}, // 20
	{1156, [4]int{224, 442, 644, 750}, [4][2]int{{4, 4}, {17, 0}, {17, 6}, {19, 6}}},
	{1258, [4]int{252, 476, 690, 816}, [4][2]int{{2, 7}, {17, 0}, {7, 16}, {34, 0}}},
	{1364, [4]int{270, 504, 750, 900}, [4][2]int{{4, 5}, {4, 14}, {11, 14}, {16, 14}}},
	{1474, [4]int{300, 560, 810, 960}, [4][2]int{{6, 4}, {6, 14}, {11, 16}, {30, 2}}},
	{1588, [4]int{312, 588, 870, 1050}, [4][2]int{{8, 4}, {8, 13}, {7, 22}, {22, 13}}},
	{1706, [4]int{336, 644, 952, 1110}, [4][2]int{{10, 2}, {19, 4}, {28, 6}, {33, 4}}},
	{1828, [4]int{360, 700, 1020, 1200}, [4][2]int{{8, 4}, {22, 3}, {8, 26}, {12, 28}}},
	{1921, [4]int{390, 728, 1050, 1260}, [4][2]int{{3, 10}, {3, 23}, {4, 31}, {11, 31}}},
	{2051, [4]int{420, 784, 1140, 1350}, [4][2]int{{7, 7}, {21, 7}, {1, 37}, {19, 26}}},
	{2185, [4]int{450, 812, 1200, 1440}, [4][2]int{{5, 10}, {19, 10}, {15, 25}, {23, 25}}}, // 30
	{2323, [4]int{480, 868, 1290, 1530}, [4][2]int{{13, 3}, {2, 29}, {42, 1}, {23, 28}}},
	{2465, [4]int{510, 924, 1350, 1620}, [4][2]int{{17, 0}, {10, 23}, {10, 35}, {19, 35}}},
	{2611, [4]int{540, 980, 1440, 1710}, [4][2]int{{17, 1}, {14, 21}, {29, 19}, {11, 46}}},
	{2761, [4]int{570, 1036, 1530, 1800}, [4][2]int{{13, 6}, {14, 23}, {44, 7}, {59, 1}}},
	{2876, [4]int{570, 1064, 1590, 1890}, [4][2]int{{12, 7}, {12, 26}, {39, 14}, {22, 41}}},
	{3034, [4]int{600, 1120, 1680, 1980}, [4][2]int{{6, 14}, {6, 34}, {46, 10}, {2, 64}}},
	{3196, [4]int{630, 1204, 1770, 2100}, [4][2]int{{17, 4}, {29, 14}, {49, 10}, {24, 46}}},
	{3362, [4]int{660, 1260, 1860, 2220}, [4][2]int{{4, 18}, {13, 32}, {48, 14}, {42, 32}}},
	{3532, [4]int{720, 1316, 1950, 2310}, [4][2]int{{20, 4}, {40, 7}, {43, 22}, {10, 67}}},
	{3706, [4]int{750, 1372, 2040, 2430}, [4][2]int{{19, 6}, {18, 31}, {34, 34}, {20, 61}}}, // 40
}

// blockLayout describes the group-1/group-2 block structure for a
// version and level.
type blockLayout struct {
	blocks1, data1 int // group 1: block count, data codewords per block
	blocks2, data2 int // group 2: block count, data codewords per block (data1+1), 0 if absent
	ec             int // EC codewords per block (same for both groups)
}

var layouts [41][4]blockLayout

func init() {
	for v := 1; v <= 40; v++ {
		row := &capacity[v]
		for l := 0; l < 4; l++ {
			b1, b2 := row.blocks[l][0], row.blocks[l][1]
			nblocks := b1 + b2
			ec := row.ec[l] / nblocks
			dataTotal := row.words - row.ec[l]
			var d1 int
			if b2 > 0 {
				d1 = (dataTotal - b2) / nblocks
			} else {
				d1 = dataTotal / b1
			}
			lay := blockLayout{blocks1: b1, data1: d1, ec: ec}
			if b2 > 0 {
				lay.blocks2, lay.data2 = b2, d1+1
			}
			layouts[v][l] = lay
		}
	}
}

// TotalCodewords returns the total number of codewords (data and EC)
// for version v.
func (v Version) TotalCodewords() int { return capacity[v].words }

// TotalDataCodewords returns the number of data codewords available
// at version v and level l.
func (v Version) TotalDataCodewords(l Level) int {
	lay := &layouts[v][l]
	return lay.blocks1*lay.data1 + lay.blocks2*lay.data2
}

// Blocks returns the group-1 and group-2 block layout for version v
// and level l: the number of blocks and data codewords per block in
// each group, and the number of EC codewords per block.
func (v Version) Blocks(l Level) (blocks1, data1, blocks2, data2, ec int) {
	lay := &layouts[v][l]
	return lay.blocks1, lay.data1, lay.blocks2, lay.data2, lay.ec
}

// align lists, for each version, the second and (if nonzero) the
// common-difference-defining third alignment pattern axis coordinate.
// Ported verbatim from the teacher's coding/gen.go align table.
var align = [41][2]int{
	{},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1-5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, // 11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, // 16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, // 21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, // 26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, // 31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, // 36-40
}

// AlignmentAxis returns the sorted list of alignment pattern centre
// coordinates shared by both axes for version v, or nil for v==1,
// which has no alignment pattern. The algorithm reconstructs the full
// axis list from the teacher's compact {first, second} representation
// by walking a constant stride from the second entry, mirroring
// coding/gen.go's vplan alignment box loop.
func (v Version) AlignmentAxis() []int {
	if v == 1 {
		return nil
	}
	first, second := align[v][0], align[v][1]
	step := 1 << 30
	if second != 0 {
		step = second - first
	}
	size := v.Size()
	positions := []int{6}
	for x := first; x <= size-7; x += step {
		positions = append(positions, x)
		if second == 0 {
			break
		}
	}
	return positions
}

// charCountBits gives, per mode, the character-count indicator width
// in bits for each size class (0: versions 1-9, 1: 10-26, 2: 27-40).
// Ported from the teacher's ModeEncoder.CountLength arrays in
// coding/qr.go, restricted to the four QR modes spec.md names.
var charCountBits = map[Mode][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}

// CharCountBits returns the character-count indicator width in bits
// for mode at version v.
func CharCountBits(mode Mode, v Version) int {
	return charCountBits[mode][v.SizeClass()]
}

var field = gf256.NewField(0x11d, 2)

// NewRSEncoder returns a Reed-Solomon encoder producing check EC
// codewords over the field used by QR codes (GF(2^8), primitive
// polynomial 0x11D, generator 2).
func NewRSEncoder(check int) *gf256.RSEncoder {
	return gf256.NewRSEncoder(field, check)
}
