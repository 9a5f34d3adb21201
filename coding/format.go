package coding

// ecIndicator maps an error correction level to the 2-bit value used
// in format information, per ISO/IEC 18004 table 25. Note the mapping
// is not in Level's natural order.
var ecIndicator = [4]uint32{
	L: 0x1,
	M: 0x0,
	Q: 0x3,
	H: 0x2,
}

const (
	formatPoly = 0x537  // generator polynomial for BCH(15,5), degree 10
	formatMask = 0x5412 // XOR mask applied to the raw format codeword
	versionPoly = 0x1f25 // generator polynomial for BCH(18,6), degree 12
)

// bchRemainder performs binary polynomial division of (data << eccBits)
// by poly and returns the eccBits-bit remainder, the standard method
// used to compute both the format and version BCH error correction
// bits (ISO/IEC 18004 Annex C and D).
func bchRemainder(data uint32, dataBits int, poly uint32, eccBits int) uint32 {
	reg := data << uint(eccBits)
	top := uint32(1) << uint(dataBits+eccBits-1)
	for i := dataBits + eccBits - 1; i >= eccBits; i-- {
		if reg&top != 0 {
			reg ^= poly << uint(i-eccBits)
		}
		top >>= 1
	}
	return reg & (1<<uint(eccBits) - 1)
}

// FormatInfo returns the 15-bit format information codeword for the
// given error correction level and mask pattern (0-7), masked per
// spec.md §4.7.
func FormatInfo(level Level, mask int) uint32 {
	data := ecIndicator[level]<<3 | uint32(mask)
	rem := bchRemainder(data, 5, formatPoly, 10)
	return (data<<10 | rem) ^ formatMask
}

// VersionInfo returns the 18-bit version information codeword for
// version v, only meaningful (and only placed in the symbol) for
// v >= 7, per spec.md §4.7.
func VersionInfo(v Version) uint32 {
	data := uint32(v)
	rem := bchRemainder(data, 6, versionPoly, 12)
	return data<<12 | rem
}
