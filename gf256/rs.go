package gf256

// RSEncoder computes Reed–Solomon error correction codewords over a
// Field using a fixed-degree generator polynomial.
type RSEncoder struct {
	field *Field
	gen   []byte // generator coefficients, excluding the implicit leading 1, gen[0] is the x^(check-1) term
}

// NewRSEncoder returns an RSEncoder producing check EC codewords,
// using the generator polynomial
//
//	g(x) = (x - α^0)(x - α^1)...(x - α^(check-1))
//
// as described by ISO/IEC 18004 and spec.md §4.5.
func NewRSEncoder(f *Field, check int) *RSEncoder {
	gen := make([]byte, check)
	gen[check-1] = 1
	for n := 0; n < check; n++ {
		root := f.Exp(n)
		for j := 0; j < check; j++ {
			gen[j] = f.Mul(gen[j], root)
			if j+1 < check {
				gen[j] ^= gen[j+1]
			}
		}
	}
	return &RSEncoder{field: f, gen: gen}
}

// ECC computes len(dst) error correction codewords for data and
// writes them to dst. len(dst) must equal the check value the
// RSEncoder was constructed with.
func (e *RSEncoder) ECC(data []byte, dst []byte) {
	check := len(e.gen)
	if len(dst) != check {
		panic("gf256: dst length does not match generator degree")
	}
	reg := make([]byte, check)
	for _, d := range data {
		factor := d ^ reg[0]
		copy(reg, reg[1:])
		reg[check-1] = 0
		if factor != 0 {
			for i, g := range e.gen {
				reg[i] ^= e.field.Mul(g, factor)
			}
		}
	}
	copy(dst, reg)
}
