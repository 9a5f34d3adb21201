package qrsymbol

import "github.com/vvdqr/qrsymbol/coding"

// writeStructuredAppendHeader writes the structured-append mode
// indicator, this symbol's 0-based position, total-count-minus-one,
// and the parent's running parity byte, per spec.md §4.4.
func (s *Symbol) writeStructuredAppendHeader(b *coding.Bits) {
	const structuredAppendIndicator = 0x3
	b.WriteBits(structuredAppendIndicator, 4)
	b.WriteBits(uint32(s.position), 4)
	b.WriteBits(uint32(len(s.parent.symbolList)-1), 4)
	b.WriteBits(uint32(s.parent.parity), 8)
}

// messageBytes assembles the full data codeword stream: structured
// append header (if the parent holds more than one symbol), each
// segment's mode indicator + char count + payload, a terminator, bit
// padding, and alternating pad codewords, per spec.md §4.4.
func (s *Symbol) messageBytes() ([]byte, error) {
	var b coding.Bits

	if len(s.parent.symbolList) > 1 {
		s.writeStructuredAppendHeader(&b)
	}

	for _, seg := range s.segments {
		b.WriteBits(seg.mode.Indicator(), 4)
		b.WriteBits(uint32(seg.charCount(s.parent.charset)), coding.CharCountBits(seg.mode, s.version))
		if err := seg.writePayload(&b, s.parent.charset); err != nil {
			return nil, err
		}
	}

	totalCap := 8 * s.version.TotalDataCodewords(s.parent.level)

	termLen := totalCap - b.Len()
	if termLen > 4 {
		termLen = 4
	}
	if termLen > 0 {
		b.WriteBits(0, termLen)
	}
	b.Pad()

	flag := true
	for b.Len() < totalCap {
		if flag {
			b.WriteBits(0xec, 8)
		} else {
			b.WriteBits(0x11, 8)
		}
		flag = !flag
	}

	return b.Bytes(), nil
}
