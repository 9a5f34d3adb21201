package dib

import "encoding/binary"

// buildBMP assembles a complete BMP v3 file: a 14-byte file header, a
// 40-byte BITMAPINFOHEADER, an optional palette (bitsPerPixel == 1),
// then the already row-padded, bottom-up pixel data.
func buildBMP(pixels []byte, width, height, bitsPerPixel int, palette []Color) []byte {
	paletteSize := len(palette) * 4
	headerSize := 14 + 40 + paletteSize
	buf := make([]byte, headerSize+len(pixels))

	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:], uint32(headerSize))

	binary.LittleEndian.PutUint32(buf[14:], 40) // BITMAPINFOHEADER size
	binary.LittleEndian.PutUint32(buf[18:], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:], 1) // planes
	binary.LittleEndian.PutUint16(buf[28:], uint16(bitsPerPixel))
	// compression (30:34) stays 0 (uncompressed); image size is 34:38
	binary.LittleEndian.PutUint32(buf[34:], uint32(len(pixels)))
	binary.LittleEndian.PutUint32(buf[46:], uint32(len(palette)))

	off := 54
	for _, c := range palette {
		buf[off], buf[off+1], buf[off+2], buf[off+3] = c.B, c.G, c.R, 0
		off += 4
	}

	copy(buf[headerSize:], pixels)
	return buf
}
