package mggif

// Hand-built GIF byte-stream fixtures. Because no encoder is available
// here, every fixture is constructed field-by-field and its LZW payload
// is traced code-by-code against internal/lzw's documented algorithm
// (direct single-symbol codes below the initial dictionary size need no
// CLEAR and grow the dictionary in a fully predictable way), the same
// style internal/lzw's own packVariableWidth test helper uses.

func le16(v int) []byte { return []byte{byte(v), byte(v >> 8)} }

// packCodeStream packs codes where codes[i] is written with widths[i]
// bits, LSB-first, into one or more length-prefixed sub-blocks followed
// by the zero-length terminator.
func packCodeStream(codes []uint16, widths []int) []byte {
	var bitBuf uint32
	var bitCnt uint
	var raw []byte
	for i, c := range codes {
		w := uint(widths[i])
		bitBuf |= uint32(c) << bitCnt
		bitCnt += w
		for bitCnt >= 8 {
			raw = append(raw, byte(bitBuf))
			bitBuf >>= 8
			bitCnt -= 8
		}
	}
	if bitCnt > 0 {
		raw = append(raw, byte(bitBuf))
	}
	var out []byte
	for len(raw) > 255 {
		out = append(out, 255)
		out = append(out, raw[:255]...)
		raw = raw[255:]
	}
	out = append(out, byte(len(raw)))
	out = append(out, raw...)
	out = append(out, 0x00)
	return out
}

// buildImageData returns a complete image-data block: the min-code-size
// byte followed by the packed sub-block chain.
func buildImageData(minCodeSize byte, codes []uint16, widths []int) []byte {
	out := []byte{minCodeSize}
	return append(out, packCodeStream(codes, widths)...)
}

func paletteSizeCode(n int) byte {
	switch n {
	case 2:
		return 0
	case 4:
		return 1
	case 8:
		return 2
	case 16:
		return 3
	default:
		return 7
	}
}

func buildHeader(width, height, bgIndex int, globalPalette []byte) []byte {
	buf := []byte("GIF89a")
	buf = append(buf, le16(width)...)
	buf = append(buf, le16(height)...)
	var flags byte
	if globalPalette != nil {
		flags |= 0x80
		flags |= paletteSizeCode(len(globalPalette) / 3)
	}
	buf = append(buf, flags, byte(bgIndex), 0)
	if globalPalette != nil {
		buf = append(buf, globalPalette...)
	}
	return buf
}

func imageDescriptorBytes(left, top, width, height int, interlaced bool, localPalette []byte) []byte {
	var flags byte
	if localPalette != nil {
		flags |= 0x80
		flags |= paletteSizeCode(len(localPalette) / 3)
	}
	if interlaced {
		flags |= 0x40
	}
	buf := []byte{0x2C}
	buf = append(buf, le16(left)...)
	buf = append(buf, le16(top)...)
	buf = append(buf, le16(width)...)
	buf = append(buf, le16(height)...)
	buf = append(buf, flags)
	if localPalette != nil {
		buf = append(buf, localPalette...)
	}
	return buf
}

func gceBytes(delayCentis, transparentIndex, disposal int) []byte {
	flags := byte(disposal&0x03) << 2
	var transByte byte
	if transparentIndex >= 0 {
		flags |= 0x01
		transByte = byte(transparentIndex)
	}
	return []byte{0x21, 0xF9, 4, flags, byte(delayCentis), byte(delayCentis >> 8), transByte, 0x00}
}
