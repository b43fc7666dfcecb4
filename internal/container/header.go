package container

import "encoding/binary"

// ScreenDescriptor is the fixed 13-byte header block (6-byte signature plus
// the logical screen descriptor) together with the global color table, if
// the descriptor's flags declare one.
type ScreenDescriptor struct {
	Version         string // "GIF87a" or "GIF89a"
	Width, Height   int
	BackgroundIndex int
	GlobalPalette   []byte // RGB triples, nil if no global color table
}

// ParseHeader reads the signature, logical screen descriptor, and optional
// global color table starting at data[0]. It returns the position just
// past whatever was read.
func ParseHeader(data []byte) (ScreenDescriptor, int, error) {
	if len(data) < 13 {
		return ScreenDescriptor{}, 0, ErrHeaderTooShort
	}
	sig := string(data[0:6])
	if sig != "GIF87a" && sig != "GIF89a" {
		return ScreenDescriptor{}, 0, ErrBadSignature
	}
	sd := ScreenDescriptor{
		Version:         sig,
		Width:           int(binary.LittleEndian.Uint16(data[6:8])),
		Height:          int(binary.LittleEndian.Uint16(data[8:10])),
		BackgroundIndex: int(data[11]),
	}
	flags := data[10]
	pos := 13
	if flags&0x80 != 0 {
		size := 2 << uint(flags&0x07)
		pal, next, err := ReadPalette(data, pos, size)
		if err != nil {
			return ScreenDescriptor{}, 0, err
		}
		sd.GlobalPalette = pal
		pos = next
	}
	return sd, pos, nil
}

// ReadPalette reads numColors RGB triples starting at pos.
func ReadPalette(data []byte, pos, numColors int) ([]byte, int, error) {
	n := numColors * 3
	if pos+n > len(data) {
		return nil, 0, ErrTruncated
	}
	pal := make([]byte, n)
	copy(pal, data[pos:pos+n])
	return pal, pos + n, nil
}
