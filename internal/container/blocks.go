package container

import "encoding/binary"

// GraphicControl is the payload of a graphic control extension (0xF9): the
// frame delay, the disposal method to apply before the next frame, and an
// optional transparent palette index.
type GraphicControl struct {
	DelayCentis      int
	TransparentIndex int // -1 means no transparent index
	Disposal         DisposalMethod
}

// ParseGraphicControl reads a graphic control extension's body starting at
// pos, the position of its block-size byte (immediately after the 0xF9
// label). It consumes through the extension's terminator.
func ParseGraphicControl(data []byte, pos int) (GraphicControl, int, error) {
	if pos >= len(data) {
		return GraphicControl{}, 0, ErrTruncated
	}
	blockSize := int(data[pos])
	pos++
	if pos+blockSize > len(data) {
		return GraphicControl{}, 0, ErrMalformed
	}
	if blockSize < 4 {
		return GraphicControl{}, 0, ErrMalformed
	}
	flags := data[pos]
	delay := int(binary.LittleEndian.Uint16(data[pos+1 : pos+3]))
	transparentIdx := int(data[pos+3])
	pos += blockSize
	if pos >= len(data) {
		return GraphicControl{}, 0, ErrTruncated
	}
	if data[pos] != 0x00 {
		return GraphicControl{}, 0, ErrMalformed
	}
	pos++

	gc := GraphicControl{
		DelayCentis: delay,
		Disposal:    DisposalMethod((flags >> 2) & 0x03),
	}
	if flags&0x01 != 0 {
		gc.TransparentIndex = transparentIdx
	} else {
		gc.TransparentIndex = -1
	}
	return gc, pos, nil
}

// ImageDescriptor is the fixed 10-byte image descriptor (0x2C introducer
// already consumed) together with its optional local color table.
type ImageDescriptor struct {
	Left, Top, Width, Height int
	Interlaced               bool
	LocalPalette             []byte // RGB triples, nil if no local color table
}

// ParseImageDescriptor reads an image descriptor's 9 fixed bytes (left,
// top, width, height, flags) and optional local color table, starting at
// pos (immediately after the 0x2C introducer).
func ParseImageDescriptor(data []byte, pos int) (ImageDescriptor, int, error) {
	if pos+9 > len(data) {
		return ImageDescriptor{}, 0, ErrTruncated
	}
	id := ImageDescriptor{
		Left:   int(binary.LittleEndian.Uint16(data[pos : pos+2])),
		Top:    int(binary.LittleEndian.Uint16(data[pos+2 : pos+4])),
		Width:  int(binary.LittleEndian.Uint16(data[pos+4 : pos+6])),
		Height: int(binary.LittleEndian.Uint16(data[pos+6 : pos+8])),
	}
	flags := data[pos+8]
	id.Interlaced = flags&0x40 != 0
	pos += 9
	if flags&0x80 != 0 {
		size := 2 << uint(flags&0x07)
		pal, next, err := ReadPalette(data, pos, size)
		if err != nil {
			return ImageDescriptor{}, 0, err
		}
		id.LocalPalette = pal
		pos = next
	}
	return id, pos, nil
}

// SkipSubBlockChain advances past a chain of length-prefixed sub-blocks
// starting at pos without retaining their contents, returning the position
// just past the zero-length terminator.
func SkipSubBlockChain(data []byte, pos int) (int, error) {
	for {
		if pos >= len(data) {
			return 0, ErrTruncated
		}
		n := int(data[pos])
		next := pos + 1 + n
		if next > len(data) {
			return 0, ErrMalformed
		}
		pos = next
		if n == 0 {
			return pos, nil
		}
	}
}

// SkipImageData advances past an image descriptor's min-code-size byte and
// LZW sub-block chain without decoding it, returning the position just past
// the chain's terminator. Shared by callers that need to step over an
// image block's pixel data without running the LZW engine over it: a
// zero-sized image descriptor that produces no frame, and Probe's
// cheap parse-only walk.
func SkipImageData(data []byte, pos int) (int, error) {
	if pos >= len(data) {
		return 0, ErrTruncated
	}
	pos++ // min code size byte
	return SkipSubBlockChain(data, pos)
}

// ReadSubBlockChain reads and concatenates a chain of length-prefixed
// sub-blocks starting at pos, returning the combined payload and the
// position just past the zero-length terminator. Used for extension bodies
// (comment, plain text, application) small enough to buffer wholesale.
func ReadSubBlockChain(data []byte, pos int) ([]byte, int, error) {
	var payload []byte
	for {
		if pos >= len(data) {
			return nil, 0, ErrTruncated
		}
		n := int(data[pos])
		pos++
		if n == 0 {
			return payload, pos, nil
		}
		if pos+n > len(data) {
			return nil, 0, ErrMalformed
		}
		payload = append(payload, data[pos:pos+n]...)
		pos += n
	}
}
