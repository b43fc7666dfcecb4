// Package lzw implements the variable-width LZW dictionary decoder used by
// GIF image data: a growing code table fed by a bit reader, emitting
// decoded palette indices to a sink in order. The table-growth shape
// mirrors a backward-reference entropy decode loop (read symbol,
// bounds-check, copy/emit, extend table) generalized from byte-pair
// dictionary coding to GIF's pure LZW.
package lzw

import (
	"errors"
	"sync"

	"github.com/SchwartzKamel/mgGif/internal/bitio"
)

// ErrBitstream wraps bit-reader errors surfaced while decoding LZW codes,
// giving callers a single error to match against regardless of whether the
// underlying cause was truncation or a malformed sub-block.
var ErrBitstream = errors.New("lzw: bitstream error")

// Sink receives decoded palette indices in order. Emit returns false to
// tell the decoder the destination no longer wants further pixels for this
// image; Decode keeps draining codes through the end-of-information code
// regardless, so the caller's bit reader stays correctly positioned for
// whatever follows.
type Sink interface {
	Emit(index byte) bool
}

var dictPool = sync.Pool{New: func() any { return newDictionary() }}

// Decode runs the LZW dictionary engine over r, starting at minCodeSize,
// feeding each decoded palette index to sink in order until the
// end-of-information code is read.
func Decode(r *bitio.Reader, minCodeSize byte, sink Sink) error {
	if minCodeSize > 11 {
		minCodeSize = 11
	}

	d := dictPool.Get().(*dictionary)
	defer dictPool.Put(d)
	d.reset(minCodeSize)

	clearCode := uint16(1) << minCodeSize
	endCode := clearCode + 1
	codeWidth := int(minCodeSize) + 1

	prev := -1   // no previous code yet
	stopped := false // sink asked to stop; keep draining without emitting

	for {
		code, err := r.ReadCode(codeWidth)
		if err != nil {
			return ErrBitstream
		}

		if code == clearCode {
			d.reset(minCodeSize)
			codeWidth = int(minCodeSize) + 1
			prev = -1
			continue
		}
		if code == endCode {
			return nil
		}

		var seq []byte
		var k byte
		kwkwk := false
		switch {
		case int(code) < d.size:
			seq = d.sequence(int(code))
			k = seq[0]
		case int(code) == d.size && prev >= 0:
			seq = d.sequence(prev)
			k = seq[0]
			kwkwk = true
		default:
			// Larger code with no usable previous entry: tolerated,
			// silently skipped.
			continue
		}

		if !stopped {
			for _, b := range seq {
				if !sink.Emit(b) {
					stopped = true
					break
				}
			}
			if kwkwk && !stopped {
				if !sink.Emit(k) {
					stopped = true
				}
			}
		}

		if prev >= 0 && d.size < maxDictSize {
			d.append(prev, k)
			if d.size == 1<<uint(codeWidth) && codeWidth < maxCodeWidth {
				codeWidth++
			}
		}
		prev = int(code)
	}
}
