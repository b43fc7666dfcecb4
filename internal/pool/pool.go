// Package pool recycles the RGBA framebuffer byte slices a decoder's canvas
// and disposal-snapshot buffers need across their lifetime. Unlike a pool
// that has to serve many differently-shaped scratch buffers out of the same
// process (Huffman tables, row buffers, varying tile dimensions), a single
// mggif.Decoder only ever asks for exactly one size -- its logical screen's
// Width*Height*4 -- twice (the canvas and its disposal snapshot), and a
// process decoding many GIFs back to back sees only a handful of distinct
// screen sizes in practice. So this pool keys directly on the exact
// requested size instead of carrying a multi-class bucket scheme sized for
// a decoder with far more varied buffer shapes.
package pool

import "sync"

// pools maps an exact buffer size to the *sync.Pool serving it. sync.Map
// avoids a mutex on the hot Get/Put path; since real traffic only ever
// touches a handful of distinct screen sizes, the map stays small.
var pools sync.Map

func poolFor(size int) *sync.Pool {
	if p, ok := pools.Load(size); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any {
		b := make([]byte, size)
		return &b
	}}
	actual, _ := pools.LoadOrStore(size, p)
	return actual.(*sync.Pool)
}

// Get returns a zero-filled byte slice of exactly size, drawn from the pool
// keyed on that size. A GIF canvas must start fully transparent (all
// zero), unlike a generic scratch buffer whose caller always overwrites it
// before reading, so Get clears whatever was left behind by the buffer's
// previous owner. The caller must call Put when done.
func Get(size int) []byte {
	if size == 0 {
		return nil
	}
	bp := poolFor(size).Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
	}
	b = b[:size]
	for i := range b {
		b[i] = 0
	}
	return b
}

// Put returns a byte slice to the pool keyed on its capacity. The slice
// must have been obtained from Get.
func Put(b []byte) {
	if len(b) == 0 && cap(b) == 0 {
		return
	}
	size := cap(b)
	b = b[:size]
	poolFor(size).Put(&b)
}
