package mggif

import "github.com/SchwartzKamel/mgGif/internal/container"

// pixelPlacer implements lzw.Sink, writing each decoded palette index into
// the canvas at its row-major position inside the frame rectangle. It
// tracks both rowEnd (where the column cursor wraps to the next row) and
// safeEnd (the rightmost column actually in-screen) so that clipped
// columns still advance the cursor without ever indexing the canvas out
// of bounds, matching the loop-hoisted bounds-check avoidance the source's
// pointer-arithmetic hot loop relies on.
//
// Coordinate convention: row 0 of the frame rectangle is placed at the
// top of the canvas (destRow = top + frameRow), not the bottom-up layout
// the format's reference decoder uses; spec §4.3 permits this flip as
// long as tests agree with the chosen convention.
type pixelPlacer struct {
	output           []byte
	screenW, screenH int

	left, top, width, height int
	rowEnd, safeEnd          int

	palette          []Color
	transparentIndex int // -1 disables transparency

	interlaced  bool
	passOrder   []int
	emissionRow int
	col         int
	destRow     int
	stopped     bool
}

func newPixelPlacer(output []byte, screenW, screenH int, id container.ImageDescriptor, palette []Color, transparentIndex int) *pixelPlacer {
	p := &pixelPlacer{
		output:           output,
		screenW:          screenW,
		screenH:          screenH,
		left:             id.Left,
		top:              id.Top,
		width:            id.Width,
		height:           id.Height,
		palette:          palette,
		transparentIndex: transparentIndex,
		interlaced:       id.Interlaced,
	}
	p.rowEnd = id.Left + id.Width
	p.safeEnd = p.rowEnd
	if p.safeEnd > screenW {
		p.safeEnd = screenW
	}
	if id.Interlaced {
		p.passOrder = interlaceRowOrder(id.Height)
	}
	p.col = id.Left
	p.destRow = p.destRowFor(0)
	if p.destRow >= screenH {
		p.stopped = true
	}
	return p
}

func (p *pixelPlacer) destRowFor(emissionRow int) int {
	frameRow := emissionRow
	if p.interlaced {
		frameRow = p.passOrder[emissionRow]
	}
	return p.top + frameRow
}

// Emit writes one decoded palette index, then advances the cursor. It
// returns false once the frame rectangle (clipped to the screen) has been
// fully written, telling the LZW engine this sink wants no more pixels
// for this image -- it must still keep draining codes through END.
func (p *pixelPlacer) Emit(index byte) bool {
	if p.stopped {
		return false
	}

	if p.col < p.safeEnd && p.destRow < p.screenH && (p.transparentIndex < 0 || int(index) != p.transparentIndex) {
		p.writePixel(p.col, p.destRow, index)
	}

	p.col++
	if p.col >= p.rowEnd {
		p.col = p.left
		p.emissionRow++
		if p.emissionRow >= p.height {
			p.stopped = true
			return false
		}
		p.destRow = p.destRowFor(p.emissionRow)
		// Interlaced rows arrive out of order, so a later pass may still
		// land on screen; only a progressive frame can stop here.
		if p.destRow >= p.screenH && !p.interlaced {
			p.stopped = true
			return false
		}
	}
	return true
}

func (p *pixelPlacer) writePixel(x, y int, index byte) {
	if int(index) >= len(p.palette) {
		return
	}
	c := p.palette[index]
	off := (y*p.screenW + x) * 4
	p.output[off] = c.R
	p.output[off+1] = c.G
	p.output[off+2] = c.B
	p.output[off+3] = c.A
}
