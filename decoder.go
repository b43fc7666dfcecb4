// Package mggif decodes GIF87a and GIF89a images, streaming fully
// composed RGBA frames out of a byte buffer one at a time. The LZW
// sub-block decompressor lives in internal/lzw, the bit-stream reader in
// internal/bitio, and block/header parsing in internal/container; this
// package drives them and owns the persistent compositor state (the
// canvas, the disposal-between-frames discipline, and graphic control
// bookkeeping) the way deepteams-webp's animation package owns canvas
// reconstruction for WebP.
package mggif

import (
	"github.com/SchwartzKamel/mgGif/internal/bitio"
	"github.com/SchwartzKamel/mgGif/internal/container"
	"github.com/SchwartzKamel/mgGif/internal/lzw"
	"github.com/SchwartzKamel/mgGif/internal/pool"
)

// Decoder reads successive frames out of a GIF byte buffer. It is not
// safe for concurrent use; two Decoders over two independent buffers are
// independent and may run in parallel.
type Decoder struct {
	data []byte
	pos  int

	headerParsed  bool
	sd            container.ScreenDescriptor
	globalPalette []Color

	gce           container.GraphicControl
	hasPendingGCE bool

	output    []byte
	previous  []byte
	allocated bool

	pendingDisposal container.DisposalMethod

	loopCount    int
	hasLoopCount bool

	done   bool
	closed bool
}

// NewDecoder constructs a Decoder over data. The header is not parsed
// until the first call to NextFrame or an accessor.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data, pendingDisposal: container.DisposeNone}
}

func (d *Decoder) ensureHeader() error {
	if d.headerParsed {
		return nil
	}
	sd, pos, err := container.ParseHeader(d.data)
	if err != nil {
		return translate("parsing header", err)
	}
	d.sd = sd
	d.pos = pos
	d.globalPalette = colorsFromPalette(sd.GlobalPalette)
	d.headerParsed = true
	return nil
}

// Version returns "GIF87a" or "GIF89a".
func (d *Decoder) Version() (string, error) {
	if err := d.ensureHeader(); err != nil {
		return "", err
	}
	return d.sd.Version, nil
}

// Width returns the logical screen width in pixels.
func (d *Decoder) Width() (int, error) {
	if err := d.ensureHeader(); err != nil {
		return 0, err
	}
	return d.sd.Width, nil
}

// Height returns the logical screen height in pixels.
func (d *Decoder) Height() (int, error) {
	if err := d.ensureHeader(); err != nil {
		return 0, err
	}
	return d.sd.Height, nil
}

// BackgroundColor returns the RGBA of the background palette entry, or
// the zero Color if no global palette was declared.
func (d *Decoder) BackgroundColor() (Color, error) {
	if err := d.ensureHeader(); err != nil {
		return Color{}, err
	}
	if d.sd.BackgroundIndex >= len(d.globalPalette) {
		return Color{}, nil
	}
	return d.globalPalette[d.sd.BackgroundIndex], nil
}

// LoopCount returns the loop count carried by a Netscape 2.0 application
// extension, if one was present before the most recently returned frame.
// The second value is false when no such extension has been seen yet.
// This is a read-only courtesy: loop policy is the caller's, and nothing
// in this package consults the value.
func (d *Decoder) LoopCount() (int, bool) {
	return d.loopCount, d.hasLoopCount
}

// NextFrame returns the next decoded frame, or (nil, nil) once the
// terminator block is reached. Any subsequent call also returns (nil,
// nil). A decode error leaves the Decoder unusable for further frames.
func (d *Decoder) NextFrame() (*Frame, error) {
	if d.done {
		return nil, nil
	}
	if err := d.ensureHeader(); err != nil {
		d.done = true
		return nil, err
	}

	for {
		if d.pos >= len(d.data) {
			d.done = true
			return nil, translate("reading block introducer", container.ErrTruncated)
		}
		introducer := d.data[d.pos]
		d.pos++

		switch introducer {
		case container.BlockTrailer:
			d.done = true
			return nil, nil

		case container.BlockExtension:
			if err := d.handleExtension(); err != nil {
				d.done = true
				return nil, err
			}

		case container.BlockImage:
			frame, err := d.decodeImage()
			if err != nil {
				d.done = true
				return nil, err
			}
			if frame != nil {
				return frame, nil
			}
			// Zero-width/zero-height image descriptor: no frame produced,
			// continue the block loop (spec §4.3, scenario S5).

		default:
			d.done = true
			return nil, translate("reading block introducer", container.ErrUnexpectedBlock)
		}
	}
}

func (d *Decoder) handleExtension() error {
	if d.pos >= len(d.data) {
		return translate("reading extension label", container.ErrTruncated)
	}
	label := d.data[d.pos]
	d.pos++

	if label == container.ExtGraphicControl {
		gce, next, err := container.ParseGraphicControl(d.data, d.pos)
		if err != nil {
			return translate("parsing graphic control extension", err)
		}
		d.gce = gce
		d.hasPendingGCE = true
		d.pos = next
		return nil
	}

	payload, next, err := container.ReadSubBlockChain(d.data, d.pos)
	if err != nil {
		return translate("skipping extension", err)
	}
	d.pos = next
	if label == container.ExtApplication {
		if loop, ok := parseNetscapeLoop(payload); ok {
			d.loopCount = loop
			d.hasLoopCount = true
		}
	}
	return nil
}

// parseNetscapeLoop recognizes the Netscape 2.0 application extension's
// concatenated payload: an 11-byte "NETSCAPE2.0" signature sub-block
// followed by a 3-byte sub-block [0x01][loop lo][loop hi].
func parseNetscapeLoop(payload []byte) (int, bool) {
	if len(payload) < 14 {
		return 0, false
	}
	if string(payload[0:11]) != "NETSCAPE2.0" {
		return 0, false
	}
	if payload[11] != 0x01 {
		return 0, false
	}
	return int(payload[12]) | int(payload[13])<<8, true
}

// decodeImage parses one image descriptor and, unless it declares a zero
// width or height, drives the LZW engine over its sub-block chain and
// composites the result onto the canvas. It returns (nil, nil) for a
// zero-sized descriptor (spec scenario S5): the local palette and image
// data are consumed but no frame is produced, and the pending graphic
// control state (if any) is left intact for the next real image.
func (d *Decoder) decodeImage() (*Frame, error) {
	id, next, err := container.ParseImageDescriptor(d.data, d.pos)
	if err != nil {
		return nil, translate("parsing image descriptor", err)
	}
	d.pos = next

	if id.Width == 0 || id.Height == 0 {
		next, err := d.skipImageData()
		if err != nil {
			return nil, err
		}
		d.pos = next
		return nil, nil
	}

	d.applyDisposal()

	palette := d.globalPalette
	if id.LocalPalette != nil {
		palette = colorsFromPalette(id.LocalPalette)
	}

	transparentIndex := -1
	if d.hasPendingGCE {
		transparentIndex = d.gce.TransparentIndex
	}

	if d.pos >= len(d.data) {
		return nil, translate("reading min code size", container.ErrTruncated)
	}
	minCodeSize := d.data[d.pos]
	d.pos++

	r := bitio.NewReader(d.data, d.pos)
	placer := newPixelPlacer(d.output, d.sd.Width, d.sd.Height, id, palette, transparentIndex)
	if err := lzw.Decode(r, minCodeSize, placer); err != nil {
		return nil, translate("decoding lzw stream", err)
	}

	afterData, err := r.SkipRemaining()
	if err != nil {
		return nil, translate("skipping residual sub-blocks", err)
	}
	d.pos = afterData

	delayMS := 0
	if d.hasPendingGCE {
		delayMS = d.gce.DelayCentis * 10
		d.pendingDisposal = d.gce.Disposal
	} else {
		d.pendingDisposal = container.DisposeNone
	}
	d.hasPendingGCE = false
	d.gce = container.GraphicControl{}

	return &Frame{
		Width:   d.sd.Width,
		Height:  d.sd.Height,
		DelayMS: delayMS,
		Pix:     append([]byte(nil), d.output...),
	}, nil
}

// skipImageData consumes the min-code-size byte and LZW sub-block chain
// of an image descriptor that produces no frame.
func (d *Decoder) skipImageData() (int, error) {
	next, err := container.SkipImageData(d.data, d.pos)
	if err != nil {
		return 0, translate("skipping image data", err)
	}
	return next, nil
}

// applyDisposal applies the disposal method recorded for the previously
// emitted frame, per spec §4.3: None/Keep leave the canvas as-is and
// snapshot it into previous; RestoreBackground clears the canvas to
// zero; RestorePrevious restores the last snapshot without updating it.
// On the very first frame the canvas and snapshot buffers are allocated
// here, already zero-filled by the pool.
func (d *Decoder) applyDisposal() {
	size := d.sd.Width * d.sd.Height * 4
	if !d.allocated {
		d.output = pool.Get(size)
		d.previous = pool.Get(size)
		d.allocated = true
		return
	}
	switch d.pendingDisposal {
	case container.DisposeRestoreBackground:
		for i := range d.output {
			d.output[i] = 0
		}
	case container.DisposeRestorePrevious:
		copy(d.output, d.previous)
	default: // DisposeNone, DisposeKeep
		copy(d.previous, d.output)
	}
}

// Close releases the Decoder's canvas and snapshot buffers back to their
// pool and makes the Decoder terminal: subsequent NextFrame calls return
// (nil, nil) rather than touching the now-released buffers. It is safe to
// call more than once.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.done = true
	if d.output != nil {
		pool.Put(d.output)
		d.output = nil
	}
	if d.previous != nil {
		pool.Put(d.previous)
		d.previous = nil
	}
	return nil
}
