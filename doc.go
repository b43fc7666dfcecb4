// Package mggif implements a decoder for the GIF87a and GIF89a image
// formats.
//
// It streams successive frames out of a fully-loaded byte buffer,
// producing composed 32-bit RGBA raster frames that already account for
// the transparent index, the interlace pass order, and the disposal
// method carried over from the previous frame. Encoding, incremental
// decoding of a partial byte stream, and the original palette-indexed
// representation are out of scope; this package always hands back
// unpacked RGBA.
//
// Basic usage:
//
//	dec := mggif.NewDecoder(data)
//	defer dec.Close()
//	for {
//		frame, err := dec.NextFrame()
//		if err != nil {
//			// handle error
//		}
//		if frame == nil {
//			break
//		}
//		// use frame.Pix
//	}
package mggif
