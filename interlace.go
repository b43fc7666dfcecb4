package mggif

// interlaceRowOrder returns, for an interlaced image of the given frame
// height, the frame-relative row index stored at each position of the
// bitstream's emission order: pass 1's rows come first, then pass 2's,
// then pass 3's, then pass 4's, mirroring the classic four-pass GIF
// scheme (rows 0,8,16,.. / 4,12,20,.. / 2,6,10,.. / 1,3,5,..). Because a
// destination row is computed directly from the emission index as each
// pixel is placed (see placer.go), no intermediate pass-order buffer is
// needed; this slice alone is what the spec's two-phase deinterleave
// collapses to.
func interlaceRowOrder(height int) []int {
	order := make([]int, 0, height)
	for r := 0; r < height; r += 8 {
		order = append(order, r)
	}
	for r := 4; r < height; r += 8 {
		order = append(order, r)
	}
	for r := 2; r < height; r += 4 {
		order = append(order, r)
	}
	for r := 1; r < height; r += 2 {
		order = append(order, r)
	}
	return order
}
