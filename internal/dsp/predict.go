package dsp

// Intra prediction for VP8 lossy decoding (RFC 6386 §12).
//
// Every predictor receives the full reconstruction buffer and an offset
// such that buf[off] is the block's top-left output pixel; reference
// samples live just before it:
//
//	buf[off-BPS+i]   top row
//	buf[off-1+j*BPS] left column
//	buf[off-BPS-1]   top-left corner
//
// Addressing through an explicit offset (rather than negative indices)
// keeps every access non-negative, which Go's slice bounds checking
// requires.

// Mode indices, matching RFC 6386 §11.2/12.2. The 16x16 luma and 8x8
// chroma mode sets share these four values; BPred4x4 below defines its own
// ten-mode set.
const (
	DCPred = 0
	VPred  = 1
	HPred  = 2
	TMPred = 3

	// NoTop/NoLeft/NoTopLeft select a boundary-adjusted DC predictor for
	// macroblocks on the frame's first row/column, where DCPred's usual
	// neighbor average would read samples that were never reconstructed.
	DCPredNoTop     = 4
	DCPredNoLeft    = 5
	DCPredNoTopLeft = 6
)

// BPred4x4 mode indices (RFC 6386 §11.3).
const (
	B_DC_PRED = 0
	B_TM_PRED = 1
	B_VE_PRED = 2
	B_HE_PRED = 3
	B_RD_PRED = 4
	B_VR_PRED = 5
	B_LD_PRED = 6
	B_VL_PRED = 7
	B_HD_PRED = 8
	B_HU_PRED = 9
)

func avg3(a, b, c uint8) uint8 { return uint8((int(a) + 2*int(b) + int(c) + 2) >> 2) }
func avg2(a, b uint8) uint8    { return uint8((int(a) + int(b) + 1) >> 1) }

// ---------- 16x16 luma ----------

func dc16(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	fill16x16(dst, off, uint8((dc+16)>>5))
}

func dc16NoTop(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off-1+i*BPS])
	}
	fill16x16(dst, off, uint8((dc+8)>>4))
}

func dc16NoLeft(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off+i-BPS])
	}
	fill16x16(dst, off, uint8((dc+8)>>4))
}

func dc16NoTopLeft(dst []byte, off int) { fill16x16(dst, off, 128) }

func tm16(dst []byte, off int) { tm(dst, off, 16) }
func ve16(dst []byte, off int) { ve(dst, off, 16) }
func he16(dst []byte, off int) { he(dst, off, 16) }

func fill16x16(dst []byte, off int, v uint8) {
	for j := 0; j < 16; j++ {
		row := dst[off+j*BPS : off+j*BPS+16]
		for i := range row {
			row[i] = v
		}
	}
}

// ---------- 8x8 chroma ----------

func dc8uv(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	fill8x8(dst, off, uint8((dc+8)>>4))
}

func dc8uvNoTop(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off-1+i*BPS])
	}
	fill8x8(dst, off, uint8((dc+4)>>3))
}

func dc8uvNoLeft(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off+i-BPS])
	}
	fill8x8(dst, off, uint8((dc+4)>>3))
}

func dc8uvNoTopLeft(dst []byte, off int) { fill8x8(dst, off, 128) }

func tm8uv(dst []byte, off int) { tm(dst, off, 8) }
func ve8uv(dst []byte, off int) { ve(dst, off, 8) }
func he8uv(dst []byte, off int) { he(dst, off, 8) }

func fill8x8(dst []byte, off int, v uint8) {
	for j := 0; j < 8; j++ {
		row := dst[off+j*BPS : off+j*BPS+8]
		for i := range row {
			row[i] = v
		}
	}
}

// tm implements TrueMotion prediction for an nxn block: P[x,y] = clip(top[x]
// + left[y] - top_left).
func tm(dst []byte, off, n int) {
	tl := int(dst[off-1-BPS])
	for j := 0; j < n; j++ {
		base := int(dst[off-1+j*BPS]) - tl
		row := off + j*BPS
		for i := 0; i < n; i++ {
			dst[row+i] = Clip8b(base + int(dst[off+i-BPS]))
		}
	}
}

func ve(dst []byte, off, n int) {
	for j := 0; j < n; j++ {
		copy(dst[off+j*BPS:off+j*BPS+n], dst[off-BPS:off-BPS+n])
	}
}

func he(dst []byte, off, n int) {
	for j := 0; j < n; j++ {
		v := dst[off-1+j*BPS]
		row := dst[off+j*BPS : off+j*BPS+n]
		for i := range row {
			row[i] = v
		}
	}
}

// ---------- 4x4 BPred luma ----------

func dc4(dst []byte, off int) {
	dc := 0
	for i := 0; i < 4; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	v := uint8((dc + 4) >> 3)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			dst[off+i+j*BPS] = v
		}
	}
}

func tm4(dst []byte, off int) { tm(dst, off, 4) }

func ve4(dst []byte, off int) {
	tM1 := dst[off-1-BPS]
	t0 := dst[off+0-BPS]
	t1 := dst[off+1-BPS]
	t2 := dst[off+2-BPS]
	t3 := dst[off+3-BPS]
	t4 := dst[off+4-BPS]
	vals := [4]uint8{avg3(tM1, t0, t1), avg3(t0, t1, t2), avg3(t1, t2, t3), avg3(t2, t3, t4)}
	for j := 0; j < 4; j++ {
		copy(dst[off+j*BPS:off+j*BPS+4], vals[:])
	}
}

func he4(dst []byte, off int) {
	tl := dst[off-1-BPS]
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]
	l3 := dst[off-1+3*BPS]
	vals := [4]uint8{avg3(tl, l0, l1), avg3(l0, l1, l2), avg3(l1, l2, l3), avg3(l2, l3, l3)}
	for j := 0; j < 4; j++ {
		row := dst[off+j*BPS : off+j*BPS+4]
		for i := range row {
			row[i] = vals[j]
		}
	}
}

// edge4 gathers a 4x4 subblock's prediction border into one contiguous
// run: the left column bottom-up (e[0..3]), the top-left corner (e[4]),
// then the top row including its four top-right extension samples
// (e[5..12]). The six diagonal predictors below are all sliding windows
// over this sequence.
func edge4(dst []byte, off int) (e [13]uint8) {
	for j := 0; j < 4; j++ {
		e[3-j] = dst[off-1+j*BPS]
	}
	e[4] = dst[off-1-BPS]
	for i := 0; i < 8; i++ {
		e[5+i] = dst[off+i-BPS]
	}
	return e
}

// rd4: each down-right diagonal holds the 3-tap average of three
// consecutive border samples; the diagonal through (x, y) is centered at
// e[4+x-y].
func rd4(dst []byte, off int) {
	e := edge4(dst, off)
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		for x := range row {
			i := 4 + x - y
			row[x] = avg3(e[i-1], e[i], e[i+1])
		}
	}
}

// ld4: rd4's mirror image over the top row alone; the last diagonal folds
// the final top-right sample back onto itself.
func ld4(dst []byte, off int) {
	e := edge4(dst, off)
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		for x := range row {
			i := 6 + x + y
			last := i + 1
			if last > 12 {
				last = 12
			}
			row[x] = avg3(e[i-1], e[i], e[last])
		}
	}
}

// vr4: rows 2 and 3 repeat rows 0 and 1 shifted one pixel right, the
// vacated left column filling from progressively deeper left samples.
func vr4(dst []byte, off int) {
	e := edge4(dst, off)
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		s := y >> 1
		for x := range row {
			if x < s {
				row[x] = avg3(e[4-y], e[5-y], e[6-y])
				continue
			}
			i := 4 + x - s
			if y&1 == 0 {
				row[x] = avg2(e[i], e[i+1])
			} else {
				row[x] = avg3(e[i-1], e[i], e[i+1])
			}
		}
	}
}

// vl4: rows 2 and 3 repeat rows 0 and 1 shifted one sample further along
// the top row, except in the right column, which keeps advancing instead
// of repeating.
func vl4(dst []byte, off int) {
	e := edge4(dst, off)
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		s := y >> 1
		for x := range row {
			if x == 3 && y >= 2 {
				row[x] = avg3(e[7+y], e[8+y], e[9+y])
				continue
			}
			i := 5 + x + s
			if y&1 == 0 {
				row[x] = avg2(e[i], e[i+1])
			} else {
				row[x] = avg3(e[i], e[i+1], e[i+2])
			}
		}
	}
}

// hd4: vr4's horizontal counterpart, walking down the left column; only
// the top row's two rightmost pixels reach across the corner into the top
// samples.
func hd4(dst []byte, off int) {
	e := edge4(dst, off)
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		row[0] = avg2(e[3-y], e[4-y])
		row[1] = avg3(e[3-y], e[4-y], e[5-y])
		if y == 0 {
			row[2] = avg3(e[4], e[5], e[6])
			row[3] = avg3(e[5], e[6], e[7])
			continue
		}
		row[2] = avg2(e[4-y], e[5-y])
		row[3] = avg3(e[4-y], e[5-y], e[6-y])
	}
}

// hu4: interpolates down the left column in half-sample steps, saturating
// on the bottom-left sample once the column runs out.
func hu4(dst []byte, off int) {
	e := edge4(dst, off)
	l := [7]uint8{e[3], e[2], e[1], e[0], e[0], e[0], e[0]}
	for y := 0; y < 4; y++ {
		row := dst[off+y*BPS : off+y*BPS+4]
		for x := range row {
			i := x>>1 + y
			if x&1 == 0 {
				row[x] = avg2(l[i], l[i+1])
			} else {
				row[x] = avg3(l[i], l[i+1], l[i+2])
			}
		}
	}
}

// PredLuma16 and PredChroma8 are indexed by the mode constants above
// (including the NoTop/NoLeft/NoTopLeft boundary variants).
var PredLuma16 [7]func(dst []byte, off int)
var PredChroma8 [7]func(dst []byte, off int)

// PredLuma4 is indexed by the BPred4x4 mode constants.
var PredLuma4 [10]func(dst []byte, off int)

func init() {
	PredLuma16[DCPred] = dc16
	PredLuma16[VPred] = ve16
	PredLuma16[HPred] = he16
	PredLuma16[TMPred] = tm16
	PredLuma16[DCPredNoTop] = dc16NoTop
	PredLuma16[DCPredNoLeft] = dc16NoLeft
	PredLuma16[DCPredNoTopLeft] = dc16NoTopLeft

	PredChroma8[DCPred] = dc8uv
	PredChroma8[VPred] = ve8uv
	PredChroma8[HPred] = he8uv
	PredChroma8[TMPred] = tm8uv
	PredChroma8[DCPredNoTop] = dc8uvNoTop
	PredChroma8[DCPredNoLeft] = dc8uvNoLeft
	PredChroma8[DCPredNoTopLeft] = dc8uvNoTopLeft

	PredLuma4[B_DC_PRED] = dc4
	PredLuma4[B_TM_PRED] = tm4
	PredLuma4[B_VE_PRED] = ve4
	PredLuma4[B_HE_PRED] = he4
	PredLuma4[B_RD_PRED] = rd4
	PredLuma4[B_VR_PRED] = vr4
	PredLuma4[B_LD_PRED] = ld4
	PredLuma4[B_VL_PRED] = vl4
	PredLuma4[B_HD_PRED] = hd4
	PredLuma4[B_HU_PRED] = hu4
}

// PredLuma4Direct invokes the 4x4 predictor for mode via a switch, avoiding
// the indirect call through PredLuma4 on the hottest path (every luma
// subblock of every BPred macroblock).
func PredLuma4Direct(mode int, dst []byte, off int) {
	switch mode {
	case B_DC_PRED:
		dc4(dst, off)
	case B_TM_PRED:
		tm4(dst, off)
	case B_VE_PRED:
		ve4(dst, off)
	case B_HE_PRED:
		he4(dst, off)
	case B_RD_PRED:
		rd4(dst, off)
	case B_VR_PRED:
		vr4(dst, off)
	case B_LD_PRED:
		ld4(dst, off)
	case B_VL_PRED:
		vl4(dst, off)
	case B_HD_PRED:
		hd4(dst, off)
	case B_HU_PRED:
		hu4(dst, off)
	}
}
