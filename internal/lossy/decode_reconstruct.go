package lossy

import (
	"github.com/go-vp8/vp8lossy/internal/dsp"
)

// kScan maps each of a macroblock's sixteen 4x4 luma subblocks (in raster
// order) to its pixel offset within the BPS-strided reconstruction scratch.
var kScan = [16]int{
	0 + 0*bps, 4 + 0*bps, 8 + 0*bps, 12 + 0*bps,
	0 + 4*bps, 4 + 4*bps, 8 + 4*bps, 12 + 4*bps,
	0 + 8*bps, 4 + 8*bps, 8 + 8*bps, 12 + 8*bps,
	0 + 12*bps, 4 + 12*bps, 8 + 12*bps, 12 + 12*bps,
}

// yOrigin/uOrigin/vOrigin are the scratch offsets of each plane's top-left
// output pixel: one row down and one column in from the buffer's edge,
// leaving room for the top context row, the left context column, and (for
// luma) the top-right replication columns BPred reads past column 16.
const (
	yOrigin = bps + 1
	uOrigin = bps + 1
	vOrigin = bps + 1
)

// checkMode substitutes one of the boundary-adjusted DC predictor variants
// for a macroblock on the frame's first row and/or column, where ordinary
// DC prediction would read neighbor samples that were never reconstructed.
func checkMode(mbX, mbY, mode int) int {
	if mode != dsp.DCPred {
		return mode
	}
	switch {
	case mbX == 0 && mbY == 0:
		return dsp.DCPredNoTopLeft
	case mbX == 0:
		return dsp.DCPredNoLeft
	case mbY == 0:
		return dsp.DCPredNoTop
	}
	return mode
}

// doTransform adds one 4x4 subblock's inverse-transformed residual into
// dst, picking the cheapest transform that code (this subblock's 2-bit
// nonzero marker, as packed by nzCodeBits) guarantees is sufficient: 0
// leaves the prediction untouched, 1 is a DC-only add, 2 only needs the
// three lowest-frequency AC terms, and 3 is the general 4x4 IDCT. Shared by
// luma and chroma subblocks alike; the UV caller just points dst at one of
// the four 4x4 origins within the chroma scratch.
func doTransform(code uint32, src []int16, dst []byte) {
	switch code {
	case 3:
		dsp.Transform(src, dst)
	case 2:
		dsp.TransformAC3(src, dst)
	case 1:
		dsp.TransformDC(src, dst)
	}
}

// fillBytes sets the first n bytes of dst to v.
func fillBytes(dst []byte, v byte, n int) {
	row := dst[:n]
	for i := range row {
		row[i] = v
	}
}

// reconstructRow predicts, inverse-transforms, and writes every macroblock
// of row dec.mbY into dec.cacheY/U/V. It is called once decodeMB has
// already populated dec.mbData for the whole row.
func (dec *Decoder) reconstructRow() {
	mbY := dec.mbY
	yBuf, uBuf, vBuf := dec.yScratch, dec.uScratch, dec.vScratch

	// Left-of-frame context: column -1 is the fixed sentinel value 129 for
	// every row (RFC 6386 §12.2), re-laid at the start of every row since
	// mbX's left-rotation below overwrites it with the previous row's
	// rightmost reconstructed column once mbX advances past 0.
	for j := 0; j < 16; j++ {
		yBuf[yOrigin-1+j*bps] = 129
	}
	for j := 0; j < 8; j++ {
		uBuf[uOrigin-1+j*bps] = 129
		vBuf[vOrigin-1+j*bps] = 129
	}

	// Top-left corner: 127 for every macroblock of row 0 (no real row
	// above); 129 for the first macroblock of every later row; and, from
	// the second macroblock of a later row on, the true reconstructed
	// corner sample brought in by the slide below.
	if mbY > 0 {
		yBuf[yOrigin-1-bps] = 129
		uBuf[uOrigin-1-bps] = 129
		vBuf[vOrigin-1-bps] = 129
	} else {
		fillBytes(yBuf[yOrigin-bps-1:], 127, 16+4+1)
		fillBytes(uBuf[uOrigin-bps-1:], 127, 8+1)
		fillBytes(vBuf[vOrigin-bps-1:], 127, 8+1)
	}

	for mbX := 0; mbX < dec.mbW; mbX++ {
		md := &dec.mbData[mbX]

		// Slide the previous macroblock's rightmost column into this
		// macroblock's left-context column (and the row above's, so TM
		// and BPred's top-left reads stay correct).
		if mbX > 0 {
			for j := -1; j < 16; j++ {
				o := yOrigin + j*bps
				yBuf[o-1] = yBuf[o+15]
			}
			for j := -1; j < 8; j++ {
				ou := uOrigin + j*bps
				ov := vOrigin + j*bps
				uBuf[ou-1] = uBuf[ou+7]
				vBuf[ov-1] = vBuf[ov+7]
			}
		}

		top := &dec.yuvT[mbX]
		if mbY > 0 {
			copy(yBuf[yOrigin-bps:], top.Y[:])
			copy(uBuf[uOrigin-bps:], top.U[:])
			copy(vBuf[vOrigin-bps:], top.V[:])
		}

		coeffs := md.Coeffs[:]
		yBits := md.NonZeroY

		if md.IsI4x4 {
			topRight := yBuf[yOrigin-bps+16:]
			if mbY > 0 {
				if mbX >= dec.mbW-1 {
					fillBytes(topRight, top.Y[15], 4)
				} else {
					copy(topRight[:4], dec.yuvT[mbX+1].Y[:4])
				}
			}
			// BPred subblocks in columns below row 0 read "top-right" as
			// the macroblock's own top-right corner, not the (not yet
			// decoded) pixels of the macroblock to the right; replicate
			// it down into the rows each lower subblock row actually
			// reads (RFC 6386 §12.3).
			for r := 1; r <= 3; r++ {
				off := r * 4 * bps
				copy(topRight[off:off+4], topRight[:4])
			}

			for n := 0; n < 16; n++ {
				off := yOrigin + kScan[n]
				dsp.PredLuma4Direct(int(md.IModes[n]), yBuf, off)
				code := (yBits >> 30) & 3
				doTransform(code, coeffs[n*16:n*16+16], yBuf[off:])
				yBits <<= 2
			}
		} else {
			mode := checkMode(mbX, mbY, int(md.YMode))
			dsp.PredLuma16[mode](yBuf, yOrigin)
			if yBits != 0 {
				for n := 0; n < 16; n++ {
					off := yOrigin + kScan[n]
					code := (yBits >> 30) & 3
					doTransform(code, coeffs[n*16:n*16+16], yBuf[off:])
					yBits <<= 2
				}
			}
		}

		uvMode := checkMode(mbX, mbY, int(md.UVMode))
		dsp.PredChroma8[uvMode](uBuf, uOrigin)
		dsp.PredChroma8[uvMode](vBuf, vOrigin)

		uBits := (md.NonZeroUV >> 8) & 0xff
		vBits := md.NonZeroUV & 0xff
		uvScan := [4]int{0, 4, 4 * bps, 4*bps + 4}
		for n := 0; n < 4; n++ {
			ucode := (uBits >> uint(6-2*n)) & 3
			doTransform(ucode, coeffs[(16+n)*16:(16+n)*16+16], uBuf[uOrigin+uvScan[n]:])
			vcode := (vBits >> uint(6-2*n)) & 3
			doTransform(vcode, coeffs[(20+n)*16:(20+n)*16+16], vBuf[vOrigin+uvScan[n]:])
		}

		// Save this macroblock's bottom row as the next row's top context.
		if mbY < dec.mbH-1 {
			copy(top.Y[:], yBuf[yOrigin+15*bps:yOrigin+15*bps+16])
			copy(top.U[:], uBuf[uOrigin+7*bps:uOrigin+7*bps+8])
			copy(top.V[:], vBuf[vOrigin+7*bps:vOrigin+7*bps+8])
		}

		// Copy the finished macroblock into the full-picture cache.
		yOff := mbY*16*dec.cacheYStride + mbX*16
		uvOff := mbY*8*dec.cacheUVStride + mbX*8
		for j := 0; j < 16; j++ {
			copy(dec.cacheY[yOff+j*dec.cacheYStride:yOff+j*dec.cacheYStride+16], yBuf[yOrigin+j*bps:yOrigin+j*bps+16])
		}
		for j := 0; j < 8; j++ {
			copy(dec.cacheU[uvOff+j*dec.cacheUVStride:uvOff+j*dec.cacheUVStride+8], uBuf[uOrigin+j*bps:uOrigin+j*bps+8])
			copy(dec.cacheV[uvOff+j*dec.cacheUVStride:uvOff+j*dec.cacheUVStride+8], vBuf[vOrigin+j*bps:vOrigin+j*bps+8])
		}
	}
}

// precomputeFilterStrengths derives, once per frame, the filter level,
// interior limit, and HEV threshold for every (segment, i4x4) combination,
// so decodeMB only needs a table lookup instead of redoing this arithmetic
// per macroblock (RFC 6386 §15.2).
func (dec *Decoder) precomputeFilterStrengths() {
	if dec.filterType == 0 {
		return
	}
	for s := 0; s < NumMBSegments; s++ {
		var baseLevel int
		if dec.Seg.UseSegment {
			baseLevel = int(dec.Seg.FilterStrength[s])
			if !dec.Seg.AbsoluteDelta {
				baseLevel += dec.Filt.Level
			}
		} else {
			baseLevel = dec.Filt.Level
		}

		for i4x4 := 0; i4x4 <= 1; i4x4++ {
			info := &dec.fstrengths[s][i4x4]
			level := baseLevel
			if dec.Filt.UseLFDelta {
				level += int(dec.Filt.RefLFDelta[0])
				if i4x4 != 0 {
					level += int(dec.Filt.ModeLFDelta[0])
				}
			}
			level = clipQ(level, 63)

			if level == 0 {
				info.FLimit = 0
				info.FILevel = 0
				info.HevThresh = 0
				info.FInner = i4x4 != 0
				continue
			}

			ilevel := level
			if dec.Filt.Sharpness > 0 {
				if dec.Filt.Sharpness > 4 {
					ilevel >>= 2
				} else {
					ilevel >>= 1
				}
				if sharpCap := 9 - dec.Filt.Sharpness; ilevel > sharpCap {
					ilevel = sharpCap
				}
			}
			if ilevel < 1 {
				ilevel = 1
			}
			info.FILevel = ilevel
			info.FLimit = 2*level + ilevel
			switch {
			case level >= 40:
				info.HevThresh = 2
			case level >= 15:
				info.HevThresh = 1
			default:
				info.HevThresh = 0
			}
			info.FInner = i4x4 != 0
		}
	}
}

// filterRow applies the in-loop deblocking filter to every macroblock of
// row dec.mbY, once reconstructRow has finished filling dec.cacheY/U/V for
// it. Filtering macroblock (mbX, mbY)'s top edge also touches the bottom
// few rows of (mbX, mbY-1), which is why the row pipeline only emits a row
// to the sink once the row below it has been filtered (see
// emitFilteredRows).
func (dec *Decoder) filterRow() {
	for mbX := 0; mbX < dec.mbW; mbX++ {
		dec.filterMB(mbX, dec.mbY)
	}
}

func (dec *Decoder) filterMB(mbX, mbY int) {
	info := &dec.fInfo[mbX]
	if info.FLimit == 0 {
		return
	}
	yStride := dec.cacheYStride
	yOff := mbY*16*yStride + mbX*16
	limit := info.FLimit

	if dec.filterType == 1 {
		if mbX > 0 {
			dsp.SimpleFilter(dec.cacheY, yOff, 1, yStride, 16, limit+4)
		}
		if info.FInner {
			for k := 1; k <= 3; k++ {
				dsp.SimpleFilter(dec.cacheY, yOff+k*4, 1, yStride, 16, limit)
			}
		}
		if mbY > 0 {
			dsp.SimpleFilter(dec.cacheY, yOff, yStride, 1, 16, limit+4)
		}
		if info.FInner {
			for k := 1; k <= 3; k++ {
				dsp.SimpleFilter(dec.cacheY, yOff+k*4*yStride, yStride, 1, 16, limit)
			}
		}
		return
	}

	uvStride := dec.cacheUVStride
	uvOff := mbY*8*uvStride + mbX*8
	ilevel := info.FILevel
	hevT := info.HevThresh

	if mbX > 0 {
		dsp.MBFilter(dec.cacheY, yOff, 1, yStride, 16, hevT, ilevel, limit+4)
		dsp.MBFilter(dec.cacheU, uvOff, 1, uvStride, 8, hevT, ilevel, limit+4)
		dsp.MBFilter(dec.cacheV, uvOff, 1, uvStride, 8, hevT, ilevel, limit+4)
	}
	if info.FInner {
		for k := 1; k <= 3; k++ {
			dsp.SubblockFilter(dec.cacheY, yOff+k*4, 1, yStride, 16, hevT, ilevel, limit)
		}
		dsp.SubblockFilter(dec.cacheU, uvOff+4, 1, uvStride, 8, hevT, ilevel, limit)
		dsp.SubblockFilter(dec.cacheV, uvOff+4, 1, uvStride, 8, hevT, ilevel, limit)
	}
	if mbY > 0 {
		dsp.MBFilter(dec.cacheY, yOff, yStride, 1, 16, hevT, ilevel, limit+4)
		dsp.MBFilter(dec.cacheU, uvOff, uvStride, 1, 8, hevT, ilevel, limit+4)
		dsp.MBFilter(dec.cacheV, uvOff, uvStride, 1, 8, hevT, ilevel, limit+4)
	}
	if info.FInner {
		for k := 1; k <= 3; k++ {
			dsp.SubblockFilter(dec.cacheY, yOff+k*4*yStride, yStride, 1, 16, hevT, ilevel, limit)
		}
		dsp.SubblockFilter(dec.cacheU, uvOff+4*uvStride, uvStride, 1, 8, hevT, ilevel, limit)
		dsp.SubblockFilter(dec.cacheV, uvOff+4*uvStride, uvStride, 1, 8, hevT, ilevel, limit)
	}
}

// emitRow crops row mbY (16 luma / 8 chroma rows, less for the final
// macroblock row when the picture's height isn't a multiple of 16) and
// hands it to the sink.
func (dec *Decoder) emitRow(mbY int) {
	lumaRows := 16
	if mbY == dec.mbH-1 {
		if r := dec.Picture.Height - mbY*16; r < lumaRows {
			lumaRows = r
		}
	}
	chromaRows := (lumaRows + 1) / 2

	yOff := mbY * 16 * dec.cacheYStride
	uvOff := mbY * 8 * dec.cacheUVStride
	dec.sink.EmitRow(mbY,
		dec.cacheY[yOff:yOff+lumaRows*dec.cacheYStride],
		dec.cacheU[uvOff:uvOff+chromaRows*dec.cacheUVStride],
		dec.cacheV[uvOff:uvOff+chromaRows*dec.cacheUVStride],
		dec.cacheYStride, dec.cacheUVStride)
}

// emitFilteredRows runs the loop filter over the row just reconstructed
// and releases whichever row has become final as a result: with filtering
// on, that's the row above (this row's top-edge filter pass was the last
// thing that could still touch it); with filtering off, reconstruction
// alone already finalized this row.
func (dec *Decoder) emitFilteredRows() {
	if dec.filterType != 0 {
		dec.filterRow()
		if dec.mbY > 0 {
			dec.emitRow(dec.mbY - 1)
		}
		return
	}
	dec.emitRow(dec.mbY)
}

// flushLastRow releases the one row that emitFilteredRows could never
// flush from inside the loop: the last macroblock row, which has no row
// below it to trigger its release.
func (dec *Decoder) flushLastRow() {
	if dec.filterType != 0 {
		dec.emitRow(dec.mbH - 1)
	}
}
