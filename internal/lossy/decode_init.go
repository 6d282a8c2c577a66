package lossy

import "github.com/go-vp8/vp8lossy/internal/dsp"

// initFrame (re)allocates every per-frame buffer sized from the
// macroblock grid: the mode-context rows, the nonzero-context rows, the
// segment map, the reconstruction scratch, and the full output picture.
// Buffers are grown, never shrunk, so a Decoder drawn from the pool for a
// second, smaller frame reuses its existing allocations.
func (dec *Decoder) initFrame() error {
	dec.mbW = (dec.Picture.Width + 15) / 16
	dec.mbH = (dec.Picture.Height + 15) / 16
	if dec.mbW <= 0 || dec.mbH <= 0 {
		return wrapf(ErrInvalidHeader, "degenerate picture size %dx%d", dec.Picture.Width, dec.Picture.Height)
	}
	if dec.mbW*dec.mbH > frameSizeLimit/256 {
		return wrapf(ErrOutOfMemory, "macroblock grid %dx%d exceeds limit", dec.mbW, dec.mbH)
	}

	if cap(dec.mbData) < dec.mbW {
		dec.mbData = make([]MBData, dec.mbW)
	}
	dec.mbData = dec.mbData[:dec.mbW]

	if cap(dec.aboveNz) < dec.mbW {
		dec.aboveNz = make([]MB, dec.mbW)
	}
	dec.aboveNz = dec.aboveNz[:dec.mbW]
	for i := range dec.aboveNz {
		dec.aboveNz[i] = MB{}
	}
	dec.leftNz = MB{}

	if cap(dec.intraT) < dec.mbW*4 {
		dec.intraT = make([]uint8, dec.mbW*4)
	}
	dec.intraT = dec.intraT[:dec.mbW*4]
	for i := range dec.intraT {
		dec.intraT[i] = 0 // B_DC_PRED/DCPred both zero
	}

	if cap(dec.yuvT) < dec.mbW {
		dec.yuvT = make([]TopSamples, dec.mbW)
	}
	dec.yuvT = dec.yuvT[:dec.mbW]
	for i := range dec.yuvT {
		for j := range dec.yuvT[i].Y {
			dec.yuvT[i].Y[j] = 127
		}
		for j := range dec.yuvT[i].U {
			dec.yuvT[i].U[j] = 127
			dec.yuvT[i].V[j] = 127
		}
	}

	if cap(dec.segmentMap) < dec.mbW*dec.mbH {
		dec.segmentMap = make([]uint8, dec.mbW*dec.mbH)
	}
	dec.segmentMap = dec.segmentMap[:dec.mbW*dec.mbH]

	if cap(dec.fInfo) < dec.mbW {
		dec.fInfo = make([]FInfo, dec.mbW)
	}
	dec.fInfo = dec.fInfo[:dec.mbW]

	dec.cacheYStride = dec.mbW * 16
	dec.cacheUVStride = dec.mbW * 8
	neededY := dec.cacheYStride * dec.mbH * 16
	neededUV := dec.cacheUVStride * dec.mbH * 8
	if cap(dec.cacheY) < neededY {
		dec.cacheY = make([]byte, neededY)
	}
	dec.cacheY = dec.cacheY[:neededY]
	if cap(dec.cacheU) < neededUV {
		dec.cacheU = make([]byte, neededUV)
	}
	dec.cacheU = dec.cacheU[:neededUV]
	if cap(dec.cacheV) < neededUV {
		dec.cacheV = make([]byte, neededUV)
	}
	dec.cacheV = dec.cacheV[:neededUV]

	if dec.yScratch == nil {
		dec.yScratch = make([]byte, 20*dsp.BPS)
		dec.uScratch = make([]byte, 12*dsp.BPS)
		dec.vScratch = make([]byte, 12*dsp.BPS)
	}

	dec.precomputeFilterStrengths()
	return nil
}

// parseFrame decodes the macroblock grid one row at a time: modes first
// (from partition 0), then residuals (from the row's assigned residual
// partition), then reconstruction and, if enabled, the in-loop filter.
func (dec *Decoder) parseFrame() error {
	for mbY := 0; mbY < dec.mbH; mbY++ {
		dec.mbY = mbY
		dec.parseIntraModeRow()

		tokenBR := dec.parts[mbY&dec.numPartsMinusOne]
		dec.leftNz = MB{}
		for mbX := 0; mbX < dec.mbW; mbX++ {
			dec.mbX = mbX
			if err := dec.decodeMB(tokenBR); err != nil {
				return err
			}
		}
		if tokenBR.EOF() {
			return wrapf(ErrTruncatedBitstream, "residual partition exhausted at row %d", mbY)
		}

		dec.reconstructRow()
		dec.emitFilteredRows()
	}
	dec.flushLastRow()
	return nil
}
