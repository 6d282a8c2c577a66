package lossy

import (
	mbits "math/bits"

	"github.com/go-vp8/vp8lossy/internal/bitio"
	"github.com/go-vp8/vp8lossy/internal/dsp"
)

// Fixed extra-bit probabilities for the two smallest large-value
// categories; cat3 through cat6 use the per-category tables in tables.go
// since they need more than a couple of bits each.
var (
	kCat1Probs = []uint8{159}
	kCat2Probs = []uint8{165, 145}
)

const (
	cat1Base = 5
	cat2Base = 7
	cat3Base = 11
	cat4Base = 19
	cat5Base = 35
	cat6Base = 67
)

func readExtraBits(br *bitio.BoolReader, probs []uint8) int {
	v := 0
	for _, p := range probs {
		v = v<<1 | br.GetBit(p)
	}
	return v
}

// fastBit is BoolReader.GetBit's math applied to a register-cached copy of
// the reader's range/value/bits-left state instead of the struct fields
// directly, so getCoeffs's token loop (the hottest path in the decoder,
// run for every one of a macroblock's 24 subblocks) pays one struct
// load/store per block instead of one per tree-node bit. r/val/bits
// are the caller's locals, seeded from and written back to br around the
// run of fastBit calls; br itself is only touched when the look-ahead
// window needs a refill (BoolReader.LoadNewBytes), which reads and writes
// br.Value/br.Bits directly.
func fastBit(br *bitio.BoolReader, r *uint32, val *uint64, bitsLeft *int, prob uint8) int {
	if *bitsLeft < 0 {
		br.Value, br.Bits = *val, *bitsLeft
		br.LoadNewBytes()
		*val, *bitsLeft = br.Value, br.Bits
	}

	pos := *bitsLeft
	split := (*r * uint32(prob)) >> 8
	value := uint32(*val >> uint(pos))

	var bit int
	var rr uint32
	if value > split {
		bit = 1
		rr = *r - split
		*val -= uint64(split+1) << uint(pos)
	} else {
		rr = split + 1
	}

	shift := 7 ^ (mbits.Len32(rr) - 1)
	rr <<= uint(shift)
	*bitsLeft -= shift
	*r = rr - 1
	return bit
}

// readExtraBitsFast is readExtraBits against the register-cached state
// getCoeffs threads through fastBit, used for the category-tree extra
// bits (Cat1..Cat6) so a large-value coefficient never forces a sync back
// to br mid-token.
func readExtraBitsFast(br *bitio.BoolReader, r *uint32, val *uint64, bitsLeft *int, probs []uint8) int {
	v := 0
	for _, p := range probs {
		v = v<<1 | fastBit(br, r, val, bitsLeft, p)
	}
	return v
}

// getCoeffs decodes one 4x4 block's residual coefficients starting at scan
// position first (1 for a luma block whose DC was already carried by the
// Y2/WHT block, 0 otherwise), dequantizing with dq0 for the DC position
// and dq1 for every AC position, and writing them in raster order into
// out[0:16]. It returns the scan position decoding stopped at and whether
// any nonzero coefficient was written, matching RFC 6386 §13.2-13.3's
// token/band/context walk.
func getCoeffs(br *bitio.BoolReader, bands *[17]*BandProbas, ctx int, dq0, dq1 int32, first int, out []int16) (last int, nz bool) {
	i := first
	skipEOB := false

	r, val, bitsLeft := br.Range, br.Value, br.Bits
	defer func() { br.Range, br.Value, br.Bits = r, val, bitsLeft }()

	for i < 16 {
		p := bands[i]
		pp := p.Probas[ctx]
		if !skipEOB {
			if fastBit(br, &r, &val, &bitsLeft, pp[0]) == 0 {
				break // end of block
			}
		}
		if fastBit(br, &r, &val, &bitsLeft, pp[1]) == 0 {
			ctx = 0
			i++
			skipEOB = true
			continue
		}
		skipEOB = false

		var v int
		var nextCtx int
		if fastBit(br, &r, &val, &bitsLeft, pp[2]) == 0 {
			v = 1
			nextCtx = 1
		} else {
			nextCtx = 2
			if fastBit(br, &r, &val, &bitsLeft, pp[3]) == 0 {
				if fastBit(br, &r, &val, &bitsLeft, pp[4]) == 0 {
					v = 2
				} else if fastBit(br, &r, &val, &bitsLeft, pp[5]) == 0 {
					v = 3
				} else {
					v = 4
				}
			} else {
				if fastBit(br, &r, &val, &bitsLeft, pp[6]) == 0 {
					if fastBit(br, &r, &val, &bitsLeft, pp[7]) == 0 {
						v = cat1Base + readExtraBitsFast(br, &r, &val, &bitsLeft, kCat1Probs)
					} else {
						v = cat2Base + readExtraBitsFast(br, &r, &val, &bitsLeft, kCat2Probs)
					}
				} else {
					if fastBit(br, &r, &val, &bitsLeft, pp[8]) == 0 {
						if fastBit(br, &r, &val, &bitsLeft, pp[9]) == 0 {
							v = cat3Base + readExtraBitsFast(br, &r, &val, &bitsLeft, KCat3)
						} else {
							v = cat4Base + readExtraBitsFast(br, &r, &val, &bitsLeft, KCat4)
						}
					} else {
						if fastBit(br, &r, &val, &bitsLeft, pp[10]) == 0 {
							v = cat5Base + readExtraBitsFast(br, &r, &val, &bitsLeft, KCat5)
						} else {
							v = cat6Base + readExtraBitsFast(br, &r, &val, &bitsLeft, KCat6)
						}
					}
				}
			}
		}
		ctx = nextCtx

		dq := dq1
		if i == 0 {
			dq = dq0
		}
		sv := int32(v) * dq
		if fastBit(br, &r, &val, &bitsLeft, 128) != 0 {
			sv = -sv
		}
		out[Zigzag[i]] = int16(sv)
		nz = true
		i++
	}
	return i, nz
}

// nzCodeBits packs, two bits per subblock, which inverse-transform variant
// reconstructRow should use: 0 (nothing decoded), 1 (only the DC term can be
// nonzero), 2 (at most scan positions 0/1/2, raster 0/1/4, can be nonzero,
// the TransformAC3 fast path), or 3 (the full 4x4 IDCT is needed).
// last is the scan position getCoeffs stopped at; dcNz reports whether the
// subblock's raster position 0 ended up nonzero (including a Y2-derived DC).
func nzCodeBits(nzCoeffs uint32, last int, dcNz bool) uint32 {
	nzCoeffs <<= 2
	switch {
	case last > 3:
		nzCoeffs |= 3
	case last > 1:
		nzCoeffs |= 2
	case dcNz:
		nzCoeffs |= 1
	}
	return nzCoeffs
}

// decodeMB reads one macroblock's residual coefficients from tokenBR, the
// caller-selected residual partition for this macroblock row. A skipped
// macroblock has no coefficients at all; its above/left nonzero context
// collapses to zero, except that a skipped BPred macroblock leaves the Y2
// DC context untouched since it never had a Y2 block to begin with.
func (dec *Decoder) decodeMB(tokenBR *bitio.BoolReader) error {
	md := &dec.mbData[dec.mbX]
	above := &dec.aboveNz[dec.mbX]

	var err error
	if md.Skip {
		above.Nz = 0
		above.UNz = 0
		above.VNz = 0
		dec.leftNz.Nz = 0
		dec.leftNz.UNz = 0
		dec.leftNz.VNz = 0
		if !md.IsI4x4 {
			above.NzDC = 0
			dec.leftNz.NzDC = 0
		}
		md.NonZeroY = 0
		md.NonZeroUV = 0
		md.Dither = 0
	} else {
		err = dec.parseResiduals(md, above, tokenBR)
	}

	// The loop filter's per-macroblock strength was precomputed per
	// (segment, is_i4x4) at frame start; only whether interior edges need
	// filtering depends on this macroblock's own skip flag (RFC 6386
	// §15.2: "non-zero coefficients OR 4x4 prediction mode").
	if dec.filterType != 0 {
		finfo := &dec.fInfo[dec.mbX]
		*finfo = dec.fstrengths[md.Segment][b2i(md.IsI4x4)]
		finfo.FInner = finfo.FInner || !md.Skip
	}

	return err
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseResiduals decodes a macroblock's Y2 (if present), luma, and chroma
// coefficient blocks and records per-subblock nonzero context for the next
// macroblock to the right (dec.leftNz) and the macroblock below (above,
// i.e. dec.aboveNz[dec.mbX] as seen by the next row).
func (dec *Decoder) parseResiduals(md *MBData, above *MB, tokenBR *bitio.BoolReader) error {
	dqm := &dec.dqm[md.Segment]
	proba := &dec.proba
	left := &dec.leftNz

	for i := range md.Coeffs {
		md.Coeffs[i] = 0
	}

	tnz := uint32(above.Nz)
	lnz := uint32(left.Nz)

	first := 0
	dc0, ac0 := dqm.Y1Mat[0], dqm.Y1Mat[1]
	hasY2 := !md.IsI4x4

	if hasY2 {
		ctx := int(above.NzDC) + int(left.NzDC)
		var y2Coeffs [16]int16
		_, nz := getCoeffs(tokenBR, &proba.BandsPtr[1], ctx, dqm.Y2Mat[0], dqm.Y2Mat[1], 0, y2Coeffs[:])
		nzBit := uint8(0)
		if nz {
			nzBit = 1
		}
		above.NzDC = nzBit
		left.NzDC = nzBit
		// The inverse WHT distributes the Y2 block's 16 coefficients into
		// each luma subblock's own DC slot (stride 16 matches Coeffs'
		// per-subblock layout), so the luma AC loop below can start at
		// scan position 1 without ever touching position 0 itself.
		dsp.TransformWHT(y2Coeffs[:], md.Coeffs[:256])
		first = 1
	}

	typ := 3
	if hasY2 {
		typ = 0
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			ctx := int((tnz>>uint(x))&1) + int((lnz>>uint(y))&1)
			sub := y*4 + x
			last, nz := getCoeffs(tokenBR, &proba.BandsPtr[typ], ctx, dc0, ac0, first, md.Coeffs[sub*16:sub*16+16])
			bit := uint32(0)
			if nz {
				bit = 1
			}
			tnz = (tnz &^ (1 << uint(x))) | (bit << uint(x))
			lnz = (lnz &^ (1 << uint(y))) | (bit << uint(y))
			md.NonZeroY = nzCodeBits(md.NonZeroY, last, md.Coeffs[sub*16] != 0)
		}
	}
	above.Nz = uint8(tnz & 0xf)
	left.Nz = uint8(lnz & 0xf)

	planes := [2]struct {
		base   int
		topNz  *uint8
		leftNz *uint8
	}{
		{256, &above.UNz, &left.UNz},
		{256 + 64, &above.VNz, &left.VNz},
	}
	for _, pl := range planes {
		tnzP := uint32(*pl.topNz)
		lnzP := uint32(*pl.leftNz)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				ctx := int((tnzP>>uint(x))&1) + int((lnzP>>uint(y))&1)
				sub := y*2 + x
				off := pl.base + sub*16
				last, nz := getCoeffs(tokenBR, &proba.BandsPtr[2], ctx, dqm.UVMat[0], dqm.UVMat[1], 0, md.Coeffs[off:off+16])
				bit := uint32(0)
				if nz {
					bit = 1
				}
				tnzP = (tnzP &^ (1 << uint(x))) | (bit << uint(x))
				lnzP = (lnzP &^ (1 << uint(y))) | (bit << uint(y))
				md.NonZeroUV = nzCodeBits(md.NonZeroUV, last, md.Coeffs[off] != 0)
			}
		}
		*pl.topNz = uint8(tnzP & 0x3)
		*pl.leftNz = uint8(lnzP & 0x3)
	}

	if md.NonZeroUV&0xaaaa == 0 {
		md.Dither = dqm.Dither
	} else {
		md.Dither = 0
	}

	return nil
}
