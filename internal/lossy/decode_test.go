package lossy

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

// frameCollector copies every emitted row, giving tests a stable snapshot
// of the decoded planes (EmitRow's slices are only valid during the call).
type frameCollector struct {
	y, u, v []byte
}

func (f *frameCollector) EmitRow(mbY int, y, u, v []byte, yStride, uvStride int) {
	f.y = append(f.y, y...)
	f.u = append(f.u, u...)
	f.v = append(f.v, v...)
}

// encodeFrameHeader writes partition 0's bool-coded fields up to the start
// of the per-macroblock mode data: no segmentation, the given loop-filter
// configuration, 2^log2Parts residual partitions, a zero quantizer header,
// no coefficient probability updates, and an explicit skip probability.
func encodeFrameHeader(bw *testBoolEncoder, simple bool, filterLevel, log2Parts, skipProb int) {
	bw.putBit(0, 128) // colorspace: YUV
	bw.putBit(0, 128) // clamp type
	bw.putBit(0, 128) // segmentation off
	bw.putBit(b2i(simple), 128)
	bw.putBits(uint32(filterLevel), 6)
	bw.putBits(0, 3)  // sharpness
	bw.putBit(0, 128) // no loop-filter deltas
	bw.putBits(uint32(log2Parts), 2)
	bw.putBits(0, 7) // base quantizer index
	for i := 0; i < 5; i++ {
		bw.putBit(0, 128) // per-plane quantizer delta absent
	}
	bw.putBit(0, 128) // refresh_entropy_probs
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < NumBands; b++ {
			for c := 0; c < NumCtx; c++ {
				for n := 0; n < NumProbas; n++ {
					bw.putBit(0, int(CoeffsUpdateProba[t][b][c][n]))
				}
			}
		}
	}
	bw.putBit(1, 128) // use_skip_proba
	bw.putBits(uint32(skipProb), 8)
}

// encodeTreeLeaf emits the bit path steering tree to the given leaf, using
// the same per-node probabilities readTree consults on the way down.
func encodeTreeLeaf(bw *testBoolEncoder, tree []int8, probs []uint8, leaf int) {
	i := int8(0)
	for _, bit := range treePathTo(tree, leaf) {
		bw.putBit(bit, int(probs[i>>1]))
		i = tree[int(i)+bit]
	}
}

// encodeIntraMode writes one macroblock's mode-row data: the skip flag and
// the whole-macroblock luma and chroma prediction modes.
func encodeIntraMode(bw *testBoolEncoder, skip bool, skipProb, ymode, uvMode int) {
	bw.putBit(b2i(skip), skipProb)
	encodeTreeLeaf(bw, kYModeTree, kYModeProb[:], ymode)
	encodeTreeLeaf(bw, kUVModeTree, kUVModeProb[:], uvMode)
}

// assembleFrame builds a complete lossy payload: frame tag, start code,
// dimensions, partition 0, the residual partitions' length prefixes, and
// the residual partitions themselves.
func assembleFrame(width, height int, part0 []byte, residuals ...[]byte) []byte {
	tag := frameTag(true, 0, true, uint32(len(part0)))
	data := []byte{
		tag[0], tag[1], tag[2],
		0x9d, 0x01, 0x2a,
		byte(width), byte(width >> 8),
		byte(height), byte(height >> 8),
	}
	data = append(data, part0...)
	for _, r := range residuals[:len(residuals)-1] {
		data = append(data, byte(len(r)), byte(len(r)>>8), byte(len(r)>>16))
	}
	for _, r := range residuals {
		data = append(data, r...)
	}
	return data
}

func decodeCollect(c *qt.C, data []byte) *frameCollector {
	dec := AcquireDecoder()
	defer ReleaseDecoder(dec)
	var out frameCollector
	c.Assert(dec.DecodeFrame(data, &out), qt.IsNil)
	return &out
}

// A 16x16 keyframe with its only macroblock skipped and DC-predicted has no
// reconstructed neighbors at all, so the boundary-adjusted DC predictor
// fills every plane with the mid-gray constant.
func TestDecodeFrameAllSkipDCPred(t *testing.T) {
	c := qt.New(t)
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, false, 0, 0, 255)
	encodeIntraMode(bw, true, 255, DCPred, DCPred)
	data := assembleFrame(16, 16, bw.finish(), newTestBoolEncoder().finish())

	out := decodeCollect(c, data)
	c.Assert(out.y, qt.HasLen, 16*16)
	c.Assert(out.u, qt.HasLen, 8*8)
	c.Assert(out.v, qt.HasLen, 8*8)
	for i, v := range out.y {
		c.Assert(v, qt.Equals, uint8(128), qt.Commentf("y[%d]", i))
	}
	for i := range out.u {
		c.Assert(out.u[i], qt.Equals, uint8(128), qt.Commentf("u[%d]", i))
		c.Assert(out.v[i], qt.Equals, uint8(128), qt.Commentf("v[%d]", i))
	}
}

// TrueMotion over the frame-edge constants (top row 127, left column 129,
// top-left 127) predicts clip(127 + 129 - 127) = 129 for every pixel.
func TestDecodeFrameTMPredAtFrameEdge(t *testing.T) {
	c := qt.New(t)
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, false, 0, 0, 255)
	encodeIntraMode(bw, true, 255, TMPred, TMPred)
	data := assembleFrame(16, 16, bw.finish(), newTestBoolEncoder().finish())

	out := decodeCollect(c, data)
	for i, v := range out.y {
		c.Assert(v, qt.Equals, uint8(129), qt.Commentf("y[%d]", i))
	}
	for i := range out.u {
		c.Assert(out.u[i], qt.Equals, uint8(129), qt.Commentf("u[%d]", i))
		c.Assert(out.v[i], qt.Equals, uint8(129), qt.Commentf("v[%d]", i))
	}
}

// Two residual partitions over two macroblock rows: row 0 reads partition
// 0, row 1 reads partition 1, and an all-skip frame leaves both untouched.
func TestDecodeFrameTwoPartitionsTwoRows(t *testing.T) {
	c := qt.New(t)
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, false, 0, 1, 255)
	encodeIntraMode(bw, true, 255, DCPred, DCPred) // row 0
	encodeIntraMode(bw, true, 255, DCPred, DCPred) // row 1
	data := assembleFrame(16, 32, bw.finish(),
		newTestBoolEncoder().finish(), newTestBoolEncoder().finish())

	out := decodeCollect(c, data)
	c.Assert(out.y, qt.HasLen, 16*32)
	for i, v := range out.y {
		c.Assert(v, qt.Equals, uint8(128), qt.Commentf("y[%d]", i))
	}
}

// Decoding the same bytes twice through one pooled decoder must produce
// bit-identical planes: a finished frame leaves no state behind that could
// bleed into the next.
func TestDecodeFrameIsIdempotent(t *testing.T) {
	c := qt.New(t)
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, false, 0, 0, 255)
	encodeIntraMode(bw, true, 255, TMPred, DCPred)
	data := assembleFrame(16, 16, bw.finish(), newTestBoolEncoder().finish())

	dec := AcquireDecoder()
	defer ReleaseDecoder(dec)
	var first, second frameCollector
	c.Assert(dec.DecodeFrame(data, &first), qt.IsNil)
	c.Assert(dec.DecodeFrame(data, &second), qt.IsNil)
	c.Assert(second.y, qt.DeepEquals, first.y)
	c.Assert(second.u, qt.DeepEquals, first.u)
	c.Assert(second.v, qt.DeepEquals, first.v)
}

// encodeDCOnlyY2Residuals writes one macroblock's residual tokens: a Y2
// block whose DC magnitude lands in the largest category (67, all extra
// bits zero), then end-of-block for every luma AC and chroma subblock.
// Against the zero quantizer header this reconstructs to a flat +8 bias on
// the macroblock's luma.
func encodeDCOnlyY2Residuals(bw *testBoolEncoder) {
	p := &CoeffsProba0[1][0][0] // Y2 tokens, band 0, entry context 0
	bw.putBit(1, int(p[0]))     // not end-of-block
	bw.putBit(1, int(p[1]))     // nonzero
	bw.putBit(1, int(p[2]))     // magnitude > 1
	bw.putBit(1, int(p[3]))     // category side of the tree
	bw.putBit(1, int(p[6]))
	bw.putBit(1, int(p[8]))
	bw.putBit(1, int(p[10])) // category 6
	for _, ep := range KCat6 {
		bw.putBit(0, int(ep)) // extra bits all zero: magnitude 67
	}
	bw.putBit(0, 128)                           // positive sign
	bw.putBit(0, int(CoeffsProba0[1][1][2][0])) // end of block at position 1, ctx 2

	for i := 0; i < 16; i++ { // luma ACs empty (their scan starts past the Y2 DC)
		bw.putBit(0, int(CoeffsProba0[0][1][0][0]))
	}
	for i := 0; i < 8; i++ { // chroma blocks empty
		bw.putBit(0, int(CoeffsProba0[2][0][0][0]))
	}
}

// buildTwoMBFrame is a 32x16 keyframe whose left macroblock carries the
// flat +8 Y2 residual (reconstructing to luma 136) and whose right
// macroblock is skipped and vertically predicted from the frame-edge 127
// row, leaving a 136/127 step across the macroblock boundary.
func buildTwoMBFrame(simple bool, filterLevel int) []byte {
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, simple, filterLevel, 0, 255)
	encodeIntraMode(bw, false, 255, DCPred, DCPred)
	encodeIntraMode(bw, true, 255, VPred, VPred)
	rbw := newTestBoolEncoder()
	encodeDCOnlyY2Residuals(rbw)
	return assembleFrame(32, 16, bw.finish(), rbw.finish())
}

// The simple loop filter smooths the luma step across the macroblock
// boundary, touching exactly one pixel on each side; pixels further from
// the edge keep their unfiltered values, and chroma is never touched by
// the simple filter.
func TestDecodeFrameSimpleLoopFilterSmoothsMBBoundary(t *testing.T) {
	c := qt.New(t)
	noFilter := decodeCollect(c, buildTwoMBFrame(false, 0))
	filtered := decodeCollect(c, buildTwoMBFrame(true, 32))
	c.Assert(noFilter.y, qt.HasLen, 32*16)

	for r := 0; r < 16; r++ {
		row := r * 32
		c.Assert(noFilter.y[row+15], qt.Equals, uint8(136), qt.Commentf("row %d", r))
		c.Assert(noFilter.y[row+16], qt.Equals, uint8(127), qt.Commentf("row %d", r))

		c.Assert(filtered.y[row+14], qt.Equals, uint8(136), qt.Commentf("row %d", r))
		c.Assert(filtered.y[row+15], qt.Equals, uint8(134), qt.Commentf("row %d", r))
		c.Assert(filtered.y[row+16], qt.Equals, uint8(129), qt.Commentf("row %d", r))
		c.Assert(filtered.y[row+17], qt.Equals, uint8(127), qt.Commentf("row %d", r))
	}
	c.Assert(filtered.u, qt.DeepEquals, noFilter.u)
	c.Assert(filtered.v, qt.DeepEquals, noFilter.v)
}

// Cutting the residual partition down to a single byte must surface as a
// truncation error, never a panic; the control partition still parses.
func TestDecodeFrameTruncatedResidualPartition(t *testing.T) {
	c := qt.New(t)
	bw := newTestBoolEncoder()
	encodeFrameHeader(bw, false, 0, 0, 255)
	encodeIntraMode(bw, false, 255, DCPred, DCPred)
	encodeIntraMode(bw, true, 255, VPred, VPred)
	rbw := newTestBoolEncoder()
	encodeDCOnlyY2Residuals(rbw)
	data := assembleFrame(32, 16, bw.finish(), rbw.finish()[:1])

	dec := AcquireDecoder()
	defer ReleaseDecoder(dec)
	var out frameCollector
	err := dec.DecodeFrame(data, &out)
	c.Assert(errors.Is(err, ErrTruncatedBitstream), qt.IsTrue, qt.Commentf("err=%v", err))
}
