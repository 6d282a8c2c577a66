package lossy

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-vp8/vp8lossy/internal/bitio"
)

func TestB2I(t *testing.T) {
	c := qt.New(t)
	c.Assert(b2i(true), qt.Equals, 1)
	c.Assert(b2i(false), qt.Equals, 0)
}

func TestNzCodeBitsPacksTwoBitsPerSubblock(t *testing.T) {
	c := qt.New(t)
	var bits uint32
	bits = nzCodeBits(bits, 0, false) // subblock 0: empty
	bits = nzCodeBits(bits, 1, true)  // subblock 1: DC-only
	bits = nzCodeBits(bits, 2, false) // subblock 2: AC3-eligible
	bits = nzCodeBits(bits, 4, false) // subblock 3: needs the full IDCT
	c.Assert(bits, qt.Equals, uint32(0<<6|1<<4|2<<2|3))
}

func TestReadExtraBitsAllOnes(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader([]byte{0xff, 0xff})
	c.Assert(readExtraBits(br, kCat1Probs), qt.Equals, 1)

	br = bitio.NewBoolReader([]byte{0xff, 0xff})
	c.Assert(readExtraBits(br, kCat2Probs), qt.Equals, 3)
}

func TestReadExtraBitsAllZero(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader(make([]byte, 2))
	c.Assert(readExtraBits(br, kCat2Probs), qt.Equals, 0)
}

// An immediate end-of-block bit (always 0 against an all-zero partition)
// leaves a block untouched and reports no nonzero coefficients, matching
// how a fully skipped macroblock's subblocks decode.
func TestGetCoeffsEmptyBlock(t *testing.T) {
	c := qt.New(t)
	var proba Proba
	ResetProba(&proba)
	br := bitio.NewBoolReader(make([]byte, 4))
	var out [16]int16
	last, nz := getCoeffs(br, &proba.BandsPtr[0], 0, 4, 4, 0, out[:])
	c.Assert(nz, qt.IsFalse)
	c.Assert(last, qt.Equals, 0)
	for i, v := range out {
		c.Assert(v, qt.Equals, int16(0), qt.Commentf("coeff %d", i))
	}
}

// Starting at scan position 1 (the post-Y2 luma case) behaves the same way:
// the block reports empty starting from whatever position the WHT pass
// left off at.
func TestGetCoeffsEmptyBlockFromPositionOne(t *testing.T) {
	c := qt.New(t)
	var proba Proba
	ResetProba(&proba)
	br := bitio.NewBoolReader(make([]byte, 4))
	var out [16]int16
	last, nz := getCoeffs(br, &proba.BandsPtr[0], 0, 4, 4, 1, out[:])
	c.Assert(nz, qt.IsFalse)
	c.Assert(last, qt.Equals, 1)
}

// TestGetCoeffsLargeValueReadsCarriedContext decodes one coefficient whose
// magnitude (2) requires the large-value branch of the token tree, with
// context 0 entering that coefficient's decode. Every tree node of the
// coefficient's own decode — including the nodes read only on the large-
// value side (pp[3], pp[4]) — must use context 0's probabilities; only the
// *next* coefficient's entry context becomes 2. Context 0's and context
// 2's rows are set to clearly distinct, non-uniform probabilities
// specifically so that reading the wrong row desyncs the arithmetic
// decoder and this test fails: this is a regression test for a bug where
// the large-value branch mutated ctx to 2 before finishing its own token
// walk.
func TestGetCoeffsLargeValueReadsCarriedContext(t *testing.T) {
	c := qt.New(t)

	const (
		p0      = 20
		p1      = 20
		p2      = 20
		p3      = 20
		p4      = 20
		eobProb = 20
	)

	band1 := &BandProbas{}
	band1.Probas[0] = [NumProbas]uint8{p0, p1, p2, p3, p4, 128, 128, 128, 128, 128, 128}
	band1.Probas[2] = [NumProbas]uint8{250, 250, 250, 250, 250, 2, 2, 2, 2, 2, 2}

	band2 := &BandProbas{}
	band2.Probas[2] = [NumProbas]uint8{eobProb, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	var bands [17]*BandProbas
	bands[1] = band1
	bands[2] = band2

	bw := newTestBoolEncoder()
	bw.putBit(1, p0)      // continue (not end-of-block)
	bw.putBit(1, p1)      // nonzero
	bw.putBit(1, p2)      // large-value branch
	bw.putBit(0, p3)      // {2,3,4} sub-branch
	bw.putBit(0, p4)      // v == 2
	bw.putBit(0, 128)     // positive sign
	bw.putBit(0, eobProb) // next coefficient: end of block, ctx 2
	data := bw.finish()

	br := bitio.NewBoolReader(data)
	var out [16]int16
	last, nz := getCoeffs(br, &bands, 0, 3, 5, 1, out[:])

	c.Assert(nz, qt.IsTrue)
	c.Assert(last, qt.Equals, 2)
	c.Assert(out[Zigzag[1]], qt.Equals, int16(2*5))
	for i, v := range out {
		if i == Zigzag[1] {
			continue
		}
		c.Assert(v, qt.Equals, int16(0), qt.Commentf("coeff %d", i))
	}
}
