package dsp

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func freshBlock(v byte) []byte {
	buf := make([]byte, 4*BPS)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func TestTransformDCOnlyMatchesFullIDCT(t *testing.T) {
	c := qt.New(t)
	var coeffs [16]int16
	coeffs[0] = 64

	dcDst := freshBlock(100)
	TransformDC(coeffs[:], dcDst)

	fullDst := freshBlock(100)
	Transform(coeffs[:], fullDst)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			off := row*BPS + col
			c.Assert(dcDst[off], qt.Equals, fullDst[off])
		}
	}
}

func TestTransformWHTDCOnlyFillsEverySubblock(t *testing.T) {
	c := qt.New(t)
	// A flat DC-only Y2 block should produce the same DC value, scaled and
	// rounded, in every one of the 16 output slots.
	in := make([]int16, 16)
	in[0] = 80
	out := make([]int16, 16*16)
	TransformWHT(in, out)
	want := (80 + 3) >> 3
	for i := 0; i < 16; i++ {
		c.Assert(int(out[i*16]), qt.Equals, want)
	}
}

func TestTransformAC3MatchesFullIDCTWhenOnlyThreeCoeffsSet(t *testing.T) {
	c := qt.New(t)
	var coeffs [16]int16
	coeffs[0] = 40
	coeffs[1] = -12
	coeffs[4] = 9

	ac3Dst := freshBlock(50)
	TransformAC3(coeffs[:], ac3Dst)

	fullDst := freshBlock(50)
	Transform(coeffs[:], fullDst)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			off := row*BPS + col
			c.Assert(ac3Dst[off], qt.Equals, fullDst[off])
		}
	}
}
