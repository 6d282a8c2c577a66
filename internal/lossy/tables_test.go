package lossy

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestZigzagIsPermutation(t *testing.T) {
	c := qt.New(t)
	var seen [16]bool
	for n, v := range Zigzag {
		c.Assert(v >= 0 && v < 16, qt.IsTrue, qt.Commentf("scan position %d", n))
		c.Assert(seen[v], qt.IsFalse, qt.Commentf("raster position %d repeated", v))
		seen[v] = true
	}
}

func TestBandsStayInRange(t *testing.T) {
	c := qt.New(t)
	for n, b := range KBands {
		c.Assert(int(b) < NumBands, qt.IsTrue, qt.Commentf("position %d", n))
	}
	// The terminator slot lets getCoeffs index one past the last scan
	// position during a zero run without walking off the band table.
	c.Assert(KBands[16], qt.Equals, uint8(0))
}

func TestResetProbaWiresBandPointersAndDefaults(t *testing.T) {
	c := qt.New(t)
	var p Proba
	ResetProba(&p)
	for typ := 0; typ < NumTypes; typ++ {
		for i := 0; i < 17; i++ {
			c.Assert(p.BandsPtr[typ][i], qt.Equals, &p.Bands[typ][KBands[i]],
				qt.Commentf("type %d position %d", typ, i))
		}
		for b := 0; b < NumBands; b++ {
			c.Assert(p.Bands[typ][b].Probas, qt.Equals, CoeffsProba0[typ][b],
				qt.Commentf("type %d band %d", typ, b))
		}
	}
	c.Assert(p.Segments, qt.Equals, [3]uint8{255, 255, 255})
}
