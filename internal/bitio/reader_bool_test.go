package bitio

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// TestGetBitRangeInvariant checks that Range stays inside the invariant
// window required by RFC 6386 §7.3 after every prob=128 GetBit call.
func TestGetBitRangeInvariant(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x01, 0x02}
	br := NewBoolReader(data)
	for i := 0; i < 64; i++ {
		br.GetBit(128)
		c.Assert(br.Range+1 >= 128, qt.IsTrue, qt.Commentf("range=%d at bit %d", br.Range, i))
		c.Assert(br.Range+1 <= 255, qt.IsTrue, qt.Commentf("range=%d at bit %d", br.Range, i))
	}
}

func TestEOFZeroFill(t *testing.T) {
	c := qt.New(t)
	br := NewBoolReader([]byte{0xff})
	for i := 0; i < 200; i++ {
		br.GetBit(128)
	}
	c.Assert(br.EOF(), qt.IsTrue)
}

func TestGetValueWidths(t *testing.T) {
	c := qt.New(t)
	br := NewBoolReader([]byte{0xff, 0xff, 0xff, 0xff})
	v := br.GetValue(7)
	c.Assert(v <= 127, qt.IsTrue)
}

func TestGetSignedValue(t *testing.T) {
	c := qt.New(t)
	// All-ones input decodes every bit to 1 under prob=128, so the magnitude
	// is all-ones and the trailing sign bit negates it.
	br := NewBoolReader([]byte{0xff, 0xff, 0xff, 0xff})
	v := br.GetSignedValue(4)
	c.Assert(v, qt.Equals, int32(-15))
}
