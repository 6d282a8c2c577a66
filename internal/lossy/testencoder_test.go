package lossy

// testBoolEncoder is the encoding mirror of bitio.BoolReader, used only to
// build synthetic bitstreams for this package's tests. It follows the
// reference boolean encoder (libwebp's VP8BitWriter: the same range/value/
// run/nbBits state and the same kNorm/kNewRange renormalization tables),
// kept test-only rather than promoted to a production encoder since this
// repository implements VP8 lossy decode only.
type testBoolEncoder struct {
	range_ int32
	value  int32
	run    int
	nbBits int
	buf    []byte
}

func newTestBoolEncoder() *testBoolEncoder {
	return &testBoolEncoder{range_: 255 - 1, nbBits: -8}
}

func (bw *testBoolEncoder) putBit(bit int, prob int) {
	split := (bw.range_ * int32(prob)) >> 8
	if bit != 0 {
		bw.value += split + 1
		bw.range_ -= split + 1
	} else {
		bw.range_ = split
	}
	if bw.range_ < 127 {
		shift := testKNorm[bw.range_]
		bw.range_ = int32(testKNewRange[bw.range_])
		bw.value <<= uint(shift)
		bw.nbBits += int(shift)
		if bw.nbBits > 0 {
			bw.flush()
		}
	}
}

func (bw *testBoolEncoder) putBits(value uint32, nbBits int) {
	for mask := uint32(1) << uint(nbBits-1); mask != 0; mask >>= 1 {
		bit := 0
		if value&mask != 0 {
			bit = 1
		}
		bw.putBit(bit, 128)
	}
}

func (bw *testBoolEncoder) flush() {
	s := 8 + bw.nbBits
	bits := bw.value >> uint(s)
	bw.value -= bits << uint(s)
	bw.nbBits -= 8
	if bits&0xff != 0xff {
		if bits&0x100 != 0 && len(bw.buf) > 0 {
			bw.buf[len(bw.buf)-1]++
		}
		if bw.run > 0 {
			val := byte(0xff)
			if bits&0x100 != 0 {
				val = 0x00
			}
			for ; bw.run > 0; bw.run-- {
				bw.buf = append(bw.buf, val)
			}
		}
		bw.buf = append(bw.buf, byte(bits&0xff))
	} else {
		bw.run++
	}
}

func (bw *testBoolEncoder) finish() []byte {
	bw.putBits(0, 9-bw.nbBits)
	bw.nbBits = 0
	bw.flush()
	return bw.buf
}

var testKNorm = [128]uint8{
	7, 6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
}

var testKNewRange = [128]uint8{
	127, 127, 191, 127, 159, 191, 223, 127, 143, 159, 175, 191, 207, 223, 239,
	127, 135, 143, 151, 159, 167, 175, 183, 191, 199, 207, 215, 223, 231, 239,
	247, 127, 131, 135, 139, 143, 147, 151, 155, 159, 163, 167, 171, 175, 179,
	183, 187, 191, 195, 199, 203, 207, 211, 215, 219, 223, 227, 231, 235, 239,
	243, 247, 251, 127, 129, 131, 133, 135, 137, 139, 141, 143, 145, 147, 149,
	151, 153, 155, 157, 159, 161, 163, 165, 167, 169, 171, 173, 175, 177, 179,
	181, 183, 185, 187, 189, 191, 193, 195, 197, 199, 201, 203, 205, 207, 209,
	211, 213, 215, 217, 219, 221, 223, 225, 227, 229, 231, 233, 235, 237, 239,
	241, 243, 245, 247, 249, 251, 253, 127,
}
