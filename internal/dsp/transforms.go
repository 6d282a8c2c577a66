package dsp

// Inverse transforms for VP8 lossy decoding: the 4x4 IDCT (RFC 6386 §14.3)
// and the inverse Walsh-Hadamard transform used to recover the sixteen
// luma-block DC coefficients from the Y2 block (RFC 6386 §14.3). Constants
// and structure follow libwebp's TransformOne_C / TransformWHT_C.

const (
	idctC1 = 20091 // sqrt(2)*cos(pi/8)*2^16 - 2^16; mul1 adds the input back
	idctC2 = 35468 // sqrt(2)*sin(pi/8)*2^16
)

func mul1(a int) int { return ((a * idctC1) >> 16) + a }
func mul2(a int) int { return (a * idctC2) >> 16 }

func store(dst []byte, off, x int) {
	dst[off] = Clip8b(int(dst[off]) + (x >> 3))
}

// Transform applies the full 4x4 IDCT to in (16 coefficients) and adds the
// result to dst (stride BPS).
func Transform(in []int16, dst []byte) {
	_ = in[15]
	_ = dst[3+3*BPS]

	var tmp [4 * 4]int

	for col := 0; col < 4; col++ {
		a := int(in[col]) + int(in[8+col])
		b := int(in[col]) - int(in[8+col])
		cc := mul2(int(in[4+col])) - mul1(int(in[12+col]))
		d := mul1(int(in[4+col])) + mul2(int(in[12+col]))
		tmp[col] = a + d
		tmp[4+col] = b + cc
		tmp[8+col] = b - cc
		tmp[12+col] = a - d
	}

	for row := 0; row < 4; row++ {
		t := tmp[row*4 : row*4+4]
		dc := t[0] + 4
		a := dc + t[2]
		b := dc - t[2]
		cc := mul2(t[1]) - mul1(t[3])
		d := mul1(t[1]) + mul2(t[3])
		o := row * BPS
		store(dst, o+0, a+d)
		store(dst, o+1, b+cc)
		store(dst, o+2, b-cc)
		store(dst, o+3, a-d)
	}
}

// TransformDC applies a DC-only inverse transform (all AC coefficients
// zero): every one of the 16 output samples receives the same bias.
func TransformDC(in []int16, dst []byte) {
	dc := int(in[0]) + 4
	for row := 0; row < 4; row++ {
		o := row * BPS
		store(dst, o+0, dc)
		store(dst, o+1, dc)
		store(dst, o+2, dc)
		store(dst, o+3, dc)
	}
}

// TransformAC3 applies the inverse transform when only the DC and the two
// lowest-frequency AC coefficients (positions 0, 1, 4 in raster order) can
// be non-zero.
func TransformAC3(in []int16, dst []byte) {
	a := int(in[0]) + 4
	c4 := mul2(int(in[4]))
	d4 := mul1(int(in[4]))
	c1v := mul2(int(in[1]))
	d1v := mul1(int(in[1]))

	store(dst, 0+0*BPS, a+d4+d1v)
	store(dst, 1+0*BPS, a+d4+c1v)
	store(dst, 2+0*BPS, a+d4-c1v)
	store(dst, 3+0*BPS, a+d4-d1v)
	store(dst, 0+1*BPS, a+c4+d1v)
	store(dst, 1+1*BPS, a+c4+c1v)
	store(dst, 2+1*BPS, a+c4-c1v)
	store(dst, 3+1*BPS, a+c4-d1v)
	store(dst, 0+2*BPS, a-c4+d1v)
	store(dst, 1+2*BPS, a-c4+c1v)
	store(dst, 2+2*BPS, a-c4-c1v)
	store(dst, 3+2*BPS, a-c4-d1v)
	store(dst, 0+3*BPS, a-d4+d1v)
	store(dst, 1+3*BPS, a-d4+c1v)
	store(dst, 2+3*BPS, a-d4-c1v)
	store(dst, 3+3*BPS, a-d4-d1v)
}

// TransformWHT performs the inverse Walsh-Hadamard transform on the 16 Y2
// coefficients, producing the 16 per-luma-subblock DC values. out receives
// them with stride 16 — out[i*16] is the DC for luma subblock i, matching
// the layout of the 384-coefficient macroblock buffer.
func TransformWHT(in []int16, out []int16) {
	var tmp [16]int

	for i := 0; i < 4; i++ {
		a0 := int(in[0+i]) + int(in[12+i])
		a1 := int(in[4+i]) + int(in[8+i])
		a2 := int(in[4+i]) - int(in[8+i])
		a3 := int(in[0+i]) - int(in[12+i])
		tmp[0+i] = a0 + a1
		tmp[8+i] = a0 - a1
		tmp[4+i] = a3 + a2
		tmp[12+i] = a3 - a2
	}

	for i := 0; i < 4; i++ {
		dc := tmp[i*4+0] + 3
		a0 := dc + tmp[i*4+3]
		a1 := tmp[i*4+1] + tmp[i*4+2]
		a2 := tmp[i*4+1] - tmp[i*4+2]
		a3 := dc - tmp[i*4+3]
		base := i * 4 * 16
		out[base+0*16] = int16((a0 + a1) >> 3)
		out[base+1*16] = int16((a3 + a2) >> 3)
		out[base+2*16] = int16((a0 - a1) >> 3)
		out[base+3*16] = int16((a3 - a2) >> 3)
	}
}
