package dsp

// In-loop deblocking filter primitives (RFC 6386 §15.2-15.4). Unlike the
// prediction and transform routines, which always operate on the fixed-BPS
// reconstruction scratch, the filter runs directly over the finished
// picture buffer, so every function here takes an explicit stride: step is
// the distance between taps across the edge (1 for a vertical edge's
// horizontal taps, stride for a horizontal edge's vertical taps).

func clip128(v int) int {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return v
}

func u2s(v uint8) int { return int(v) - 128 }
func s2u(v int) uint8 { return uint8(clip128(v) + 128) }

// commonAdjust nudges P0/Q0 toward each other and, when useOuterTaps is
// set, folds in the P1/Q1 difference too. It returns the correction applied
// to Q0, which the subblock filter reuses for its P1/Q1 adjustment.
func commonAdjust(useOuterTaps bool, buf []byte, off, step int) int {
	p1 := u2s(buf[off-2*step])
	p0 := u2s(buf[off-step])
	q0 := u2s(buf[off])
	q1 := u2s(buf[off+step])

	outer := 0
	if useOuterTaps {
		outer = clip128(p1 - q1)
	}
	a := clip128(outer + 3*(q0-p0))
	f1 := clip128(a+4) >> 3
	f2 := clip128(a+3) >> 3

	buf[off] = s2u(q0 - f1)
	buf[off-step] = s2u(p0 + f2)
	return f1
}

func hev(buf []byte, off, step, thresh int) bool {
	p1 := u2s(buf[off-2*step])
	p0 := u2s(buf[off-step])
	q0 := u2s(buf[off])
	q1 := u2s(buf[off+step])
	absInt := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return absInt(p1-p0) > thresh || absInt(q1-q0) > thresh
}

func filterYes(buf []byte, off, step, interiorLimit, edgeLimit int) bool {
	absInt := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	p3, p2, p1, p0 := int(buf[off-4*step]), int(buf[off-3*step]), int(buf[off-2*step]), int(buf[off-step])
	q0, q1, q2, q3 := int(buf[off]), int(buf[off+step]), int(buf[off+2*step]), int(buf[off+3*step])
	return absInt(p0-q0)*2+absInt(p1-q1)/2 <= edgeLimit &&
		absInt(p3-p2) <= interiorLimit && absInt(p2-p1) <= interiorLimit && absInt(p1-p0) <= interiorLimit &&
		absInt(q3-q2) <= interiorLimit && absInt(q2-q1) <= interiorLimit && absInt(q1-q0) <= interiorLimit
}

// SimpleFilter applies the simple in-loop filter to one edge line of
// length count, positions stepping by lineStep, taps stepping by step.
func SimpleFilter(buf []byte, off, step, lineStep, count, edgeLimit int) {
	absInt := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	for i := 0; i < count; i++ {
		o := off + i*lineStep
		p0, q0 := int(buf[o-step]), int(buf[o])
		p1, q1 := int(buf[o-2*step]), int(buf[o+step])
		if absInt(p0-q0)*2+absInt(p1-q1)/2 <= edgeLimit {
			commonAdjust(true, buf, o, step)
		}
	}
}

// SubblockFilter applies the normal filter's inner (non-macroblock-edge)
// variant, which never touches P2/Q2.
func SubblockFilter(buf []byte, off, step, lineStep, count, hevThresh, interiorLimit, edgeLimit int) {
	for i := 0; i < count; i++ {
		o := off + i*lineStep
		if !filterYes(buf, o, step, interiorLimit, edgeLimit) {
			continue
		}
		isHev := hev(buf, o, step, hevThresh)
		a := commonAdjust(isHev, buf, o, step)
		if !isHev {
			a = (a + 1) >> 1
			buf[o+step] = s2u(u2s(buf[o+step]) - a)
			buf[o-2*step] = s2u(u2s(buf[o-2*step]) + a)
		}
	}
}

// MBFilter applies the normal filter's macroblock-edge variant, which also
// adjusts P2/Q2 when the edge is not a high-edge-variance one.
func MBFilter(buf []byte, off, step, lineStep, count, hevThresh, interiorLimit, edgeLimit int) {
	for i := 0; i < count; i++ {
		o := off + i*lineStep
		if !filterYes(buf, o, step, interiorLimit, edgeLimit) {
			continue
		}
		if hev(buf, o, step, hevThresh) {
			commonAdjust(true, buf, o, step)
			continue
		}
		p2, p1, p0 := u2s(buf[o-3*step]), u2s(buf[o-2*step]), u2s(buf[o-step])
		q0, q1, q2 := u2s(buf[o]), u2s(buf[o+step]), u2s(buf[o+2*step])
		w := clip128(clip128(p1-q1) + 3*(q0-p0))

		a := (27*w + 63) >> 7
		buf[o] = s2u(q0 - a)
		buf[o-step] = s2u(p0 + a)

		a = (18*w + 63) >> 7
		buf[o+step] = s2u(q1 - a)
		buf[o-2*step] = s2u(p1 + a)

		a = (9*w + 63) >> 7
		buf[o+2*step] = s2u(q2 - a)
		buf[o-3*step] = s2u(p2 + a)
	}
}
