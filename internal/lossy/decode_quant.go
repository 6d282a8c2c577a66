package lossy

import "github.com/go-vp8/vp8lossy/internal/bitio"

// QuantMatrix holds one segment's dequantization factors: the DC ([0]) and
// AC ([1]) factors of the luma (Y1), Y2 (WHT), and chroma (UV) coefficients,
// plus the dithering amplitude for this segment's chroma quantizer.
type QuantMatrix struct {
	Y1Mat  [2]int32
	Y2Mat  [2]int32
	UVMat  [2]int32
	Dither uint8
}

// kQuantToDitherAmp maps a fine UV quantizer index to the chroma dithering
// amplitude; from index 12 up the quantization step is coarse enough that
// dithering stops helping and the amplitude drops to zero.
var kQuantToDitherAmp = [12]uint8{8, 7, 6, 4, 4, 2, 2, 2, 1, 1, 1, 1}

func clipQ(v, maxV int) int {
	if v < 0 {
		return 0
	}
	if v > maxV {
		return maxV
	}
	return v
}

// ParseQuant reads the per-segment quantizer indices and derives each
// segment's dequantization matrix. When segmentation carries no
// per-segment quantizer data (segHdr.UseSegment is false), every segment
// beyond the first is aliased to segment 0's matrix rather than decoding
// four independent deltas against an undefined base.
func ParseQuant(br *bitio.BoolReader, segHdr *SegmentHeader, dqm *[NumMBSegments]QuantMatrix) error {
	baseQ0 := int(br.GetValue(7))

	dqY1Dc := readOptionalSigned(br, 4)
	dqY2Dc := readOptionalSigned(br, 4)
	dqY2Ac := readOptionalSigned(br, 4)
	dqUVDc := readOptionalSigned(br, 4)
	dqUVAc := readOptionalSigned(br, 4)

	for i := 0; i < NumMBSegments; i++ {
		var q int
		if segHdr.UseSegment {
			q = int(segHdr.Quantizer[i])
			if !segHdr.AbsoluteDelta {
				q += baseQ0
			}
		} else if i > 0 {
			dqm[i] = dqm[0]
			continue
		} else {
			q = baseQ0
		}

		m := &dqm[i]
		m.Y1Mat[0] = int32(KDcTable[clipQ(q+dqY1Dc, 127)])
		m.Y1Mat[1] = int32(KAcTable[clipQ(q, 127)])

		m.Y2Mat[0] = int32(KDcTable[clipQ(q+dqY2Dc, 127)]) * 2
		y2Ac := int32(KAcTable[clipQ(q+dqY2Ac, 127)]) * 101581 >> 16
		if y2Ac < 8 {
			y2Ac = 8
		}
		m.Y2Mat[1] = y2Ac

		m.UVMat[0] = int32(KDcTable[clipQ(q+dqUVDc, 117)])
		m.UVMat[1] = int32(KAcTable[clipQ(q+dqUVAc, 127)])

		if uvQ := q + dqUVAc; uvQ < len(kQuantToDitherAmp) {
			if uvQ < 0 {
				uvQ = 0
			}
			m.Dither = kQuantToDitherAmp[uvQ]
		} else {
			m.Dither = 0
		}
	}
	return nil
}

func readOptionalSigned(br *bitio.BoolReader, numBits int) int {
	if br.ReadBool() {
		return int(br.GetSignedValue(numBits))
	}
	return 0
}
