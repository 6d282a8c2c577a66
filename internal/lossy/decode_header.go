package lossy

import (
	"github.com/go-vp8/vp8lossy/internal/bitio"
)

// parseHeaders reads the uncompressed frame tag, the keyframe start code
// and picture dimensions, and then the bool-coded compressed header:
// segmentation, the loop filter, the DCT partition layout, the
// quantizer, and the coefficient probability updates.
func (dec *Decoder) parseHeaders(data []byte) error {
	if len(data) < 3 {
		return wrapf(ErrTruncatedBitstream, "frame tag: need 3 bytes, have %d", len(data))
	}
	tag := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	dec.Frame.KeyFrame = tag&1 == 0
	dec.Frame.Profile = int((tag >> 1) & 7)
	dec.Frame.Show = (tag>>4)&1 != 0
	dec.Frame.PartitionLength = (tag >> 5) & 0x7ffff

	if !dec.Frame.KeyFrame {
		return wrapf(ErrUnsupportedProfile, "inter frames are not supported")
	}
	if dec.Frame.Profile > 3 {
		return wrapf(ErrUnsupportedProfile, "profile %d is reserved", dec.Frame.Profile)
	}

	if len(data) < 10 {
		return wrapf(ErrTruncatedBitstream, "picture header: need 10 bytes, have %d", len(data))
	}
	if data[3] != 0x9d || data[4] != 0x01 || data[5] != 0x2a {
		return wrapf(ErrInvalidHeader, "bad start code")
	}
	w := uint16(data[6]) | uint16(data[7])<<8
	h := uint16(data[8]) | uint16(data[9])<<8
	dec.Picture.Width = int(w & 0x3fff)
	dec.Picture.XScale = int(w >> 14)
	dec.Picture.Height = int(h & 0x3fff)
	dec.Picture.YScale = int(h >> 14)

	partStart := 10
	partEnd := partStart + int(dec.Frame.PartitionLength)
	if partEnd > len(data) {
		return wrapf(ErrTruncatedBitstream, "partition 0: need %d bytes, have %d", partEnd, len(data)-partStart)
	}
	dec.br = bitio.NewBoolReader(data[partStart:partEnd])
	br := dec.br

	dec.Picture.Colorspace = br.GetBit(128)
	dec.Picture.ClampType = br.GetBit(128)

	if err := dec.parseSegmentHeader(br); err != nil {
		return err
	}
	if err := dec.parseFilterHeader(br); err != nil {
		return err
	}

	logNumParts := int(br.GetValue(2))
	numParts := 1 << uint(logNumParts)
	if numParts > MaxNumPartitions {
		return wrapf(ErrInvalidHeader, "too many partitions: %d", numParts)
	}
	if err := dec.parsePartitions(data[partEnd:], numParts); err != nil {
		return err
	}

	if err := ParseQuant(br, &dec.Seg, &dec.dqm); err != nil {
		return err
	}

	br.GetBit(128) // refresh_entropy_probs: every frame we decode is self-contained

	ResetProba(&dec.proba)
	parseProba(br, dec)

	dec.useSkipProba = br.ReadBool()
	if dec.useSkipProba {
		dec.skipP = uint8(br.GetValue(8))
	}
	return nil
}

// parseSegmentHeader reads segmentation_enabled and, if set, the
// update_mb_segmentation_map/data flags and the per-segment quantizer and
// filter-strength deltas.
//
// When segmentation is signaled but this frame carries no per-segment data
// (update_segment_feature_data is false), the per-segment quantizer and
// filter-strength values reset to zero rather than carrying over stale
// values from a previous decode. When the frame does not carry an updated
// map, macroblock segment ids come from the decoder's retained segment map.
func (dec *Decoder) parseSegmentHeader(br *bitio.BoolReader) error {
	dec.Seg.UseSegment = br.ReadBool()
	if !dec.Seg.UseSegment {
		dec.Seg.UpdateMap = false
		return nil
	}

	dec.Seg.UpdateMap = br.ReadBool()
	updateData := br.ReadBool()
	if updateData {
		dec.Seg.AbsoluteDelta = br.ReadBool()
		for i := 0; i < NumMBSegments; i++ {
			dec.Seg.Quantizer[i] = int8(readOptionalSigned(br, 7))
		}
		for i := 0; i < NumMBSegments; i++ {
			dec.Seg.FilterStrength[i] = int8(readOptionalSigned(br, 6))
		}
	}
	if dec.Seg.UpdateMap {
		for i := 0; i < 3; i++ {
			if br.ReadBool() {
				dec.proba.Segments[i] = uint8(br.GetValue(8))
			} else {
				dec.proba.Segments[i] = 255
			}
		}
	}
	if !updateData {
		dec.Seg.Quantizer = [NumMBSegments]int8{}
		dec.Seg.FilterStrength = [NumMBSegments]int8{}
	}
	return nil
}

// parseFilterHeader reads the frame-level loop filter configuration and
// derives filterType: 0 when the filter level is zero (off), 1 for the
// simple filter, 2 for the normal/complex filter.
func (dec *Decoder) parseFilterHeader(br *bitio.BoolReader) error {
	dec.Filt.Simple = br.ReadBool()
	dec.Filt.Level = int(br.GetValue(6))
	dec.Filt.Sharpness = int(br.GetValue(3))
	dec.Filt.UseLFDelta = br.ReadBool()
	if dec.Filt.UseLFDelta {
		if br.ReadBool() {
			for i := 0; i < 4; i++ {
				dec.Filt.RefLFDelta[i] = int8(readOptionalSigned(br, 6))
			}
			for i := 0; i < 4; i++ {
				dec.Filt.ModeLFDelta[i] = int8(readOptionalSigned(br, 6))
			}
		}
	}
	switch {
	case dec.Filt.Level == 0:
		dec.filterType = 0
	case dec.Filt.Simple:
		dec.filterType = 1
	default:
		dec.filterType = 2
	}
	return nil
}

// parsePartitions reads the (numParts-1) three-byte little-endian length
// prefixes following partition 0 and sets up a BoolReader over each
// resulting residual partition. The last partition absorbs whatever bytes
// remain, and a declared size larger than the blob is clamped to the bytes
// actually present: a short partition only surfaces as an error if a row
// that reads from it runs dry.
func (dec *Decoder) parsePartitions(rest []byte, numParts int) error {
	dec.numPartsMinusOne = numParts - 1
	sizesLen := 3 * (numParts - 1)
	if len(rest) < sizesLen {
		return wrapf(ErrTruncatedBitstream, "partition size table: need %d bytes, have %d", sizesLen, len(rest))
	}
	offset := sizesLen
	for i := 0; i < numParts; i++ {
		size := len(rest) - offset
		if i < numParts-1 {
			b := rest[3*i : 3*i+3]
			if declared := int(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16); declared < size {
				size = declared
			}
		}
		dec.parts[i] = bitio.NewBoolReader(rest[offset : offset+size])
		offset += size
	}
	return nil
}
