package lossy

import "github.com/go-vp8/vp8lossy/internal/bitio"

// readTree walks a VP8-style binary tree: tree holds, at each even index,
// the two children reached by reading one bit with probability
// probs[index>>1]; a child value <= 0 is a leaf, read as its negation.
func readTree(br *bitio.BoolReader, tree []int8, probs []uint8) int {
	i := int8(0)
	for {
		bit := br.GetBit(probs[i>>1])
		i = tree[int(i)+bit]
		if i <= 0 {
			break
		}
	}
	return -int(i)
}

// BPred marks a macroblock as coded with sixteen independent 4x4 luma
// predictors rather than one whole-macroblock 16x16 mode.
const BPred = 4

// kYModeTree walks: BPred vs. {DC,V,H,TM}, then DC/V vs. H/TM, then a final
// bit within each pair. DCPred's value of 0 doubles as a leaf under
// readTree's "<=0 terminates" convention, so it needs no negation.
var kYModeTree = []int8{
	-BPred, 2,
	4, 6,
	DCPred, -VPred,
	-HPred, -TMPred,
}
var kYModeProb = [4]uint8{145, 156, 163, 128}

var kUVModeTree = []int8{
	DCPred, 2,
	-VPred, 4,
	-HPred, -TMPred,
}
var kUVModeProb = [3]uint8{142, 114, 183}

// parseProba reads the per-frame coefficient probability updates: each of
// the NumTypes*NumBands*NumCtx*NumProbas entries is independently replaced
// with probability CoeffsUpdateProba[t][b][c][p]/256.
func parseProba(br *bitio.BoolReader, dec *Decoder) {
	p := &dec.proba
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < NumBands; b++ {
			for c := 0; c < NumCtx; c++ {
				for n := 0; n < NumProbas; n++ {
					if br.GetBit(CoeffsUpdateProba[t][b][c][n]) != 0 {
						p.Bands[t][b].Probas[c][n] = uint8(br.GetValue(8))
					}
				}
			}
		}
	}
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < 16; b++ {
			p.BandsPtr[t][b] = &p.Bands[t][KBands[b]]
		}
		p.BandsPtr[t][16] = &p.Bands[t][KBands[16]]
	}
}

// parseIntraModeRow decodes the segment id, skip flag, and prediction
// modes for every macroblock in row dec.mbY, using dec.br (the partition-0
// reader, which carries all of a keyframe's mode data alongside its
// header).
func (dec *Decoder) parseIntraModeRow() {
	for i := range dec.intraL {
		dec.intraL[i] = uint8(DCPred)
	}
	for mbX := 0; mbX < dec.mbW; mbX++ {
		dec.parseIntraMode(mbX)
	}
}

var segmentTree = []int8{2, 4, 0, -1, -2, -3}

// ymodeToBMode maps a whole-macroblock 16x16 ymode (DCPred/VPred/HPred/
// TMPred) to the 4x4-bmode context value used when a neighboring BPred
// macroblock looks at this macroblock's edge modes.
var ymodeToBMode = [4]uint8{B_DC_PRED, B_VE_PRED, B_HE_PRED, B_TM_PRED}

func (dec *Decoder) parseIntraMode(mbX int) {
	br := dec.br
	md := &dec.mbData[mbX]

	mapIdx := dec.mbY*dec.mbW + mbX
	if dec.Seg.UpdateMap {
		md.Segment = uint8(readTree(br, segmentTree, dec.proba.Segments[:]))
		dec.segmentMap[mapIdx] = md.Segment
	} else if dec.Seg.UseSegment {
		md.Segment = dec.segmentMap[mapIdx]
	} else {
		md.Segment = 0
	}

	md.Skip = dec.useSkipProba && br.GetBit(dec.skipP) != 0

	ymode := readTree(br, kYModeTree, kYModeProb[:])
	md.IsI4x4 = ymode == BPred
	if md.IsI4x4 {
		top := dec.intraT[mbX*4 : mbX*4+4]
		for sub := 0; sub < 16; sub++ {
			col := sub & 3
			row := sub >> 2
			var above uint8
			if row == 0 {
				above = top[col]
			} else {
				above = md.IModes[sub-4]
			}
			var left uint8
			if col == 0 {
				left = dec.intraL[row]
			} else {
				left = md.IModes[sub-1]
			}
			mode := uint8(readTree(br, KYModesIntra4[:], KBModesProba[above][left][:]))
			md.IModes[sub] = mode
		}
		copy(top, md.IModes[12:16])
		for row := 0; row < 4; row++ {
			dec.intraL[row] = md.IModes[row*4+3]
		}
	} else {
		md.YMode = uint8(ymode)
		// A neighboring macroblock coded with one whole-macroblock 16x16
		// mode still needs a 4x4-bmode-context equivalent for whatever
		// BPred macroblock sits below or beside it; ymodeToBMode carries
		// that fixed mapping (RFC 6386 §11.3).
		fixedMode := ymodeToBMode[ymode]
		top := dec.intraT[mbX*4 : mbX*4+4]
		for i := 0; i < 4; i++ {
			top[i] = fixedMode
			dec.intraL[i] = fixedMode
		}
	}

	md.UVMode = uint8(readTree(br, kUVModeTree, kUVModeProb[:]))
}
