package lossy

// Static tables shared by the header, mode, and residual parsers: the
// default and update coefficient probabilities (RFC 6386 §13.4-13.5), the
// zigzag scan and band-context tables (§13.3), the keyframe 4x4-mode
// context probabilities (§11.3), the large-value category trees (§13.2),
// and the DC/AC dequantization lookup tables (§14.1). These mirror the
// reference decoder's constant tables; they do not depend on the bitstream
// and are initialized once at package load.

// Dimensions of the coefficient probability tables.
const (
	NumTypes         = 4  // {Y after Y2, Y2, UV, Y without Y2}
	NumBands         = 8  // coefficient "bands" grouping zigzag positions
	NumCtx           = 3  // left/above nonzero context, 0..2
	NumProbas        = 11 // one probability per internal node of the coefficient token tree
	NumMBSegments    = 4
	MaxNumPartitions = 8
)

// Zigzag maps a coefficient's position within the DCT scan order to its
// raster offset within a 4x4 block.
var Zigzag = [16]int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}

// KBands maps a coefficient's scan position (0..15, plus a 16th terminator
// slot) to the probability band used to select its token tree. The trailing
// zero lets the residual decoder index one past the last real coefficient
// without a separate bounds check when deciding whether the block continued.
var KBands = [17]uint8{0, 1, 2, 3, 6, 4, 5, 6, 6, 6, 6, 6, 6, 6, 6, 7, 0}

// BandProbas holds the eleven token-tree probabilities for each of the
// three contexts of one (type, band) pair.
type BandProbas struct {
	Probas [NumCtx][NumProbas]uint8
}

// Proba holds the full set of adaptive probabilities for one frame: the
// coefficient token trees plus the macroblock-segment-id tree.
type Proba struct {
	Bands    [NumTypes][NumBands]BandProbas
	BandsPtr [NumTypes][17]*BandProbas
	Segments [3]uint8
}

// ResetProba restores p to the bitstream's default coefficient
// probabilities and a neutral (maximally uncertain) segment tree, as
// required at the start of every keyframe before update_proba is applied.
func ResetProba(p *Proba) {
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < NumBands; b++ {
			p.Bands[t][b].Probas = CoeffsProba0[t][b]
		}
	}
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < 16; b++ {
			p.BandsPtr[t][b] = &p.Bands[t][KBands[b]]
		}
		p.BandsPtr[t][16] = &p.Bands[t][KBands[16]]
	}
	p.Segments = [3]uint8{255, 255, 255}
}

// CoeffsUpdateProba gives, for each (type, band, context, tree-node), the
// probability that the decoder should read a replacement probability for
// CoeffsProba0 before decoding this frame's coefficients.
var CoeffsUpdateProba = [NumTypes][NumBands][NumCtx][NumProbas]uint8{
	{
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{176, 246, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{223, 241, 252, 255, 255, 255, 255, 255, 255, 255, 255},
			{249, 253, 253, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 244, 252, 255, 255, 255, 255, 255, 255, 255, 255},
			{234, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{253, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 246, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{239, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 248, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{251, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{251, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 253, 255, 254, 255, 255, 255, 255, 255, 255},
			{250, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
	},
	{
		{
			{217, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{225, 252, 241, 253, 255, 255, 254, 255, 255, 255, 255},
			{234, 250, 241, 250, 253, 255, 253, 254, 255, 255, 255},
		},
		{
			{255, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{223, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{238, 253, 254, 254, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 248, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{249, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 253, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{247, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{252, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{253, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{250, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
	},
	{
		{
			{186, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{234, 251, 244, 254, 255, 255, 255, 255, 255, 255, 255},
			{251, 251, 243, 253, 254, 255, 254, 255, 255, 255, 255},
		},
		{
			{255, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{236, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{251, 253, 253, 254, 254, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 254, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
	},
	{
		{
			{248, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{250, 254, 252, 254, 255, 255, 255, 255, 255, 255, 255},
			{248, 254, 249, 253, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 253, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{246, 253, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{252, 254, 251, 254, 254, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 254, 252, 255, 255, 255, 255, 255, 255, 255, 255},
			{248, 254, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{253, 255, 254, 254, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 251, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{245, 251, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{253, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 251, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{252, 253, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 252, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{249, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 253, 255, 255, 255, 255, 255, 255, 255, 255},
			{250, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
		{
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
			{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255},
		},
	},
}

// CoeffsProba0 gives the default coefficient token-tree probabilities used
// at the start of every keyframe, before any per-frame updates from
// CoeffsUpdateProba are applied.
var CoeffsProba0 = [NumTypes][NumBands][NumCtx][NumProbas]uint8{
	{
		{
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
		},
		{
			{253, 136, 254, 255, 228, 219, 128, 128, 128, 128, 128},
			{189, 129, 242, 255, 227, 213, 255, 219, 128, 128, 128},
			{106, 126, 227, 252, 214, 209, 255, 255, 128, 128, 128},
		},
		{
			{1, 98, 248, 255, 236, 226, 255, 255, 128, 128, 128},
			{181, 133, 238, 254, 221, 234, 255, 154, 128, 128, 128},
			{78, 134, 202, 247, 198, 180, 255, 219, 128, 128, 128},
		},
		{
			{1, 185, 249, 255, 243, 255, 128, 128, 128, 128, 128},
			{184, 150, 247, 255, 235, 255, 128, 128, 128, 128, 128},
			{77, 110, 216, 255, 236, 255, 128, 128, 128, 128, 128},
		},
		{
			{1, 101, 251, 255, 241, 255, 128, 128, 128, 128, 128},
			{170, 139, 241, 252, 236, 209, 255, 255, 128, 128, 128},
			{37, 116, 196, 243, 228, 255, 255, 255, 128, 128, 128},
		},
		{
			{1, 204, 254, 255, 245, 255, 128, 128, 128, 128, 128},
			{207, 160, 250, 255, 238, 128, 128, 128, 128, 128, 128},
			{102, 103, 225, 255, 232, 255, 128, 128, 128, 128, 128},
		},
		{
			{1, 152, 252, 255, 240, 255, 128, 128, 128, 128, 128},
			{177, 135, 243, 255, 234, 225, 128, 128, 128, 128, 128},
			{80, 129, 211, 255, 194, 224, 255, 255, 128, 128, 128},
		},
		{
			{1, 1, 173, 219, 188, 174, 255, 255, 128, 128, 128},
			{1, 1, 169, 222, 195, 185, 255, 255, 128, 128, 128},
			{1, 1, 211, 255, 255, 128, 128, 128, 128, 128, 128},
		},
	},
	{
		{
			{198, 35, 237, 223, 193, 187, 162, 160, 145, 155, 62},
			{131, 45, 198, 221, 172, 176, 220, 157, 252, 221, 1},
			{68, 47, 146, 208, 149, 167, 221, 162, 255, 223, 128},
		},
		{
			{1, 149, 241, 255, 221, 224, 255, 255, 128, 128, 128},
			{184, 141, 234, 253, 222, 220, 255, 199, 128, 128, 128},
			{81, 99, 181, 242, 176, 190, 249, 202, 255, 255, 128},
		},
		{
			{1, 129, 232, 253, 214, 197, 242, 196, 255, 255, 128},
			{99, 121, 210, 250, 201, 198, 255, 202, 128, 128, 128},
			{23, 91, 163, 242, 170, 187, 247, 210, 255, 255, 128},
		},
		{
			{1, 200, 246, 255, 234, 255, 128, 128, 128, 128, 128},
			{109, 178, 241, 255, 231, 245, 255, 255, 128, 128, 128},
			{44, 130, 201, 253, 205, 192, 255, 255, 128, 128, 128},
		},
		{
			{1, 132, 239, 251, 219, 209, 255, 165, 128, 128, 128},
			{94, 136, 225, 251, 218, 190, 255, 255, 128, 128, 128},
			{22, 100, 174, 245, 186, 161, 255, 199, 128, 128, 128},
		},
		{
			{1, 182, 249, 255, 232, 235, 128, 128, 128, 128, 128},
			{124, 143, 241, 255, 227, 234, 128, 128, 128, 128, 128},
			{35, 77, 181, 251, 193, 211, 255, 205, 128, 128, 128},
		},
		{
			{1, 157, 247, 255, 236, 231, 255, 255, 128, 128, 128},
			{121, 141, 235, 255, 225, 227, 255, 255, 128, 128, 128},
			{45, 99, 188, 251, 195, 217, 255, 224, 128, 128, 128},
		},
		{
			{1, 1, 251, 255, 213, 255, 128, 128, 128, 128, 128},
			{203, 1, 248, 255, 255, 128, 128, 128, 128, 128, 128},
			{137, 1, 177, 255, 224, 255, 128, 128, 128, 128, 128},
		},
	},
	{
		{
			{253, 9, 248, 251, 207, 208, 255, 192, 128, 128, 128},
			{175, 13, 224, 243, 193, 185, 249, 198, 255, 255, 128},
			{73, 17, 171, 221, 161, 179, 236, 167, 255, 234, 128},
		},
		{
			{1, 95, 247, 253, 212, 183, 255, 255, 128, 128, 128},
			{239, 90, 244, 250, 211, 209, 255, 255, 128, 128, 128},
			{155, 77, 195, 248, 188, 195, 255, 255, 128, 128, 128},
		},
		{
			{1, 24, 239, 251, 218, 219, 255, 205, 128, 128, 128},
			{201, 51, 219, 255, 196, 186, 128, 128, 128, 128, 128},
			{69, 46, 190, 239, 201, 218, 255, 228, 128, 128, 128},
		},
		{
			{1, 191, 251, 255, 255, 128, 128, 128, 128, 128, 128},
			{223, 165, 249, 255, 213, 255, 128, 128, 128, 128, 128},
			{141, 124, 248, 255, 255, 128, 128, 128, 128, 128, 128},
		},
		{
			{1, 16, 248, 255, 255, 128, 128, 128, 128, 128, 128},
			{190, 36, 230, 255, 236, 255, 128, 128, 128, 128, 128},
			{149, 1, 255, 128, 128, 128, 128, 128, 128, 128, 128},
		},
		{
			{1, 226, 255, 128, 128, 128, 128, 128, 128, 128, 128},
			{247, 192, 255, 128, 128, 128, 128, 128, 128, 128, 128},
			{240, 128, 255, 128, 128, 128, 128, 128, 128, 128, 128},
		},
		{
			{1, 134, 252, 255, 255, 128, 128, 128, 128, 128, 128},
			{213, 62, 250, 255, 255, 128, 128, 128, 128, 128, 128},
			{55, 93, 255, 128, 128, 128, 128, 128, 128, 128, 128},
		},
		{
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
			{128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128},
		},
	},
	{
		{
			{202, 24, 213, 235, 186, 191, 220, 160, 240, 175, 255},
			{126, 38, 166, 203, 150, 165, 198, 129, 220, 146, 255},
			{61, 46, 138, 188, 126, 143, 179, 122, 229, 157, 255},
		},
		{
			{1, 112, 230, 250, 199, 191, 247, 159, 255, 255, 128},
			{166, 109, 228, 252, 211, 215, 255, 223, 128, 128, 128},
			{39, 77, 162, 232, 172, 180, 245, 178, 255, 255, 128},
		},
		{
			{1, 52, 220, 246, 198, 199, 249, 220, 255, 255, 128},
			{124, 74, 191, 243, 183, 193, 250, 221, 255, 255, 128},
			{24, 71, 130, 219, 154, 170, 243, 182, 255, 255, 128},
		},
		{
			{1, 182, 225, 249, 219, 240, 255, 224, 128, 128, 128},
			{149, 150, 226, 252, 216, 205, 255, 171, 128, 128, 128},
			{28, 108, 170, 242, 183, 194, 254, 223, 255, 255, 128},
		},
		{
			{1, 81, 230, 252, 204, 203, 255, 192, 128, 128, 128},
			{123, 102, 209, 247, 188, 196, 255, 233, 128, 128, 128},
			{20, 95, 153, 243, 164, 173, 255, 203, 128, 128, 128},
		},
		{
			{1, 222, 248, 255, 216, 213, 128, 128, 128, 128, 128},
			{168, 175, 246, 252, 235, 205, 255, 255, 128, 128, 128},
			{47, 116, 215, 255, 211, 212, 255, 255, 128, 128, 128},
		},
		{
			{1, 121, 236, 253, 212, 214, 255, 255, 128, 128, 128},
			{141, 84, 213, 252, 201, 202, 255, 219, 128, 128, 128},
			{42, 80, 160, 240, 162, 185, 255, 205, 128, 128, 128},
		},
		{
			{1, 1, 255, 128, 128, 128, 128, 128, 128, 128, 128},
			{244, 1, 255, 128, 128, 128, 128, 128, 128, 128, 128},
			{238, 1, 255, 128, 128, 128, 128, 128, 128, 128, 128},
		},
	},
}

// KCat3/4/5/6 hold the extra-bit probabilities used when a coefficient's
// magnitude falls into one of the four largest libvpx categories (the
// eleventh token-tree leaf splits further into these fixed-width,
// fixed-probability binary codes rather than a context-adaptive tree).
var (
	KCat3 = []uint8{173, 148, 140}
	KCat4 = []uint8{176, 155, 140, 135}
	KCat5 = []uint8{180, 157, 141, 134, 130}
	KCat6 = []uint8{254, 254, 243, 230, 196, 177, 153, 140, 133, 130, 129}
)

// KCat3456 indexes the four extra-bit tables by (magnitude-category - 3).
// The residual decoder does not use it; getCoeffs names KCat3..KCat6
// directly.
var KCat3456 = [4][]uint8{KCat3, KCat4, KCat5, KCat6}

// KYModesIntra4 is the binary tree over the ten 4x4 luma prediction modes,
// walked using per-(above,left)-context probabilities from KBModesProba.
// Each pair of entries gives the (left, right) child; a non-positive value
// is a leaf equal to its negation.
var KYModesIntra4 = [18]int8{
	-B_DC_PRED, 2,
	-B_TM_PRED, 4,
	-B_VE_PRED, 6,
	8, 12,
	-B_HE_PRED, 10,
	-B_RD_PRED, -B_VR_PRED,
	-B_LD_PRED, 14,
	-B_VL_PRED, 16,
	-B_HD_PRED, -B_HU_PRED,
}

// Mode indices for the 4x4 luma predictor, duplicated here (rather than
// imported from dsp) so this package's tree-walking code reads directly
// against the tree's own leaf values.
const (
	B_DC_PRED = 0
	B_TM_PRED = 1
	B_VE_PRED = 2
	B_HE_PRED = 3
	B_RD_PRED = 4
	B_VR_PRED = 5
	B_LD_PRED = 6
	B_VL_PRED = 7
	B_HD_PRED = 8
	B_HU_PRED = 9
)

// Mode indices for the whole-macroblock 16x16 luma and 8x8 chroma
// predictors, matching dsp.DCPred/VPred/HPred/TMPred's values.
const (
	DCPred = 0
	VPred  = 1
	HPred  = 2
	TMPred = 3
)

// KDcTable and KAcTable convert a (clipped) quantizer index in [0, 127] to
// the DC and AC dequantization step sizes used by ParseQuant.
var KDcTable = [128]uint8{
	4, 5, 6, 7, 8, 9, 10, 10, 11, 12, 13, 14, 15, 16, 17, 17,
	18, 19, 20, 20, 21, 21, 22, 22, 23, 23, 24, 25, 25, 26, 27, 28,
	29, 30, 31, 32, 33, 34, 35, 36, 37, 37, 38, 39, 40, 41, 42, 43,
	44, 45, 46, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58,
	59, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74,
	75, 76, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89,
	91, 93, 95, 96, 98, 100, 101, 102, 104, 106, 108, 110, 112, 114, 116, 118,
	122, 124, 126, 128, 130, 132, 134, 136, 138, 140, 143, 145, 148, 151, 154, 157,
}

var KAcTable = [128]uint16{
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
	36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51,
	52, 53, 54, 55, 56, 57, 58, 60, 62, 64, 66, 68, 70, 72, 74, 76,
	78, 80, 82, 84, 86, 88, 90, 92, 94, 96, 98, 100, 102, 104, 106, 108,
	110, 112, 114, 116, 119, 122, 125, 128, 131, 134, 137, 140, 143, 146, 149, 152,
	155, 158, 161, 164, 167, 170, 173, 177, 181, 185, 189, 193, 197, 201, 205, 209,
	213, 217, 221, 225, 229, 234, 239, 245, 249, 254, 259, 264, 269, 274, 279, 284,
}

// KBModesProba gives the per-(above-mode, left-mode) probabilities used to
// walk KYModesIntra4 when decoding a 4x4 luma subblock's prediction mode in
// a keyframe. Indexed [aboveMode][leftMode][treeNode].
var KBModesProba = [10][10][9]uint8{
	{
		{231, 120, 48, 89, 115, 113, 120, 152, 112},
		{152, 179, 64, 126, 170, 118, 46, 70, 95},
		{175, 69, 143, 80, 85, 82, 72, 155, 103},
		{56, 58, 10, 171, 218, 189, 17, 13, 152},
		{144, 71, 10, 38, 171, 213, 144, 34, 26},
		{114, 26, 17, 163, 44, 195, 21, 10, 173},
		{102, 61, 71, 37, 34, 53, 31, 243, 192},
		{164, 50, 31, 137, 154, 133, 25, 35, 218},
		{121, 30, 54, 116, 152, 179, 95, 31, 134},
		{170, 27, 20, 53, 57, 33, 199, 20, 122},
	},
	{
		{154, 59, 16, 191, 230, 187, 22, 22, 25},
		{42, 86, 14, 205, 253, 220, 7, 6, 8},
		{125, 74, 56, 176, 202, 190, 64, 38, 46},
		{73, 43, 6, 197, 247, 224, 8, 12, 37},
		{92, 46, 31, 130, 215, 222, 49, 27, 30},
		{64, 32, 8, 180, 199, 251, 11, 11, 31},
		{47, 59, 55, 102, 131, 125, 95, 198, 145},
		{94, 50, 31, 169, 219, 207, 19, 21, 96},
		{60, 19, 9, 106, 175, 181, 46, 37, 75},
		{70, 14, 7, 86, 114, 118, 123, 20, 108},
	},
	{
		{158, 172, 27, 96, 154, 105, 24, 58, 58},
		{93, 123, 33, 125, 215, 148, 12, 17, 18},
		{143, 115, 66, 78, 114, 98, 42, 83, 107},
		{46, 66, 7, 124, 245, 169, 5, 12, 43},
		{92, 70, 11, 76, 182, 199, 20, 24, 33},
		{61, 57, 14, 124, 111, 245, 4, 18, 19},
		{82, 92, 75, 64, 78, 66, 44, 146, 196},
		{104, 88, 23, 106, 201, 150, 11, 23, 112},
		{52, 55, 18, 82, 134, 142, 34, 48, 92},
		{53, 33, 12, 62, 103, 65, 41, 16, 183},
	},
	{
		{164, 50, 31, 137, 154, 133, 25, 35, 218},
		{96, 78, 14, 182, 243, 198, 8, 11, 58},
		{120, 99, 40, 125, 192, 151, 27, 36, 84},
		{49, 53, 6, 197, 246, 220, 10, 12, 43},
		{84, 60, 13, 94, 203, 208, 37, 26, 33},
		{56, 40, 9, 157, 195, 230, 12, 15, 39},
		{70, 65, 60, 77, 92, 80, 50, 170, 183},
		{107, 77, 29, 122, 187, 155, 14, 20, 110},
		{63, 40, 16, 92, 163, 174, 41, 33, 79},
		{68, 24, 11, 65, 99, 79, 106, 18, 97},
	},
	{
		{144, 71, 10, 38, 171, 213, 144, 34, 26},
		{67, 76, 9, 93, 231, 222, 25, 14, 15},
		{109, 86, 35, 55, 151, 170, 60, 31, 30},
		{39, 55, 4, 126, 240, 225, 15, 11, 21},
		{60, 47, 8, 30, 171, 228, 92, 19, 16},
		{45, 39, 6, 78, 187, 236, 36, 13, 21},
		{58, 64, 48, 34, 112, 120, 76, 122, 150},
		{79, 66, 14, 55, 184, 196, 33, 18, 47},
		{55, 44, 12, 36, 140, 182, 70, 22, 32},
		{52, 30, 8, 26, 101, 108, 116, 14, 59},
	},
	{
		{114, 26, 17, 163, 44, 195, 21, 10, 173},
		{55, 42, 6, 186, 82, 238, 9, 7, 65},
		{89, 50, 29, 134, 65, 183, 29, 15, 111},
		{41, 35, 4, 185, 95, 239, 9, 8, 67},
		{56, 31, 6, 100, 68, 206, 44, 11, 43},
		{49, 20, 3, 155, 41, 247, 14, 6, 94},
		{51, 42, 38, 81, 53, 113, 41, 78, 160},
		{64, 37, 11, 136, 77, 202, 18, 10, 89},
		{50, 30, 9, 96, 61, 175, 40, 13, 64},
		{46, 18, 5, 78, 35, 112, 90, 5, 104},
	},
	{
		{102, 61, 71, 37, 34, 53, 31, 243, 192},
		{62, 75, 59, 48, 53, 67, 22, 226, 205},
		{81, 66, 77, 41, 38, 60, 32, 220, 196},
		{46, 57, 40, 59, 66, 82, 16, 213, 210},
		{56, 58, 48, 32, 44, 65, 41, 204, 189},
		{50, 51, 43, 50, 42, 70, 18, 215, 203},
		{37, 47, 60, 27, 25, 38, 28, 229, 220},
		{66, 63, 50, 39, 40, 58, 20, 217, 198},
		{52, 54, 46, 35, 36, 53, 33, 210, 195},
		{44, 43, 34, 30, 27, 40, 55, 200, 212},
	},
	{
		{164, 50, 31, 137, 154, 133, 25, 35, 218},
		{97, 70, 18, 160, 210, 172, 10, 16, 98},
		{117, 62, 34, 120, 171, 146, 22, 28, 125},
		{52, 48, 7, 168, 226, 195, 9, 11, 68},
		{78, 52, 11, 88, 176, 194, 38, 18, 52},
		{58, 37, 8, 134, 178, 215, 13, 13, 62},
		{61, 56, 55, 65, 82, 90, 42, 152, 180},
		{94, 50, 31, 137, 154, 133, 25, 35, 218},
		{58, 41, 15, 79, 145, 164, 43, 25, 78},
		{62, 24, 9, 58, 86, 72, 100, 17, 93},
	},
	{
		{121, 30, 54, 116, 152, 179, 95, 31, 134},
		{65, 49, 26, 132, 204, 199, 38, 16, 62},
		{97, 37, 63, 100, 146, 169, 69, 23, 90},
		{47, 39, 12, 150, 219, 213, 20, 10, 47},
		{68, 36, 20, 76, 172, 205, 77, 17, 38},
		{52, 28, 14, 116, 181, 224, 33, 11, 49},
		{50, 43, 58, 54, 90, 113, 62, 111, 150},
		{72, 42, 26, 101, 170, 186, 42, 17, 64},
		{60, 19, 9, 106, 175, 181, 46, 37, 75},
		{54, 21, 15, 62, 104, 108, 93, 13, 71},
	},
	{
		{170, 27, 20, 53, 57, 33, 199, 20, 122},
		{84, 43, 14, 75, 101, 69, 151, 12, 77},
		{109, 34, 28, 60, 72, 49, 177, 16, 96},
		{46, 33, 5, 82, 115, 78, 143, 8, 61},
		{63, 29, 9, 42, 77, 69, 180, 12, 50},
		{49, 22, 6, 65, 90, 90, 160, 9, 57},
		{48, 31, 34, 38, 48, 46, 118, 100, 158},
		{70, 32, 14, 58, 86, 68, 160, 11, 70},
		{55, 23, 11, 47, 68, 62, 168, 13, 62},
		{70, 14, 7, 86, 114, 118, 123, 20, 108},
	},
}
