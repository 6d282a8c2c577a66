// Package lossy implements the VP8 lossy (intra-only) frame decoder: header
// and mode parsing, entropy-coded residual decoding, inverse transforms,
// intra prediction, and the in-loop deblocking filter. It targets still
// frames (WebP's usage of VP8) and does not implement inter prediction.
package lossy

import (
	"sync"

	"github.com/go-vp8/vp8lossy/internal/bitio"
	"github.com/go-vp8/vp8lossy/internal/dsp"
)

const (
	bps = dsp.BPS

	// frameSizeLimit guards against a corrupt or hostile header claiming an
	// absurd macroblock grid before any allocation happens.
	frameSizeLimit = 1 << 28
)

// FrameHeader is the three-byte uncompressed tag at the start of a VP8
// lossy payload.
type FrameHeader struct {
	KeyFrame        bool
	Profile         int
	Show            bool
	PartitionLength uint32
}

// PictureHeader is the seven-byte keyframe start-code payload: the frame's
// coded dimensions and associated scaling/colorspace hints.
type PictureHeader struct {
	Width, Height  int
	XScale, YScale int
	Colorspace     int
	ClampType      int
}

// SegmentHeader describes the up-to-four coding segments a keyframe may
// partition its macroblocks into, each with its own quantizer and filter
// strength bias.
type SegmentHeader struct {
	UseSegment     bool
	UpdateMap      bool
	AbsoluteDelta  bool
	Quantizer      [NumMBSegments]int8
	FilterStrength [NumMBSegments]int8
}

// FilterHeader carries the in-loop filter's frame-level configuration.
type FilterHeader struct {
	Simple      bool
	Level       int
	Sharpness   int
	UseLFDelta  bool
	RefLFDelta  [4]int8
	ModeLFDelta [4]int8
}

// FInfo holds the precomputed, per-macroblock filter parameters derived
// from FilterHeader, SegmentHeader, and the macroblock's own coding mode.
type FInfo struct {
	FLimit    int
	FILevel   int
	FInner    bool
	HevThresh int
}

// MB is the compact per-macroblock state retained across a row for
// above/left coefficient-nonzero context.
type MB struct {
	Nz   uint8 // 4 bits: one per luma subblock column (above) or row (left)
	NzDC uint8 // 1 bit: Y2 block nonzero
	UNz  uint8 // 2 bits: one per U-plane subblock column/row
	VNz  uint8 // 2 bits: one per V-plane subblock column/row
}

// MBData holds everything decodeMB produces for one macroblock: its
// dequantized residual coefficients and the mode/context information
// reconstructRow needs to predict and filter it.
type MBData struct {
	Coeffs    [384]int16
	IsI4x4    bool
	YMode     uint8 // valid when !IsI4x4: one of DCPred/VPred/HPred/TMPred
	IModes    [16]uint8
	UVMode    uint8
	NonZeroY  uint32
	NonZeroUV uint32
	Dither    uint8
	Skip      bool
	Segment   uint8
}

// TopSamples is the bottom edge of one macroblock's reconstruction, saved
// so the macroblock below it can use it as top-row prediction context.
type TopSamples struct {
	Y [16]uint8
	U [8]uint8
	V [8]uint8
}

// RowSink receives finalized, post-filter scanlines of decoded pixels, one
// macroblock row (16 luma rows, 8 chroma rows; fewer for the final row when
// the picture height is not a multiple of 16) at a time, in top-to-bottom
// order. y/u/v are views into the decoder's internal buffers and are only
// valid until the next EmitRow call.
type RowSink interface {
	EmitRow(mbY int, y, u, v []byte, yStride, uvStride int)
}

// Decoder holds all per-frame state for one VP8 lossy decode. It is
// intended to be reused across frames via AcquireDecoder/ReleaseDecoder.
type Decoder struct {
	Frame   FrameHeader
	Picture PictureHeader
	Seg     SegmentHeader
	Filt    FilterHeader

	mbW, mbH int
	mbX, mbY int

	br               *bitio.BoolReader
	parts            [MaxNumPartitions]*bitio.BoolReader
	numPartsMinusOne int

	proba        Proba
	useSkipProba bool
	skipP        uint8

	dqm [NumMBSegments]QuantMatrix

	filterType int // 0 = off, 1 = simple, 2 = normal/complex
	fstrengths [NumMBSegments][2]FInfo

	intraT []uint8  // one byte per 4x4 luma column, above-row BPred mode context
	intraL [4]uint8 // left-column BPred mode context for the current macroblock row

	yuvT []TopSamples // bottom-edge prediction context, one per macroblock column

	aboveNz []MB // one entry per macroblock column, carried down across rows
	leftNz  MB   // running left-neighbor context, reset at the start of each row
	fInfo   []FInfo

	// segmentMap persists macroblock segment ids across frames when a
	// frame signals segmentation without refreshing the map (inheriting
	// the previous frame's assignment, as RFC 6386 §10 describes).
	segmentMap []uint8

	mbData []MBData

	// cacheY/U/V hold the full reconstructed picture; the loop filter's
	// cross-macroblock-row dependency (filtering row N rewrites the bottom
	// few pixels of row N-1) makes a strictly single-row-resident buffer
	// awkward without extra halo bookkeeping, so reconstruction writes into
	// a whole-picture slab. Finalized rows are pushed through RowSink as
	// soon as the filter pass that can still touch them has run, instead of
	// being handed back in one piece at the end.
	cacheY, cacheU, cacheV      []byte
	cacheYStride, cacheUVStride int

	// yScratch/uScratch/vScratch are the fixed-BPS reconstruction tiles
	// prediction and the inverse transforms write into before the result is
	// copied out to cacheY/U/V at the picture's real stride.
	yScratch, uScratch, vScratch []byte

	sink RowSink
}

var decoderPool = sync.Pool{New: func() interface{} { return &Decoder{} }}

// AcquireDecoder returns a Decoder from the shared pool, ready for reuse.
func AcquireDecoder() *Decoder {
	return decoderPool.Get().(*Decoder)
}

// ReleaseDecoder returns dec to the shared pool. dec must not be used again
// by the caller afterward.
func ReleaseDecoder(dec *Decoder) {
	decoderPool.Put(dec)
}

// DecodeFrame parses and fully reconstructs one VP8 lossy keyframe from
// data, pushing each finalized macroblock row to sink as it becomes
// available.
func (dec *Decoder) DecodeFrame(data []byte, sink RowSink) error {
	if err := dec.parseHeaders(data); err != nil {
		return err
	}
	dec.sink = sink
	if err := dec.initFrame(); err != nil {
		return err
	}
	return dec.parseFrame()
}
