// Package dsp provides the pixel-level routines shared by the VP8 lossy
// decoder: the reconstruction-buffer stride convention, the clip helper,
// the inverse transforms, intra prediction, and the in-loop filter.
package dsp

// BPS is the stride, in bytes, of the reconstruction scratch buffer used
// throughout this package and by internal/lossy's row pipeline. Using a
// fixed stride wider than any block keeps every "negative" neighbor access
// (top row, top-left corner, left column) at a non-negative offset from a
// macroblock's own origin, which Go's slice bounds checking requires.
const BPS = 32
