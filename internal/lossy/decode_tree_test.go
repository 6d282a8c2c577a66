package lossy

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-vp8/vp8lossy/internal/bitio"
)

// readTree's leaf choice only depends on whether each decoded bit is 0 or
// 1, never on the probability value itself, so an all-zero or all-0xff
// input walks every bit of the tree to a predictable leaf regardless of
// what probabilities are supplied.
func TestReadTreeAllZeroPicksFirstLeaf(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader(make([]byte, 4))
	probs := []uint8{1, 2, 3}
	got := readTree(br, segmentTree, probs)
	c.Assert(got, qt.Equals, 0)
}

func TestReadTreeAllOnesPicksLastLeaf(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader([]byte{0xff, 0xff, 0xff, 0xff})
	probs := []uint8{1, 2, 3}
	got := readTree(br, segmentTree, probs)
	c.Assert(got, qt.Equals, 3)
}

func TestReadTreeYModeAllZeroIsBPred(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader(make([]byte, 4))
	got := readTree(br, kYModeTree, kYModeProb[:])
	c.Assert(got, qt.Equals, BPred)
}

func TestReadTreeYModeAllOnesIsTMPred(t *testing.T) {
	c := qt.New(t)
	br := bitio.NewBoolReader([]byte{0xff, 0xff, 0xff, 0xff})
	got := readTree(br, kYModeTree, kYModeProb[:])
	c.Assert(got, qt.Equals, TMPred)
}

// treePathTo finds the bit path that steers tree to the leaf with the given
// value, or nil if no leaf carries it.
func treePathTo(tree []int8, leaf int) []int {
	var path []int
	var walk func(i int8) bool
	walk = func(i int8) bool {
		for bit := 0; bit < 2; bit++ {
			child := tree[int(i)+bit]
			path = append(path, bit)
			if child <= 0 {
				if -int(child) == leaf {
					return true
				}
			} else if walk(child) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	if walk(0) {
		return path
	}
	return nil
}

// Every one of the ten 4x4 prediction modes must be reachable as a leaf of
// the mode tree, and a bitstream steered down a leaf's path must decode
// back to exactly that mode — no path escapes the tree.
func TestBModeTreeReachesAllTenLeaves(t *testing.T) {
	c := qt.New(t)
	probs := KBModesProba[B_DC_PRED][B_DC_PRED]
	for mode := B_DC_PRED; mode <= B_HU_PRED; mode++ {
		path := treePathTo(KYModesIntra4[:], mode)
		c.Assert(path, qt.Not(qt.IsNil), qt.Commentf("mode %d has no leaf", mode))

		bw := newTestBoolEncoder()
		i := int8(0)
		for _, bit := range path {
			bw.putBit(bit, int(probs[i>>1]))
			i = KYModesIntra4[int(i)+bit]
		}
		br := bitio.NewBoolReader(bw.finish())
		c.Assert(readTree(br, KYModesIntra4[:], probs[:]), qt.Equals, mode, qt.Commentf("mode %d", mode))
	}
}
