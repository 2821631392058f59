package dungeon

import (
	"math/rand"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

// splitAspectRatio is the height:width (or width:height) threshold above
// which a section is split along the long axis unconditionally rather than by
// coin flip.
const splitAspectRatio = 1.25

// splitAcceptWhenSmallProbability is the chance a section small enough to stop
// splitting (but not yet at the hard floor) is split anyway, keeping leaf
// sizes from clustering at maxRoomSize.
const splitAcceptWhenSmallProbability = 0.1

// splitEligibleProbability is the chance a leaf large enough to be a valid
// room on its own is split again anyway, so the tree doesn't bottom out the
// instant every section fits.
const splitEligibleProbability = 0.75

// partition repeatedly bisects root's leaves, using rng for every random
// decision. Each pass visits every section in the worklist once, from the
// start, and appends any newly created children to it; partitioning stops the
// first time a pass produces no split. Leaves wider or taller than maxSize are
// always offered to trySplit, but a leaf trySplit refuses stays as it is, so a
// leaf can end up larger than maxSize.
func partition(root *Section, minSize, maxSize int, rng *rand.Rand) {
	worklist := []*Section{root}
	for {
		start := 0
		end := len(worklist)
		didSplit := false
		for i := start; i < end; i++ {
			sec := worklist[i]
			if !sec.IsLeaf() {
				continue
			}
			eligible := sec.Width > maxSize || sec.Height > maxSize || rng.Float64() < splitEligibleProbability
			if !eligible {
				continue
			}
			if trySplit(sec, minSize, maxSize, rng) {
				worklist = append(worklist, sec.Left, sec.Right)
				didSplit = true
			}
		}
		if !didSplit {
			return
		}
	}
}

// trySplit attempts to bisect sec into Left/Right children. It returns false,
// leaving sec untouched, when the section is already split, too small to
// admit two children of at least minSize, or when the random accept/reject
// draw rejects a split that is merely optional.
func trySplit(sec *Section, minSize, maxSize int, rng *rand.Rand) bool {
	if !sec.IsLeaf() {
		return false
	}

	horizontal := aspectRatio(sec.Height, sec.Width) >= splitAspectRatio
	vertical := aspectRatio(sec.Width, sec.Height) >= splitAspectRatio
	if !horizontal && !vertical {
		horizontal = rng.Intn(2) == 0
	}

	span := sec.Width
	if horizontal {
		span = sec.Height
	}
	maxCut := span - minSize
	if maxCut <= minSize {
		return false
	}
	if maxCut <= maxSize && rng.Float64() > splitAcceptWhenSmallProbability {
		return false
	}

	cut := minSize + rng.Intn(maxCut-minSize+1)

	if horizontal {
		sec.Left = &Section{Rect: geom.Rect{X: sec.X, Y: sec.Y, Width: sec.Width, Height: cut}}
		sec.Right = &Section{Rect: geom.Rect{X: sec.X, Y: sec.Y + cut, Width: sec.Width, Height: sec.Height - cut}}
	} else {
		sec.Left = &Section{Rect: geom.Rect{X: sec.X, Y: sec.Y, Width: cut, Height: sec.Height}}
		sec.Right = &Section{Rect: geom.Rect{X: sec.X + cut, Y: sec.Y, Width: sec.Width - cut, Height: sec.Height}}
	}
	return true
}

func aspectRatio(numerator, denominator int) float64 {
	return float64(numerator) / float64(denominator)
}
