package dungeon

import (
	"math/rand"
	"testing"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

func TestPartitionLeavesTileParentExactly(t *testing.T) {
	root := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 50, Height: 40}}
	rng := rand.New(rand.NewSource(3))
	partition(root, 12, 21, rng)

	leaves := root.leaves(nil)
	if len(leaves) == 0 {
		t.Fatal("expected at least one leaf")
	}

	area := 0
	for _, leaf := range leaves {
		area += leaf.Width * leaf.Height
		if leaf.Width < 12 && leaf.Height < 12 {
			// a leaf under minSize on both axes would mean trySplit produced
			// a section that could never satisfy its own invariant.
			t.Errorf("leaf %v is smaller than minSize on both axes", leaf.Rect)
		}
	}
	if area != 50*40 {
		t.Errorf("expected leaves to cover %d cells, got %d", 50*40, area)
	}

	for _, leaf := range leaves {
		for x := leaf.X; x <= leaf.Rect.Right(); x++ {
			for y := leaf.Y; y <= leaf.Bottom(); y++ {
				if root.leafAt(x, y) != leaf {
					t.Fatalf("leafAt(%d,%d) did not resolve to its owning leaf", x, y)
				}
			}
		}
	}
}

func TestLeafAtOutsideBoundsReturnsNil(t *testing.T) {
	root := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	if root.leafAt(10, 0) != nil {
		t.Error("expected leafAt to return nil for an out-of-bounds coordinate")
	}
	if root.leafAt(-1, 0) != nil {
		t.Error("expected leafAt to return nil for a negative coordinate")
	}
}

func TestPlaceRoomsRespectsMargin(t *testing.T) {
	root := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}}
	rng := rand.New(rand.NewSource(9))
	partition(root, 12, 21, rng)
	rooms := placeRooms(root, 6, 3, rng)

	for _, r := range rooms {
		leaf := r.Section
		if r.X-leaf.X < 3 || r.Y-leaf.Y < 3 {
			t.Errorf("room %v sits closer than margin to leaf %v", r.Rect, leaf.Rect)
		}
		if leaf.Rect.Right()-r.Right() < 3 || leaf.Bottom()-r.Bottom() < 3 {
			t.Errorf("room %v sits closer than margin to leaf %v far edge", r.Rect, leaf.Rect)
		}
	}
}
