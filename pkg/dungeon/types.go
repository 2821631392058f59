package dungeon

import "github.com/opd-ai/dungeongen/pkg/geom"

// Room is the rectangle of floor dropped into a leaf Section. Section is a
// back-reference to the owning leaf; it is not owned by Room and must never be
// used to free or mutate the section's tree structure.
type Room struct {
	geom.Rect
	Section *Section
}

// Center returns the room's integer-rounded midpoint.
func (r *Room) Center() geom.Point { return r.Rect.Center() }

// canPlaceDoor reports whether (x, y) is a legal door position for this room:
// the coordinate sits exactly one cell outside one of the room's four edges,
// strictly clear of the two corner columns/rows on that edge, and no existing
// door of the room's owning section already falls within the 3x3 neighbourhood
// of (x, y).
func (r *Room) canPlaceDoor(x, y int) bool {
	onVerticalEdge := (y == r.Y-1 || y == r.Bottom()+1) && x > r.X+1 && x < r.Right()-1
	onHorizontalEdge := (x == r.X-1 || x == r.Right()+1) && y > r.Y+1 && y < r.Bottom()-1
	if !onVerticalEdge && !onHorizontalEdge {
		return false
	}
	if r.Section == nil {
		return true
	}
	for _, d := range r.Section.Doors {
		if abs(d.X-x) <= 1 && abs(d.Y-y) <= 1 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Door is a single-cell opening one step outside the Room it is recorded
// against. A Door is recorded only in the doors list of the section whose room
// it belongs to, never in the section it happens to geometrically fall in.
type Door struct {
	geom.Point
}

// Hall is the single-cell-wide corridor connecting two Doors belonging to two
// different Rooms. Doors and Rooms are ordered top-to-bottom for a vertical
// hall, left-to-right for a horizontal one. Room/Door fields are
// back-references; Hall does not own them.
type Hall struct {
	geom.Rect
	Doors [2]*Door
	Rooms [2]*Room
}

// OtherRoom returns the room on the far side of the hall from r, or nil if r
// is not one of the hall's two rooms.
func (h *Hall) OtherRoom(r *Room) *Room {
	switch {
	case h.Rooms[0] == r:
		return h.Rooms[1]
	case h.Rooms[1] == r:
		return h.Rooms[0]
	default:
		return nil
	}
}

// Section is a node of the BSP tree. A leaf has Left == Right == nil. Left
// and Right are owned by Section; Room, Doors, Halls, and Walls describe
// content generated for this leaf and are owned by Section once it is a leaf.
type Section struct {
	geom.Rect

	Left, Right *Section

	Room  *Room
	Doors []*Door
	Halls []*Hall
	Walls []geom.Rect
}

// IsLeaf reports whether this section was never split.
func (s *Section) IsLeaf() bool { return s.Left == nil && s.Right == nil }

// leafAt descends the tree rooted at s and returns the leaf section whose
// rectangle contains (x, y), or nil if (x, y) lies outside s entirely.
func (s *Section) leafAt(x, y int) *Section {
	if !s.ContainsXY(x, y) {
		return nil
	}
	if s.IsLeaf() {
		return s
	}
	if s.Left != nil && s.Left.ContainsXY(x, y) {
		return s.Left.leafAt(x, y)
	}
	if s.Right != nil && s.Right.ContainsXY(x, y) {
		return s.Right.leafAt(x, y)
	}
	return nil
}

// leaves appends every leaf section in s's subtree to out, in left-to-right
// traversal order, and returns the extended slice.
func (s *Section) leaves(out []*Section) []*Section {
	if s.IsLeaf() {
		return append(out, s)
	}
	if s.Left != nil {
		out = s.Left.leaves(out)
	}
	if s.Right != nil {
		out = s.Right.leaves(out)
	}
	return out
}
