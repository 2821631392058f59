package dungeon

import (
	"sort"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

// extractWalls runs after every corridor is placed. For each leaf that owns a
// room it builds the four room-boundary wall strips (spliced around that
// side's doors) and, for every hall recorded on the leaf, the two strips that
// run its long sides.
func extractWalls(root *Section) {
	for _, leaf := range root.leaves(nil) {
		if leaf.Room == nil {
			continue
		}
		leaf.Walls = append(leaf.Walls, roomWalls(leaf)...)
		for _, h := range leaf.Halls {
			leaf.Walls = append(leaf.Walls, hallWalls(h)...)
		}
	}
}

// roomWalls builds the four spliced boundary strips for leaf's room.
func roomWalls(leaf *Section) []geom.Rect {
	room := leaf.Room

	left := []geom.Rect{{X: room.X - 1, Y: room.Y - 2, Width: 1, Height: room.Height + 3}}
	right := []geom.Rect{{X: room.Right() + 1, Y: room.Y - 2, Width: 1, Height: room.Height + 3}}
	top := []geom.Rect{{X: room.X - 1, Y: room.Y - 2, Width: room.Width + 2, Height: 2}}
	bottom := []geom.Rect{{X: room.X - 1, Y: room.Bottom() + 1, Width: room.Width + 2, Height: 1}}

	var leftDoors, rightDoors, topDoors, bottomDoors []*Door
	for _, d := range leaf.Doors {
		switch {
		case d.X == room.X-1:
			leftDoors = append(leftDoors, d)
		case d.X == room.Right()+1:
			rightDoors = append(rightDoors, d)
		case d.Y == room.Y-1:
			topDoors = append(topDoors, d)
		case d.Y == room.Bottom()+1:
			bottomDoors = append(bottomDoors, d)
		}
	}

	sort.Slice(leftDoors, func(i, j int) bool { return leftDoors[i].Y < leftDoors[j].Y })
	sort.Slice(rightDoors, func(i, j int) bool { return rightDoors[i].Y < rightDoors[j].Y })
	sort.Slice(topDoors, func(i, j int) bool { return topDoors[i].X < topDoors[j].X })
	sort.Slice(bottomDoors, func(i, j int) bool { return bottomDoors[i].X < bottomDoors[j].X })

	for _, d := range leftDoors {
		left = spliceVertical(left, d.Y)
	}
	for _, d := range rightDoors {
		right = spliceVertical(right, d.Y)
	}
	for _, d := range topDoors {
		top = spliceHorizontal(top, d.X)
	}
	for _, d := range bottomDoors {
		bottom = spliceHorizontal(bottom, d.X)
	}

	walls := make([]geom.Rect, 0, len(left)+len(right)+len(top)+len(bottom))
	walls = append(walls, left...)
	walls = append(walls, right...)
	walls = append(walls, top...)
	walls = append(walls, bottom...)
	return walls
}

// spliceVertical replaces the last strip in strips with the portion above
// doorY and appends the portion below, per the §4.5 splice operation.
func spliceVertical(strips []geom.Rect, doorY int) []geom.Rect {
	w := strips[len(strips)-1]
	above := geom.Rect{X: w.X, Y: w.Y, Width: 1, Height: doorY - w.Y}
	below := geom.Rect{X: w.X, Y: doorY + 1, Width: 1, Height: w.Bottom() - doorY}
	strips[len(strips)-1] = above
	return append(strips, below)
}

// spliceHorizontal is the horizontal-axis analogue of spliceVertical.
func spliceHorizontal(strips []geom.Rect, doorX int) []geom.Rect {
	w := strips[len(strips)-1]
	before := geom.Rect{X: w.X, Y: w.Y, Width: doorX - w.X, Height: w.Height}
	after := geom.Rect{X: doorX + 1, Y: w.Y, Width: w.Right() - doorX, Height: w.Height}
	strips[len(strips)-1] = before
	return append(strips, after)
}

// hallWalls builds the two long-side strips for a hall.
func hallWalls(h *Hall) []geom.Rect {
	if h.Width == 1 {
		return []geom.Rect{
			{X: h.X - 1, Y: h.Y, Width: 1, Height: h.Height},
			{X: h.X + 1, Y: h.Y, Width: 1, Height: h.Height},
		}
	}
	return []geom.Rect{
		{X: h.X, Y: h.Y - 2, Width: h.Width, Height: 2},
		{X: h.X, Y: h.Y + 1, Width: h.Width, Height: 1},
	}
}
