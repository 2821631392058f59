package dungeon

import (
	"math/rand"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

// maxCorridorSearch bounds how many cells a linearSearch sweep may travel
// before giving up on finding a room to join.
const maxCorridorSearch = 20

type direction int

const (
	dirN direction = iota
	dirS
	dirW
	dirE
)

// carveCorridors walks the BSP tree rooted at root and, for every leaf with a
// room, sweeps all four directions looking for a neighbouring room to join
// with a single-cell Hall and a Door on each end. The returned slice holds
// every hall created, in the order they were accepted.
func carveCorridors(root *Section, width, height int, rng *rand.Rand) []*Hall {
	var halls []*Hall
	var walk func(sec *Section)
	walk = func(sec *Section) {
		if sec.IsLeaf() {
			if sec.Room != nil {
				sweepRoom(root, sec.Room, &halls, width, height)
			}
			return
		}
		if sec.Left != nil {
			walk(sec.Left)
		}
		if sec.Right != nil {
			walk(sec.Right)
		}
	}
	walk(root)
	return halls
}

// sweepRoom tries every strictly-interior column for a vertical corridor
// (north then south) and every strictly-interior row for a horizontal one
// (west then east), per room.canPlaceDoor's stricter interior test.
func sweepRoom(root *Section, room *Room, halls *[]*Hall, width, height int) {
	for x := room.X + 1; x <= room.Right()-1; x++ {
		tryCorridor(root, halls, width, height, x, room.Y-1, dirN, room)
		tryCorridor(root, halls, width, height, x, room.Bottom()+1, dirS, room)
	}
	for y := room.Y + 1; y <= room.Bottom()-1; y++ {
		tryCorridor(root, halls, width, height, room.X-1, y, dirW, room)
		tryCorridor(root, halls, width, height, room.Right()+1, y, dirE, room)
	}
}

func tryCorridor(root *Section, halls *[]*Hall, width, height int, x, y int, dir direction, room *Room) {
	if !room.canPlaceDoor(x, y) {
		return
	}
	far, targetRoom, ok := linearSearch(root, *halls, width, height, x, y, dir, maxCorridorSearch)
	if !ok || targetRoom == room {
		return
	}

	for _, h := range room.Section.Halls {
		if h.OtherRoom(room) == targetRoom {
			return
		}
	}

	d1 := &Door{Point: geom.Point{X: x, Y: y}}
	d2 := &Door{Point: far}

	var hallRect geom.Rect
	var doors [2]*Door
	var rooms [2]*Room
	vertical := dir == dirN || dir == dirS

	if vertical {
		top, bottom := y, far.Y
		if top > bottom {
			top, bottom = bottom, top
		}
		hallRect = geom.Rect{X: x, Y: top, Width: 1, Height: bottom - top + 1}
		if y <= far.Y {
			doors, rooms = [2]*Door{d1, d2}, [2]*Room{room, targetRoom}
		} else {
			doors, rooms = [2]*Door{d2, d1}, [2]*Room{targetRoom, room}
		}
	} else {
		left, right := x, far.X
		if left > right {
			left, right = right, left
		}
		hallRect = geom.Rect{X: left, Y: y, Width: right - left + 1, Height: 1}
		if x <= far.X {
			doors, rooms = [2]*Door{d1, d2}, [2]*Room{room, targetRoom}
		} else {
			doors, rooms = [2]*Door{d2, d1}, [2]*Room{targetRoom, room}
		}
	}

	room.Section.Doors = append(room.Section.Doors, d1)
	targetRoom.Section.Doors = append(targetRoom.Section.Doors, d2)

	hall := &Hall{Rect: hallRect, Doors: doors, Rooms: rooms}
	*halls = append(*halls, hall)
	registerHallToLeaves(root, hall)
}

// registerHallToLeaves records hall against every leaf section its cells pass
// through, skipping consecutive cells that fall in the same leaf (leaves are
// rectangles, so the cells a straight single-cell-wide hall has in any one
// leaf form one contiguous run, and tracking just the previous leaf is
// sufficient to deduplicate).
func registerHallToLeaves(root *Section, hall *Hall) {
	var lastLeaf *Section
	for yy := hall.Y; yy <= hall.Bottom(); yy++ {
		for xx := hall.X; xx <= hall.Right(); xx++ {
			leaf := root.leafAt(xx, yy)
			if leaf == nil || leaf == lastLeaf {
				continue
			}
			leaf.Halls = append(leaf.Halls, hall)
			lastLeaf = leaf
		}
	}
}

// linearSearch walks from (x, y) in direction dir, cell by cell, looking for
// a room to join with the room the search started from. It fails if it steps
// adjacent to an existing hall, runs off the map, finds a room on the wrong
// side, or exhausts maxLen steps; it succeeds by returning the door position
// and the room found, once that room accepts a door there.
func linearSearch(root *Section, halls []*Hall, width, height int, x, y int, dir direction, maxLen int) (geom.Point, *Room, bool) {
	for ; maxLen > 0; maxLen-- {
		if neighboursAnyHall(halls, x, y) {
			return geom.Point{}, nil, false
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			return geom.Point{}, nil, false
		}

		n := cellRoom(root, x, y-1)
		s := cellRoom(root, x, y+1)
		w := cellRoom(root, x-1, y)
		e := cellRoom(root, x+1, y)

		switch dir {
		case dirN:
			if w != nil || e != nil {
				return geom.Point{}, nil, false
			}
			if n != nil {
				if !n.canPlaceDoor(x, y) {
					return geom.Point{}, nil, false
				}
				return geom.Point{X: x, Y: y}, n, true
			}
			y--
		case dirS:
			if w != nil || e != nil {
				return geom.Point{}, nil, false
			}
			if s != nil {
				if !s.canPlaceDoor(x, y) {
					return geom.Point{}, nil, false
				}
				return geom.Point{X: x, Y: y}, s, true
			}
			y++
		case dirW:
			if n != nil || s != nil {
				return geom.Point{}, nil, false
			}
			if w != nil {
				if !w.canPlaceDoor(x, y) {
					return geom.Point{}, nil, false
				}
				return geom.Point{X: x, Y: y}, w, true
			}
			x--
		case dirE:
			if n != nil || s != nil {
				return geom.Point{}, nil, false
			}
			if e != nil {
				if !e.canPlaceDoor(x, y) {
					return geom.Point{}, nil, false
				}
				return geom.Point{X: x, Y: y}, e, true
			}
			x++
		}
	}
	return geom.Point{}, nil, false
}

func neighboursAnyHall(halls []*Hall, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			for _, h := range halls {
				if h.ContainsXY(nx, ny) {
					return true
				}
			}
		}
	}
	return false
}

// cellRoom returns the room owning (x, y), or nil if (x, y) is outside the
// map or not inside any room.
func cellRoom(root *Section, x, y int) *Room {
	leaf := root.leafAt(x, y)
	if leaf == nil || leaf.Room == nil || !leaf.Room.ContainsXY(x, y) {
		return nil
	}
	return leaf.Room
}
