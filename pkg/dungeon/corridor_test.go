package dungeon

import (
	"testing"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

func TestCanPlaceDoorRejectsCorners(t *testing.T) {
	leaf := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}}
	room := &Room{Rect: geom.Rect{X: 2, Y: 2, Width: 10, Height: 8}, Section: leaf}

	if room.canPlaceDoor(room.X+1, room.Y-1) {
		t.Error("expected the corner-adjacent column to be rejected")
	}
	if room.canPlaceDoor(room.Right()-1, room.Y-1) {
		t.Error("expected the corner-adjacent column to be rejected")
	}
	if !room.canPlaceDoor(room.X+3, room.Y-1) {
		t.Error("expected a strictly interior column to be accepted")
	}
	if room.canPlaceDoor(room.X+3, room.Y) {
		t.Error("expected a door on the room's own floor row to be rejected")
	}
}

func TestCanPlaceDoorRejectsAdjacentDoor(t *testing.T) {
	leaf := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 20, Height: 20}}
	room := &Room{Rect: geom.Rect{X: 2, Y: 2, Width: 10, Height: 8}, Section: leaf}
	leaf.Doors = append(leaf.Doors, &Door{Point: geom.Point{X: room.X + 3, Y: room.Y - 1}})

	if room.canPlaceDoor(room.X+4, room.Y-1) {
		t.Error("expected a door within the 3x3 neighbourhood of an existing door to be rejected")
	}
	if !room.canPlaceDoor(room.X+6, room.Y-1) {
		t.Error("expected a door well clear of the existing one to be accepted")
	}
}

func TestCarveCorridorsConnectsTwoAdjacentRooms(t *testing.T) {
	root := &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 20, Height: 10}}
	root.Left = &Section{Rect: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	root.Right = &Section{Rect: geom.Rect{X: 10, Y: 0, Width: 10, Height: 10}}

	leftRoom := &Room{Rect: geom.Rect{X: 2, Y: 2, Width: 5, Height: 5}, Section: root.Left}
	rightRoom := &Room{Rect: geom.Rect{X: 12, Y: 2, Width: 5, Height: 5}, Section: root.Right}
	root.Left.Room = leftRoom
	root.Right.Room = rightRoom

	halls := carveCorridors(root, 20, 10, nil)
	if len(halls) == 0 {
		t.Fatal("expected at least one hall to connect the two rooms")
	}
	if !connected([]*Room{leftRoom, rightRoom}) {
		t.Error("expected the two rooms to be connected after carving")
	}
}
