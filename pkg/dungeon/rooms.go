package dungeon

import (
	"math/rand"

	"github.com/opd-ai/dungeongen/pkg/geom"
)

// placeRooms drops one Room into every leaf of root's subtree, sized and
// positioned so the room never comes within margin cells of the leaf's own
// boundary.
func placeRooms(root *Section, minRoomSize, margin int, rng *rand.Rand) []*Room {
	leaves := root.leaves(nil)
	rooms := make([]*Room, 0, len(leaves))
	for _, leaf := range leaves {
		roomWidth := minRoomSize + rng.Intn(leaf.Width-2*margin-minRoomSize+1)
		roomHeight := minRoomSize + rng.Intn(leaf.Height-2*margin-minRoomSize+1)

		xSpan := leaf.Width - roomWidth - margin - margin
		ySpan := leaf.Height - roomHeight - margin - margin
		roomX := margin + rng.Intn(xSpan+1)
		roomY := margin + rng.Intn(ySpan+1)

		room := &Room{
			Rect: geom.Rect{
				X:      leaf.X + roomX,
				Y:      leaf.Y + roomY,
				Width:  roomWidth,
				Height: roomHeight,
			},
			Section: leaf,
		}
		leaf.Room = room
		rooms = append(rooms, room)
	}
	return rooms
}
