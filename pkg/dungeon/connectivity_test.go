package dungeon

import "testing"

func TestConnectedSingleRoom(t *testing.T) {
	r := &Room{Section: &Section{}}
	if !connected([]*Room{r}) {
		t.Error("expected a single room to be trivially connected")
	}
}

func TestConnectedDetectsDisconnectedRoom(t *testing.T) {
	a := &Room{Section: &Section{}}
	b := &Room{Section: &Section{}}
	c := &Room{Section: &Section{}}
	hall := &Hall{Rooms: [2]*Room{a, b}}
	a.Section.Halls = append(a.Section.Halls, hall)
	b.Section.Halls = append(b.Section.Halls, hall)

	if connected([]*Room{a, b, c}) {
		t.Error("expected c to be unreachable")
	}
	if !connected([]*Room{a, b}) {
		t.Error("expected a and b to be connected")
	}
}
