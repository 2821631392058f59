package dungeon

import "github.com/opd-ai/dungeongen/pkg/geom"

// Grid is a width*height row-major array of tile labels.
type Grid struct {
	Width, Height int
	cells         []Label
}

func newGrid(width, height int) *Grid {
	cells := make([]Label, width*height)
	return &Grid{Width: width, Height: height, cells: cells}
}

// At returns the label at (x, y). Out-of-bounds coordinates return VOID.
func (g *Grid) At(x, y int) Label {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return VOID
	}
	return g.cells[y*g.Width+x]
}

func (g *Grid) set(x, y int, l Label) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y*g.Width+x] = l
}

// rasterise produces the tile-label grid for the whole map. Priority is
// applied as layered overwrites from lowest to highest priority — halls,
// then walls, then doors, then rooms — which reproduces the §4.6 ordered
// per-cell test (room beats door beats wall beats hall beats void) without
// depending on which leaf a splice-adjacent cell happens to belong to.
func rasterise(width, height int, rooms []*Room, doors []*Door, halls []*Hall, walls []geom.Rect) *Grid {
	g := newGrid(width, height)

	for _, h := range halls {
		fillRect(g, h.Rect, GROUND_HALL)
	}
	for _, w := range walls {
		fillRect(g, w, RAW_WALL)
	}
	for _, d := range doors {
		g.set(d.X, d.Y, GROUND_DOOR)
	}
	for _, r := range rooms {
		fillRect(g, r.Rect, GROUND)
	}
	return g
}

func fillRect(g *Grid, r geom.Rect, l Label) {
	for y := r.Y; y <= r.Bottom(); y++ {
		for x := r.X; x <= r.Right(); x++ {
			g.set(x, y, l)
		}
	}
}
