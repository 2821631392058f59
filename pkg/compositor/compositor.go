package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/opd-ai/dungeongen/pkg/dungeon"
	"github.com/opd-ai/dungeongen/pkg/texture"
)

// BackgroundLayer is the key the base tile layer is stored under in the map
// returned by Composite, matching the teacher's layer-map convention from
// its sprite composer (there ZIndex-ordered layers in one image; here named
// layers in a map, since a dungeon has no equipment/status layers to sort).
const BackgroundLayer = "bg"

// DebugLayer is the key the optional per-cell label overlay is stored
// under.
const DebugLayer = "debug"

// Composite rasterises grid through provider into a background image sized
// texture.TileSize*grid.Width by texture.TileSize*grid.Height, pasting each
// cell's tile at (x*TileSize, y*TileSize). When withDebugLabels is true it
// also produces a DebugLayer image marking each ground cell with '.' and
// each wall cell with '#' (void cells stay blank), using
// golang.org/x/image/font's basicfont face.
func Composite(grid *dungeon.Grid, provider texture.Provider, withDebugLabels bool) (map[string]image.Image, error) {
	if grid == nil {
		return nil, fmt.Errorf("compositor: nil grid")
	}

	pxWidth := grid.Width * texture.TileSize
	pxHeight := grid.Height * texture.TileSize
	bg := image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			label := grid.At(x, y)
			tile, err := provider.Tile(label.ID(), label.SubID())
			if err != nil {
				return nil, fmt.Errorf("compositor: tile (%d,%d) family=%s: %w", x, y, label, err)
			}
			dst := image.Rect(x*texture.TileSize, y*texture.TileSize, (x+1)*texture.TileSize, (y+1)*texture.TileSize)
			draw.Draw(bg, dst, tile, image.Point{}, draw.Over)
		}
	}

	layers := map[string]image.Image{BackgroundLayer: bg}

	if withDebugLabels {
		layers[DebugLayer] = debugOverlay(grid)
	}
	return layers, nil
}

func debugOverlay(grid *dungeon.Grid) image.Image {
	pxWidth := grid.Width * texture.TileSize
	pxHeight := grid.Height * texture.TileSize
	overlay := image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight))

	drawer := &font.Drawer{
		Dst:  overlay,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 230}),
		Face: basicfont.Face7x13,
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			label := grid.At(x, y)
			ch := familyInitial(label.Family())
			if ch == 0 {
				continue
			}
			drawer.Dot = fixed.P(x*texture.TileSize+3, y*texture.TileSize+11)
			drawer.DrawString(string(ch))
		}
	}
	return overlay
}

func familyInitial(f dungeon.Family) byte {
	switch f {
	case dungeon.FamilyGround:
		return '.'
	case dungeon.FamilyWall:
		return '#'
	default:
		return 0
	}
}
