package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
)

// TileSize is the side length, in pixels, of every tile this package
// produces — the 16x16 RGBA image the core pipeline's raster collaborator
// pastes per grid cell.
const TileSize = 16

// Family/variant ids mirror pkg/dungeon's Label.ID()/SubID() encoding, kept
// as plain ints here so this package has no dependency on the dungeon
// package it serves — it is an external collaborator, reachable only
// through this numeric contract.
const (
	idVoid   = 0
	idGround = 1
	idWall   = 2
)

// Provider is the texture-asset registry interface the compositor consumes:
// a lookup from a tile's (id, subId) pair to its 16x16 RGBA image.
type Provider interface {
	Tile(id, subID int) (image.Image, error)
}

// Generator is a procedural Provider: every tile is painted from Theme on
// each request and never touches a filesystem or network.
type Generator struct {
	theme Theme
}

// NewGenerator builds a Generator painting tiles from theme.
func NewGenerator(theme Theme) *Generator {
	return &Generator{theme: theme}
}

// Tile implements Provider.
func (g *Generator) Tile(id, subID int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	rng := rand.New(rand.NewSource(int64(id)*1000 + int64(subID)))

	switch id {
	case idVoid:
		// Transparent: leave img zero-valued.
	case idGround:
		g.paintGround(img, subID, rng)
	case idWall:
		g.paintWall(img, subID, rng)
	default:
		return nil, fmt.Errorf("texture: unknown family id %d", id)
	}
	return img, nil
}

func (g *Generator) paintGround(img *image.RGBA, subID int, rng *rand.Rand) {
	base := hslToColor(g.theme.BaseHue, g.theme.Saturation, g.theme.Lightness+0.12)
	switch subID {
	case 1: // hall: darker, plain
		fillSolid(img, darkenColor(base, 0.2), 0.05, rng)
	case 2: // door: wood grain with a frame
		wood := hslToColor(harmonyHue(g.theme.BaseHue, 150), 0.35, 0.35)
		fillGrain(img, wood, 0.08, rng)
		drawFrame(img, darkenColor(wood, 0.35), 2)
	default: // plain room floor
		fillDots(img, base, 0.08, rng)
	}
}

func (g *Generator) paintWall(img *image.RGBA, subID int, rng *rand.Rand) {
	base := hslToColor(g.theme.BaseHue, g.theme.Saturation, g.theme.Lightness)
	fillBrick(img, base, 0.06, rng)

	accent := darkenColor(base, 0.35)
	switch subID {
	case 2: // WALL_N
		drawEdge(img, accent, edgeTop)
	case 3: // WALL_S
		drawEdge(img, accent, edgeBottom)
	case 4: // WALL_E
		drawEdge(img, accent, edgeRight)
	case 5: // WALL_W
		drawEdge(img, accent, edgeLeft)
	case 6, 10: // WALL_NE / WALL_NE_INT
		drawEdge(img, accent, edgeTop)
		drawEdge(img, accent, edgeRight)
	case 7, 11: // WALL_NW / WALL_NW_INT
		drawEdge(img, accent, edgeTop)
		drawEdge(img, accent, edgeLeft)
	case 8, 12: // WALL_SE / WALL_SE_INT
		drawEdge(img, accent, edgeBottom)
		drawEdge(img, accent, edgeRight)
	case 9, 13: // WALL_SW / WALL_SW_INT
		drawEdge(img, accent, edgeBottom)
		drawEdge(img, accent, edgeLeft)
	}
}

type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// drawEdge paints a one-pixel accent line along one side of the tile, giving
// the oriented wall variants a visibly distinct silhouette beyond the brick
// fill they share.
func drawEdge(img *image.RGBA, c color.RGBA, e edge) {
	b := img.Bounds()
	switch e {
	case edgeTop:
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, b.Min.Y, c)
		}
	case edgeBottom:
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, b.Max.Y-1, c)
		}
	case edgeLeft:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(b.Min.X, y, c)
		}
	case edgeRight:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(b.Max.X-1, y, c)
		}
	}
}

// fillSolid paints every pixel baseColor with a small per-pixel variation,
// scaled by variance.
func fillSolid(img *image.RGBA, baseColor color.RGBA, variance float64, rng *rand.Rand) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := 1.0 + (rng.Float64()*2.0-1.0)*variance
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp(float64(baseColor.R)*v, 0, 255)),
				G: uint8(clamp(float64(baseColor.G)*v, 0, 255)),
				B: uint8(clamp(float64(baseColor.B)*v, 0, 255)),
				A: baseColor.A,
			})
		}
	}
}

// fillDots paints a solid base then stipples darker dots over it.
func fillDots(img *image.RGBA, baseColor color.RGBA, variance float64, rng *rand.Rand) {
	fillSolid(img, baseColor, variance, rng)
	dot := darkenColor(baseColor, 0.2)
	spacing := 6
	b := img.Bounds()
	for y := b.Min.Y + spacing/2; y < b.Max.Y; y += spacing {
		for x := b.Min.X + spacing/2; x < b.Max.X; x += spacing {
			drawCircle(img, x, y, 1, dot)
		}
	}
}

// fillBrick paints a brick-course pattern with mortar lines, scaled for a
// 16x16 tile (four-pixel courses, with the vertical joints of alternating
// courses offset by half a brick).
func fillBrick(img *image.RGBA, baseColor color.RGBA, variance float64, rng *rand.Rand) {
	fillSolid(img, baseColor, variance, rng)
	mortar := darkenColor(baseColor, 0.3)
	b := img.Bounds()
	courseHeight := 4
	brickWidth := 8
	for y := b.Min.Y; y < b.Max.Y; y += courseHeight {
		offset := 0
		if (y/courseHeight)%2 == 1 {
			offset = brickWidth / 2
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, mortar)
		}
		for x := b.Min.X + offset; x < b.Max.X; x += brickWidth {
			for dy := 0; dy < courseHeight && y+dy < b.Max.Y; dy++ {
				img.SetRGBA(x, y+dy, mortar)
			}
		}
	}
}

// fillGrain paints horizontal wood-grain banding with noise, for doors.
func fillGrain(img *image.RGBA, baseColor color.RGBA, variance float64, rng *rand.Rand) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		grain := math.Sin(float64(y)*0.5) * 0.12
		for x := b.Min.X; x < b.Max.X; x++ {
			v := 1.0 + grain + (rng.Float64()*2.0-1.0)*variance
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp(float64(baseColor.R)*v, 0, 255)),
				G: uint8(clamp(float64(baseColor.G)*v, 0, 255)),
				B: uint8(clamp(float64(baseColor.B)*v, 0, 255)),
				A: baseColor.A,
			})
		}
	}
}

func drawFrame(img *image.RGBA, c color.RGBA, thickness int) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, b.Min.Y+t, c)
			img.SetRGBA(x, b.Max.Y-t-1, c)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(b.Min.X+t, y, c)
			img.SetRGBA(b.Max.X-t-1, y, c)
		}
	}
}

func drawCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	b := img.Bounds()
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
