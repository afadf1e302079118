package worldmap

import "github.com/voskhod/go-tilesmith/tilesmith/imageio"

// Point is a pixel-space coordinate in the world image.
type Point struct {
	X, Y int
}

// Positions are the special locations collected during classification.
type Positions struct {
	Start      []Point // mount points where the player may begin
	Teleport   []Point // top-face teleport stations
	Throwables []Point // initial ball positions
}

// Sample offsets within a cell.  The collision shape is read from the
// four edge midpoints:
//
//	+-------+
//	|   U   |
//	| L   R |
//	|   D   |
//	+-------+
//
// In theory the points should sit exactly on the cell edges, but a margin
// of 2 tolerates grid snapping and antialiasing in the painted input.
const (
	sampleMargin = 2

	leftX   = sampleMargin
	leftY   = imageio.TileSize / 2
	rightX  = imageio.TileSize - 1 - sampleMargin
	rightY  = imageio.TileSize / 2
	upX     = imageio.TileSize / 2
	upY     = sampleMargin
	downX   = imageio.TileSize / 2
	downY   = imageio.TileSize - 1 - sampleMargin
	centerX = imageio.TileSize / 2
	centerY = imageio.TileSize / 2

	// Off-center sample distinguishing the paired variant of each
	// annotation color (drawn as a square instead of a circle).  Must not
	// coincide with any edge sample.
	offX = imageio.TileSize/4 + 1
	offY = imageio.TileSize/4 + 1
)

// Annotation colors, one gameplay meaning per high-intensity color:
//
//	black   = no extra annotation
//	red     = breakable (paired: ghost collision)
//	green   = collectible (paired: also terminal reaction)
//	blue    = starting position / teleport station
//	yellow  = throwable spawn
//	cyan    = chain reaction trigger (paired: terminal reaction)
//	magenta = chain reaction effect (paired: terminal effect)
//
// White is unused on purpose: it is indistinguishable from transparent
// pixels when editing on a white background.  Each channel is matched
// against half intensity so antialiased strokes still classify.
func isBreakableColor(p uint32) bool {
	return p&0x0000ff > 0x00007f && // +R
		p&0x00ff00 < 0x008000 &&
		p&0xff0000 < 0x800000
}

func isCollectibleColor(p uint32) bool {
	return p&0x0000ff < 0x000080 &&
		p&0x00ff00 > 0x007f00 && // +G
		p&0xff0000 < 0x800000
}

func isStartColor(p uint32) bool {
	return p&0x0000ff < 0x000080 &&
		p&0x00ff00 < 0x008000 &&
		p&0xff0000 > 0x7f0000 // +B
}

func isThrowableColor(p uint32) bool {
	return p&0x0000ff > 0x00007f && // +R
		p&0x00ff00 > 0x007f00 && // +G
		p&0xff0000 < 0x800000
}

func isChainTriggerColor(p uint32) bool {
	return p&0x0000ff < 0x000080 &&
		p&0x00ff00 > 0x007f00 && // +G
		p&0xff0000 > 0x7f0000 // +B
}

func isChainEffectColor(p uint32) bool {
	return p&0x0000ff > 0x00007f && // +R
		p&0x00ff00 < 0x008000 &&
		p&0xff0000 > 0x7f0000 // +B
}

// Classify reads the annotation layer into a metadata grid plus position
// lists.  Classification is purely local per cell; all neighbor reasoning
// happens later in DetectMounts and AdjustObstacles.
func Classify(img *imageio.PixelImage) (*Grid, *Positions) {
	grid := NewGrid(img.GridWidth(), img.GridHeight())
	positions := &Positions{}

	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			cell := img.CellAt(cx, cy)
			tile := grid.At(cx, cy)
			classifyShape(cell, tile)
			classifyPositions(cell, cx, cy, positions)
			classifyAnnotations(cell, cx, cy, tile, positions)
		}
	}
	return grid, positions
}

// classifyShape maps the four edge opacity samples to a collision shape.
// Exactly six combinations are meaningful; anything else is an incidental
// annotation marking and classifies as passable, never an error.
func classifyShape(cell imageio.Cell, tile *Tile) {
	bits := 0
	if cell.Alpha(upX, upY) != 0 {
		bits |= 1
	}
	if cell.Alpha(downX, downY) != 0 {
		bits |= 2
	}
	if cell.Alpha(leftX, leftY) != 0 {
		bits |= 4
	}
	if cell.Alpha(rightX, rightY) != 0 {
		bits |= 8
	}

	switch bits {
	case 0:
		tile.Shape = ShapeNone
	case 15:
		// UDLR: square obstacle occupying all four corners.
		tile.Shape = ShapeSquare
	case 5:
		// UL: triangle, lower right corner is passable.
		tile.Shape = ShapeDownRight
	case 9:
		// UR: triangle, lower left corner is passable.
		tile.Shape = ShapeDownLeft
	case 6:
		// DL: triangle, upper right corner is passable.
		tile.Shape = ShapeUpRight
	case 10:
		// DR: triangle, upper left corner is passable.
		tile.Shape = ShapeUpLeft
	}
}

// classifyPositions checks the right and top faces for the blue position
// marker.  Only those faces are tested: the arm always starts facing
// right, and teleport stations always sit on top of a wall.
func classifyPositions(cell imageio.Cell, cx, cy int, positions *Positions) {
	if isStartColor(cell.Pixel(rightX, rightY)) {
		// The start point sits on the rightmost pixel column of the cell
		// rather than the left edge of the next cell, so the fingertips
		// overlap the wall by one pixel when mounted and the grip reads
		// as solid.
		positions.Start = append(positions.Start, Point{
			X: cx*imageio.TileSize + imageio.TileSize - 1,
			Y: cy*imageio.TileSize + imageio.TileSize/2,
		})
	}
	if isStartColor(cell.Pixel(upX, upY)) {
		// Teleport stations use the center of the top edge, the same
		// coordinate as a top-facing mount.
		positions.Teleport = append(positions.Teleport, Point{
			X: cx*imageio.TileSize + imageio.TileSize/2,
			Y: cy * imageio.TileSize,
		})
	}
}

// classifyAnnotations reads the center color and its off-center pair
// sample.  The center selects the annotation; the off-center sample picks
// between the plain and the paired variant of that color.  Cells are
// painted with at most one of these colors by convention.
func classifyAnnotations(cell imageio.Cell, cx, cy int, tile *Tile, positions *Positions) {
	center := cell.Pixel(centerX, centerY)
	off := cell.Pixel(offX, offY)

	switch {
	case isBreakableColor(center):
		if isBreakableColor(off) {
			tile.Ghost = true
		} else {
			tile.Breakable = true
		}
	case isCollectibleColor(center):
		tile.Collectible = CollectibleMask
		if isCollectibleColor(off) {
			tile.Reaction = ReactionTerminal
		}
	case isThrowableColor(center):
		positions.Throwables = append(positions.Throwables, Point{
			X: cx*imageio.TileSize + imageio.TileSize/2,
			Y: cy*imageio.TileSize + imageio.TileSize/2,
		})
	case isChainTriggerColor(center):
		if isChainTriggerColor(off) {
			tile.Reaction = ReactionTerminal
		} else {
			tile.Reaction = ReactionChain
		}
	case isChainEffectColor(center):
		if isChainEffectColor(off) {
			tile.Reaction = ReactionTerminal
		} else {
			tile.Reaction = ReactionChain
		}
		tile.Breakable = true
	}
}
