package worldmap

// Grid is the metadata cell grid for one annotation layer.  All neighbor
// access goes through bounds-aware methods; out-of-range cells are never
// empty and never shape-equal to anything.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid returns a grid of empty tiles.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a pointer to the tile at (x, y), which must be in bounds.
func (g *Grid) At(x, y int) *Tile {
	return &g.tiles[y*g.width+x]
}

// ShapeAt returns the collision shape at (x, y), with ok=false when the
// coordinate is out of bounds.
func (g *Grid) ShapeAt(x, y int) (shape Shape, ok bool) {
	if !g.InBounds(x, y) {
		return ShapeNone, false
	}
	return g.At(x, y).Shape, true
}

// EmptyOrBreakable reports whether (x, y) counts as free space.  Out of
// bounds is not free: the world edge can never provide clearance.
func (g *Grid) EmptyOrBreakable(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).EmptyOrBreakable()
}

// breakableAt reports whether (x, y) is in bounds and breakable.
func (g *Grid) breakableAt(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Breakable
}

// unbreakableSquareAt reports whether (x, y) is in bounds and a permanent
// square wall.
func (g *Grid) unbreakableSquareAt(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).unbreakableSquare()
}

// Packed returns the wire-format bitmask matrix for the grid.
func (g *Grid) Packed() [][]int {
	out := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = g.At(x, y).Pack()
		}
		out[y] = row
	}
	return out
}
