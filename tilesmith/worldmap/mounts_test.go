package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wall places a run of tiles with the given shape along a row.
func wall(g *Grid, y, x0, x1 int, shape Shape) {
	for x := x0; x <= x1; x++ {
		g.At(x, y).Shape = shape
	}
}

func TestDetectMountsHorizontalWall(t *testing.T) {
	g := NewGrid(8, 5)
	wall(g, 2, 0, 7, ShapeSquare)

	DetectMounts(g)

	// The endpoints lack a shape-equal neighbor on one side, so the
	// surface is too short there for the whole body.
	assert.Equal(t, uint8(0), g.At(0, 2).Mount)
	assert.Equal(t, uint8(0), g.At(7, 2).Mount)
	for x := 1; x <= 6; x++ {
		assert.Equal(t, uint8(MountUp|MountDown), g.At(x, 2).Mount, "x=%d", x)
	}
}

func TestDetectMountsClearanceAtWorldEdge(t *testing.T) {
	// A wall one row below the top edge has only one free cell above it,
	// so the up-facing mount is denied while the down-facing one stands.
	g := NewGrid(8, 5)
	wall(g, 1, 0, 7, ShapeSquare)

	DetectMounts(g)
	assert.Equal(t, uint8(MountDown), g.At(3, 1).Mount)
}

func TestDetectMountsTooShortWall(t *testing.T) {
	g := NewGrid(8, 5)
	wall(g, 2, 3, 4, ShapeSquare)

	DetectMounts(g)
	assert.Equal(t, uint8(0), g.At(3, 2).Mount)
	assert.Equal(t, uint8(0), g.At(4, 2).Mount)
}

func TestDetectMountsSkipsBreakableAnchors(t *testing.T) {
	g := NewGrid(8, 5)
	wall(g, 2, 0, 7, ShapeSquare)
	g.At(3, 2).Breakable = true

	DetectMounts(g)

	// The breakable tile itself anchors nothing, but it still counts as
	// a shape-equal neighbor for the tiles beside it.
	assert.Equal(t, uint8(0), g.At(3, 2).Mount)
	assert.Equal(t, uint8(MountUp|MountDown), g.At(2, 2).Mount)
	assert.Equal(t, uint8(MountUp|MountDown), g.At(4, 2).Mount)
}

func TestDetectMountsDiagonalStaircase(t *testing.T) {
	g := NewGrid(9, 9)
	steps := [][2]int{{2, 6}, {3, 5}, {4, 4}, {5, 3}, {6, 2}}
	for _, s := range steps {
		g.At(s[0], s[1]).Shape = ShapeDownRight
	}

	DetectMounts(g)

	assert.Equal(t, uint8(0), g.At(2, 6).Mount)
	assert.Equal(t, uint8(0), g.At(6, 2).Mount)
	for _, s := range [][2]int{{3, 5}, {4, 4}, {5, 3}} {
		assert.Equal(t, uint8(MountDown|MountRight), g.At(s[0], s[1]).Mount,
			"cell (%d,%d)", s[0], s[1])
	}
}

func TestDetectMountsDiagonalBlockedByOffDiagonalObstacle(t *testing.T) {
	g := NewGrid(9, 9)
	steps := [][2]int{{2, 6}, {3, 5}, {4, 4}, {5, 3}, {6, 2}}
	for _, s := range steps {
		g.At(s[0], s[1]).Shape = ShapeDownRight
	}
	// A stray obstacle off the diagonal line, inside the body sweep of
	// the middle step but clear of its tangent neighbors' front cells.
	g.At(6, 5).Shape = ShapeSquare

	DetectMounts(g)
	assert.Equal(t, uint8(0), g.At(4, 4).Mount)
}

func TestDetectMountsIsIdempotent(t *testing.T) {
	g := NewGrid(8, 5)
	wall(g, 2, 0, 7, ShapeSquare)

	DetectMounts(g)
	before := make([]uint8, 0, 8)
	for x := 0; x < 8; x++ {
		before = append(before, g.At(x, 2).Mount)
	}

	DetectMounts(g)
	for x := 0; x < 8; x++ {
		assert.Equal(t, before[x], g.At(x, 2).Mount, "x=%d", x)
	}
}
