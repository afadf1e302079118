package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStartPoints(t *testing.T) {
	point := Point{X: 2*32 + 31, Y: 2*32 + 16}

	t.Run("right mount passes", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(2, 2).Mount = MountRight

		f := &Findings{}
		CheckStartPoints(g, []Point{point}, f)
		assert.True(t, f.OK())
	})

	t.Run("two sided mount passes", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(2, 2).Mount = MountLeft | MountRight

		f := &Findings{}
		CheckStartPoints(g, []Point{point}, f)
		assert.True(t, f.OK())
	})

	t.Run("wrong mount fails", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(2, 2).Mount = MountUp

		f := &Findings{}
		CheckStartPoints(g, []Point{point}, f)
		require.Len(t, f.Messages(), 1)
		assert.Equal(t, "tile[2][2] does not support mounting at (95,80)",
			f.Messages()[0])
	})
}

func TestCheckTeleportPoints(t *testing.T) {
	point := Point{X: 3*32 + 16, Y: 1 * 32}

	t.Run("top mount passes", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(3, 1).Mount = MountUp

		f := &Findings{}
		CheckTeleportPoints(g, []Point{point}, f)
		assert.True(t, f.OK())
	})

	t.Run("two sided mount passes", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(3, 1).Mount = MountUp | MountDown

		f := &Findings{}
		CheckTeleportPoints(g, []Point{point}, f)
		assert.True(t, f.OK())
	})

	t.Run("side mount fails", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(3, 1).Mount = MountRight

		f := &Findings{}
		CheckTeleportPoints(g, []Point{point}, f)
		require.Len(t, f.Messages(), 1)
		assert.Equal(t, "tile[1][3] does not support mounting at (112,32)",
			f.Messages()[0])
	})
}

func TestCheckTerminalReactions(t *testing.T) {
	t.Run("adjacent chain passes", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(2, 2).Reaction = ReactionTerminal
		g.At(2, 1).Reaction = ReactionChain

		f := &Findings{}
		CheckTerminalReactions(g, f)
		assert.True(t, f.OK())
	})

	t.Run("orphan terminal fails", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.At(2, 2).Reaction = ReactionTerminal
		// Diagonal chains don't count; the wave travels on the axes.
		g.At(1, 1).Reaction = ReactionChain

		f := &Findings{}
		CheckTerminalReactions(g, f)
		require.Len(t, f.Messages(), 1)
		assert.Equal(t, "tile[2][2] (80, 80): terminal reaction tile must "+
			"be adjacent to at least one chain reaction tile",
			f.Messages()[0])
	})
}

func TestStripGhosts(t *testing.T) {
	g := NewGrid(3, 3)
	g.At(1, 1).Ghost = true
	g.At(1, 1).Shape = ShapeSquare
	g.At(0, 0).Shape = ShapeSquare

	StripGhosts(g)

	assert.False(t, g.At(1, 1).Ghost)
	assert.Equal(t, ShapeNone, g.At(1, 1).Shape)
	assert.Equal(t, ShapeSquare, g.At(0, 0).Shape)
}

func TestStats(t *testing.T) {
	g := NewGrid(5, 1)
	g.At(0, 0).Collectible = CollectibleUp
	g.At(1, 0).Reaction = ReactionChain
	g.At(2, 0).Breakable = true
	g.At(3, 0).Breakable = true
	g.At(3, 0).Reaction = ReactionTerminal

	items, removable := Stats(g)
	assert.Equal(t, 1, items)
	// Collectible 1, chain 1, plain breakable 2, reaction breakable 1.
	assert.Equal(t, 5, removable)
}
