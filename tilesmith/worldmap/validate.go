package worldmap

import "github.com/voskhod/go-tilesmith/tilesmith/imageio"

// CheckStartPoints verifies that every starting position sits on a tile
// mounted on its right face.  A two-sided left+right mount is fine; any
// other mount mask means the arm cannot grip there.
func CheckStartPoints(g *Grid, start []Point, f *Findings) {
	for _, p := range start {
		tileX := p.X / imageio.TileSize
		tileY := (p.Y - imageio.TileSize/2) / imageio.TileSize
		mount := g.At(tileX, tileY).Mount & MountMask
		if mount != MountRight && mount != MountLeft|MountRight {
			f.addf("tile[%d][%d] does not support mounting at (%d,%d)",
				tileY, tileX, p.X, p.Y)
		}
	}
}

// CheckTeleportPoints verifies that every teleport station sits on a tile
// mounted on its top face (or top and bottom).
func CheckTeleportPoints(g *Grid, teleport []Point, f *Findings) {
	for _, p := range teleport {
		tileX := (p.X - imageio.TileSize/2) / imageio.TileSize
		tileY := p.Y / imageio.TileSize
		mount := g.At(tileX, tileY).Mount & MountMask
		if mount != MountUp && mount != MountUp|MountDown {
			f.addf("tile[%d][%d] does not support mounting at (%d,%d)",
				tileY, tileX, p.X, p.Y)
		}
	}
}

// CheckTerminalReactions verifies that every terminal reaction tile has a
// chain reaction neighbor on at least one axis side.  Without one, the
// terminal tile can never be removed.
func CheckTerminalReactions(g *Grid, f *Findings) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y).Reaction != ReactionTerminal {
				continue
			}
			if chainAt(g, x, y-1) || chainAt(g, x, y+1) ||
				chainAt(g, x-1, y) || chainAt(g, x+1, y) {
				continue
			}
			f.addCellf(x, y, "terminal reaction tile must be "+
				"adjacent to at least one chain reaction tile")
		}
	}
}

func chainAt(g *Grid, x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Reaction == ReactionChain
}

// StripGhosts clears the internal ghost flag and its collision shape from
// all cells.  Ghost tiles have done their job by now: mounts and approach
// directions were derived with their collision in place, and the runtime
// must see them as passable.
func StripGhosts(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.At(x, y)
			if tile.Ghost {
				tile.Ghost = false
				tile.Shape = ShapeNone
			}
		}
	}
}

// Stats returns the collectible item count and the removable-tile budget
// for the grid.  Collectibles free one background tile each; chain and
// terminal reaction tiles free exactly one foreground tile; plain
// breakables may free a foreground and a background tile, so they budget
// two even when the layout only needs one.
func Stats(g *Grid) (itemCount, removableTileCount int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.At(x, y)
			if tile.Collectible != 0 {
				itemCount++
				removableTileCount++
			}
			if tile.Reaction != ReactionNone {
				removableTileCount++
			} else if tile.Breakable {
				removableTileCount += 2
			}
		}
	}
	return itemCount, removableTileCount
}
