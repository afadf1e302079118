package worldmap

import (
	"fmt"

	"github.com/voskhod/go-tilesmith/tilesmith/imageio"
)

// MaxCollectibles is the default collectible tile limit: 12x7, the fixed
// on-screen display capacity for collected items.
const MaxCollectibles = 12 * 7

// Findings accumulates validation messages for one run.  Every offending
// cell is reported with its grid coordinate and pixel-space center so the
// level author can fix all of them in one edit pass.
type Findings struct {
	msgs []string
}

// addf records one formatted finding.
func (f *Findings) addf(format string, args ...any) {
	f.msgs = append(f.msgs, fmt.Sprintf(format, args...))
}

// addCellf records a finding prefixed with the offending cell's location.
func (f *Findings) addCellf(x, y int, format string, args ...any) {
	prefix := fmt.Sprintf("tile[%d][%d] (%d, %d): ", y, x,
		x*imageio.TileSize+imageio.TileSize/2,
		y*imageio.TileSize+imageio.TileSize/2)
	f.msgs = append(f.msgs, prefix+fmt.Sprintf(format, args...))
}

// Messages returns all findings in recording order.
func (f *Findings) Messages() []string { return f.msgs }

// OK reports whether no findings were recorded.
func (f *Findings) OK() bool { return len(f.msgs) == 0 }

// AdjustObstacles resolves collectible approach directions and checks the
// legality of breakable and collectible placements.  maxCollectibles <= 0
// uses the default limit.
func AdjustObstacles(g *Grid, maxCollectibles int, f *Findings) {
	if maxCollectibles <= 0 {
		maxCollectibles = MaxCollectibles
	}

	collectibles := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.At(x, y)

			// A breakable tile without collision would be indestructible:
			// there is nothing to destroy.  The exception is breakables
			// that are part of a chain reaction, where the breakable flag
			// encodes a non-triggering, non-terminal reaction tile.
			if tile.Breakable && tile.Shape == ShapeNone && tile.Reaction == ReactionNone {
				f.addCellf(x, y, "breakable tile needs collision")
			}

			if tile.Collectible == 0 {
				continue
			}
			if tile.Shape != ShapeNone || tile.Mount != 0 || tile.Breakable ||
				tile.Ghost || tile.Reaction == ReactionChain {
				f.addCellf(x, y, "collectible tile can not overlap other annotations")
				continue
			}
			if x == 0 || x == g.Width()-1 || y == 0 || y == g.Height()-1 {
				f.addCellf(x, y, "collectible tile can not be placed near edge of map")
				continue
			}

			if !resolveCollectible(g, x, y, tile, f) {
				continue
			}

			collectibles++
			if collectibles > maxCollectibles {
				f.addCellf(x, y, "too many collectible tiles")
			}
		}
	}
}

// resolveCollectible collapses the four candidate approach directions to
// exactly one, based on the adjacent wall.  Two configurations are legal:
//
//  1. Exactly one permanent wall neighbor, the other three empty or
//     breakable.  The collectible may be walled in behind breakables the
//     player must clear first.
//  2. All four neighbors empty or breakable, with exactly one of them
//     actually breakable.  This lets a collectible hang off any breakable
//     wall while still pinning down a single approach direction.
//
// The 3-empty case is checked first; its single wall only needs to be an
// unbreakable square in the one direction tested.  Fixtures depend on
// this precedence, so it is deliberate, not an oversight.
func resolveCollectible(g *Grid, x, y int, tile *Tile, f *Findings) bool {
	emptyCount := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if g.EmptyOrBreakable(x+d[0], y+d[1]) {
			emptyCount++
		}
	}

	switch emptyCount {
	case 3:
		switch {
		case g.unbreakableSquareAt(x, y+1):
			tile.Collectible = CollectibleUp
		case g.unbreakableSquareAt(x, y-1):
			tile.Collectible = CollectibleDown
		case g.unbreakableSquareAt(x+1, y):
			tile.Collectible = CollectibleLeft
		case g.unbreakableSquareAt(x-1, y):
			tile.Collectible = CollectibleRight
		default:
			f.addCellf(x, y, "collectible tile must be adjacent to 1 square collision tile")
			return false
		}
	case 4:
		down := g.breakableAt(x, y+1)
		up := g.breakableAt(x, y-1)
		right := g.breakableAt(x+1, y)
		left := g.breakableAt(x-1, y)
		switch {
		case down && !up && !right && !left:
			tile.Collectible = CollectibleUp
		case !down && up && !right && !left:
			tile.Collectible = CollectibleDown
		case !down && !up && right && !left:
			tile.Collectible = CollectibleLeft
		case !down && !up && !right && left:
			tile.Collectible = CollectibleRight
		default:
			f.addCellf(x, y, "collectible tile must be adjacent to exactly 1 wall")
			return false
		}
	default:
		f.addCellf(x, y, "collectible tile must be surrounded by 3 empty tiles and 1 wall")
		return false
	}
	return true
}
