package worldmap

// DetectMounts grants mount-side flags to every eligible collision tile.
// It runs once after classification, before adjustment; it only reads the
// shape and breakable state it never modifies, so rerunning it on its own
// output grants the same bits again.
//
// Breakable tiles are skipped as anchors: mounting a surface that can be
// destroyed later would strand the player.  They still count as free
// space inside the clearance checks.
func DetectMounts(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.At(x, y)
			if tile.Breakable {
				continue
			}
			switch tile.Shape {
			case ShapeNone:
				// Nothing to mount on.
			case ShapeSquare:
				assignMount(g, x, y, MountUp, 0, -1)
				assignMount(g, x, y, MountDown, 0, 1)
				assignMount(g, x, y, MountLeft, -1, 0)
				assignMount(g, x, y, MountRight, 1, 0)
			case ShapeUpLeft:
				assignMount(g, x, y, MountUp|MountLeft, -1, -1)
			case ShapeUpRight:
				assignMount(g, x, y, MountUp|MountRight, 1, -1)
			case ShapeDownLeft:
				assignMount(g, x, y, MountDown|MountLeft, -1, 1)
			case ShapeDownRight:
				assignMount(g, x, y, MountDown|MountRight, 1, 1)
			}
		}
	}
}

// assignMount grants mask to (x, y) if the direction with normal vector
// (nx, ny) passes all clearance and neighbor-agreement checks.  Grid Y
// increases downward, so an up-facing normal is (0, -1).
func assignMount(g *Grid, x, y int, mask uint8, nx, ny int) {
	// clearance checks the two cells extending outward along the normal
	// from a base offset.  Two free cells are needed in front of any
	// mountable surface to fit the hand.
	clearance := func(bx, by int) bool {
		return g.EmptyOrBreakable(x+bx+nx, y+by+ny) &&
			g.EmptyOrBreakable(x+bx+2*nx, y+by+2*ny)
	}
	if !clearance(0, 0) {
		return
	}

	// Tangent neighbors, found by rotating the normal 90 degrees each way.
	postX, postY := ny, -nx
	preX, preY := -ny, nx

	// Both tangent neighbors must carry the same collision shape as this
	// tile and must themselves have full frontal clearance; otherwise the
	// surface is too short or too jagged for the whole body.
	shape := g.At(x, y).Shape
	sameShape := func(dx, dy int) bool {
		s, ok := g.ShapeAt(x+dx, y+dy)
		return ok && s == shape
	}
	if !sameShape(preX, preY) || !sameShape(postX, postY) ||
		!clearance(preX, preY) || !clearance(postX, postY) {
		return
	}

	if nx == 0 || ny == 0 {
		// Axis-aligned mounts need no further checks.
		g.At(x, y).Mount |= mask
		return
	}

	// For diagonal mounts the cells just off the diagonal line also
	// matter.  For example:
	//
	//          [0][1]
	//       [0][1][0][1]
	//    [0][1][0][1][#]
	//    [1][0][1][X]
	//       [1][#]
	//
	// With the candidate at [X], the [0] cells were covered by the
	// tangent checks above, but a jagged obstacle at any [1] cell would
	// still intersect the body.  Those are reached by stepping behind the
	// pre and post neighbors and re-running the frontal clearance check.
	kx, ky := -nx, -ny
	if clearance(preX+kx, preY) && clearance(preX, preY+ky) &&
		clearance(postX+kx, postY) && clearance(postX, postY+ky) {
		g.At(x, y).Mount |= mask
	}
}
