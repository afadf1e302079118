package atlas

import "github.com/voskhod/go-tilesmith/tilesmith/imageio"

// Grid holds one tile index per cell of a tile layer.  Values are 1-based
// atlas indices; 0 marks a fully transparent cell.
type Grid [][]int

// Classify converts a tile layer into a Grid, inserting unseen tiles into
// the shared atlas.  Cells are visited in row-major order so that index
// assignment only depends on input order.
func Classify(img *imageio.PixelImage, a *Atlas) Grid {
	grid := make(Grid, img.GridHeight())
	for cy := range grid {
		grid[cy] = make([]int, img.GridWidth())
		for cx := range grid[cy] {
			cell := img.CellAt(cx, cy)
			if cell.Blank() {
				continue
			}
			grid[cy][cx] = a.insertOrGet(cell.Bytes()) + 1
		}
	}
	return grid
}
