// Package atlas assigns stable indices to unique 32x32 tiles.
//
// Tile identity is the full pixel content of a cell: every cell with the
// same bytes gets the same index no matter which input image or position
// it came from.  Indices are assigned in first-seen order, which makes
// output reproducible for a fixed input list.
package atlas

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/voskhod/go-tilesmith/tilesmith/imageio"
)

// MaxTiles is the default tile table limit.  The runtime loader rejects
// image tables with 32768 or more entries, and keeping under this limit
// means indices always fit in 16 bits.
const MaxTiles = 32767

var (
	// ErrNoTiles means the whole batch contained zero non-blank cells.
	ErrNoTiles = errors.New("no tiles to output")

	// ErrTooManyTiles means the unique tile count exceeded the limit.
	ErrTooManyTiles = errors.New("too many tiles")
)

// Atlas is the shared table of unique tile content.  It is not safe for
// concurrent use; classification runs over inputs in argument order to
// keep index assignment deterministic.
type Atlas struct {
	// buckets maps a content hash to candidate tile indices.  The hash is
	// only a first-level key: a bucket hit still compares full content, so
	// a 64-bit collision can never merge two distinct tiles.
	buckets map[uint64][]int

	// tiles holds a copy of each unique tile's pixels in index order.
	tiles [][]byte
}

// New returns an empty atlas.
func New() *Atlas {
	return &Atlas{buckets: make(map[uint64][]int)}
}

// Len returns the number of unique tiles.
func (a *Atlas) Len() int { return len(a.tiles) }

// Tile returns the pixel content of the tile at the given index.
func (a *Atlas) Tile(index int) []byte { return a.tiles[index] }

// insertOrGet returns the index for the given tile content, inserting a
// copy if it has not been seen before.
func (a *Atlas) insertOrGet(content []byte) int {
	h := xxhash.Sum64(content)
	for _, index := range a.buckets[h] {
		if string(a.tiles[index]) == string(content) {
			return index
		}
	}
	index := len(a.tiles)
	stored := make([]byte, len(content))
	copy(stored, content)
	a.tiles = append(a.tiles, stored)
	a.buckets[h] = append(a.buckets[h], index)
	return index
}

// Check validates the final tile count against the limit.  It is called
// once after all inputs have been classified so that the reported count
// reflects the whole batch.
func (a *Atlas) Check(limit int) error {
	if len(a.tiles) == 0 {
		return ErrNoTiles
	}
	if limit <= 0 {
		limit = MaxTiles
	}
	if len(a.tiles) > limit {
		return fmt.Errorf("%w: limit is %d, got %d", ErrTooManyTiles, limit, len(a.tiles))
	}
	return nil
}

// Image renders all unique tiles into a packed GA image, tilesPerRow
// tiles per row in index order, sized to the minimal number of rows.
func (a *Atlas) Image(tilesPerRow int) *imageio.PixelImage {
	rows := (len(a.tiles) + tilesPerRow - 1) / tilesPerRow
	out := imageio.NewPixelImage(
		imageio.TileSize*tilesPerRow, rows*imageio.TileSize, imageio.FormatGA)

	bpp := imageio.FormatGA.BytesPerPixel()
	rowStride := out.Width * bpp
	for index, tile := range a.tiles {
		x0 := (index % tilesPerRow) * imageio.TileSize
		y0 := (index / tilesPerRow) * imageio.TileSize
		tileRow := imageio.TileSize * bpp
		for y := 0; y < imageio.TileSize; y++ {
			copy(out.Pix[(y0+y)*rowStride+x0*bpp:], tile[y*tileRow:(y+1)*tileRow])
		}
	}
	return out
}
