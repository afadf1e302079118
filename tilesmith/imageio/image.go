package imageio

// TileSize is the width and height of world tiles in pixels.  Every input
// image must have dimensions that are exact multiples of this.
const TileSize = 32

// Format describes the channel layout of a PixelImage.
type Format int

const (
	// FormatGA is two bytes per pixel: gray, then alpha.  Used for tile
	// layers, where only the sprite shape and shading matter.
	FormatGA Format = iota

	// FormatRGBA is four bytes per pixel: red, green, blue, alpha.  Used
	// for the metadata layer, where colors carry gameplay annotations.
	FormatRGBA
)

// BytesPerPixel returns the pixel stride for the format.
func (f Format) BytesPerPixel() int {
	if f == FormatGA {
		return 2
	}
	return 4
}

func (f Format) String() string {
	if f == FormatGA {
		return "GA"
	}
	return "RGBA"
}

// PixelImage owns a decoded raster as a flat byte buffer.  Pixels are
// stored row-major with the channel order given by Format.
type PixelImage struct {
	Width  int
	Height int
	Format Format
	Pix    []byte
}

// NewPixelImage allocates a zeroed image buffer.
func NewPixelImage(width, height int, format Format) *PixelImage {
	return &PixelImage{
		Width:  width,
		Height: height,
		Format: format,
		Pix:    make([]byte, width*height*format.BytesPerPixel()),
	}
}

// GridWidth returns the image width in cells.
func (p *PixelImage) GridWidth() int { return p.Width / TileSize }

// GridHeight returns the image height in cells.
func (p *PixelImage) GridHeight() int { return p.Height / TileSize }

// rowStride returns the byte length of one pixel row.
func (p *PixelImage) rowStride() int { return p.Width * p.Format.BytesPerPixel() }

// CellAt returns a view of the 32x32 cell at cell coordinate (cx, cy).
// The view shares the image buffer and stays valid as long as the image.
func (p *PixelImage) CellAt(cx, cy int) Cell {
	return Cell{img: p, x0: cx * TileSize, y0: cy * TileSize}
}

// SetPixel overwrites a single pixel with the given channel bytes.  The
// number of channels must match the image format.  Mostly useful for
// composing output images and test fixtures.
func (p *PixelImage) SetPixel(x, y int, channels ...byte) {
	bpp := p.Format.BytesPerPixel()
	if len(channels) != bpp {
		panic("imageio: channel count does not match format")
	}
	copy(p.Pix[y*p.rowStride()+x*bpp:], channels)
}

// Cell is a non-owning view of one tile-sized region of a PixelImage.
type Cell struct {
	img    *PixelImage
	x0, y0 int
}

// Row returns the raw bytes of pixel row i within the cell.
func (c Cell) Row(i int) []byte {
	bpp := c.img.Format.BytesPerPixel()
	start := (c.y0+i)*c.img.rowStride() + c.x0*bpp
	return c.img.Pix[start : start+TileSize*bpp]
}

// Pixel returns the pixel at cell-relative (bx, by) packed in
// little-endian channel order: the first channel is the least significant
// byte and alpha is the most significant one.
func (c Cell) Pixel(bx, by int) uint32 {
	bpp := c.img.Format.BytesPerPixel()
	off := (c.y0+by)*c.img.rowStride() + (c.x0+bx)*bpp
	var p uint32
	for i := 0; i < bpp; i++ {
		p |= uint32(c.img.Pix[off+i]) << (i * 8)
	}
	return p
}

// Alpha returns the alpha channel at cell-relative (bx, by).
func (c Cell) Alpha(bx, by int) byte {
	bpp := c.img.Format.BytesPerPixel()
	off := (c.y0+by)*c.img.rowStride() + (c.x0+bx)*bpp
	return c.img.Pix[off+bpp-1]
}

// Blank reports whether every pixel in the cell is fully transparent.
func (c Cell) Blank() bool {
	bpp := c.img.Format.BytesPerPixel()
	for i := 0; i < TileSize; i++ {
		row := c.Row(i)
		for x := bpp - 1; x < len(row); x += bpp {
			if row[x] != 0 {
				return false
			}
		}
	}
	return true
}

// Bytes returns a copy of the full cell content, rows concatenated top to
// bottom.  Two cells with equal Bytes are visually identical.
func (c Cell) Bytes() []byte {
	bpp := c.img.Format.BytesPerPixel()
	out := make([]byte, 0, TileSize*TileSize*bpp)
	for i := 0; i < TileSize; i++ {
		out = append(out, c.Row(i)...)
	}
	return out
}
