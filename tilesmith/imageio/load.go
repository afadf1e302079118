package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Input is one decoded image of a compile batch.
type Input struct {
	Path     string
	Name     string // layer name: base name without extension
	Metadata bool
	Image    *PixelImage
}

// LayerName derives the output layer name from an input path.  We assume
// that stripping the directory and extension makes a good name, but we
// don't actually check.
func LayerName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load decodes a PNG file into the requested channel layout.
func Load(path string, format Format) (*PixelImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: error reading pixels: %w", path, err)
	}

	bounds := src.Bounds()
	out := NewPixelImage(bounds.Dx(), bounds.Dy(), format)
	bpp := format.BytesPerPixel()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := y*out.rowStride() + x*bpp
			if format == FormatGA {
				out.Pix[off] = luminance(c)
				out.Pix[off+1] = c.A
			} else {
				out.Pix[off] = c.R
				out.Pix[off+1] = c.G
				out.Pix[off+2] = c.B
				out.Pix[off+3] = c.A
			}
		}
	}
	return out, nil
}

// luminance converts a straight-alpha color to a gray level using the
// ITU-R 601 weights.
func luminance(c color.NRGBA) byte {
	return byte((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B) + 500) / 1000)
}

// LoadBatch decodes all inputs for one compile.  A path whose base name
// contains metadataTag is decoded as the RGBA annotation layer, everything
// else as a GA tile layer.  All images must have dimensions that are
// multiples of TileSize and must share the same width and height; the
// first offending file aborts the batch with a precise diagnostic.
func LoadBatch(paths []string, metadataTag string) ([]Input, error) {
	inputs := make([]Input, 0, len(paths))
	for _, path := range paths {
		meta := strings.Contains(filepath.Base(path), metadataTag)
		format := FormatGA
		if meta {
			format = FormatRGBA
		}

		img, err := Load(path, format)
		if err != nil {
			return nil, err
		}
		if img.Width%TileSize != 0 {
			return nil, fmt.Errorf("%s: width (%d) is not a multiple of %d",
				path, img.Width, TileSize)
		}
		if img.Height%TileSize != 0 {
			return nil, fmt.Errorf("%s: height (%d) is not a multiple of %d",
				path, img.Height, TileSize)
		}
		if len(inputs) > 0 {
			first := inputs[0].Image
			if img.Width != first.Width || img.Height != first.Height {
				return nil, fmt.Errorf(
					"%s: input image sizes are not uniform: (%d,%d) vs (%d,%d)",
					path, img.Width, img.Height, first.Width, first.Height)
			}
		}

		inputs = append(inputs, Input{
			Path:     path,
			Name:     LayerName(path),
			Metadata: meta,
			Image:    img,
		})
	}
	return inputs, nil
}

// Write encodes a PixelImage back to a PNG file.  GA images are widened
// to gray RGB with alpha; the gray and alpha channels round-trip exactly.
func Write(path string, img *PixelImage) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	bpp := img.Format.BytesPerPixel()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := y*img.rowStride() + x*bpp
			var c color.NRGBA
			if img.Format == FormatGA {
				g := img.Pix[off]
				c = color.NRGBA{R: g, G: g, B: g, A: img.Pix[off+1]}
			} else {
				c = color.NRGBA{
					R: img.Pix[off],
					G: img.Pix[off+1],
					B: img.Pix[off+2],
					A: img.Pix[off+3],
				}
			}
			out.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
