// Package icon composites a logo onto fixed-size black square canvases and
// writes them as PNG files.
package icon

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// DefaultFill is the fraction of the icon side occupied by the logo; the
// remainder is black margin split evenly.
const DefaultFill = 0.82

// Compose scales src to fit within fill×size pixels, preserving aspect ratio,
// and centers it on a size×size black canvas. src dimensions may be unequal;
// the resized dimensions then differ accordingly.
func Compose(src image.Image, size int, fill float64) *image.RGBA {
	inner := int(float64(size) * fill)

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	longer := w
	if h > longer {
		longer = h
	}
	scale := float64(inner) / float64(longer)
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))

	resized := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	off := image.Pt((size-newW)/2, (size-newH)/2)
	draw.Draw(canvas, resized.Bounds().Add(off), resized, image.Point{}, draw.Over)
	return canvas
}

// WritePNG writes img to path, creating parent directories as needed and
// overwriting any existing file.
func WritePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
