// Package logo locates the meaningful content of a logo image against a
// near-black background and extracts it as a square region.
package logo

import (
	"errors"
	"image"
	"sort"
)

// DefaultThreshold is the per-channel cutoff below which a pixel counts as
// background. A pixel is background only when all three channels are below it.
const DefaultThreshold = 30

// ErrEmptyContent is returned when every pixel of the source is background,
// leaving nothing to crop.
var ErrEmptyContent = errors.New("logo: no content above background threshold")

// Bounds is the content bounding box in image coordinates. Row bounds index
// the vertical axis, column bounds the horizontal one. Max values are
// inclusive positions of the outermost retained pixels.
type Bounds struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

func (b Bounds) Width() int  { return b.ColMax - b.ColMin }
func (b Bounds) Height() int { return b.RowMax - b.RowMin }

// Center returns the midpoint of the bounding box (col, row).
func (b Bounds) Center() (cx, cy int) {
	return (b.ColMin + b.ColMax) / 2, (b.RowMin + b.RowMax) / 2
}

// DetectBounds computes the content bounding box of img. Instead of the true
// min/max of non-background pixel coordinates it takes the 1st and 99th
// percentile per axis, so a sparse scatter of stray bright pixels (a
// watermark, sensor noise) does not stretch the detected region.
func DetectBounds(img image.Image, threshold uint8) (Bounds, error) {
	r := img.Bounds()
	var rows, cols []int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if uint8(cr>>8) < threshold && uint8(cg>>8) < threshold && uint8(cb>>8) < threshold {
				continue
			}
			rows = append(rows, y-r.Min.Y)
			cols = append(cols, x-r.Min.X)
		}
	}
	if len(rows) == 0 {
		return Bounds{}, ErrEmptyContent
	}
	return Bounds{
		RowMin: percentile(rows, 1),
		RowMax: percentile(rows, 99),
		ColMin: percentile(cols, 1),
		ColMax: percentile(cols, 99),
	}, nil
}

// percentile returns the p-th percentile of vals using linear interpolation
// between closest ranks, truncated to int. vals is not modified.
func percentile(vals []int, p float64) int {
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	sort.Ints(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return int(float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo]))
}
