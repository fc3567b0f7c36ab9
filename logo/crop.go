package logo

import (
	"image"
	"image/draw"
)

// CropSquare extracts a square region of side max(content width, content
// height), centered on the content bounding box. If the naive square hangs
// over an image edge, the rectangle is shifted inward along that axis so the
// side length is preserved; if the image itself is too small in some axis the
// rectangle is clamped and the result letterboxed back to a square.
func CropSquare(img image.Image, b Bounds) *image.RGBA {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()

	side := b.Height()
	if b.Width() > side {
		side = b.Width()
	}
	cx, cy := b.Center()
	half := side / 2

	left := cx - half
	top := cy - half
	right := cx + half
	bottom := cy + half

	// Single-pixel content still yields a 1x1 crop.
	if right == left {
		right++
	}
	if bottom == top {
		bottom++
	}

	// Shift the opposite edge by the overflow so the square survives when
	// the image is large enough.
	if left < 0 {
		right -= left
		left = 0
	}
	if top < 0 {
		bottom -= top
		top = 0
	}
	if right > w {
		left -= right - w
		right = w
	}
	if bottom > h {
		top -= bottom - h
		bottom = h
	}

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > w {
		right = w
	}
	if bottom > h {
		bottom = h
	}

	cropped := image.NewRGBA(image.Rect(0, 0, right-left, bottom-top))
	draw.Draw(cropped, cropped.Bounds(), img, r.Min.Add(image.Pt(left, top)), draw.Src)

	if cropped.Bounds().Dx() != cropped.Bounds().Dy() {
		return Letterbox(cropped)
	}
	return cropped
}

// Letterbox pastes img centered onto a black square canvas sized to the
// longer of its two sides.
func Letterbox(img image.Image) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	side := w
	if h > side {
		side = h
	}
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	off := image.Pt((side-w)/2, (side-h)/2)
	draw.Draw(canvas, image.Rect(0, 0, w, h).Add(off), img, img.Bounds().Min, draw.Src)
	return canvas
}

// Extract runs content detection and square cropping in one step.
func Extract(img image.Image, threshold uint8) (*image.RGBA, error) {
	b, err := DetectBounds(img, threshold)
	if err != nil {
		return nil, err
	}
	return CropSquare(img, b), nil
}
