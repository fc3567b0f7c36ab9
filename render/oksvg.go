package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"icongen/icon"
)

// oksvgRenderer rasterizes in-process. The icon is parsed once per Render
// call since SetTarget mutates the parsed document.
type oksvgRenderer struct {
	src string
}

func probeOksvg(src string) (Renderer, bool) {
	if _, err := oksvg.ReadIcon(src, oksvg.WarnErrorMode); err != nil {
		return nil, false
	}
	return &oksvgRenderer{src: src}, true
}

func (r *oksvgRenderer) Name() string { return "oksvg" }

func (r *oksvgRenderer) Render(out string, size int) error {
	ic, err := oksvg.ReadIcon(r.src, oksvg.WarnErrorMode)
	if err != nil {
		return err
	}

	w, h := ic.ViewBox.W, ic.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / w
	if h > w {
		scale = float64(size) / h
	}
	outW := int(w * scale)
	outH := int(h * scale)
	offX := (size - outW) / 2
	offY := (size - outH) / 2
	ic.SetTarget(float64(offX), float64(offY), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	ic.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return icon.WritePNG(img, out)
}
