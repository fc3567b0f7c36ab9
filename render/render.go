// Package render rasterizes a vector source to square PNG icons. Backends
// are tried in order and the first one able to handle the source wins.
package render

import "errors"

// ErrNoRenderer is returned when no rasterization backend can handle the
// source. The batch must abort before producing any file.
var ErrNoRenderer = errors.New("render: no vector rasterization backend available (install rsvg-convert)")

// Renderer rasterizes the bound vector source at an exact pixel size.
type Renderer interface {
	Name() string
	// Render writes an S×S PNG for the bound source to out.
	Render(out string, size int) error
}

// A probe inspects src and returns a ready renderer when the backend can
// handle it.
type probe func(src string) (Renderer, bool)

var probes = []probe{probeOksvg, probeRsvg}

// New returns the first backend able to rasterize src.
func New(src string) (Renderer, error) {
	return selectRenderer(src, probes)
}

func selectRenderer(src string, probes []probe) (Renderer, error) {
	for _, p := range probes {
		if r, ok := p(src); ok {
			return r, nil
		}
	}
	return nil, ErrNoRenderer
}
