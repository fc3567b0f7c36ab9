package render

import (
	"image"

	"icongen/icon"
)

// FakeRenderer writes solid black squares at the requested size. Used by
// tests to exercise the vector batch path without a real backend.
type FakeRenderer struct {
	name string
	err  error
	// Sizes records every requested render size in call order.
	Sizes []int
}

func NewFake(name string, err error) *FakeRenderer {
	return &FakeRenderer{name: name, err: err}
}

func (f *FakeRenderer) Name() string { return f.name }

func (f *FakeRenderer) Render(out string, size int) error {
	if f.err != nil {
		return f.err
	}
	f.Sizes = append(f.Sizes, size)
	return icon.WritePNG(image.NewRGBA(image.Rect(0, 0, size, size)), out)
}
