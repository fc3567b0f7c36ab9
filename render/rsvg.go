package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// rsvgRenderer shells out to rsvg-convert (librsvg). It handles SVG features
// the in-process backend cannot parse.
type rsvgRenderer struct {
	src string
	bin string
}

func probeRsvg(src string) (Renderer, bool) {
	bin, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, false
	}
	return &rsvgRenderer{src: src, bin: bin}, true
}

func (r *rsvgRenderer) Name() string { return "rsvg-convert" }

func (r *rsvgRenderer) Render(out string, size int) error {
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	s := strconv.Itoa(size)
	cmd := exec.Command(r.bin,
		"--width", s,
		"--height", s,
		"--background-color", "black",
		"--output", out,
		r.src,
	)
	if msg, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rsvg-convert %s: %v: %s", out, err, msg)
	}
	return nil
}
