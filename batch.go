package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"icongen/icon"
	"icongen/log"
	"icongen/render"
)

// generateRaster runs the composite pipeline over the full manifest. logo is
// the already-cropped (or raw) source. A verification mismatch marks the file
// [NG] and the batch continues; write errors abort.
func generateRaster(logo image.Image, outDir string, fill float64) (generated, failed int, err error) {
	for _, spec := range iconManifest {
		out := filepath.Join(outDir, spec.Path)
		start := time.Now()

		canvas := icon.Compose(logo, spec.Size, fill)
		if err := icon.WritePNG(canvas, out); err != nil {
			return generated, failed, err
		}

		ok := reportIcon(out, spec.Size, start)
		if ok {
			generated++
		} else {
			failed++
		}
	}
	return generated, failed, nil
}

// generateVector rasterizes the vector source directly at each manifest size.
func generateVector(r render.Renderer, outDir string) (generated, failed int, err error) {
	for _, spec := range iconManifest {
		out := filepath.Join(outDir, spec.Path)
		start := time.Now()

		if err := r.Render(out, spec.Size); err != nil {
			return generated, failed, err
		}

		ok := reportIcon(out, spec.Size, start)
		if ok {
			generated++
		} else {
			failed++
		}
	}
	return generated, failed, nil
}

// reportIcon verifies the written file and prints its per-file marker.
func reportIcon(path string, size int, start time.Time) bool {
	err := verifyIcon(path, size)
	marker := "OK"
	if err != nil {
		marker = "NG"
		log.Warnf("verification failed: %v", err)
	}
	fmt.Printf("  [%s] %s  %dx%d\n", marker, filepath.Base(path), size, size)
	log.IconWritten(path, size, float64(time.Since(start).Microseconds())/1000, err == nil)
	return err == nil
}

// verifyIcon re-opens the written file and checks its actual pixel
// dimensions against the requested size.
func verifyIcon(path string, size int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopen %s: %w", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Width != size || cfg.Height != size {
		return fmt.Errorf("%s: got %dx%d, want %dx%d", path, cfg.Width, cfg.Height, size, size)
	}
	return nil
}
