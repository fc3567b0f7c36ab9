package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"icongen/icon"
	"icongen/logo"
	"icongen/render"
)

// testLogo builds a synthetic source: a white block on black, off-center so
// cropping has work to do.
func testLogo(t *testing.T) image.Image {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 160))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	white := color.RGBA{255, 255, 255, 255}
	for y := 40; y < 120; y++ {
		for x := 50; x < 150; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	content, err := logo.Extract(img, logo.DefaultThreshold)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	return content
}

func checkManifestOutputs(t *testing.T, dir string) {
	t.Helper()
	for _, spec := range iconManifest {
		path := filepath.Join(dir, spec.Path)
		if err := verifyIcon(path, spec.Size); err != nil {
			t.Errorf("%s: %v", spec.Path, err)
		}
	}
}

func TestGenerateRasterFullManifest(t *testing.T) {
	dir := t.TempDir()

	generated, failed, err := generateRaster(testLogo(t), dir, icon.DefaultFill)
	if err != nil {
		t.Fatalf("generateRaster: %v", err)
	}
	if generated != len(iconManifest) || failed != 0 {
		t.Fatalf("generated/failed = %d/%d, want %d/0", generated, failed, len(iconManifest))
	}
	checkManifestOutputs(t, dir)
}

func TestGenerateRasterIdempotent(t *testing.T) {
	dir := t.TempDir()
	content := testLogo(t)

	if _, _, err := generateRaster(content, dir, icon.DefaultFill); err != nil {
		t.Fatal(err)
	}
	sample := filepath.Join(dir, "apple-touch-icon.png")
	first, err := os.ReadFile(sample)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := generateRaster(content, dir, icon.DefaultFill); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(sample)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run produced different bytes")
	}
}

func TestGenerateVectorFullManifest(t *testing.T) {
	dir := t.TempDir()
	fake := render.NewFake("fake", nil)

	generated, failed, err := generateVector(fake, dir)
	if err != nil {
		t.Fatalf("generateVector: %v", err)
	}
	if generated != len(iconManifest) || failed != 0 {
		t.Fatalf("generated/failed = %d/%d, want %d/0", generated, failed, len(iconManifest))
	}
	checkManifestOutputs(t, dir)

	if len(fake.Sizes) != len(iconManifest) {
		t.Fatalf("renderer called %d times, want %d", len(fake.Sizes), len(iconManifest))
	}
	for i, spec := range iconManifest {
		if fake.Sizes[i] != spec.Size {
			t.Errorf("call %d rendered size %d, want %d", i, fake.Sizes[i], spec.Size)
		}
	}
}

func TestVerifyIconMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := icon.WritePNG(image.NewRGBA(image.Rect(0, 0, 10, 10)), path); err != nil {
		t.Fatal(err)
	}

	if err := verifyIcon(path, 10); err != nil {
		t.Errorf("matching size: %v", err)
	}
	if err := verifyIcon(path, 20); err == nil {
		t.Error("expected mismatch error for wrong size")
	}
	if err := verifyIcon(filepath.Join(dir, "missing.png"), 10); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunRasterMissingSource(t *testing.T) {
	_, _, err := runRaster(filepath.Join(t.TempDir(), "nope.png"), t.TempDir(), 0.82, 30, true)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestRunRasterAllBlackSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "black.png")
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	if err := icon.WritePNG(img, src); err != nil {
		t.Fatal(err)
	}

	_, _, err := runRaster(src, dir, 0.82, 30, true)
	if err != logo.ErrEmptyContent {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}

	// With cropping disabled the same source goes through.
	generated, _, err := runRaster(src, dir, 0.82, 30, false)
	if err != nil {
		t.Fatalf("crop disabled: %v", err)
	}
	if generated != len(iconManifest) {
		t.Errorf("generated = %d, want %d", generated, len(iconManifest))
	}
}
