// Command icongen generates the fixed set of iOS app-icon and web favicon
// PNGs from a single source logo. A raster source is auto-cropped to its
// content and composited on black; an SVG source is rasterized directly at
// each target size.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"icongen/doctor"
	"icongen/icon"
	"icongen/log"
	"icongen/logo"
	"icongen/render"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	srcFlag := flag.String("src", "source-logo.png", "Source logo (raster image or .svg)")
	outFlag := flag.String("out", ".", "Output root directory")
	fillFlag := flag.Float64("fill", icon.DefaultFill, "Fraction of the icon side occupied by the logo (0 < fill <= 1)")
	thresholdFlag := flag.Int("threshold", logo.DefaultThreshold, "Per-channel background cutoff for content detection (0-255)")
	cropFlag := flag.Bool("crop", true, "Auto-crop black margins before compositing (raster sources only)")
	verboseFlag := flag.Bool("v", false, "Verbose structured logging")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run environment diagnostics and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("icongen %s\n", version)
		return 0
	}

	if *fillFlag <= 0 || *fillFlag > 1 {
		fmt.Fprintf(os.Stderr, "Error: -fill must be in (0, 1], got %v\n", *fillFlag)
		return 1
	}
	if *thresholdFlag < 0 || *thresholdFlag > 255 {
		fmt.Fprintf(os.Stderr, "Error: -threshold must be in [0, 255], got %d\n", *thresholdFlag)
		return 1
	}

	if *doctorFlag {
		return doctor.Run(*srcFlag, uint8(*thresholdFlag))
	}

	log.Init(*verboseFlag)

	var generated, failed int
	var err error
	if strings.EqualFold(filepath.Ext(*srcFlag), ".svg") {
		generated, failed, err = runVector(*srcFlag, *outFlag)
	} else {
		generated, failed, err = runRaster(*srcFlag, *outFlag, *fillFlag, uint8(*thresholdFlag), *cropFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log.BatchDone(generated, failed)
	fmt.Printf("\nDone. %d icons generated.\n", generated)
	return 0
}

func runRaster(src, outDir string, fill float64, threshold uint8, crop bool) (int, int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, 0, fmt.Errorf("source %s: %w", src, err)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", src, err)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	log.SourceLoaded(filepath.Base(src), format, w, h)
	fmt.Printf("Source : %s  %dx%d\n", filepath.Base(src), w, h)

	content := img
	if crop {
		cropped, err := logo.Extract(img, threshold)
		if err != nil {
			return 0, 0, err
		}
		content = cropped
	}
	cw, ch := content.Bounds().Dx(), content.Bounds().Dy()
	fmt.Printf("Logo   : %dx%d  (square=%v)  fill=%v\n", cw, ch, cw == ch, fill)

	return generateRaster(content, outDir, fill)
}

func runVector(src, outDir string) (int, int, error) {
	if _, err := os.Stat(src); err != nil {
		return 0, 0, fmt.Errorf("source %s: %w", src, err)
	}
	r, err := render.New(src)
	if err != nil {
		return 0, 0, err
	}
	fmt.Printf("Source : %s  (vector, backend=%s)\n", filepath.Base(src), r.Name())
	return generateVector(r, outDir)
}
