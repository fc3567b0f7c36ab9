// Package doctor checks that the environment can run a full icon batch.
package doctor

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"

	"icongen/logo"
)

// Run executes diagnostic checks against the configured source and returns
// an exit code (0=all pass, 1=any fail).
func Run(src string, threshold uint8) int {
	fmt.Println("icongen doctor - environment diagnostics")
	fmt.Println("========================================")

	allPass := true

	vector := strings.EqualFold(filepath.Ext(src), ".svg")
	if vector {
		if !checkVectorSource(src) {
			allPass = false
		}
		if allPass && !checkRenderers(src) {
			allPass = false
		}
	} else {
		img, ok := checkRasterSource(src)
		if !ok {
			allPass = false
		}
		if allPass && !checkContent(img, threshold) {
			allPass = false
		}
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkRasterSource(src string) (image.Image, bool) {
	fmt.Println()
	fmt.Println("[1/2] Source image")

	f, err := os.Open(src)
	if err != nil {
		fmt.Printf("  FAIL: cannot open source: %v\n", err)
		return nil, false
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Printf("  FAIL: cannot decode source: %v\n", err)
		return nil, false
	}
	fmt.Printf("  PASS: %s %dx%d (%s)\n", filepath.Base(src), img.Bounds().Dx(), img.Bounds().Dy(), format)
	return img, true
}

func checkContent(img image.Image, threshold uint8) bool {
	fmt.Println()
	fmt.Println("[2/2] Content detection")

	b, err := logo.DetectBounds(img, threshold)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		fmt.Println("  Fix with: lower -threshold, or check the source is not all black")
		return false
	}
	fmt.Printf("  PASS: content %dx%d at rows [%d,%d] cols [%d,%d]\n",
		b.Width(), b.Height(), b.RowMin, b.RowMax, b.ColMin, b.ColMax)
	return true
}

func checkVectorSource(src string) bool {
	fmt.Println()
	fmt.Println("[1/2] Vector source")

	if _, err := os.Stat(src); err != nil {
		fmt.Printf("  FAIL: cannot open source: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s present\n", filepath.Base(src))
	return true
}

func checkRenderers(src string) bool {
	fmt.Println()
	fmt.Println("[2/2] Rasterization backends")

	available := false
	if _, err := oksvg.ReadIcon(src, oksvg.WarnErrorMode); err != nil {
		fmt.Printf("  WARN: oksvg cannot parse source: %v\n", err)
	} else {
		fmt.Println("  PASS: oksvg (in-process)")
		available = true
	}
	if bin, err := exec.LookPath("rsvg-convert"); err != nil {
		fmt.Println("  WARN: rsvg-convert not found in PATH")
	} else {
		fmt.Printf("  PASS: rsvg-convert (%s)\n", bin)
		available = true
	}
	if !available {
		fmt.Println("  FAIL: no backend available")
		fmt.Println("  Fix with: install librsvg (rsvg-convert)")
	}
	return available
}
