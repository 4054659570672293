// Package portrait draws the character's picture inside the header box
// using upper half block cells: each cell shows two vertically stacked
// pixels, the top one as the foreground color and the bottom one as the
// background color.
package portrait

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"gitlab.com/tinyland/lab/charsheet/pkg/components"
)

// sharpenSigma is applied after downscaling to restore edges that half
// block cells would otherwise smear.
const sharpenSigma = 0.5

// Load decodes the image at path, honoring EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load portrait %s: %w", path, err)
	}
	return img, nil
}

// Fit scales img to the largest size that fits cols x 2*rows pixels while
// keeping its aspect ratio.
func Fit(img image.Image, cols, rows int) *image.NRGBA {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}

	maxW, maxH := cols, rows*2
	scale := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	dstW := max(1, min(maxW, int(math.Round(float64(b.Dx())*scale))))
	dstH := max(1, min(maxH, int(math.Round(float64(b.Dy())*scale))))

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	if dstW >= 3 && dstH >= 3 {
		dst = imaging.Sharpen(dst, sharpenSigma)
	}
	return dst
}

// Widget renders an image scaled into its area, centered. A nil image
// renders as blank space. Rendered frames are cached per size.
type Widget struct {
	img image.Image

	mu    sync.Mutex
	cache map[[2]int]string
}

// New returns a widget drawing img.
func New(img image.Image) *Widget {
	return &Widget{img: img, cache: make(map[[2]int]string)}
}

// Render draws the image into width x height cells.
func (w *Widget) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w == nil || w.img == nil {
		return components.Blank{}.Render(width, height)
	}

	key := [2]int{width, height}
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.cache[key]; ok {
		return s
	}
	s := render(Fit(w.img, width, height), width, height)
	w.cache[key] = s
	return s
}

func render(img *image.NRGBA, width, height int) string {
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	if img == nil {
		return strings.Join(lines, "\n")
	}

	b := img.Bounds()
	cellRows := (b.Dy() + 1) / 2
	left := (width - b.Dx()) / 2
	top := (height - cellRows) / 2

	for row := 0; row < cellRows; row++ {
		var buf strings.Builder
		buf.WriteString(strings.Repeat(" ", left))
		for x := 0; x < b.Dx(); x++ {
			upper := img.NRGBAAt(x, row*2)
			var lower color.NRGBA
			if row*2+1 < b.Dy() {
				lower = img.NRGBAAt(x, row*2+1)
			}
			buf.WriteString(cell(upper, lower))
		}
		buf.WriteString(strings.Repeat(" ", width-left-b.Dx()))
		lines[top+row] = buf.String()
	}
	return strings.Join(lines, "\n")
}

// cell draws one pair of pixels. Fully transparent pixels show the
// terminal background.
func cell(upper, lower color.NRGBA) string {
	switch {
	case upper.A == 0 && lower.A == 0:
		return " "
	case upper.A == 0:
		return components.Style{FG: hex(lower)}.Render("▄")
	case lower.A == 0:
		return components.Style{FG: hex(upper)}.Render("▀")
	default:
		return components.Style{FG: hex(upper), BG: hex(lower)}.Render("▀")
	}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
