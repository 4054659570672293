package portrait

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFitKeepsAspect(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	tests := []struct {
		name       string
		w, h       int
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"wide into square", 100, 50, 10, 5, 10, 5},
		{"tall into wide", 50, 100, 20, 5, 5, 10},
		{"upscales small", 2, 2, 8, 2, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(solid(tt.w, tt.h, red), tt.cols, tt.rows)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}

func TestFitDegenerate(t *testing.T) {
	assert.Nil(t, Fit(nil, 4, 4))
	assert.Nil(t, Fit(solid(4, 4, color.NRGBA{A: 255}), 0, 4))
	assert.Nil(t, Fit(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 4, 4))
}

func TestRenderHalfBlocks(t *testing.T) {
	w := New(solid(4, 4, color.NRGBA{G: 200, A: 255}))
	assert.Equal(t, "▀▀▀▀\n▀▀▀▀", w.Render(4, 2))
}

func TestRenderCentersImage(t *testing.T) {
	// 1x4 fits 6x3 cells as 2x6 pixels: two columns, three cell rows.
	w := New(solid(1, 4, color.NRGBA{B: 200, A: 255}))
	lines := strings.Split(w.Render(6, 3), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, "  ▀▀  ", l)
	}
}

func TestRenderTransparentIsBlank(t *testing.T) {
	w := New(solid(4, 4, color.NRGBA{}))
	assert.Equal(t, "    \n    ", w.Render(4, 2))
}

func TestRenderNil(t *testing.T) {
	assert.Equal(t, "   \n   ", New(nil).Render(3, 2))
	assert.Empty(t, New(nil).Render(0, 2))
}

func TestRenderIsCached(t *testing.T) {
	w := New(solid(4, 4, color.NRGBA{R: 1, A: 255}))
	first := w.Render(4, 2)
	assert.Len(t, w.cache, 1)
	assert.Equal(t, first, w.Render(4, 2))
	assert.Len(t, w.cache, 1)
	w.Render(2, 1)
	assert.Len(t, w.cache, 2)
}

func TestCell(t *testing.T) {
	on := color.NRGBA{R: 10, A: 255}
	off := color.NRGBA{}
	assert.Equal(t, " ", cell(off, off))
	assert.Equal(t, "▄", cell(off, on))
	assert.Equal(t, "▀", cell(on, off))
	assert.Equal(t, "▀", cell(on, on))
	assert.Equal(t, "#0a0000", hex(on))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(6, 3, color.NRGBA{R: 255, A: 255})))
	require.NoError(t, f.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "missing.png")
}
