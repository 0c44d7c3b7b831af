package asciivision

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/asciivision/imageutil"
)

// DefaultFontSize is the point size used for TrueType fonts.
const DefaultFontSize = 12.0

// GlyphRenderer draws rendered text frames into images, one fixed-size cell
// per character. It is used to save text art as PNG.
type GlyphRenderer struct {
	face   font.Face
	name   string
	FG     color.Color
	BG     color.Color
	Scale  int
	cellW  int
	cellH  int
	ascent int
}

// NewGlyphRenderer creates a renderer for face. A nil face selects the
// built-in 7x13 bitmap font.
func NewGlyphRenderer(face font.Face) *GlyphRenderer {
	name := "custom"
	if face == nil {
		face = basicfont.Face7x13
		name = "basicfont 7x13"
	}

	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = metrics.Height / 2
	}

	return &GlyphRenderer{
		face:   face,
		name:   name,
		FG:     color.RGBA{R: 220, G: 220, B: 220, A: 255},
		BG:     color.Black,
		Scale:  1,
		cellW:  max(advance.Ceil(), 1),
		cellH:  max((metrics.Ascent + metrics.Descent).Ceil(), 1),
		ascent: metrics.Ascent.Ceil(),
	}
}

// LoadTTF parses a TrueType font file and returns a renderer using it at
// size points (72 DPI).
func LoadTTF(path string, size float64) (*GlyphRenderer, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	if size <= 0 {
		size = DefaultFontSize
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	gr := NewGlyphRenderer(face)
	gr.name = path
	return gr, nil
}

// Name identifies the font in use.
func (gr *GlyphRenderer) Name() string {
	return gr.name
}

// CellSize returns the unscaled pixel size of one character cell.
func (gr *GlyphRenderer) CellSize() (int, int) {
	return gr.cellW, gr.cellH
}

// Render draws a newline separated text frame. The image is as wide as the
// longest row and as tall as the number of rows, times the cell size and
// Scale.
func (gr *GlyphRenderer) Render(text string) *image.RGBA {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if text == "" {
		lines = nil
	}
	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*gr.cellW, len(lines)*gr.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(gr.BG), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(gr.FG),
		Face: gr.face,
	}
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] == ' ' {
				continue
			}
			d.Dot = fixed.P(x*gr.cellW, y*gr.cellH+gr.ascent)
			d.DrawString(line[x : x+1])
		}
	}

	if gr.Scale <= 1 || img.Bounds().Empty() {
		return img
	}
	scaled := imageutil.Resize(&imageutil.RGBAImage{RGBA: img},
		img.Bounds().Dx()*gr.Scale, img.Bounds().Dy()*gr.Scale,
		imageutil.InterpolationNearest)
	return scaled.RGBA
}

// Save renders text and writes it to path as PNG, JPEG or GIF, chosen by
// the file extension.
func (gr *GlyphRenderer) Save(text, path string) error {
	return imageutil.SaveImage(gr.Render(text), path)
}
