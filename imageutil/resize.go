package imageutil

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// ParseInterpolation maps "area", "linear" or "nearest" to an
// Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "area":
		return InterpolationArea, nil
	case "linear":
		return InterpolationLinear, nil
	case "nearest":
		return InterpolationNearest, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q", name)
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := &RGBAImage{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// Prefilter shrinks a frame to exactly cols x rows with interp, so that
// one-sample-per-cell conversion blends the source region instead of
// picking a single pixel. Frames already at or below that size are
// returned unchanged.
func Prefilter(img *RGBAImage, cols, rows int, interp Interpolation) *RGBAImage {
	if cols <= 0 || rows <= 0 || (img.Width() <= cols && img.Height() <= rows) {
		return img
	}
	return Resize(img, cols, rows, interp)
}
