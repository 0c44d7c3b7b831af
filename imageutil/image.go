// Package imageutil turns decoded images into the packed RGBA pixel buffers
// the frame transform reads, and back.
package imageutil

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned when an image has no pixels.
var ErrEmptyImage = errors.New("image has zero area")

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Its origin is always (0, 0).
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new opaque black RGBAImage of the given size.
func NewRGBAImage(width, height int) *RGBAImage {
	img := &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	draw.Draw(img.RGBA, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return img
}

// RGBAImageFromImage converts any image.Image to an RGBAImage anchored at
// the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}

	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &RGBAImage{RGBA: dst}
}

// RGBAImageFromPixels wraps a packed row-major RGBA buffer without copying.
// pix must hold at least width*height*4 bytes.
func RGBAImageFromPixels(pix []byte, width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: &image.RGBA{
			Pix:    pix[:width*height*4],
			Stride: width * 4,
			Rect:   image.Rect(0, 0, width, height),
		},
	}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Pixels returns the image as a packed row-major RGBA buffer, 4 bytes per
// pixel with no row padding. The backing array is shared when the image is
// already packed.
func (img *RGBAImage) Pixels() []byte {
	w, h := img.Width(), img.Height()
	rowBytes := w * 4
	if img.Stride == rowBytes {
		return img.Pix[:rowBytes*h]
	}

	packed := make([]byte, rowBytes*h)
	for y := 0; y < h; y++ {
		copy(packed[y*rowBytes:(y+1)*rowBytes], img.Pix[y*img.Stride:])
	}
	return packed
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := &RGBAImage{RGBA: image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))}
	copy(clone.Pix, img.Pixels())
	return clone
}
