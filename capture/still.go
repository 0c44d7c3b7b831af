package capture

import (
	"context"

	"github.com/wbrown/asciivision/imageutil"
)

// Still serves the same decoded image on every call, so a still picture can
// drive the live view while the settings are tuned.
type Still struct {
	frame  Frame
	closed bool
}

// NewStill wraps an already decoded image.
func NewStill(img *imageutil.RGBAImage) *Still {
	return &Still{
		frame: Frame{
			Pix:    img.Pixels(),
			Width:  img.Width(),
			Height: img.Height(),
		},
	}
}

// OpenStill decodes the image file at path.
func OpenStill(path string) (*Still, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewStill(img), nil
}

// Next returns the image, or ErrClosed after Close.
func (s *Still) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if s.closed {
		return Frame{}, ErrClosed
	}
	return s.frame, nil
}

// Close marks the source exhausted.
func (s *Still) Close() error {
	s.closed = true
	return nil
}
