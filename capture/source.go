// Package capture provides frame sources for the text art processor:
// decoded still images and raw RGBA streams here, cameras and video files
// in the opencv subpackage.
package capture

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned by Next once a source has no more frames.
	ErrClosed = errors.New("capture: source closed")

	// ErrShortFrame is returned together with a zero-padded frame when a
	// raw stream ends partway through a frame.
	ErrShortFrame = errors.New("capture: short frame")
)

// Frame is one packed row-major RGBA image, 4 bytes per pixel.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// Source yields frames until it is exhausted or closed. Pix of a returned
// frame may be reused by the next call to Next.
type Source interface {
	Next(ctx context.Context) (Frame, error)
	Close() error
}
