package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Raw reads consecutive fixed-size RGBA frames from a byte stream, such as
// the output of `ffmpeg -f rawvideo -pix_fmt rgba -`.
type Raw struct {
	r      io.Reader
	width  int
	height int
	buf    []byte
	done   bool
}

// NewRaw returns a source reading width x height frames from r.
func NewRaw(r io.Reader, width, height int) (*Raw, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raw frame size %dx%d", width, height)
	}
	return &Raw{
		r:      r,
		width:  width,
		height: height,
		buf:    make([]byte, width*height*4),
	}, nil
}

// Next reads one frame. When the stream ends inside a frame, the rest of the
// frame is zeroed and returned along with ErrShortFrame; the following call
// returns ErrClosed.
func (s *Raw) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if s.done {
		return Frame{}, ErrClosed
	}

	n, err := io.ReadFull(s.r, s.buf)
	frame := Frame{Pix: s.buf, Width: s.width, Height: s.height}

	switch {
	case err == nil:
		return frame, nil
	case errors.Is(err, io.EOF):
		s.done = true
		return Frame{}, ErrClosed
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		clear(s.buf[n:])
		return frame, fmt.Errorf("%w: expected %d bytes, got %d", ErrShortFrame, len(s.buf), n)
	default:
		s.done = true
		return Frame{}, fmt.Errorf("failed to read raw frame: %w", err)
	}
}

// Close closes the underlying reader if it is an io.Closer.
func (s *Raw) Close() error {
	s.done = true
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ParseSize parses a "WxH" frame size.
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, dimensions must be positive", s)
	}
	return w, h, nil
}
