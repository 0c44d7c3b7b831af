package asciivision

import (
	"io"
)

// BytesPerPixel is the stride of one sample in a pixel buffer: red, green,
// blue and alpha, in that order. Alpha is never read.
const BytesPerPixel = 4

// defaultBufferCapacity fits a 200x100 frame plus one newline per row.
const defaultBufferCapacity = 200*100 + 100

// Processor converts RGBA frames to text art. It owns a Config and an output
// buffer that is cleared and refilled on every call, so steady-state
// conversion does not allocate beyond the returned string.
//
// A Processor must not be used from more than one goroutine at a time.
// Hosts that convert concurrently should keep one Processor per worker.
type Processor struct {
	Config

	buf []byte
}

// ProcessorOption is a functional option for configuring a Processor.
type ProcessorOption func(*Processor)

// NewProcessor creates a Processor with the default configuration, then
// applies opts in order.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		Config: DefaultConfig(),
		buf:    make([]byte, 0, defaultBufferCapacity),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithBrightness sets the initial brightness (clamped).
func WithBrightness(value float32) ProcessorOption {
	return func(p *Processor) {
		p.SetBrightness(value)
	}
}

// WithContrast sets the initial contrast (clamped).
func WithContrast(value float32) ProcessorOption {
	return func(p *Processor) {
		p.SetContrast(value)
	}
}

// WithDetailedRamp selects the 70 character ramp (true) or the 10 character
// ramp (false).
func WithDetailedRamp(v bool) ProcessorOption {
	return func(p *Processor) {
		p.SetUseDetailedRamp(v)
	}
}

// WithInvert enables brightness inversion.
func WithInvert(v bool) ProcessorOption {
	return func(p *Processor) {
		p.SetInvert(v)
	}
}

// WithBufferCapacity preallocates the output buffer for frames of about
// cols x rows characters.
func WithBufferCapacity(cols, rows int) ProcessorOption {
	return func(p *Processor) {
		if n := cols*rows + rows; n > cap(p.buf) {
			p.buf = make([]byte, 0, n)
		}
	}
}

// ProcessFrame converts one frame and returns a copy of the rendered text:
// outHeight rows of outWidth characters, each row terminated by '\n'.
// See TransformFrame for the sampling rules.
func (p *Processor) ProcessFrame(pixels []byte, srcWidth, srcHeight, outWidth, outHeight int) string {
	p.buf = TransformFrame(&p.Config, pixels, srcWidth, srcHeight, outWidth, outHeight, p.buf)
	return string(p.buf)
}

// WriteFrame converts one frame like ProcessFrame and writes the text to w
// without making a string copy.
func (p *Processor) WriteFrame(w io.Writer, pixels []byte, srcWidth, srcHeight, outWidth, outHeight int) (int, error) {
	p.buf = TransformFrame(&p.Config, pixels, srcWidth, srcHeight, outWidth, outHeight, p.buf)
	return w.Write(p.buf)
}

// TransformFrame clears output and fills it with the text art for one frame,
// returning the (possibly grown) slice.
//
// Each output cell samples exactly one source pixel by truncating the scaled
// coordinate, with the column flipped so the result is a mirror image:
//
//	srcX = floor((outWidth-1-x) * srcWidth/outWidth)
//	srcY = floor(y * srcHeight/outHeight)
//
// The scale factors are single precision, like the tone arithmetic.
// pixels is row-major RGBA. A cell whose sample would lie at or past the end
// of pixels (or that has no valid source coordinate) is rendered as a space;
// the rest of the frame is unaffected. Non-positive output dimensions give
// an empty result.
func TransformFrame(cfg *Config, pixels []byte, srcWidth, srcHeight, outWidth, outHeight int, output []byte) []byte {
	output = output[:0]
	if outWidth <= 0 || outHeight <= 0 {
		return output
	}

	scaleX := float32(srcWidth) / float32(outWidth)
	scaleY := float32(srcHeight) / float32(outHeight)
	bytesPerRow := srcWidth * BytesPerPixel

	for y := 0; y < outHeight; y++ {
		srcY := min(int(float32(y)*scaleY), srcHeight-1)

		for x := 0; x < outWidth; x++ {
			srcX := min(int(float32(outWidth-1-x)*scaleX), srcWidth-1)

			offset := srcY*bytesPerRow + srcX*BytesPerPixel
			if srcX < 0 || srcY < 0 || offset+2 >= len(pixels) {
				output = append(output, ' ')
				continue
			}

			level := cfg.level(pixels[offset], pixels[offset+1], pixels[offset+2])
			output = append(output, SelectCharacter(level, cfg.useDetailedRamp))
		}
		output = append(output, '\n')
	}

	return output
}
