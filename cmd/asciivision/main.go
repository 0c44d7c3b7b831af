package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/wbrown/asciivision"
	"github.com/wbrown/asciivision/capture"
	"github.com/wbrown/asciivision/capture/opencv"
	"github.com/wbrown/asciivision/imageutil"
)

// options collects the command line settings shared by all modes.
type options struct {
	input      string
	raw        string
	camera     string
	width      int
	height     int
	scale      float64
	brightness float64
	contrast   float64
	invert     bool
	simple     bool
	smooth     bool
	filterName string
	filter     imageutil.Interpolation
	output     string
	font       string
	fontSize   float64
	fontScale  int
	live       bool
	fps        int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("asciivision: ")

	var opts options
	flag.StringVar(&opts.input, "input", "",
		"Path to an input image (PNG, JPEG, GIF, TIFF, BMP, WebP)")
	flag.StringVar(&opts.raw, "raw", "",
		"Read raw RGBA frames of size WxH from stdin")
	flag.StringVar(&opts.camera, "camera", "",
		"Capture device index (e.g. 0), video file or stream URL")
	flag.IntVar(&opts.width, "width", 80,
		"Output width in characters")
	flag.IntVar(&opts.height, "height", 0,
		"Output height in characters (0 keeps the source aspect ratio)")
	flag.Float64Var(&opts.scale, "scale", 2.0,
		"Height to width ratio of a character cell")
	flag.Float64Var(&opts.brightness, "b", asciivision.DefaultBrightness,
		"Brightness (-1.0 to 1.0)")
	flag.Float64Var(&opts.contrast, "c", asciivision.DefaultContrast,
		"Contrast (0.1 to 3.0)")
	flag.BoolVar(&opts.invert, "i", false,
		"Invert output")
	flag.BoolVar(&opts.simple, "s", false,
		"Simple ramp (10 characters instead of 70)")
	flag.BoolVar(&opts.smooth, "smooth", false,
		"Average each cell's source area instead of sampling one pixel")
	flag.StringVar(&opts.filterName, "filter", "area",
		"Filter for -smooth: area, linear or nearest")
	flag.StringVar(&opts.output, "output", "",
		"Write to this file instead of stdout; a .png, .jpg or .gif suffix renders glyphs")
	flag.StringVar(&opts.font, "font", "",
		"TrueType font for image output (default: built-in 7x13 bitmap font)")
	flag.Float64Var(&opts.fontSize, "fontsize", asciivision.DefaultFontSize,
		"Font size in points for -font")
	flag.IntVar(&opts.fontScale, "fontscale", 1,
		"Pixel scaling factor for image output")
	flag.BoolVar(&opts.live, "live", false,
		"Interactive terminal view of -camera or -input")
	flag.IntVar(&opts.fps, "fps", 15,
		"Frames per second in live mode")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.width <= 0 {
		return fmt.Errorf("invalid width %d", opts.width)
	}
	if opts.filterName != "" {
		filter, err := imageutil.ParseInterpolation(opts.filterName)
		if err != nil {
			return err
		}
		opts.filter = filter
	}

	p := asciivision.NewProcessor(
		asciivision.WithBrightness(float32(opts.brightness)),
		asciivision.WithContrast(float32(opts.contrast)),
		asciivision.WithDetailedRamp(!opts.simple),
		asciivision.WithInvert(opts.invert),
		asciivision.WithBufferCapacity(opts.width, max(opts.height, asciivision.DefaultRows)),
	)

	switch {
	case opts.raw != "":
		w, h, err := capture.ParseSize(opts.raw)
		if err != nil {
			return err
		}
		src, err := capture.NewRaw(os.Stdin, w, h)
		if err != nil {
			return err
		}
		return withOutput(opts.output, func(out io.Writer) error {
			return convertStream(ctx, src, out, p, opts)
		})

	case opts.live:
		src, err := openSource(opts)
		if err != nil {
			return err
		}
		defer src.Close()
		return runLive(ctx, src, p, opts)

	case opts.input != "" || opts.camera != "":
		src, err := openSource(opts)
		if err != nil {
			return err
		}
		defer src.Close()
		return snapshot(ctx, src, p, opts)
	}

	flag.Usage()
	return errors.New("one of -input, -camera or -raw is required")
}

// openSource opens the camera when -camera is set, else the -input image.
func openSource(opts options) (capture.Source, error) {
	if opts.camera != "" {
		cam, err := opencv.OpenCamera(opts.camera, 0, 0)
		if err != nil {
			return nil, err
		}
		return cam, nil
	}
	if opts.input == "" {
		return nil, errors.New("live mode needs -camera or -input")
	}
	return capture.OpenStill(opts.input)
}

// outputSize picks the text grid for a frame of the given size.
func outputSize(opts options, cols, srcW, srcH int) (int, int) {
	if opts.height > 0 {
		return cols, opts.height
	}
	return asciivision.OutputSize(srcW, srcH, cols, opts.scale)
}

// render converts one frame, shrinking it with the -filter scaler first
// when smoothing.
func render(p *asciivision.Processor, frame capture.Frame, cols, rows int, opts options) string {
	if opts.smooth && len(frame.Pix) >= frame.Width*frame.Height*asciivision.BytesPerPixel {
		img := imageutil.Prefilter(
			imageutil.RGBAImageFromPixels(frame.Pix, frame.Width, frame.Height), cols, rows, opts.filter)
		return p.ProcessFrame(img.Pixels(), img.Width(), img.Height(), cols, rows)
	}
	return p.ProcessFrame(frame.Pix, frame.Width, frame.Height, cols, rows)
}

// snapshot converts a single frame to text or, for image output, glyphs.
func snapshot(ctx context.Context, src capture.Source, p *asciivision.Processor, opts options) error {
	frame, err := src.Next(ctx)
	if err != nil {
		return fmt.Errorf("failed to read frame: %w", err)
	}
	cols, rows := outputSize(opts, opts.width, frame.Width, frame.Height)
	text := render(p, frame, cols, rows, opts)

	if imageutil.IsImagePath(opts.output) {
		gr, err := glyphRenderer(opts)
		if err != nil {
			return err
		}
		if err := gr.Save(text, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Image output written to %s (%dx%d, font %s)\n",
			opts.output, cols, rows, gr.Name())
		return nil
	}

	return withOutput(opts.output, func(out io.Writer) error {
		_, err := io.WriteString(out, text)
		return err
	})
}

func glyphRenderer(opts options) (*asciivision.GlyphRenderer, error) {
	gr := asciivision.NewGlyphRenderer(nil)
	if opts.font != "" {
		var err error
		if gr, err = asciivision.LoadTTF(opts.font, opts.fontSize); err != nil {
			return nil, err
		}
	}
	gr.Scale = max(opts.fontScale, 1)
	return gr, nil
}

// convertStream converts every frame of src, separating frames with a form
// feed. A short final frame is rendered zero padded after a warning.
func convertStream(ctx context.Context, src capture.Source, out io.Writer, p *asciivision.Processor, opts options) error {
	w := bufio.NewWriter(out)
	frames := 0

	for {
		frame, err := src.Next(ctx)
		if errors.Is(err, capture.ErrClosed) {
			break
		}
		short := errors.Is(err, capture.ErrShortFrame)
		if err != nil && !short {
			return err
		}
		if short {
			log.Printf("warning: %v", err)
		}

		if frames > 0 {
			w.WriteByte('\f')
		}
		cols, rows := outputSize(opts, opts.width, frame.Width, frame.Height)
		if _, err := io.WriteString(w, render(p, frame, cols, rows, opts)); err != nil {
			return err
		}
		frames++
	}

	if frames == 0 {
		return errors.New("no frame data on input")
	}
	return w.Flush()
}

// withOutput runs fn with stdout or the named file.
func withOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Output written to %s\n", path)
	return nil
}
