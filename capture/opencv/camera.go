// Package opencv reads camera and video frames through gocv.
package opencv

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/wbrown/asciivision/capture"
)

var _ capture.Source = (*Camera)(nil)

// Camera reads frames from an OpenCV capture device: a camera index such
// as "0", a video file, or a stream URL.
type Camera struct {
	device string
	vc     *gocv.VideoCapture
	bgr    gocv.Mat
	rgba   gocv.Mat
}

// OpenCamera opens device. Non-zero width and height are requested from the
// driver; the camera may pick a different size.
func OpenCamera(device string, width, height int) (*Camera, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %q: %w", device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("capture device %q is not available", device)
	}

	if width > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	}
	if height > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}

	return &Camera{
		device: device,
		vc:     vc,
		bgr:    gocv.NewMat(),
		rgba:   gocv.NewMat(),
	}, nil
}

// Next grabs one frame and converts it from OpenCV's BGR order to RGBA.
func (c *Camera) Next(ctx context.Context) (capture.Frame, error) {
	if err := ctx.Err(); err != nil {
		return capture.Frame{}, err
	}
	if ok := c.vc.Read(&c.bgr); !ok || c.bgr.Empty() {
		return capture.Frame{}, capture.ErrClosed
	}

	gocv.CvtColor(c.bgr, &c.rgba, gocv.ColorBGRToRGBA)

	return capture.Frame{
		Pix:    c.rgba.ToBytes(),
		Width:  c.rgba.Cols(),
		Height: c.rgba.Rows(),
	}, nil
}

// Close releases the device and the conversion buffers.
func (c *Camera) Close() error {
	err := c.vc.Close()
	c.bgr.Close()
	c.rgba.Close()
	if err != nil {
		return fmt.Errorf("failed to close capture device %q: %w", c.device, err)
	}
	return nil
}
