package asciivision

import (
	"fmt"
	"math"
)

// Output width limits for size adjustment from the keyboard.
const (
	MinColumns  = 10
	MaxColumns  = 400
	ColumnStep  = 10
	ToneStep    = 0.1
	DefaultRows = 40
)

// Status returns a one line summary of the output size and tone settings,
// followed by the key help, for on-screen display.
func (p *Processor) Status(width, height int) string {
	return fmt.Sprintf(
		"[%dx%d] B:%.1f C:%.1f | b/B:bright c/C:contrast r:ramp i:inv +/-:size 0:reset",
		width, height, p.Brightness(), p.Contrast())
}

// OutputSize returns the number of rows that keeps the source aspect ratio
// at cols columns. scaleFactor is the height:width ratio of a terminal
// character cell (about 2). At least one row is returned.
func OutputSize(srcWidth, srcHeight, cols int, scaleFactor float64) (int, int) {
	if srcWidth <= 0 || srcHeight <= 0 || cols <= 0 {
		return max(cols, 0), 0
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	aspectRatio := float64(srcWidth) / float64(srcHeight)
	rows := int(math.Round(float64(cols) / aspectRatio / scaleFactor))
	return cols, max(rows, 1)
}

// Action is what a host should do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionResize
	ActionQuit
)

// Controls maps single key presses to configuration changes, using the key
// help shown by Status.
type Controls struct {
	Processor *Processor
	Columns   int
}

// HandleKey applies the change bound to key and reports what the host
// should do next.
func (c *Controls) HandleKey(key rune) Action {
	p := c.Processor

	switch key {
	case 'q', 'Q':
		return ActionQuit
	case 'b':
		p.SetBrightness(stepRound(p.Brightness() - ToneStep))
	case 'B':
		p.SetBrightness(stepRound(p.Brightness() + ToneStep))
	case 'c':
		p.SetContrast(stepRound(p.Contrast() - ToneStep))
	case 'C':
		p.SetContrast(stepRound(p.Contrast() + ToneStep))
	case 'r', 'R':
		p.ToggleRamp()
	case 'i', 'I':
		p.ToggleInvert()
	case '0':
		p.Reset()
	case '+', '=':
		return c.resize(ColumnStep)
	case '-', '_':
		return c.resize(-ColumnStep)
	default:
		return ActionNone
	}
	return ActionRedraw
}

func (c *Controls) resize(delta int) Action {
	cols := min(max(c.Columns+delta, MinColumns), MaxColumns)
	if cols == c.Columns {
		return ActionNone
	}
	c.Columns = cols
	return ActionResize
}

// stepRound snaps v to the single precision value nearest one decimal, so
// repeated steps do not drift.
func stepRound(v float32) float32 {
	return float32(math.Round(float64(v)*10) / 10)
}
