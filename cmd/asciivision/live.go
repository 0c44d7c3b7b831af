package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/wbrown/asciivision"
	"github.com/wbrown/asciivision/capture"
)

// viewer shows converted frames on a terminal screen with a status line
// on the bottom row. It owns the processor; all calls happen on the
// goroutine running run.
type viewer struct {
	screen   tcell.Screen
	src      capture.Source
	proc     *asciivision.Processor
	controls asciivision.Controls
	opts     options

	frame       capture.Frame
	style       tcell.Style
	statusStyle tcell.Style
}

func newViewer(screen tcell.Screen, src capture.Source, p *asciivision.Processor, opts options) *viewer {
	cols := min(max(opts.width, asciivision.MinColumns), asciivision.MaxColumns)
	return &viewer{
		screen:      screen,
		src:         src,
		proc:        p,
		controls:    asciivision.Controls{Processor: p, Columns: cols},
		opts:        opts,
		style:       tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

func runLive(ctx context.Context, src capture.Source, p *asciivision.Processor, opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return newViewer(screen, src, p, opts).run(ctx)
}

func (v *viewer) run(ctx context.Context) error {
	fps := max(v.opts.fps, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !v.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			err := v.next(ctx)
			if errors.Is(err, capture.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// next reads a frame from the source and draws it.
func (v *viewer) next(ctx context.Context) error {
	frame, err := v.src.Next(ctx)
	if err != nil && !errors.Is(err, capture.ErrShortFrame) {
		return err
	}
	v.frame = frame
	v.draw()
	return nil
}

// handleEvent applies a terminal event and reports whether to keep running.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch v.controls.HandleKey(ev.Rune()) {
			case asciivision.ActionQuit:
				return false
			case asciivision.ActionRedraw, asciivision.ActionResize:
				v.draw()
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return true
}

// grid returns the text size for the current frame, leaving the bottom
// screen row for the status line.
func (v *viewer) grid() (int, int) {
	cols, rows := outputSize(v.opts, v.controls.Columns, v.frame.Width, v.frame.Height)
	_, height := v.screen.Size()
	return cols, min(rows, max(height-1, 0))
}

func (v *viewer) draw() {
	v.screen.Clear()

	cols, rows := v.grid()
	text := ""
	if v.frame.Width > 0 && v.frame.Height > 0 {
		text = render(v.proc, v.frame, cols, rows, v.opts)
	}

	x, y := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			x, y = 0, y+1
			continue
		}
		v.screen.SetContent(x, y, rune(text[i]), nil, v.style)
		x++
	}

	_, height := v.screen.Size()
	if height > 0 {
		status := v.proc.Status(cols, rows)
		for i, r := range status {
			v.screen.SetContent(i, height-1, r, nil, v.statusStyle)
		}
	}
	v.screen.Show()
}
