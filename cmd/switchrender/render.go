package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/gestures"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
	switchtest "github.com/go-drift/switchbutton/pkg/testing"
)

// frameSink receives every rendered frame. img is reused between frames.
type frameSink func(index int, at time.Duration, img *image.RGBA) error

// renderer replays a script against one switch on a fake clock and rasterizes
// a frame every frame interval.
type renderer struct {
	clock      *switchtest.FakeClock
	scheduler  *animation.Scheduler
	button     *switchbutton.SwitchButton
	canvas     *rendering.RasterCanvas
	size       rendering.Size
	frame      time.Duration
	background rendering.Color
	log        *slog.Logger
}

func newRenderer(style switchbutton.Style, width, height int, frame time.Duration, background rendering.Color, logger *slog.Logger) (*renderer, error) {
	if frame <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %v", frame)
	}
	clk := switchtest.NewFakeClock()
	sched := animation.NewScheduler(clk)
	b, err := switchbutton.New(style, switchbutton.WithScheduler(sched), switchbutton.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	r := &renderer{
		clock:      clk,
		scheduler:  sched,
		button:     b,
		canvas:     rendering.NewRasterCanvas(width, height),
		size:       rendering.Size{Width: float64(width), Height: float64(height)},
		frame:      frame,
		background: background,
		log:        logger,
	}
	b.SetOnCheckedChanged(func(checked bool) {
		r.log.Info("checked changed", "checked", checked, "at", r.clock.Elapsed())
	})
	b.SetSize(r.size.Width, r.size.Height)
	return r, nil
}

// run delivers steps at their offsets and renders frames until the script is
// exhausted and the switch has been idle for tail. It stops with an error
// once maxDuration is exceeded. Returns the number of frames rendered.
func (r *renderer) run(steps []step, tail, maxDuration time.Duration, sink frameSink) (int, error) {
	next := 0
	frames := 0
	settledAt := time.Duration(-1)
	for at := time.Duration(0); ; at += r.frame {
		for next < len(steps) && steps[next].At <= at {
			r.deliver(steps[next])
			next++
		}
		r.advanceTo(at)

		r.canvas.Clear(r.background)
		r.button.Paint(r.canvas)
		if err := sink(frames, at, r.canvas.Image()); err != nil {
			return frames, err
		}
		frames++
		r.log.Debug("frame", "n", frames-1, "at", at, "phase", r.button.Phase(), "knobX", r.button.ViewState().KnobX)

		if next == len(steps) && !r.scheduler.HasPendingWork() {
			if settledAt < 0 {
				settledAt = at
			}
			if at >= settledAt+tail {
				return frames, nil
			}
		} else {
			settledAt = -1
		}
		if at >= maxDuration {
			return frames, fmt.Errorf("switch still animating after %v", maxDuration)
		}
	}
}

func (r *renderer) deliver(s step) {
	r.advanceTo(s.At)
	ev := gestures.PointerEvent{
		PointerID: 1,
		Position:  rendering.Offset{X: s.X * r.size.Width, Y: r.size.Height / 2},
		Phase:     s.Phase,
		Timestamp: r.clock.At(s.At),
	}
	r.log.Debug("pointer", "phase", s.Phase, "x", ev.Position.X, "at", s.At)
	r.button.HandlePointer(ev)
}

// advanceTo moves the clock to at, stepping on every timer due time on the
// way so delayed callbacks fire at their exact deadline.
func (r *renderer) advanceTo(at time.Duration) {
	target := r.clock.At(at)
	for {
		due, ok := r.scheduler.NextTimer()
		if !ok || !due.Before(target) || !due.After(r.clock.Now()) {
			break
		}
		r.clock.Set(due)
		r.scheduler.Step()
	}
	if target.After(r.clock.Now()) {
		r.clock.Set(target)
	}
	r.scheduler.Step()
}

// pngSink writes frames as prefix-NNNN.png under dir. Write failures come
// back as KindRender errors.
func pngSink(dir, prefix string) (frameSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return func(index int, _ time.Duration, img *image.RGBA) error {
		path := filepath.Join(dir, fmt.Sprintf("%s-%04d.png", prefix, index))
		if err := writePNG(path, img); err != nil {
			return &errors.Error{Op: "switchrender.frame", Kind: errors.KindRender, Err: err, Timestamp: time.Now()}
		}
		return nil
	}, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
