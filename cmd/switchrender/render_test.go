package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	flags "github.com/jessevdk/go-flags"

	drifterrors "github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/gestures"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type capture struct {
	frames []*image.RGBA
	times  []time.Duration
}

func (c *capture) sink(_ int, at time.Duration, img *image.RGBA) error {
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	c.frames = append(c.frames, cp)
	c.times = append(c.times, at)
	return nil
}

func TestRendererTap(t *testing.T) {
	r, err := newRenderer(switchbutton.DefaultStyle(1), 200, 80, 20*time.Millisecond, rendering.ColorTransparent, discard)
	if err != nil {
		t.Fatal(err)
	}
	steps, _ := parseScript("tap")
	var c capture
	n, err := r.run(steps, 100*time.Millisecond, 5*time.Second, c.sink)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(c.frames) {
		t.Errorf("run returned %d frames, sink saw %d", n, len(c.frames))
	}
	if !r.button.IsChecked() || r.button.Phase() != switchbutton.PhaseIdle {
		t.Errorf("checked=%v phase=%v after tap", r.button.IsChecked(), r.button.Phase())
	}
	// Switching runs 300ms after the 50ms release, then 100ms of tail.
	if last := c.times[len(c.times)-1]; last < 450*time.Millisecond || last > 500*time.Millisecond {
		t.Errorf("last frame at %v, want within [450ms, 500ms]", last)
	}

	g := r.button.Geometry()
	y := int(g.Center.Y)
	first := c.frames[0].RGBAAt(int(g.KnobMaxX), y)
	final := c.frames[len(c.frames)-1].RGBAAt(int(g.KnobMaxX), y)
	if first == final {
		t.Errorf("pixel at the checked knob position unchanged: %v", first)
	}
}

func TestRendererTimesOut(t *testing.T) {
	r, err := newRenderer(switchbutton.DefaultStyle(1), 200, 80, 20*time.Millisecond, rendering.ColorTransparent, discard)
	if err != nil {
		t.Fatal(err)
	}
	steps, _ := parseScript("tap")
	var c capture
	if _, err := r.run(steps, 0, 100*time.Millisecond, c.sink); err == nil {
		t.Error("expected timeout error")
	}
}

func TestRendererPendingDragTimerFiresOnTime(t *testing.T) {
	r, err := newRenderer(switchbutton.DefaultStyle(1), 200, 80, 30*time.Millisecond, rendering.ColorTransparent, discard)
	if err != nil {
		t.Fatal(err)
	}
	r.deliver(step{Phase: gestures.PointerPhaseDown, X: 0.1, At: 0})
	r.advanceTo(100 * time.Millisecond)
	if r.button.Phase() != switchbutton.PhasePendingDrag {
		t.Errorf("Phase = %v at 100ms, want pending-drag", r.button.Phase())
	}
}

func TestRunWritesPNGFrames(t *testing.T) {
	out := t.TempDir()
	var opts options
	_, err := flags.ParseArgs(&opts, []string{
		"--theme-dir", t.TempDir(),
		"--script", "drag",
		"--fps", "30",
		"--density", "2",
		"-o", out,
	})
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	if err := run(opts, &logs); err != nil {
		t.Fatalf("run: %v\n%s", err, logs.String())
	}

	matches, err := filepath.Glob(filepath.Join(out, "frame-*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) < 10 {
		t.Fatalf("wrote %d frames, want at least 10", len(matches))
	}
	f, err := os.Open(filepath.Join(out, "frame-0000.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 116 || b.Dy() != 72 {
		t.Errorf("frame size = %dx%d, want 116x72", b.Dx(), b.Dy())
	}
	if !bytes.Contains(logs.Bytes(), []byte("checked=true")) {
		t.Errorf("log does not report the committed drag:\n%s", logs.String())
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	base := options{ThemeDir: t.TempDir(), Script: "tap", FPS: 60, Out: t.TempDir(), Prefix: "f", Background: "#000000", MaxDuration: time.Second}
	tests := []struct {
		name   string
		mutate func(*options)
	}{
		{"script", func(o *options) { o.Script = "wiggle" }},
		{"background", func(o *options) { o.Background = "black" }},
		{"fps", func(o *options) { o.FPS = 0 }},
		{"theme file", func(o *options) { o.ThemeFile = filepath.Join(t.TempDir(), "missing.yaml") }},
		{"log level", func(o *options) { o.LogLevel = "shout" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.mutate(&o)
			if err := run(o, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPNGSinkReportsRenderErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := pngSink(dir, "frame")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err = sink(0, 0, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	var de *drifterrors.Error
	if !errors.As(err, &de) {
		t.Fatalf("sink error = %v, want *errors.Error", err)
	}
	if de.Kind != drifterrors.KindRender || de.Op != "switchrender.frame" {
		t.Errorf("got %s, want a render error from switchrender.frame", de)
	}
}
