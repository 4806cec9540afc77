// Command switchrender replays a scripted gesture against a switch and
// writes every frame as a PNG.
//
// Usage:
//
//	switchrender --theme-dir . --script drag --fps 30 -o frames
//
// The theme comes from switchbutton.yaml in --theme-dir (defaults when
// absent) or from --theme. A script is a preset name or a comma-separated
// list of "phase x time" steps, where x is a fraction of the widget width:
//
//	switchrender --script "down 0.1 0ms, move 0.8 450ms, up 0.8 500ms"
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/go-drift/switchbutton/internal/logging"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/theme"
)

type options struct {
	ThemeDir    string        `long:"theme-dir" default:"." description:"Directory searched for switchbutton.yaml"`
	ThemeFile   string        `long:"theme" description:"Theme file to load instead of --theme-dir"`
	Density     float64       `long:"density" default:"0" description:"Pixels per dp (0 uses the theme density)"`
	Width       int           `long:"width" description:"Widget width in pixels (default from theme)"`
	Height      int           `long:"height" description:"Widget height in pixels (default from theme)"`
	Checked     bool          `long:"checked" description:"Start checked"`
	Script      string        `long:"script" default:"tap" description:"Preset (tap, drag, drag-back, cancel, hold, none) or steps like \"down 0.1 0ms, up 0.1 50ms\""`
	FPS         int           `long:"fps" default:"60" description:"Frames per second"`
	Tail        time.Duration `long:"tail" default:"100ms" description:"Idle time rendered after the switch settles"`
	MaxDuration time.Duration `long:"max-duration" default:"10s" description:"Give up if the switch is still animating after this"`
	Out         string        `short:"o" long:"out" default:"frames" description:"Output directory"`
	Prefix      string        `long:"prefix" default:"frame" description:"Frame file name prefix"`
	Background  string        `long:"background" default:"#00000000" description:"Canvas clear colour"`
	LogLevel    string        `long:"log-level" env:"SWITCH_LOG_LEVEL" default:"info" description:"debug, info, warn or error"`
	LogFormat   string        `long:"log-format" env:"SWITCH_LOG_FORMAT" default:"text" choice:"text" choice:"json" description:"Console log format"`
	LogFile     string        `long:"log-file" env:"SWITCH_LOG_FILE" description:"Also write a rotated JSON log here"`
	Verbose     bool          `short:"v" long:"verbose" description:"Include stack traces in reported errors"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := run(opts, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(opts options, stderr io.Writer) error {
	logger, err := logging.New(logging.Options{
		Level:   opts.LogLevel,
		Format:  opts.LogFormat,
		File:    opts.LogFile,
		Verbose: opts.Verbose,
	}, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	th, err := loadTheme(opts)
	if err != nil {
		return err
	}
	if opts.Checked {
		th.Checked = true
	}
	style, err := th.Resolve(opts.Density)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	size := th.Size(opts.Density)
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = int(math.Round(size.Width))
	}
	if height <= 0 {
		height = int(math.Round(size.Height))
	}

	steps, err := parseScript(opts.Script)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}
	bg, err := rendering.ParseColor(opts.Background)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if opts.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}

	r, err := newRenderer(style, width, height, time.Second/time.Duration(opts.FPS), bg, logger.Logger)
	if err != nil {
		return err
	}
	sink, err := pngSink(opts.Out, opts.Prefix)
	if err != nil {
		return err
	}

	logger.Info("rendering", "shape", style.Shape, "width", width, "height", height, "steps", len(steps), "out", opts.Out)
	n, err := r.run(steps, opts.Tail, opts.MaxDuration, sink)
	if err != nil {
		return err
	}
	logger.Info("done", "frames", n, "checked", r.button.IsChecked())
	return nil
}

func loadTheme(opts options) (theme.SwitchButtonThemeData, error) {
	if opts.ThemeFile != "" {
		return theme.LoadSwitchButtonThemeFile(opts.ThemeFile)
	}
	return theme.LoadSwitchButtonTheme(opts.ThemeDir)
}
