// Command switchplay runs an interactive switch in the terminal.
//
// The switch is rasterized in software and drawn with half-block cells, so
// the terminal needs true-colour and mouse reporting. Click to toggle, or
// press and hold to pick the knob up and drag it.
//
// Logs never go to the terminal while the program runs; pass --log-file to
// keep them.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"

	"github.com/go-drift/switchbutton/internal/logging"
	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/theme"
)

type options struct {
	ThemeDir    string        `long:"theme-dir" default:"." description:"Directory searched for switchbutton.yaml"`
	ThemeFile   string        `long:"theme" description:"Theme file to load instead of --theme-dir"`
	Shape       string        `long:"shape" choice:"circle" choice:"square" choice:"line" description:"Override the theme shape"`
	Cols        int           `long:"cols" default:"40" description:"Switch width in terminal columns"`
	Supersample int           `long:"supersample" default:"4" description:"Pixels sampled per cell half, per axis"`
	Backdrop    string        `long:"backdrop" default:"#1E1E1E" description:"Colour behind the switch"`
	Frame       time.Duration `long:"frame" default:"16ms" description:"Frame interval"`
	LogLevel    string        `long:"log-level" env:"SWITCH_LOG_LEVEL" default:"info" description:"debug, info, warn or error"`
	LogFile     string        `long:"log-file" env:"SWITCH_LOG_FILE" description:"Write a rotated JSON log here"`
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

	if err := play(opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func play(opts options) error {
	logger, err := logging.New(logging.Options{
		Level:   opts.LogLevel,
		File:    opts.LogFile,
		Verbose: opts.Verbose,
	}, nil)
	if err != nil {
		return err
	}
	defer logger.Close()

	m, err := setup(opts, animation.NewScheduler(nil), logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return err
	}
	return nil
}

// setup loads the theme and sizes the switch so its width fills cols cells.
func setup(opts options, sched *animation.Scheduler, logger *logging.Logger) (*model, error) {
	var th theme.SwitchButtonThemeData
	var err error
	if opts.ThemeFile != "" {
		th, err = theme.LoadSwitchButtonThemeFile(opts.ThemeFile)
	} else {
		th, err = theme.LoadSwitchButtonTheme(opts.ThemeDir)
	}
	if err != nil {
		return nil, err
	}
	if opts.Shape != "" {
		th.Shape = opts.Shape
	}
	if opts.Cols <= 0 || opts.Supersample <= 0 || opts.Frame <= 0 {
		return nil, fmt.Errorf("cols, supersample and frame must be positive")
	}
	if th.Width <= 0 || th.Height <= 0 {
		return nil, fmt.Errorf("theme size %vx%v dp is empty", th.Width, th.Height)
	}
	backdrop, err := rendering.ParseColor(opts.Backdrop)
	if err != nil {
		return nil, fmt.Errorf("invalid backdrop: %w", err)
	}

	widthPx := float64(opts.Cols * opts.Supersample)
	density := widthPx / th.Width
	style, err := th.Resolve(density)
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	heightPx := th.Height * density
	grid := cellGrid{
		cols:     opts.Cols,
		rows:     int(math.Ceil(heightPx / float64(2*opts.Supersample))),
		ss:       opts.Supersample,
		backdrop: backdrop,
	}
	logger.Info("starting", "shape", style.Shape, "density", density, "cols", grid.cols, "rows", grid.rows)
	return newModel(style, grid, heightPx, sched, opts.Frame, logger.Logger)
}

var _ tea.Model = (*model)(nil)
