package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/gestures"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

// Widget placement inside the terminal, in cells.
const (
	originCol = 2
	originRow = 2
)

// frameMsg asks the model to step the scheduler.
type frameMsg time.Time

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#51D367")).Bold(true)
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// model hosts one switch in a bubbletea program. Terminal mouse reports are
// translated to pointer events in widget pixels and every frame message
// steps the animation scheduler.
type model struct {
	button    *switchbutton.SwitchButton
	scheduler *animation.Scheduler
	canvas    *rendering.RasterCanvas
	grid      cellGrid
	frame     time.Duration
	log       *slog.Logger

	pressed bool
	changes int
	dirty   bool
	view    string
}

func newModel(style switchbutton.Style, grid cellGrid, height float64, sched *animation.Scheduler, frame time.Duration, logger *slog.Logger) (*model, error) {
	b, err := switchbutton.New(style, switchbutton.WithScheduler(sched), switchbutton.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	width := grid.cols * grid.ss
	m := &model{
		button:    b,
		scheduler: sched,
		canvas:    rendering.NewRasterCanvas(width, grid.rows*2*grid.ss),
		grid:      grid,
		frame:     frame,
		log:       logger,
		dirty:     true,
	}
	b.SetOnCheckedChanged(func(checked bool) {
		m.changes++
		m.log.Info("checked changed", "checked", checked)
	})
	b.SetInvalidator(func() { m.dirty = true })
	b.SetSize(float64(width), height)
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update keeps the program on m even when a handler panics; Recover
// reports the panic and the frame carries on.
func (m *model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	next = m
	defer errors.Recover("switchplay.Update")

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.scheduler.Step()
		return m, m.nextFrame()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "space", "enter":
		m.button.Toggle()
	case "c":
		m.button.SetChecked(!m.button.IsChecked())
	case "e":
		m.button.SetEffectEnabled(!m.button.Style().EffectEnabled)
		m.dirty = true
	case "s":
		m.button.SetShadowEffect(!m.button.Style().ShadowEnabled)
	case "d":
		m.button.SetEnabled(!m.button.Enabled())
	}
	return m, nil
}

// handleMouse forwards presses that start on the widget and every later
// report until release, wherever the pointer is.
func (m *model) handleMouse(msg tea.MouseMsg) {
	pos := m.toLocal(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.hit(pos) {
			return
		}
		m.pressed = true
		m.send(gestures.PointerPhaseDown, pos)
	case tea.MouseActionMotion:
		if m.pressed {
			m.send(gestures.PointerPhaseMove, pos)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.send(gestures.PointerPhaseUp, pos)
		}
	}
}

func (m *model) send(phase gestures.PointerPhase, pos rendering.Offset) {
	m.log.Debug("pointer", "phase", phase, "x", pos.X, "y", pos.Y)
	m.button.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: pos, Phase: phase})
}

// toLocal maps a cell to the widget pixel at its centre.
func (m *model) toLocal(col, row int) rendering.Offset {
	ss := float64(m.grid.ss)
	return rendering.Offset{
		X: (float64(col-originCol) + 0.5) * ss,
		Y: (float64(row-originRow) + 0.5) * 2 * ss,
	}
}

func (m *model) hit(pos rendering.Offset) bool {
	size := m.button.Geometry().Size
	return rendering.Rect{Right: size.Width, Bottom: size.Height}.Contains(pos)
}

func (m *model) View() string {
	if m.dirty {
		m.canvas.Clear(rendering.ColorTransparent)
		m.button.Paint(m.canvas)
		m.view = m.grid.render(m.canvas.Image())
		m.dirty = false
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("switchplay"))
	b.WriteString("\n\n")
	pad := strings.Repeat(" ", originCol)
	for _, line := range strings.Split(m.view, "\n") {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.status())
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render("click or drag the switch · space toggle · c set · e effect · s shadow · d enable · q quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m *model) status() string {
	value := offStyle.Render("off")
	if m.button.IsChecked() {
		value = onStyle.Render("on")
	}
	s := m.button.Style()
	return fmt.Sprintf("%s  phase=%s  changes=%d  enabled=%t  effect=%t  shadow=%t",
		value, m.button.Phase(), m.changes, m.button.Enabled(), s.EffectEnabled, s.ShadowEnabled)
}
