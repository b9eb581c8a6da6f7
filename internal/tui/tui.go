// Package tui is the interactive surface explorer. A single bubbletea
// model owns the render parameters; every recognized input re-runs the
// whole evaluation pipeline and redraws the frame.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/surfviz/internal/anim"
	"github.com/san-kum/surfviz/internal/grid"
	"github.com/san-kum/surfviz/internal/pipeline"
	"github.com/san-kum/surfviz/internal/viz"
)

const (
	canvasCols = 60
	canvasRows = 24

	historyCapacity = 120
)

// TickMsg drives the animation clock.
type TickMsg time.Time

// Control rows in panel order.
const (
	ctrlZoom = iota
	ctrlRotX
	ctrlRotY
	ctrlRotZ
	ctrlGrid
	ctrlFormula
	ctrlCount
)

var ctrlNames = [ctrlCount]string{"zoom", "rot x", "rot y", "rot z", "grid", "formula"}

// Model holds the render parameters, animation clock, and draw state.
type Model struct {
	params   pipeline.Params
	clock    *anim.Clock
	canvas   *viz.Canvas
	renderer *viz.Renderer

	frame   *pipeline.Frame
	formErr string

	cursor  int
	editing bool
	editBuf string

	rangeHistory []float64
	width        int
}

// NewModel builds the startup model from p and renders the first frame.
func NewModel(p pipeline.Params) Model {
	canvas := viz.NewCanvas(canvasCols, canvasRows)
	m := Model{
		params:   p,
		clock:    anim.NewClock(),
		canvas:   canvas,
		renderer: viz.NewRenderer(canvas),
	}
	m.params.TimeFactor = m.clock.Time()
	m.rerender()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func tick() tea.Cmd {
	return tea.Tick(anim.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events; every state change goes through a full
// pipeline run.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case TickMsg:
		if !m.clock.Running() {
			return m, nil
		}
		m.params.TimeFactor = m.clock.Tick()
		m.rerender()
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < ctrlCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		if m.cursor == ctrlFormula {
			m.editing, m.editBuf = true, m.params.Formula
		}
	case "s":
		m.params.Toggles.ClickSurface()
		m.rerender()
	case "w":
		m.params.Toggles.ClickGrid()
		m.rerender()
	case " ":
		if m.clock.Running() {
			m.clock.Stop()
			return m, nil
		}
		m.clock.Start()
		return m, tick()
	case "r":
		m.clock.Reset()
		m.params = pipeline.DefaultParams()
		m.rangeHistory = m.rangeHistory[:0]
		m.rerender()
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.params.Formula = strings.TrimSpace(m.editBuf)
		m.editing, m.editBuf = false, ""
		m.rerender()
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.editBuf += string(msg.Runes)
		} else if msg.String() == " " {
			m.editBuf += " "
		}
	}
	return m
}

// adjust nudges the selected control by dir times its step.
func (m *Model) adjust(dir int) {
	switch m.cursor {
	case ctrlZoom:
		m.params.Camera.Zoom += 0.1 * float64(dir)
	case ctrlRotX:
		m.params.Camera.RotX += float64(dir)
	case ctrlRotY:
		m.params.Camera.RotY += float64(dir)
	case ctrlRotZ:
		m.params.Camera.RotZ += float64(dir)
	case ctrlGrid:
		n := m.params.GridSize + dir
		if n < grid.MinSize {
			n = grid.MinSize
		}
		if n > grid.MaxSize {
			n = grid.MaxSize
		}
		m.params.GridSize = n
	default:
		return
	}
	m.params.Camera = m.params.Camera.Clamp()
	m.rerender()
}

// rerender runs the pipeline with the current parameters. A failed run
// records the error and keeps the previous frame on screen.
func (m *Model) rerender() {
	frame, err := pipeline.Render(m.params)
	if err != nil {
		m.formErr = err.Error()
		return
	}
	m.formErr = ""
	m.frame = frame
	m.renderer.Render(frame.Scene, frame.Camera)

	lo, hi := frame.Field.MinMax()
	m.rangeHistory = append(m.rangeHistory, hi-lo)
	if len(m.rangeHistory) > historyCapacity {
		m.rangeHistory = m.rangeHistory[1:]
	}
}

// View renders the canvas next to the control panel.
func (m Model) View() string {
	canvasView := viz.CanvasStyle.Render(m.canvas.String())
	panelView := viz.PanelStyle.Render(m.panel())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
}

func (m Model) panel() string {
	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("SURFVIZ") + "\n")

	if m.clock.Running() {
		b.WriteString(viz.StatusRunning.Render(m.clock.State().String()))
	} else {
		b.WriteString(viz.StatusStopped.Render(m.clock.State().String()))
	}
	b.WriteString(viz.DimStyle.Render(fmt.Sprintf("  t=%.1f", m.params.TimeFactor)) + "\n\n")

	for i := 0; i < ctrlCount; i++ {
		b.WriteString(m.controlLine(i) + "\n")
	}

	if m.formErr != "" {
		b.WriteString("\n" + viz.ErrorStyle.Render("error: "+m.formErr) + "\n")
	}

	if m.frame != nil {
		lo, hi := m.frame.Field.MinMax()
		b.WriteString("\n" + viz.LabelStyle.Render("height") +
			viz.ValueStyle.Render(fmt.Sprintf("[%.2f, %.2f]", lo, hi)) + "\n")
	}
	if len(m.rangeHistory) > 1 {
		chart := asciigraph.Plot(m.rangeHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Range"))
		b.WriteString(viz.GraphStyle.Render(chart) + "\n")
	}

	b.WriteString(viz.HelpStyle.Render(
		"j/k select  h/l adjust  enter edit\n" +
			"s surface  w wireframe  SP start/stop\n" +
			"r reset  q quit"))
	return b.String()
}

func (m Model) controlLine(i int) string {
	var val string
	switch i {
	case ctrlZoom:
		val = fmt.Sprintf("%.1f", m.params.Camera.Zoom)
	case ctrlRotX:
		val = fmt.Sprintf("%.0f°", m.params.Camera.RotX)
	case ctrlRotY:
		val = fmt.Sprintf("%.0f°", m.params.Camera.RotY)
	case ctrlRotZ:
		val = fmt.Sprintf("%.0f°", m.params.Camera.RotZ)
	case ctrlGrid:
		val = fmt.Sprintf("%dx%d", m.params.GridSize, m.params.GridSize)
	case ctrlFormula:
		val = m.params.Formula
		if m.editing {
			val = m.editBuf + "_"
		}
	}
	line := fmt.Sprintf("%-8s %s", ctrlNames[i], val)
	if i == m.cursor {
		return viz.ActiveStyle.Render("> " + line)
	}
	return "  " + viz.LabelStyle.Render(line)
}

// Run starts the interactive program.
func Run(p pipeline.Params) error {
	_, err := tea.NewProgram(NewModel(p), tea.WithAltScreen()).Run()
	return err
}
