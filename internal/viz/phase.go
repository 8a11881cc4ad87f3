package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lotkaviz/internal/config"
	"github.com/san-kum/lotkaviz/internal/session"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

const (
	plotWidth  = 56
	plotHeight = 22

	// The crosshair moves on an invisible selection grid covering the
	// full displayed range, so any point is clickable, not just points
	// on the trajectory.
	cursorGridN = 100

	framesPerReveal = 150
)

var paramOrder = []string{"alpha", "beta", "gamma", "delta"}

func paramStep(name string) float64 {
	switch name {
	case "alpha":
		return volterra.AlphaStep
	case "beta":
		return volterra.BetaStep
	case "gamma":
		return volterra.GammaStep
	case "delta":
		return volterra.DeltaStep
	}
	return 0
}

type TickMsg time.Time

// Model is the interactive phase-space view: a braille plot of the
// current trajectory with a movable click cursor, plus a parameter
// panel driving the simulation session.
type Model struct {
	sess    *session.Session
	display config.DisplayConfig

	frame  *session.Frame
	errMsg string

	plot    *PhasePlot
	cursorX float64
	cursorY float64

	playing bool
	reveal  int

	paramCursor   int
	width, height int
	showHelp      bool
}

func NewModel(cfg *config.Config) Model {
	sess := session.New(cfg.ToParams(), cfg.ToInitial(), cfg.ToGrid())

	m := Model{
		sess:    sess,
		display: cfg.Display,
		plot:    NewPhasePlot(plotWidth, plotHeight, cfg.Display.PreyMax, cfg.Display.PredatorMax),
		cursorX: cfg.Initial.Prey,
		cursorY: cfg.Initial.Predators,
		playing: true,
	}
	m.recompute(session.Input{})
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.paramCursor = (m.paramCursor + 1) % len(paramOrder)
		case "shift+tab":
			m.paramCursor = (m.paramCursor + len(paramOrder) - 1) % len(paramOrder)
		case "+", "=":
			m.adjustParam(1)
		case "-", "_":
			m.adjustParam(-1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "down", "j":
			m.moveCursor(0, -1)
		case "up", "k":
			m.moveCursor(0, 1)
		case "enter":
			m.recompute(session.Input{Click: &session.Click{X: m.cursorX, Y: m.cursorY}})
		case " ":
			m.playing = !m.playing
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "r":
			m.sess.Reset()
			m.recompute(session.Input{})
			m.cursorX, m.cursorY = m.sess.InitialCondition()[0], m.sess.InitialCondition()[1]
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.playing && m.frame != nil && m.reveal < len(m.frame.Trajectory) {
			m.reveal += m.revealStep()
			if m.reveal > len(m.frame.Trajectory) {
				m.reveal = len(m.frame.Trajectory)
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// recompute runs one session cycle. On failure the previous frame stays
// on screen and the error is shown in the panel.
func (m *Model) recompute(in session.Input) {
	frame, err := m.sess.Step(in)
	if err != nil {
		m.errMsg = err.Error()
		m.frame = m.sess.Last()
		return
	}
	m.errMsg = ""
	m.frame = frame
	m.reveal = 0
}

func (m *Model) adjustParam(dir int) {
	name := paramOrder[m.paramCursor]
	p := m.sess.Params()
	var v float64
	switch name {
	case "alpha":
		v = p.Alpha
	case "beta":
		v = p.Beta
	case "gamma":
		v = p.Gamma
	case "delta":
		v = p.Delta
	}
	v += float64(dir) * paramStep(name)

	in := session.Input{}
	switch name {
	case "alpha":
		in.Alpha = &v
	case "beta":
		in.Beta = &v
	case "gamma":
		in.Gamma = &v
	case "delta":
		in.Delta = &v
	}
	m.recompute(in)
}

func (m *Model) moveCursor(dx, dy int) {
	stepX := m.display.PreyMax / cursorGridN
	stepY := m.display.PredatorMax / cursorGridN
	m.cursorX = clampF(m.cursorX+float64(dx)*stepX, 0, m.display.PreyMax)
	m.cursorY = clampF(m.cursorY+float64(dy)*stepY, 0, m.display.PredatorMax)
}

func (m *Model) scrub(dir int) {
	if m.frame == nil {
		return
	}
	m.playing = false
	m.reveal += dir * m.revealStep()
	if m.reveal < 1 {
		m.reveal = 1
	}
	if m.reveal > len(m.frame.Trajectory) {
		m.reveal = len(m.frame.Trajectory)
	}
}

func (m *Model) revealStep() int {
	step := len(m.frame.Trajectory) / framesPerReveal
	if step < 1 {
		step = 1
	}
	return step
}

// draw renders the revealed prefix of the trajectory, the initial
// condition marker, and the click cursor. The reveal head is a
// presentation detail; the trajectory data itself is never truncated.
func (m *Model) draw() {
	m.plot.Clear()
	if m.frame == nil {
		m.plot.Crosshair(m.cursorX, m.cursorY)
		return
	}

	traj := m.frame.Trajectory
	head := m.reveal
	if head > len(traj) {
		head = len(traj)
	}
	for i := 1; i < head; i++ {
		m.plot.Line(traj[i-1][0], traj[i-1][1], traj[i][0], traj[i][1])
	}

	ic := m.frame.InitialCondition
	m.plot.Marker(ic[0], ic[1])
	m.plot.Crosshair(m.cursorX, m.cursorY)
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.plot.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("LOTKA-VOLTERRA") + "\n")

	status := "ANIMATING"
	if m.frame != nil && m.reveal >= len(m.frame.Trajectory) {
		status = "COMPLETE"
	}
	if !m.playing {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	p := m.sess.Params()
	values := []float64{p.Alpha, p.Beta, p.Gamma, p.Delta}
	bounds := [][2]float64{
		{volterra.AlphaMin, volterra.AlphaMax},
		{volterra.BetaMin, volterra.BetaMax},
		{volterra.GammaMin, volterra.GammaMax},
		{volterra.DeltaMin, volterra.DeltaMax},
	}
	for i, name := range paramOrder {
		line := fmt.Sprintf("%-6s %s %6.3f", name, sliderBar(values[i], bounds[i][0], bounds[i][1]), values[i])
		if i == m.paramCursor {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	ic := m.sess.InitialCondition()
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Initial") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f)", ic[0], ic[1])) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f)", m.cursorX, m.cursorY)) + "\n")
	if m.frame != nil && m.reveal > 0 {
		idx := m.reveal - 1
		if idx >= len(m.frame.Times) {
			idx = len(m.frame.Times) - 1
		}
		s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.frame.Times[idx])) + "\n")
	}

	if m.errMsg != "" {
		s.WriteString("\n" + errorStyle.Render("integration failed") + "\n")
		s.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}

	if m.frame != nil && len(m.frame.Trajectory) > 1 {
		prey := make([]float64, len(m.frame.Trajectory))
		predators := make([]float64, len(m.frame.Trajectory))
		for i, st := range m.frame.Trajectory {
			prey[i] = st[0]
			predators[i] = st[1]
		}
		chart := asciigraph.PlotMany([][]float64{prey, predators},
			asciigraph.Height(5),
			asciigraph.Width(32),
			asciigraph.Caption("populations"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nhjkl:Cursor ⏎:Set IC  SP:Play\nTab:Param +/-:Adjust [ ]:Scrub\nR:Reset ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  Arrows/HJKL - Move the click cursor     ║
║  Enter       - Re-seed from the cursor   ║
║  Tab         - Select parameter          ║
║  +/-         - Adjust parameter by step  ║
║  Space       - Play/pause animation      ║
║  [ ]         - Scrub animation           ║
║  R           - Reset to defaults         ║
║  ?           - Toggle this help          ║
║  Q           - Quit                      ║
╚══════════════════════════════════════════╝`

func sliderBar(v, lo, hi float64) string {
	const width = 10
	ratio := (v - lo) / (hi - lo)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the interactive phase-space TUI.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
