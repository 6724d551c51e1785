// Package tui runs the editor in a terminal with bubbletea. Terminal cells
// are mapped onto canvas units so the engine sees the same geometry it
// would in a pixel window.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qamap/internal/config"
	"qamap/internal/graph"
	"qamap/internal/measure"
	"qamap/internal/surface"
)

// ConfigMsg carries a reloaded configuration into the running program.
type ConfigMsg struct {
	Config config.Config
	Err    error
}

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c03030")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#308030"))
)

// Model is the bubbletea model wrapping one editor session.
type Model struct {
	cfg  config.Config
	keys KeyMap
	ctrl *graph.Controller

	cols, rows     int
	help           bool
	errorMessage   string
	successMessage string

	now   func() time.Time
	paste func() (string, error)
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides time.Now for key repeat and snapshot names.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithClipboard overrides the system clipboard reader used for paste.
func WithClipboard(read func() (string, error)) Option {
	return func(m *Model) { m.paste = read }
}

// starterPos is where the answer box every session opens with is placed.
var starterPos = graph.Point{X: 10, Y: 10}

// New returns a model whose canvas holds a single A box at starterPos.
func New(cfg config.Config, logger *log.Logger, opts ...Option) (Model, error) {
	m := Model{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		now:   time.Now,
		paste: readClipboard,
	}
	for _, opt := range opts {
		opt(&m)
	}

	var measurer graph.TextMeasurer = measure.Cells{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	if cfg.WrapMetrics == config.WrapFont {
		f, err := measure.NewFaceMeasurer()
		if err != nil {
			return Model{}, err
		}
		measurer = f
	}

	copts := []graph.Option{graph.WithClock(graph.Clock(m.now))}
	if logger != nil {
		copts = append(copts, graph.WithLogger(logger))
	}
	m.ctrl = graph.NewController(cfg.Metrics(), measurer, copts...)
	m.ctrl.Store().NewBox(graph.KindA, starterPos)
	return m, nil
}

// Controller exposes the engine behind the model.
func (m Model) Controller() *graph.Controller {
	return m.ctrl
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ctrl.Tick(m.now())

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.ctrl.Handle(graph.Resized{Size: m.canvasSize()})

	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(msg); ok {
			m.report(m.ctrl.Handle(ev))
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigMsg:
		if msg.Err != nil {
			m.errorMessage = fmt.Sprintf("config reload: %v", msg.Err)
			break
		}
		m.cfg.SnapshotDir = msg.Config.SnapshotDir
		m.cfg.SnapshotFontSize = msg.Config.SnapshotFontSize
		m.cfg.RepeatDelay = msg.Config.RepeatDelay
		m.ctrl.SetRepeatDelay(msg.Config.RepeatDelay)
		m.errorMessage = ""
		m.successMessage = "Config reloaded"
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Handle(graph.QuitRequested{})
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help = !m.help
		return m, nil
	case key.Matches(msg, m.keys.Paste):
		m.pasteClipboard()
		return m, nil
	case key.Matches(msg, m.keys.SnapshotPNG):
		m.snapshot("png", exportPNG)
		return m, nil
	case key.Matches(msg, m.keys.SnapshotSVG):
		m.snapshot("svg", exportSVG)
		return m, nil
	}

	if m.help {
		m.help = false
		return m, nil
	}
	for _, r := range keyRunes(msg) {
		m.typeRune(r)
	}
	return m, nil
}

// keyRunes maps a terminal key to the characters the engine understands.
// Keys with no character still reach the box as char 0.
func keyRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyEnter:
		return []rune{graph.LineBreak}
	case tea.KeyBackspace:
		return []rune{'\b'}
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return msg.Runes
		}
	}
	return []rune{0}
}

// typeRune sends a press and the release a terminal never reports.
func (m Model) typeRune(r rune) {
	m.ctrl.Handle(graph.KeyPressed{Char: r})
	m.ctrl.Handle(graph.KeyReleased{})
}

func (m *Model) pasteClipboard() {
	text, err := m.paste()
	if err != nil {
		m.errorMessage = fmt.Sprintf("paste: %v", err)
		return
	}
	text = cleanPaste(text)
	if text == "" {
		m.errorMessage = "Clipboard is empty"
		return
	}
	for _, r := range text {
		m.typeRune(r)
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Pasted %d characters", len([]rune(text)))
}

func (m *Model) snapshot(ext string, export func(*graph.Controller, config.Config, string) (string, error)) {
	path, err := export(m.ctrl, m.cfg, snapshotName(m.now(), ext))
	if err != nil {
		m.successMessage = ""
		m.errorMessage = err.Error()
		return
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported to %s", path)
}

// pointerEvent converts a terminal mouse event into an engine event at the
// center of the reported cell. Wheel events are dropped.
func (m Model) pointerEvent(msg tea.MouseMsg) (graph.Event, bool) {
	pos := m.cellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		return graph.PointerMoved{Pos: pos}, true
	case tea.MouseActionPress:
		b, ok := button(msg.Button)
		if !ok {
			return nil, false
		}
		return graph.PointerPressed{Button: b, Pos: pos}, true
	case tea.MouseActionRelease:
		b, ok := button(msg.Button)
		if !ok {
			// Legacy mouse encodings do not say which button was released.
			b = graph.ButtonPrimary
		}
		return graph.PointerReleased{Button: b, Pos: pos}, true
	}
	return nil, false
}

func button(b tea.MouseButton) (graph.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return graph.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return graph.ButtonMiddle, true
	case tea.MouseButtonRight:
		return graph.ButtonSecondary, true
	}
	return 0, false
}

func (m Model) cellCenter(col, row int) graph.Point {
	cw, ch := m.cfg.CellWidth, m.cfg.CellHeight
	return graph.Point{X: float64(col)*cw + cw/2, Y: float64(row)*ch + ch/2}
}

// canvasSize is the drawable area in canvas units; the last row holds the
// status line.
func (m Model) canvasSize() graph.Size {
	return graph.Size{
		W: float64(max(m.cols, 0)) * m.cfg.CellWidth,
		H: float64(max(m.rows-1, 0)) * m.cfg.CellHeight,
	}
}

func (m *Model) report(res graph.Result) {
	switch {
	case res.Deleted:
		m.successMessage = fmt.Sprintf("Deleted box %d", res.Box)
	case res.Change != graph.EdgeUnchanged:
		m.successMessage = fmt.Sprintf("Connection %d→%d %s", res.Edge.Parent, res.Edge.Child, res.Change)
	case res.Created:
		m.successMessage = fmt.Sprintf("Created box %d", res.Box)
	default:
		return
	}
	m.errorMessage = ""
}

func (m Model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.cols <= 0 || m.rows <= 0 {
		return ""
	}

	cells := surface.NewCells(m.cols, m.rows-1, m.cfg.CellWidth, m.cfg.CellHeight)
	m.ctrl.Draw(cells)

	var b strings.Builder
	if m.rows > 1 {
		b.WriteString(cells.Render())
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	store := m.ctrl.Store()
	status := fmt.Sprintf("Boxes: %d | Connections: %d", store.Len(), len(store.Edges()))
	if link := m.ctrl.Link(); link.State != graph.LinkEmpty {
		status += fmt.Sprintf(" | Linking: %s from box %d", link.State, link.Box)
	}
	status += " | F1=help"
	line := statusStyle.Render(status)

	switch {
	case m.errorMessage != "":
		line += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		line += " " + successStyle.Render(m.successMessage)
	}
	return line
}

func (m Model) helpView() string {
	lines := []string{
		"qamap help",
		"==========",
		"",
		"Mouse:",
		"------",
		"  click empty canvas      Create a Q box",
		"  drag from top-left      Spawn an A box",
		"  drag box body           Move box",
		"  top strip → bottom      Connect parent to child (again to remove)",
		"  click A bottom strip    Toggle complete",
		"  right click             Delete box and its connections",
		"",
		"Keys:",
		"-----",
		"  type over a box         Edit its text (Enter=newline, Backspace=delete)",
	}
	for _, b := range m.keys.Bindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-23s %s", h.Key, h.Desc))
	}
	lines = append(lines, "", "Press any key to close")
	return strings.Join(lines, "\n")
}
