package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// nodePalette is cycled through with the 'c' key.
var nodePalette = []color.RGBA{
	{255, 0, 0, 255},
	{0, 160, 0, 255},
	{0, 0, 255, 255},
	{200, 160, 0, 255},
	{160, 0, 160, 255},
	{0, 160, 160, 255},
	{128, 128, 128, 255},
	{0, 0, 0, 255},
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#55ff55"))
)

type model struct {
	width          int
	height         int
	panX           float64
	panY           float64
	editor         *Editor
	renderer       *Renderer
	config         *Config
	help           bool
	exportCount    int
	colorIndex     map[int]int
	errorMessage   string
	successMessage string
}

func newModel(cfg *Config) model {
	r := NewRenderer()
	cfg.Apply(r)
	return model{
		editor:     NewEditor(NewGraph(), cfg),
		renderer:   r,
		config:     cfg,
		colorIndex: make(map[int]int),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""

		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}

		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case "h", "j", "k", "l", "H", "J", "K", "L",
			"left", "right", "up", "down",
			"shift+left", "shift+right", "shift+up", "shift+down":
			m.handlePan(key, m.getMoveSpeed(key))
		case "e":
			m.exportPNG()
		case "y":
			m.copyToClipboard()
		case "x":
			if id := m.editor.Highlight(); id != NoNode {
				m.editor.Delete(id)
				delete(m.colorIndex, id)
			}
		case "c":
			m.cycleColor()
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	ev := PointerEvent{
		Pos: m.screenToWorld(msg.X, msg.Y),
		// many terminals swallow ctrl+click, so alt works as well
		Ctrl: msg.Ctrl || msg.Alt,
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = ButtonSecondary
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.editor.Press(ev)
	case tea.MouseActionMotion:
		m.editor.Drag(ev)
	case tea.MouseActionRelease:
		m.editor.Release(ev)
	}
}

func (m *model) cycleColor() {
	id := m.editor.Highlight()
	if id == NoNode {
		m.errorMessage = "no node selected"
		return
	}
	next := (m.colorIndex[id] + 1) % len(nodePalette)
	if err := m.editor.Graph().SetNodeColor(id, nodePalette[next]); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.colorIndex[id] = next
}

func (m *model) exportPNG() {
	m.exportCount++
	filename := m.config.GetSavePath(fmt.Sprintf("arrowpad-%d.png", m.exportCount))
	err := ExportPNG(filename, m.editor.Graph(), m.renderer, m.editor.Highlight(), m.config.ShowLabels)
	if err != nil {
		m.exportCount--
		m.errorMessage = err.Error()
		log.Printf("export failed: %v", err)
		return
	}
	m.successMessage = "saved " + filename
}

func (m *model) copyToClipboard() {
	if err := clipboard.WriteAll(m.draw().String()); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.successMessage = "copied diagram to clipboard"
}

func (m *model) draw() *termSurface {
	cols, rows := m.canvasSize()
	s := newTermSurface(cols, rows, m.panX, m.panY)
	m.renderer.Render(s, m.editor.Graph(), m.editor.Highlight())
	return s
}

func (m model) View() string {
	if m.help {
		return helpView()
	}

	var result strings.Builder
	for _, line := range m.draw().Lines() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	g := m.editor.Graph()
	status := fmt.Sprintf(" Nodes: %d | View: (%.0f,%.0f)", g.Len(), m.panX, m.panY)
	if id := m.editor.Highlight(); id != NoNode {
		status += fmt.Sprintf(" | Selected: node %d", id)
	}
	line := statusStyle.Render(status)
	switch {
	case m.errorMessage != "":
		line += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		line += " " + okStyle.Render(m.successMessage)
	default:
		line += " ? for help | q to quit"
	}
	return line
}

func helpView() string {
	return strings.Join([]string{
		"arrowpad help",
		"=============",
		"",
		"Mouse:",
		"  Ctrl/Alt+Left click   Place a node (or reuse the one under the pointer)",
		"                        and connect the selected node to it",
		"  Left click            Select the node under the pointer",
		"  Left drag             Move a node",
		"  Ctrl/Alt+Right click  Delete the node under the pointer",
		"",
		"Keys:",
		"  h/j/k/l, arrows       Pan the view (Shift for 2x)",
		"  c                     Cycle the selected node's color",
		"  x                     Delete the selected node",
		"  e                     Export the diagram as PNG",
		"  y                     Copy the diagram as text",
		"  ?                     Toggle help",
		"  q                     Quit",
	}, "\n")
}
