package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) model {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	m := newModel(cfg)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return next.(model)
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int, button tea.MouseButton, ctrl bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Ctrl: ctrl, Button: button, Action: tea.MouseActionPress}
}

func TestModelMouseBuildsGraph(t *testing.T) {
	m := testModel(t)

	m = send(t, m, click(10, 5, tea.MouseButtonLeft, true))
	m = send(t, m, click(40, 5, tea.MouseButtonLeft, true))

	g := m.editor.Graph()
	if g.Len() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.Len())
	}
	if !g.HasConnection(0, 1) {
		t.Error("expected connection 0 -> 1")
	}
	n, _ := g.Node(0)
	if n.Center != (Point{84, 88}) {
		t.Errorf("expected node at the center of cell (10,5), got %v", n.Center)
	}

	if view := m.View(); !strings.Contains(view, "Nodes: 2") || !strings.Contains(view, "Selected: node 1") {
		t.Errorf("expected status to report the graph, got %q", view)
	}
}

func TestModelMouseDrag(t *testing.T) {
	m := testModel(t)
	m = send(t, m, click(10, 5, tea.MouseButtonLeft, true))

	motion := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
	}
	m = send(t, m, motion(10, 5))
	m = send(t, m, motion(20, 10))
	m = send(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease})

	n, _ := m.editor.Graph().Node(0)
	if n.Center != m.screenToWorld(20, 10) {
		t.Errorf("expected node dragged to cell (20,10), got %v", n.Center)
	}
	if m.editor.dragged != NoNode {
		t.Error("expected release to drop the node")
	}
}

func TestModelAltActsAsCtrl(t *testing.T) {
	m := testModel(t)
	msg := click(10, 5, tea.MouseButtonLeft, false)
	msg.Alt = true
	m = send(t, m, msg)

	if m.editor.Graph().Len() != 1 {
		t.Errorf("expected alt+click to place a node, got %d nodes", m.editor.Graph().Len())
	}
}

func TestModelDeleteKeys(t *testing.T) {
	m := testModel(t)
	m = send(t, m, click(10, 5, tea.MouseButtonLeft, true))
	m = send(t, m, click(40, 5, tea.MouseButtonLeft, true))

	m = send(t, m, key("x"))
	if m.editor.Graph().Len() != 1 {
		t.Fatalf("expected selected node deleted, got %d nodes", m.editor.Graph().Len())
	}

	m = send(t, m, click(10, 5, tea.MouseButtonRight, true))
	if m.editor.Graph().Len() != 0 {
		t.Errorf("expected ctrl+right click to delete, got %d nodes", m.editor.Graph().Len())
	}
}

func TestModelPan(t *testing.T) {
	m := testModel(t)

	m = send(t, m, key("l"))
	m = send(t, m, key("J"))
	if m.panX != cellWidth || m.panY != 2*cellHeight {
		t.Errorf("expected pan (%v,%v), got (%v,%v)", cellWidth, 2*cellHeight, m.panX, m.panY)
	}

	m = send(t, m, click(0, 0, tea.MouseButtonLeft, true))
	n, _ := m.editor.Graph().Node(0)
	if n.Center != (Point{12, 40}) {
		t.Errorf("expected clicks offset by the pan, got %v", n.Center)
	}
}

func TestModelCycleColor(t *testing.T) {
	m := testModel(t)

	m = send(t, m, key("c"))
	if m.errorMessage == "" {
		t.Error("expected an error with nothing selected")
	}

	m = send(t, m, click(10, 5, tea.MouseButtonLeft, true))
	m = send(t, m, key("c"))
	n, _ := m.editor.Graph().Node(0)
	if hexColor(n.Color) != hexColor(nodePalette[1]) {
		t.Errorf("expected the next palette color, got %s", hexColor(n.Color))
	}
}

func TestModelExport(t *testing.T) {
	m := testModel(t)

	m = send(t, m, key("e"))
	if m.errorMessage == "" {
		t.Error("expected exporting an empty diagram to fail")
	}

	m = send(t, m, click(10, 5, tea.MouseButtonLeft, true))
	m = send(t, m, key("e"))
	if m.errorMessage != "" {
		t.Fatalf("expected export to succeed, got %q", m.errorMessage)
	}
	if !strings.Contains(m.successMessage, "arrowpad-1.png") {
		t.Errorf("expected the export path in the status, got %q", m.successMessage)
	}
}

func TestModelHelpAndQuit(t *testing.T) {
	m := testModel(t)

	m = send(t, m, key("?"))
	if !strings.Contains(m.View(), "arrowpad help") {
		t.Error("expected the help screen")
	}
	m = send(t, m, key("?"))
	if m.help {
		t.Error("expected help closed")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
