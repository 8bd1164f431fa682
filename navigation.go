package main

// handlePan shifts the view by speed cells. The diagram itself never moves.
func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= float64(speed) * cellWidth
	case "l", "right", "L", "shift+right":
		m.panX += float64(speed) * cellWidth
	case "k", "up", "K", "shift+up":
		m.panY -= float64(speed) * cellHeight
	case "j", "down", "J", "shift+down":
		m.panY += float64(speed) * cellHeight
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// screenToWorld maps a terminal cell to the world point at its center.
func (m *model) screenToWorld(col, row int) Point {
	return Point{
		X: m.panX + (float64(col)+0.5)*cellWidth,
		Y: m.panY + (float64(row)+0.5)*cellHeight,
	}
}

func (m *model) canvasSize() (cols, rows int) {
	cols = m.width
	if cols < 1 {
		cols = 80
	}
	// leave room for the status line
	rows = m.height - 1
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
