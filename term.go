package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// termSurface rasterizes drawing calls onto braille dots. Each terminal cell
// covers cellWidth x cellHeight world units and holds a 2x4 dot matrix; the
// whole cell takes the color of the last dot drawn into it.
//
// The terminal has no opaque paint, so FillRect clears dots instead of
// painting them.
type termSurface struct {
	cols, rows int
	panX, panY float64
	dots       [][]bool
	cellColor  [][]color.Color
	stroke     color.Color
	fill       color.Color
	lineWidth  float64
}

func newTermSurface(cols, rows int, panX, panY float64) *termSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &termSurface{
		cols:      cols,
		rows:      rows,
		panX:      panX,
		panY:      panY,
		dots:      make([][]bool, rows*4),
		cellColor: make([][]color.Color, rows),
		stroke:    colorBlack,
		fill:      colorBlack,
		lineWidth: 1,
	}
	for i := range s.dots {
		s.dots[i] = make([]bool, cols*2)
	}
	for i := range s.cellColor {
		s.cellColor[i] = make([]color.Color, cols)
	}
	return s
}

func (s *termSurface) Bounds() (x, y, w, h float64) {
	return s.panX, s.panY, float64(s.cols) * cellWidth, float64(s.rows) * cellHeight
}

func (s *termSurface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *termSurface) SetFillColor(c color.Color)   { s.fill = c }
func (s *termSurface) SetLineWidth(w float64)       { s.lineWidth = w }

func (s *termSurface) FillRect(x, y, w, h float64) {
	x0, y0 := s.toDot(Point{x, y})
	x1, y1 := s.toDot(Point{x + w, y + h})
	for dy := clampInt(int(math.Floor(y0)), 0, len(s.dots)); dy < clampInt(int(math.Ceil(y1)), 0, len(s.dots)); dy++ {
		for dx := clampInt(int(math.Floor(x0)), 0, s.cols*2); dx < clampInt(int(math.Ceil(x1)), 0, s.cols*2); dx++ {
			s.dots[dy][dx] = false
		}
	}
	for row := range s.cellColor {
		for col := range s.cellColor[row] {
			if s.cellEmpty(col, row) {
				s.cellColor[row][col] = nil
			}
		}
	}
}

func (s *termSurface) StrokeCircle(center Point, r float64) {
	// one sample per half dot along the circumference
	steps := int(math.Ceil(2*math.Pi*r/(dotWidth/2))) + 8
	prev := center.polar(0, r)
	for i := 1; i <= steps; i++ {
		next := center.polar(2*math.Pi*float64(i)/float64(steps), r)
		s.line(prev, next, s.stroke)
		prev = next
	}
}

func (s *termSurface) FillCircle(center Point, r float64) {
	s.fillWhere(center.X-r, center.Y-r, center.X+r, center.Y+r, func(p Point) bool {
		return p.Distance(center) <= r
	})
}

func (s *termSurface) StrokePolyline(pts []Point) {
	for i := 0; i+1 < len(pts); i++ {
		s.line(pts[i], pts[i+1], s.stroke)
	}
}

func (s *termSurface) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	s.fillWhere(minX, minY, maxX, maxY, func(p Point) bool {
		return insidePolygon(p, pts)
	})
	// thin triangles can miss every dot center, so trace the outline too
	for i := range pts {
		s.line(pts[i], pts[(i+1)%len(pts)], s.fill)
	}
}

func (s *termSurface) toDot(p Point) (float64, float64) {
	return (p.X - s.panX) / dotWidth, (p.Y - s.panY) / dotHeight
}

func (s *termSurface) dotCenter(dx, dy int) Point {
	return Point{
		X: s.panX + (float64(dx)+0.5)*dotWidth,
		Y: s.panY + (float64(dy)+0.5)*dotHeight,
	}
}

func (s *termSurface) set(dx, dy int, c color.Color) {
	if dy < 0 || dy >= len(s.dots) || dx < 0 || dx >= s.cols*2 {
		return
	}
	s.dots[dy][dx] = true
	s.cellColor[dy/4][dx/2] = c
}

func (s *termSurface) line(a, b Point, c color.Color) {
	ax, ay := s.toDot(a)
	bx, by := s.toDot(b)
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := ax + (bx-ax)*t
		y := ay + (by-ay)*t
		s.set(int(math.Floor(x)), int(math.Floor(y)), c)
	}
}

func (s *termSurface) fillWhere(minX, minY, maxX, maxY float64, inside func(Point) bool) {
	x0, y0 := s.toDot(Point{minX, minY})
	x1, y1 := s.toDot(Point{maxX, maxY})
	for dy := int(math.Floor(y0)); dy <= int(math.Ceil(y1)); dy++ {
		for dx := int(math.Floor(x0)); dx <= int(math.Ceil(x1)); dx++ {
			if inside(s.dotCenter(dx, dy)) {
				s.set(dx, dy, s.fill)
			}
		}
	}
}

func (s *termSurface) cellEmpty(col, row int) bool {
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			if s.dots[row*4+dy][col*2+dx] {
				return false
			}
		}
	}
	return true
}

// braille dot bits, indexed [row][column] within a cell
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (s *termSurface) cellRune(col, row int) rune {
	var bits rune
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			if s.dots[row*4+dy][col*2+dx] {
				bits |= brailleBits[dy][dx]
			}
		}
	}
	if bits == 0 {
		return ' '
	}
	return 0x2800 + bits
}

// PlainLines returns the rendering without any color escapes.
func (s *termSurface) PlainLines() []string {
	lines := make([]string, s.rows)
	for row := 0; row < s.rows; row++ {
		var b strings.Builder
		for col := 0; col < s.cols; col++ {
			b.WriteRune(s.cellRune(col, row))
		}
		lines[row] = b.String()
	}
	return lines
}

// Lines returns the rendering with each run of same-colored cells styled.
func (s *termSurface) Lines() []string {
	lines := make([]string, s.rows)
	for row := 0; row < s.rows; row++ {
		var b, run strings.Builder
		var runColor color.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(runColor))).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < s.cols; col++ {
			c := s.cellColor[row][col]
			if !sameColor(c, runColor) {
				flush()
				runColor = c
			}
			run.WriteRune(s.cellRune(col, row))
		}
		flush()
		lines[row] = b.String()
	}
	return lines
}

func (s *termSurface) String() string {
	return strings.Join(s.PlainLines(), "\n")
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// insidePolygon is an even-odd ray casting test.
func insidePolygon(p Point, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
