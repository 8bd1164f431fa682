package main

import "image/color"

// Surface is a 2D drawing target. Coordinates are in world units with y
// growing downward. Bounds reports the visible world rectangle.
type Surface interface {
	Bounds() (x, y, w, h float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64)
	StrokeCircle(center Point, r float64)
	FillCircle(center Point, r float64)
	StrokePolyline(pts []Point)
	FillPolygon(pts []Point)
}

type Renderer struct {
	connectionColor color.Color
	highlightColor  color.Color
	background      color.Color
	extendFactor    float64
	arrowWidth      float64
}

func NewRenderer() *Renderer {
	return &Renderer{
		connectionColor: colorRed,
		highlightColor:  colorGreen,
		background:      colorWhite,
		extendFactor:    defaultExtendFactor,
		arrowWidth:      defaultArrowWidth,
	}
}

func (r *Renderer) SetConnectionColor(c color.Color) {
	r.connectionColor = c
}

func (r *Renderer) SetHighlightColor(c color.Color) {
	r.highlightColor = c
}

func (r *Renderer) SetBackground(c color.Color) {
	r.background = c
}

// SetArrowExtendFactor sets how far past the target rim, in multiples of the
// target radius, a connection line ends.
func (r *Renderer) SetArrowExtendFactor(f float64) {
	r.extendFactor = f
}

func (r *Renderer) SetArrowWidth(w float64) {
	r.arrowWidth = w
}

// Render clears s and draws the whole graph: every connection first, then
// every node on top. The node with ID highlight, if any, gets a filled
// inner disc.
func (r *Renderer) Render(s Surface, g *Graph, highlight int) {
	x, y, w, h := s.Bounds()
	s.SetFillColor(r.background)
	s.FillRect(x, y, w, h)

	g.each(func(n *Node) {
		for _, to := range n.Outgoing {
			r.drawConnection(s, g, n, to)
		}
	})

	g.each(func(n *Node) {
		s.SetStrokeColor(n.Color)
		s.SetLineWidth(nodeOutlineWidth)
		s.StrokeCircle(n.Center, n.Radius)

		if n.ID == highlight {
			s.SetFillColor(r.highlightColor)
			s.FillCircle(n.Center, n.Radius*highlightScale)
		}
	})
}

func (r *Renderer) drawConnection(s Surface, g *Graph, from *Node, toID int) {
	if toID == from.ID {
		r.drawSelfLoop(s, *from)
		return
	}

	// the target may already be gone if render runs between a delete and prune
	to := g.lookup(toID)
	if to == nil {
		return
	}

	bidirectional := false
	for _, back := range to.Outgoing {
		if back == from.ID {
			bidirectional = true
			break
		}
	}

	geo := edgeGeometry(*from, *to, bidirectional, r.extendFactor, r.arrowWidth)

	s.SetStrokeColor(r.connectionColor)
	s.SetLineWidth(connectionLineWidth)
	s.StrokePolyline([]Point{geo.Start, geo.LineEnd})

	s.SetFillColor(r.connectionColor)
	s.FillPolygon(geo.Head())
}

func (r *Renderer) drawSelfLoop(s Surface, n Node) {
	geo := selfLoopGeometry(n, r.extendFactor, r.arrowWidth)

	s.SetStrokeColor(r.connectionColor)
	s.SetLineWidth(connectionLineWidth)
	s.StrokePolyline(geo.Curve)

	s.SetFillColor(r.connectionColor)
	s.FillPolygon(geo.Head())
}
