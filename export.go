package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const exportPadding = 20.0

// pngSurface draws onto a gg context whose top-left corner sits at world
// position (originX, originY).
type pngSurface struct {
	dc               *gg.Context
	originX, originY float64
	stroke, fill     color.Color
}

func newPNGSurface(originX, originY float64, width, height int) *pngSurface {
	dc := gg.NewContext(width, height)
	dc.Translate(-originX, -originY)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	return &pngSurface{
		dc:      dc,
		originX: originX,
		originY: originY,
		stroke:  color.Black,
		fill:    color.Black,
	}
}

func (s *pngSurface) Bounds() (x, y, w, h float64) {
	return s.originX, s.originY, float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *pngSurface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *pngSurface) SetFillColor(c color.Color)   { s.fill = c }
func (s *pngSurface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }

func (s *pngSurface) FillRect(x, y, w, h float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *pngSurface) StrokeCircle(center Point, r float64) {
	s.dc.SetColor(s.stroke)
	s.dc.DrawCircle(center.X, center.Y, r)
	s.dc.Stroke()
}

func (s *pngSurface) FillCircle(center Point, r float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawCircle(center.X, center.Y, r)
	s.dc.Fill()
}

func (s *pngSurface) StrokePolyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetColor(s.stroke)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.Stroke()
}

func (s *pngSurface) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	s.dc.SetColor(s.fill)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.Fill()
}

// drawLabels writes each node's ID at its center.
func (s *pngSurface) drawLabels(g *Graph) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.dc.SetFontFace(face)

	g.each(func(n *Node) {
		s.dc.SetColor(n.Color)
		s.dc.DrawStringAnchored(strconv.Itoa(n.ID), n.Center.X, n.Center.Y, 0.5, 0.5)
	})
	return nil
}

// diagramBounds returns the world rectangle covering every node, the loops
// drawn above self-connected nodes and the export padding.
func diagramBounds(g *Graph) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	g.each(func(n *Node) {
		top := n.Center.Y - n.Radius
		for _, to := range n.Outgoing {
			if to == n.ID {
				// the loop's control points sit 3r above the center
				top = n.Center.Y - 3*n.Radius
				break
			}
		}
		minX = math.Min(minX, n.Center.X-n.Radius)
		maxX = math.Max(maxX, n.Center.X+n.Radius)
		minY = math.Min(minY, top)
		maxY = math.Max(maxY, n.Center.Y+n.Radius)
	})
	return minX - exportPadding, minY - exportPadding, maxX + exportPadding, maxY + exportPadding
}

// renderImage draws the graph into a new image sized to fit it.
func renderImage(g *Graph, r *Renderer, highlight int, labels bool) (image.Image, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("nothing to export")
	}

	minX, minY, maxX, maxY := diagramBounds(g)
	s := newPNGSurface(minX, minY, int(math.Ceil(maxX-minX)), int(math.Ceil(maxY-minY)))
	r.Render(s, g, highlight)

	if labels {
		if err := s.drawLabels(g); err != nil {
			return nil, err
		}
	}
	return s.dc.Image(), nil
}

func ExportPNG(filename string, g *Graph, r *Renderer, highlight int, labels bool) error {
	img, err := renderImage(g, r, highlight, labels)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
