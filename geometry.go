package main

import "math"

// arrowGeometry is everything needed to draw one straight connection.
type arrowGeometry struct {
	StartAngle float64 // on the source rim
	EndAngle   float64 // on the target side
	Start      Point
	LineEnd    Point // past the target rim, leaving room for the head
	Tip        Point
	Wings      [2]Point
}

// Head returns the arrowhead triangle.
func (a arrowGeometry) Head() []Point {
	return []Point{a.Wings[0], a.Wings[1], a.Tip}
}

type loopGeometry struct {
	Curve []Point
	Tip   Point
	Wings [2]Point
}

func (l loopGeometry) Head() []Point {
	return []Point{l.Tip, l.Wings[0], l.Wings[1]}
}

// edgeGeometry lays out a connection from -> to between two distinct nodes.
// When the pair is bidirectional both arrows are rotated by approachAngle in
// opposite senses so they do not share a line.
func edgeGeometry(from, to Node, bidirectional bool, extend, arrowWidth float64) arrowGeometry {
	// bearing from the target back toward the source
	phi := math.Atan2(from.Center.Y-to.Center.Y, from.Center.X-to.Center.X)

	f := 0.0
	if bidirectional {
		f = 1
	}
	end := phi + approachAngle*f
	start := phi - math.Pi - approachAngle*f

	g := arrowGeometry{
		StartAngle: start,
		EndAngle:   end,
		Start:      from.RimPoint(start),
		LineEnd:    to.Center.polar(end, to.Radius*extend),
		Tip:        to.RimPoint(end + (approachAngle-tipCorrection)*f),
	}
	g.Wings[0] = g.LineEnd.polar(end-math.Pi/2-approachAngle*f, arrowWidth)
	g.Wings[1] = g.LineEnd.polar(end+math.Pi/2-approachAngle*f, arrowWidth)
	return g
}

// selfLoopGeometry lays out a connection from a node to itself: a cubic Bézier
// leaving the rim at -60°, bulging above the node and returning at -120°.
func selfLoopGeometry(n Node, extend, arrowWidth float64) loopGeometry {
	r := n.Radius
	base := Point{n.Center.X, n.Center.Y - r}
	c1 := base.Add(Point{2 * r, -2 * r})
	c2 := base.Add(Point{-2 * r, -2 * r})

	out := n.RimPoint(loopAnchorAngle)
	in := n.RimPoint(2 * loopAnchorAngle)

	l := loopGeometry{
		Curve: sampleCubic(out, c1, c2, in, loopSamples),
		Tip:   in,
	}
	arrowBase := n.Center.polar(2*loopAnchorAngle, r*extend)
	l.Wings[0] = arrowBase.polar(2*loopAnchorAngle+math.Pi/2, arrowWidth)
	l.Wings[1] = arrowBase.polar(2*loopAnchorAngle-math.Pi/2, arrowWidth)
	return l
}

// sampleCubic evaluates the cubic Bézier p0,c1,c2,p1 at count values of t
// spaced evenly over [0, 1].
func sampleCubic(p0, c1, c2, p1 Point, count int) []Point {
	if count < 2 {
		return []Point{p0, p1}
	}
	pts := make([]Point, count)
	for i := range pts {
		t := float64(i) / float64(count-1)
		u := 1 - t
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		pts[i] = Point{
			X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
		}
	}
	return pts
}
