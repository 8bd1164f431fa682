package main

import (
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// polar returns the point at distance d from p along angle a (radians).
func (p Point) polar(a, d float64) Point {
	return Point{p.X + math.Cos(a)*d, p.Y + math.Sin(a)*d}
}

type Node struct {
	ID       int
	Center   Point
	Radius   float64
	Color    color.Color
	Outgoing []int
}

// RimPoint returns the point on the node's boundary at angle a.
func (n Node) RimPoint(a float64) Point {
	return n.Center.polar(a, n.Radius)
}

func (n Node) clone() Node {
	out := n
	out.Outgoing = append([]int(nil), n.Outgoing...)
	return out
}

type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

type PointerEvent struct {
	Pos    Point
	Button Button
	Ctrl   bool
}
