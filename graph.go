package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

var ErrNotFound = errors.New("node not found")

// Graph owns every node of a diagram. Nodes are kept in ascending ID order,
// which is also the order used for queries and drawing.
type Graph struct {
	nodes  []Node
	nextID int
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0),
	}
}

func (g *Graph) index(id int) int {
	i := sort.Search(len(g.nodes), func(i int) bool {
		return g.nodes[i].ID >= id
	})
	if i < len(g.nodes) && g.nodes[i].ID == id {
		return i
	}
	return -1
}

func (g *Graph) AddNode(center Point, radius float64, c color.Color) int {
	if radius <= 0 || math.IsNaN(radius) {
		radius = defaultNodeRadius
	}
	if c == nil {
		c = colorBlack
	}
	id := g.nextID
	g.nextID++
	g.nodes = append(g.nodes, Node{
		ID:       id,
		Center:   center,
		Radius:   radius,
		Color:    c,
		Outgoing: make([]int, 0),
	})
	return id
}

// DeleteNode removes the node and every connection pointing at it.
// Deleting an unknown ID does nothing.
func (g *Graph) DeleteNode(id int) {
	i := g.index(id)
	if i == -1 {
		return
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

	for j := range g.nodes {
		kept := make([]int, 0, len(g.nodes[j].Outgoing))
		for _, to := range g.nodes[j].Outgoing {
			if to != id {
				kept = append(kept, to)
			}
		}
		g.nodes[j].Outgoing = kept
	}
}

func (g *Graph) MoveNode(id int, center Point) error {
	i := g.index(id)
	if i == -1 {
		return fmt.Errorf("move node %d: %w", id, ErrNotFound)
	}
	g.nodes[i].Center = center
	return nil
}

// AddConnection appends to to the outgoing list of from. Only the source is
// validated; a dangling target is skipped when drawing and pruned on delete.
func (g *Graph) AddConnection(from, to int) error {
	i := g.index(from)
	if i == -1 {
		return fmt.Errorf("connect %d -> %d: %w", from, to, ErrNotFound)
	}
	g.nodes[i].Outgoing = append(g.nodes[i].Outgoing, to)
	return nil
}

func (g *Graph) SetNodeColor(id int, c color.Color) error {
	i := g.index(id)
	if i == -1 {
		return fmt.Errorf("color node %d: %w", id, ErrNotFound)
	}
	g.nodes[i].Color = c
	return nil
}

// FindNodeAt returns the node whose center is nearest to p among those
// strictly closer than maxRadius. Equal distances resolve to the lower ID.
func (g *Graph) FindNodeAt(p Point, maxRadius float64) (int, bool) {
	best := NoNode
	bestDist := maxRadius
	for _, n := range g.nodes {
		if d := n.Center.Distance(p); d < bestDist {
			bestDist = d
			best = n.ID
		}
	}
	return best, best != NoNode
}

func (g *Graph) NearestNode(p Point) (int, bool) {
	return g.FindNodeAt(p, math.Inf(1))
}

func (g *Graph) Node(id int) (Node, bool) {
	i := g.index(id)
	if i == -1 {
		return Node{}, false
	}
	return g.nodes[i].clone(), true
}

func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}
	return out
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) HasConnection(from, to int) bool {
	i := g.index(from)
	if i == -1 {
		return false
	}
	for _, id := range g.nodes[i].Outgoing {
		if id == to {
			return true
		}
	}
	return false
}

// each visits the stored nodes in ID order without copying them.
func (g *Graph) each(fn func(n *Node)) {
	for i := range g.nodes {
		fn(&g.nodes[i])
	}
}

func (g *Graph) lookup(id int) *Node {
	i := g.index(id)
	if i == -1 {
		return nil
	}
	return &g.nodes[i]
}
