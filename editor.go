package main

import (
	"errors"
	"image/color"
	"log"
)

// Editor turns pointer events into graph mutations. It holds only IDs and
// the transient selection state, never references into the graph.
type Editor struct {
	graph      *Graph
	source     int // arrow origin for the next connection, also highlighted
	dragged    int
	pickRadius float64
	nodeRadius float64
	nodeColor  color.Color
}

func NewEditor(g *Graph, cfg *Config) *Editor {
	return &Editor{
		graph:      g,
		source:     NoNode,
		dragged:    NoNode,
		pickRadius: cfg.PickRadius,
		nodeRadius: cfg.NodeRadius,
		nodeColor:  cfg.nodeColor(),
	}
}

func (e *Editor) Graph() *Graph {
	return e.graph
}

// Highlight returns the node that should be drawn as selected, or NoNode.
func (e *Editor) Highlight() int {
	return e.source
}

// Press handles a button going down.
//
//	ctrl+primary    place a node (or reuse the one under the pointer) and
//	                connect the current source to it
//	primary         make the node under the pointer the source
//	ctrl+secondary  delete the node under the pointer
func (e *Editor) Press(ev PointerEvent) {
	switch {
	case ev.Button == ButtonPrimary && ev.Ctrl:
		id, ok := e.graph.FindNodeAt(ev.Pos, e.pickRadius)
		if !ok {
			id = e.graph.AddNode(ev.Pos, e.nodeRadius, e.nodeColor)
			log.Printf("added node %d at (%.0f,%.0f)", id, ev.Pos.X, ev.Pos.Y)
		}
		if e.source != NoNode {
			e.ignore(e.graph.AddConnection(e.source, id))
		}
	case ev.Button == ButtonSecondary && ev.Ctrl:
		if id, ok := e.graph.FindNodeAt(ev.Pos, e.pickRadius); ok {
			e.Delete(id)
		}
		return
	}

	if ev.Button == ButtonPrimary {
		e.source = e.pick(ev.Pos)
	}
}

// Drag handles pointer motion with a button held. The first drag event
// grabs the node under the pointer, later ones move it.
func (e *Editor) Drag(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	if e.dragged == NoNode {
		e.dragged = e.pick(ev.Pos)
		return
	}
	e.ignore(e.graph.MoveNode(e.dragged, ev.Pos))
}

func (e *Editor) Release(PointerEvent) {
	e.dragged = NoNode
}

// Delete removes a node and forgets any selection that referenced it.
func (e *Editor) Delete(id int) {
	e.graph.DeleteNode(id)
	if e.source == id {
		e.source = NoNode
	}
	if e.dragged == id {
		e.dragged = NoNode
	}
	log.Printf("deleted node %d", id)
}

func (e *Editor) pick(p Point) int {
	if id, ok := e.graph.FindNodeAt(p, e.pickRadius); ok {
		return id
	}
	return NoNode
}

func (e *Editor) ignore(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrNotFound) {
		log.Printf("ignoring event: %v", err)
		return
	}
	log.Printf("unexpected editor error: %v", err)
}
