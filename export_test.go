package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderImageEmptyGraph(t *testing.T) {
	if _, err := renderImage(NewGraph(), NewRenderer(), NoNode, false); err == nil {
		t.Error("expected an error for an empty graph")
	}
}

func TestDiagramBounds(t *testing.T) {
	g := pairGraph(t)

	minX, minY, maxX, maxY := diagramBounds(g)
	if minX != -50 || minY != -50 || maxX != 150 || maxY != 50 {
		t.Errorf("expected (-50,-50)-(150,50), got (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}

	mustConnect(t, g, 1, 1)
	_, minY, _, _ = diagramBounds(g)
	if minY != -110 {
		t.Errorf("expected room for the loop above node 1, got minY %v", minY)
	}
}

func TestExportPNG(t *testing.T) {
	g := pairGraph(t)
	mustConnect(t, g, 1, 0)
	path := filepath.Join(t.TempDir(), "pair.png")

	if err := ExportPNG(path, g, NewRenderer(), 0, false); err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("expected 200x100 image, got %dx%d", b.Dx(), b.Dy())
	}

	// world (0,0) is image (50,50): the highlighted center of node 0
	if got := hexColor(img.At(50, 50)); got != "#00ff00" {
		t.Errorf("expected green highlight, got %s", got)
	}
	if got := hexColor(img.At(2, 2)); got != "#ffffff" {
		t.Errorf("expected white background, got %s", got)
	}
	// the outline of node 1 at world (100,30)
	if got := hexColor(img.At(150, 80)); got != "#000000" {
		t.Errorf("expected black outline, got %s", got)
	}
}

func TestExportPNGWithLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.png")
	if err := ExportPNG(path, pairGraph(t), NewRenderer(), NoNode, true); err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected a non-empty file, got %v", err)
	}
}

func TestExportPNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.png")
	if err := ExportPNG(path, pairGraph(t), NewRenderer(), NoNode, false); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
}
