package main

import (
	"image/color"
	"math"
)

// NoNode marks the absence of a node ID.
const NoNode = -1

const (
	defaultNodeRadius   = 30.0
	defaultPickRadius   = 30.0
	defaultArrowWidth   = 10.0
	defaultExtendFactor = 1.5

	connectionLineWidth = 3.0
	nodeOutlineWidth    = 5.0
	highlightScale      = 0.8

	approachAngle = math.Pi / 10
	// arrowheads of a bidirectional pair are turned back toward their line by this much
	tipCorrection = math.Pi / 20

	loopAnchorAngle = -math.Pi / 3
	loopSamples     = 20
)

const (
	cellWidth  = 8.0
	cellHeight = 16.0
	dotWidth   = cellWidth / 2
	dotHeight  = cellHeight / 4
)

var (
	colorBlack = color.RGBA{0, 0, 0, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorGreen = color.RGBA{0, 255, 0, 255}
)
