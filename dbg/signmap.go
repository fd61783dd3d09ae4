package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/robust/advanced"
	"github.com/pkg/errors"
)

// A sign map is the classic picture of why orientation needs to be robust. Fix
// a line through A and B, then evaluate the predicate for a small grid of
// query points around Origin, where neighboring query points differ by one
// unit in the last place in X or Y. Evaluated naively, the signs near the line
// come out as noise. The adaptive predicate gives a clean boundary.

// Padding around each panel, in pixels
const dbgDrawPadding = 20

type SignMap struct {
	A, B advanced.Point2
	// Origin is the lower left query point
	Origin advanced.Point2
	// Size is the number of query points along each axis
	Size int
	// Scale is the width of one query point in pixels
	Scale int
}

// Cell is the evaluation of one query point.
type Cell struct {
	Query    advanced.Point2
	Naive    advanced.Orientation
	Adaptive advanced.Orientation
	Path     advanced.Path
}

// Grid holds the cells row by row, starting from the bottom.
type Grid [][]Cell

// Evaluate computes every cell of the map.
func (m SignMap) Evaluate() Grid {
	xs := ulpSteps(m.Origin[0], m.Size)
	ys := ulpSteps(m.Origin[1], m.Size)

	grid := make(Grid, m.Size)
	for j, y := range ys {
		row := make([]Cell, m.Size)
		for i, x := range xs {
			q := advanced.Point2{x, y}
			det, path := advanced.Orient2DPath(m.A, m.B, q)
			row[i] = Cell{
				Query:    q,
				Naive:    advanced.Classify(naiveOrient2D(m.A, m.B, q)),
				Adaptive: advanced.Classify(det),
				Path:     path,
			}
		}
		grid[j] = row
	}
	return grid
}

// Count returns how many cells took each path, and how many cells the naive
// determinant got a different sign for.
func (g Grid) Count() (fast, exact, disagreements int) {
	for _, row := range g {
		for _, cell := range row {
			if cell.Path == advanced.ExactPath {
				exact++
			} else {
				fast++
			}
			if cell.Naive != cell.Adaptive {
				disagreements++
			}
		}
	}
	return fast, exact, disagreements
}

// Draw renders the naive signs on the left and the adaptive signs on the
// right. In the right panel, cells that needed the exact path are drawn
// brighter.
func (m SignMap) Draw() *gg.Context {
	grid := m.Evaluate()
	panel := m.Size * m.Scale
	width := 2*panel + dbgDrawPadding*3
	height := panel + dbgDrawPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	scale := float64(m.Scale)
	for j, row := range grid {
		for i, cell := range row {
			x := float64(dbgDrawPadding + i*m.Scale)
			y := float64(dbgDrawPadding + j*m.Scale)

			setOrientationColor(c, cell.Naive, false)
			c.DrawRectangle(x, y, scale, scale)
			c.Fill()

			setOrientationColor(c, cell.Adaptive, cell.Path == advanced.ExactPath)
			c.DrawRectangle(x+float64(panel+dbgDrawPadding), y, scale, scale)
			c.Fill()
		}
	}
	return c
}

// SavePNG draws the map and writes it to path.
func (m SignMap) SavePNG(path string) error {
	if m.Size <= 0 || m.Scale <= 0 {
		return errors.Errorf("sign map needs a positive size and scale, got %d and %d", m.Size, m.Scale)
	}
	return errors.Wrap(m.Draw().SavePNG(path), "saving sign map")
}

// Show prints a PNG inline in the terminal (iTerm only).
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}

func setOrientationColor(c *gg.Context, o advanced.Orientation, exact bool) {
	bright := 0.6
	if exact {
		bright = 1
	}
	switch o {
	case advanced.Counterclockwise:
		c.SetRGB(0, bright*0.5, bright)
	case advanced.Clockwise:
		c.SetRGB(bright, bright*0.4, 0)
	default:
		c.SetRGB(bright, bright, bright)
	}
}

// The plain floating point determinant, with no error bound at all
func naiveOrient2D(a, b, c advanced.Point2) float64 {
	return (a[1]-c[1])*(b[0]-c[0]) - (a[0]-c[0])*(b[1]-c[1])
}

// ulpSteps returns n consecutive float64 values starting at start.
func ulpSteps(start float64, n int) []float64 {
	steps := make([]float64, n)
	x := start
	for i := range steps {
		steps[i] = x
		x = math.Nextafter(x, math.Inf(1))
	}
	return steps
}
