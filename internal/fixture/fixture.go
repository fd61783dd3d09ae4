// Package fixture loads point sequences used by tests from SVG files.
//
// This is not a full (or even correct) SVG reader. Every <polyline> element in
// the file becomes one sequence, named by its id attribute. Coordinates are
// read with strconv.ParseFloat, so the points are exactly the float64 values
// nearest to the decimals written in the file, which is what makes the files
// handy for building nearly degenerate inputs.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
package fixture

import (
	"embed"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

//go:embed fixtures
var fixtures embed.FS

// Polyline is one point sequence from a fixture file.
type Polyline struct {
	Name   string
	Points [][2]float64
}

// Load returns the polylines in the named fixture, in document order.
func Load(name string) ([]Polyline, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse fixture %q", name)
	}

	elements := rootEl.FindAll("polyline")
	if len(elements) == 0 {
		return nil, errors.Errorf("no polylines found in fixture %q", name)
	}
	polylines := make([]Polyline, 0, len(elements))
	for i, el := range elements {
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "fixture %q, polyline %d", name, i)
		}
		id := el.Attributes["id"]
		if id == "" {
			id = strconv.Itoa(i)
		}
		polylines = append(polylines, Polyline{Name: id, Points: points})
	}
	return polylines, nil
}

// MustLoad is Load for tests, where a broken fixture is a bug.
func MustLoad(name string) []Polyline {
	polylines, err := Load(name)
	if err != nil {
		panic(err)
	}
	return polylines
}

// Points are written "x,y x,y ...", separated by any whitespace.
func parsePoints(attr string) ([][2]float64, error) {
	var points [][2]float64
	for _, pointString := range strings.Fields(attr) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
