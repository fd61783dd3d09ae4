// Robust orientation predicates for Go.
//
// Orientation tests answer "which side of this line (or plane) is this point
// on?" by taking the sign of a small determinant. Evaluated naively in floating
// point, that sign is wrong often enough near degenerate configurations to
// break triangulators, hull builders and point location. The predicates in this
// package first compute a floating point estimate along with a bound on its
// rounding error. When the bound proves the sign, that estimate is returned
// immediately, which is almost always. Otherwise the determinant is recomputed
// exactly using expansion arithmetic (see the expansion package).
//
// The functions here take coordinate slices, which makes them easy to use with
// other geometry packages. The typed versions in the advanced package skip
// the length checks.
package robust

import "github.com/osuushi/robust/advanced"

type Point2 = advanced.Point2
type Point3 = advanced.Point3
type Orientation = advanced.Orientation
type Path = advanced.Path

const (
	Counterclockwise = advanced.Counterclockwise
	Collinear        = advanced.Collinear
	Clockwise        = advanced.Clockwise

	FastPath  = advanced.FastPath
	ExactPath = advanced.ExactPath
)

// ErrInvalidInput is returned (wrapped) when a coordinate slice is too short.
var ErrInvalidInput = advanced.ErrInvalidInput

// Orient2D is the typed version of Orientation2D. See advanced.Orient2D.
func Orient2D(a, b, c Point2) float64 {
	return advanced.Orient2D(a, b, c)
}

// Orient3D is the typed version of Orientation3D. See advanced.Orient3D.
func Orient3D(a, b, c, d Point3) float64 {
	return advanced.Orient3D(a, b, c, d)
}

func Classify(det float64) Orientation {
	return advanced.Classify(det)
}

// Orientation2D reports which side of the directed line a→b the point c is on.
// The result is negative if c is to the left (counterclockwise), positive if it
// is to the right (clockwise) and zero if the points are exactly collinear.
//
// Each argument needs at least two coordinates. Extra coordinates are ignored,
// so XYZ coordinates can be passed directly. A shorter slice returns an error
// wrapping ErrInvalidInput. NaN and infinite coordinates are not supported, and
// the result for them is unspecified.
func Orientation2D(a, b, c []float64) (result float64, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = 0
			err = recoveredErr
		}
	}()
	return advanced.Orient2D(
		advanced.MustPoint2("a", a),
		advanced.MustPoint2("b", b),
		advanced.MustPoint2("c", c),
	), nil
}

// Orientation3D reports which side of the plane through a, b and c the point d
// is on. The result is negative if d is above the plane (the side from which
// a, b, c appear counterclockwise), positive if it is below, and zero if the
// four points are exactly coplanar.
//
// Each argument needs at least three coordinates, otherwise an error wrapping
// ErrInvalidInput is returned. NaN and infinite coordinates are not supported.
func Orientation3D(a, b, c, d []float64) (result float64, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = 0
			err = recoveredErr
		}
	}()
	return advanced.Orient3D(
		advanced.MustPoint3("a", a),
		advanced.MustPoint3("b", b),
		advanced.MustPoint3("c", c),
		advanced.MustPoint3("d", d),
	), nil
}
