package advanced

// Points are fixed size arrays, so arity is checked by the compiler wherever
// points are built directly, and they are passed by value, so nothing in this
// package can modify a caller's coordinates.

type Point2 [2]float64

type Point3 [3]float64

// MustPoint2 converts a coordinate slice into a Point2. Slices longer than two
// are fine; anything past the Y coordinate is ignored. A shorter slice panics
// with an input error that HandlePanicRecover turns back into an error. The
// name is only used to make the error message point at the bad argument.
func MustPoint2(name string, coords []float64) Point2 {
	if len(coords) < 2 {
		fatalf("point %s has %d coordinates, need at least 2", name, len(coords))
	}
	return Point2{coords[0], coords[1]}
}

// MustPoint3 is MustPoint2 for three dimensions.
func MustPoint3(name string, coords []float64) Point3 {
	if len(coords) < 3 {
		fatalf("point %s has %d coordinates, need at least 3", name, len(coords))
	}
	return Point3{coords[0], coords[1], coords[2]}
}

// Scale multiplies every coordinate by s. This is exact when s is a power of
// two and nothing overflows or underflows.
func (p Point2) Scale(s float64) Point2 {
	return Point2{p[0] * s, p[1] * s}
}

func (p Point3) Scale(s float64) Point3 {
	return Point3{p[0] * s, p[1] * s, p[2] * s}
}
