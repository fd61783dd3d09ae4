package advanced

// Orient2D reports which side of the directed line a→b the point c lies on.
// The result is negative when c is to the left (a, b, c wind
// counterclockwise), positive when it is to the right (clockwise), and exactly
// zero when the three points are collinear. Only the sign is guaranteed; the
// magnitude approximates twice the signed area of the triangle.
//
// Coordinates must be finite. For NaN or infinite coordinates the result is
// unspecified.
func Orient2D(a, b, c Point2) float64 {
	if det, ok := orient2DFast(a, b, c); ok {
		return det
	}
	return orient2DExact(a, b, c)
}

// Orient3D reports which side of the plane through a, b and c the point d
// lies on. The result is negative when d is above the plane, positive when it
// is below, and exactly zero when the four points are coplanar. "Above" is the
// side from which a, b, c appear counterclockwise, which is the direction of
// the right-handed normal (b-a)×(c-a). The magnitude approximates six times the
// signed volume of the tetrahedron.
//
// Coordinates must be finite. For NaN or infinite coordinates the result is
// unspecified.
func Orient3D(a, b, c, d Point3) float64 {
	if det, ok := orient3DFast(a, b, c, d); ok {
		return det
	}
	return orient3DExact(a, b, c, d)
}

// Path tells which evaluation produced a result.
type Path int

const (
	// FastPath results come from the floating point estimate, which the error
	// bound certified.
	FastPath Path = iota
	// ExactPath results come from the expansion arithmetic fallback.
	ExactPath
)

func (p Path) String() string {
	switch p {
	case FastPath:
		return "fast"
	case ExactPath:
		return "exact"
	}
	return "unknown"
}

// Orient2DPath is Orient2D, but also reports which path produced the result.
func Orient2DPath(a, b, c Point2) (float64, Path) {
	if det, ok := orient2DFast(a, b, c); ok {
		return det, FastPath
	}
	return orient2DExact(a, b, c), ExactPath
}

// Orient3DPath is Orient3D, but also reports which path produced the result.
func Orient3DPath(a, b, c, d Point3) (float64, Path) {
	if det, ok := orient3DFast(a, b, c, d); ok {
		return det, FastPath
	}
	return orient3DExact(a, b, c, d), ExactPath
}

// Orientation is the classification of a predicate result. The values are
// the sign of the result. The names describe the 2D predicate; for Orient3D,
// Counterclockwise means above the plane, Clockwise means below, and Collinear
// means coplanar.
type Orientation int

const (
	Counterclockwise Orientation = -1
	Collinear        Orientation = 0
	Clockwise        Orientation = 1
)

// Classify turns a result from one of the predicates into an Orientation.
func Classify(det float64) Orientation {
	switch {
	case det < 0:
		return Counterclockwise
	case det > 0:
		return Clockwise
	}
	return Collinear
}

func (o Orientation) String() string {
	switch o {
	case Counterclockwise:
		return "counterclockwise"
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	}
	return "unknown"
}
