package advanced

// Error bound constants for the fast paths. These come from a forward error
// analysis of the exact operation sequences in orient2DFast and orient3DFast,
// so they must change if those sequences ever do.
const (
	// Epsilon is the unit round-off for float64, 2^-53 (1.1102230246251565e-16).
	// It is written as a hex literal so the constants below are computed from
	// exactly the value the analysis assumes.
	Epsilon = 0x1p-53

	// ErrBound3 bounds the relative error of the 2D determinant, which has
	// three points and two products.
	ErrBound3 = (3.0 + 16.0*Epsilon) * Epsilon

	// ErrBound4 bounds the relative error of the 3D determinant, which has four
	// points and three weighted minors.
	ErrBound4 = (7.0 + 56.0*Epsilon) * Epsilon
)
