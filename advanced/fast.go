package advanced

import "math"

// The fast paths evaluate the determinant in plain floating point and decide
// whether its sign can be trusted. They return the estimate and whether it was
// certified. Every product is wrapped in an explicit float64 conversion: Go is
// allowed to fuse a multiply and an add into one FMA, and the error bounds are
// derived for individually rounded products.

func orient2DFast(a, b, c Point2) (det float64, certified bool) {
	l := float64((a[1] - c[1]) * (b[0] - c[0]))
	r := float64((a[0] - c[0]) * (b[1] - c[1]))
	det = l - r

	// When l and r don't have the same sign, l-r can't cancel, so the only
	// error is the final rounding, which never changes the sign. The bound only
	// matters when both terms point the same way.
	var s float64
	if l > 0 {
		if r <= 0 {
			return det, true
		}
		s = l + r
	} else if l < 0 {
		if r >= 0 {
			return det, true
		}
		s = -(l + r)
	} else {
		return det, true
	}

	tol := ErrBound3 * s
	if det >= tol || det <= -tol {
		return det, true
	}
	return det, false
}

func orient3DFast(a, b, c, d Point3) (det float64, certified bool) {
	adx := a[0] - d[0]
	bdx := b[0] - d[0]
	cdx := c[0] - d[0]
	ady := a[1] - d[1]
	bdy := b[1] - d[1]
	cdy := c[1] - d[1]
	adz := a[2] - d[2]
	bdz := b[2] - d[2]
	cdz := c[2] - d[2]

	bdxcdy := float64(bdx * cdy)
	cdxbdy := float64(cdx * bdy)
	cdxady := float64(cdx * ady)
	adxcdy := float64(adx * cdy)
	adxbdy := float64(adx * bdy)
	bdxady := float64(bdx * ady)

	det = float64(adz*(bdxcdy-cdxbdy)) +
		float64(bdz*(cdxady-adxcdy)) +
		float64(cdz*(adxbdy-bdxady))

	// The permanent is the determinant with every term made positive. It is
	// the magnitude the rounding errors scale with.
	permanent := float64((math.Abs(bdxcdy)+math.Abs(cdxbdy))*math.Abs(adz)) +
		float64((math.Abs(cdxady)+math.Abs(adxcdy))*math.Abs(bdz)) +
		float64((math.Abs(adxbdy)+math.Abs(bdxady))*math.Abs(cdz))

	tol := ErrBound4 * permanent
	if det > tol || -det > tol {
		return det, true
	}
	return det, false
}
