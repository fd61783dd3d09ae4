package advanced

import "github.com/osuushi/robust/expansion"

// The exact paths rebuild the determinant from the original coordinates (not
// the rounded differences the fast paths use) as an expansion. Positive and
// negative terms are collected separately and subtracted once at the end.
// Since the result is an expansion in increasing order of magnitude, its last
// component has the sign of the determinant.

// cross returns p.y*q.x - q.y*p.x exactly. In terms of the usual 2x2 minor
// this is -(p.x*q.y - p.y*q.x).
func cross(px, py, qx, qy float64) expansion.Expansion {
	return expansion.Sum(
		expansion.TwoProduct(py, qx),
		expansion.TwoProduct(-qy, px),
	)
}

// Swapping two points negates the determinant, but the component returned is
// rounded differently depending on the order the terms were accumulated in.
// Every permutation of the same points is evaluated in one canonical order
// (lexicographic by coordinates) and the permutation's parity is applied
// afterwards, so odd permutations give exact negatives and even ones give
// identical results.

// canonicalOrder sorts the indexes 0..n-1 by less with an insertion sort and
// returns them along with -1 for an odd number of swaps or +1 for even.
func canonicalOrder(n int, less func(i, j int) bool) ([]int, float64) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	parity := 1.0
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
			parity = -parity
		}
	}
	return order, parity
}

func lexLess(p, q []float64) bool {
	for i := range p {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}

// Zero stays positive zero
func applyParity(parity, det float64) float64 {
	if det == 0 {
		return 0
	}
	return parity * det
}

func orient2DExact(a, b, c Point2) float64 {
	points := [3]Point2{a, b, c}
	order, parity := canonicalOrder(len(points), func(i, j int) bool {
		return lexLess(points[i][:], points[j][:])
	})
	return applyParity(parity, orient2DExactOrdered(points[order[0]], points[order[1]], points[order[2]]))
}

func orient2DExactOrdered(a, b, c Point2) float64 {
	p := expansion.Sum(
		cross(b[0], b[1], c[0], c[1]),
		cross(a[0], a[1], b[0], b[1]),
	)
	n := cross(a[0], a[1], c[0], c[1])
	return expansion.Subtract(p, n).MostSignificant()
}

// cofactor is the negated 3x3 determinant of the rows p, q, r, expanded along
// the z column.
func cofactor(p, q, r Point3) expansion.Expansion {
	return expansion.Sum(
		expansion.Scale(cross(q[0], q[1], r[0], r[1]), p[2]),
		expansion.Sum(
			expansion.Scale(cross(p[0], p[1], r[0], r[1]), -q[2]),
			expansion.Scale(cross(p[0], p[1], q[0], q[1]), r[2]),
		),
	)
}

// orient3DExact evaluates the 4x4 determinant whose rows are the points with a
// trailing 1. Subtracting d's row from the others shows that this equals the
// 3x3 determinant of a-d, b-d, c-d that orient3DFast estimates.
func orient3DExact(a, b, c, d Point3) float64 {
	points := [4]Point3{a, b, c, d}
	order, parity := canonicalOrder(len(points), func(i, j int) bool {
		return lexLess(points[i][:], points[j][:])
	})
	return applyParity(parity, orient3DExactOrdered(points[order[0]], points[order[1]], points[order[2]], points[order[3]]))
}

func orient3DExactOrdered(a, b, c, d Point3) float64 {
	p := expansion.Sum(cofactor(b, c, d), cofactor(a, b, d))
	n := expansion.Sum(cofactor(a, c, d), cofactor(a, b, c))
	return expansion.Subtract(p, n).MostSignificant()
}
