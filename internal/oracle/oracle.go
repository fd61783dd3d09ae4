// Package oracle computes orientation determinants with arbitrary precision,
// independently of the expansion arithmetic. It is slow and only meant as a
// reference for checking the adaptive predicates.
package oracle

import (
	"math/big"

	"github.com/golang/geo/r3"
)

// Det2 returns the exact value of the 2D orientation determinant
// (a.y-c.y)(b.x-c.x) - (a.x-c.x)(b.y-c.y).
func Det2(a, b, c [2]float64) *big.Float {
	// With z = 0, the z component of (a-c)×(b-c) is the same determinant with
	// the opposite sign.
	ac := precise(a[0], a[1], 0).Sub(precise(c[0], c[1], 0))
	bc := precise(b[0], b[1], 0).Sub(precise(c[0], c[1], 0))
	z := ac.Cross(bc).Z
	return new(big.Float).Neg(z)
}

// Det3 returns the exact value of the 3x3 determinant with rows a-d, b-d, c-d.
func Det3(a, b, c, d [3]float64) *big.Float {
	pd := precise(d[0], d[1], d[2])
	ad := precise(a[0], a[1], a[2]).Sub(pd)
	bd := precise(b[0], b[1], b[2]).Sub(pd)
	cd := precise(c[0], c[1], c[2]).Sub(pd)
	return ad.Dot(bd.Cross(cd))
}

// Sign2 is the sign of Det2: -1, 0 or +1.
func Sign2(a, b, c [2]float64) int {
	return Det2(a, b, c).Sign()
}

// Sign3 is the sign of Det3: -1, 0 or +1.
func Sign3(a, b, c, d [3]float64) int {
	return Det3(a, b, c, d).Sign()
}

// Sum returns the exact sum of float64 values, for checking expansions.
func Sum(components []float64) *big.Float {
	sum := new(big.Float).SetPrec(big.MaxPrec)
	for _, c := range components {
		sum.Add(sum, new(big.Float).SetPrec(big.MaxPrec).SetFloat64(c))
	}
	return sum
}

// Product returns the exact product of two float64 values.
func Product(x, y float64) *big.Float {
	p := new(big.Float).SetPrec(big.MaxPrec).SetFloat64(x)
	return p.Mul(p, new(big.Float).SetPrec(big.MaxPrec).SetFloat64(y))
}

func precise(x, y, z float64) r3.PreciseVector {
	return r3.PreciseVectorFromVector(r3.Vector{X: x, Y: y, Z: z})
}
