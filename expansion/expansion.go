// Package expansion implements exact floating point arithmetic on expansions:
// values represented as an unevaluated sum of float64 components.
//
// Every operation here is error-free. The result of each one is an expansion
// whose components are non-overlapping and sorted by increasing magnitude,
// with zero components removed. Because of that ordering, the sign of the
// whole value is the sign of the last component, and the last component is
// also a good approximation of the value.
//
// The algorithms are the ones described by Shewchuk in "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates". They assume
// IEEE 754 round-to-nearest-even arithmetic, which Go guarantees, and that no
// intermediate result overflows or underflows.
package expansion

import "math"

// Expansion is an exact value stored as a sum of float64 components ordered
// by increasing magnitude. The zero value of the number is {0}. A nil or empty
// Expansion is also treated as zero by the functions in this package.
type Expansion []float64

// Zero returns the canonical representation of zero.
func Zero() Expansion {
	return Expansion{0}
}

// FromFloat returns the single component expansion of f.
func FromFloat(f float64) Expansion {
	return Expansion{f}
}

// FastTwoSum returns the rounded sum of a and b together with the rounding
// error, so that sum+err == a+b exactly. It requires |a| >= |b| (or a == 0).
func FastTwoSum(a, b float64) (sum, err float64) {
	sum = a + b
	bVirtual := sum - a
	err = b - bVirtual
	return sum, err
}

// TwoSum is FastTwoSum without the ordering requirement on its arguments.
func TwoSum(a, b float64) (sum, err float64) {
	sum = a + b
	bVirtual := sum - a
	aVirtual := sum - bVirtual
	bRound := b - bVirtual
	aRound := a - aVirtual
	err = aRound + bRound
	return sum, err
}

// twoProduct returns the rounded product and its rounding error. The FMA
// computes a*b-product with a single rounding, and since the error of a
// product is always representable, that rounding is exact.
func twoProduct(a, b float64) (product, err float64) {
	product = a * b
	err = math.FMA(a, b, -product)
	return product, err
}

// TwoProduct returns a*b exactly as a two component expansion. The low
// component may be zero, in which case it is kept so that the result always
// has length two.
func TwoProduct(a, b float64) Expansion {
	product, err := twoProduct(a, b)
	return Expansion{err, product}
}

// Sum returns e+f exactly. Both inputs must be non-overlapping expansions in
// increasing order of magnitude, and so is the result.
func Sum(e, f Expansion) Expansion {
	if len(e) == 0 {
		e = Zero()
	}
	if len(f) == 0 {
		f = Zero()
	}
	h := make(Expansion, 0, len(e)+len(f))

	// This is a merge of the two component lists by magnitude, where each
	// component is folded into a running sum Q. Whatever falls out of Q as
	// rounding error is small enough to be emitted as an output component.
	ei, fi := 0, 0
	enow, fnow := e[0], f[0]
	var q float64
	if (fnow > enow) == (fnow > -enow) {
		q = enow
		ei++
	} else {
		q = fnow
		fi++
	}

	var hh float64
	if ei < len(e) && fi < len(f) {
		enow, fnow = e[ei], f[fi]
		if (fnow > enow) == (fnow > -enow) {
			q, hh = FastTwoSum(enow, q)
			ei++
		} else {
			q, hh = FastTwoSum(fnow, q)
			fi++
		}
		if hh != 0 {
			h = append(h, hh)
		}
		for ei < len(e) && fi < len(f) {
			enow, fnow = e[ei], f[fi]
			if (fnow > enow) == (fnow > -enow) {
				q, hh = TwoSum(q, enow)
				ei++
			} else {
				q, hh = TwoSum(q, fnow)
				fi++
			}
			if hh != 0 {
				h = append(h, hh)
			}
		}
	}
	for ; ei < len(e); ei++ {
		q, hh = TwoSum(q, e[ei])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	for ; fi < len(f); fi++ {
		q, hh = TwoSum(q, f[fi])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

// Negate returns -e. Negation is exact and keeps every invariant.
func Negate(e Expansion) Expansion {
	n := make(Expansion, len(e))
	for i, c := range e {
		n[i] = -c
	}
	return n
}

// Subtract returns e-f exactly.
func Subtract(e, f Expansion) Expansion {
	return Sum(e, Negate(f))
}

// Scale returns e*b exactly.
func Scale(e Expansion, b float64) Expansion {
	if len(e) == 0 {
		return Zero()
	}
	h := make(Expansion, 0, 2*len(e))

	q, hh := twoProduct(e[0], b)
	if hh != 0 {
		h = append(h, hh)
	}
	for _, c := range e[1:] {
		product1, product0 := twoProduct(c, b)
		var sum float64
		sum, hh = TwoSum(q, product0)
		if hh != 0 {
			h = append(h, hh)
		}
		q, hh = FastTwoSum(product1, sum)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

// MostSignificant returns the largest magnitude component, which has the
// sign of the whole expansion.
func (e Expansion) MostSignificant() float64 {
	if len(e) == 0 {
		return 0
	}
	return e[len(e)-1]
}

// Sign returns -1, 0 or +1.
func (e Expansion) Sign() int {
	switch ms := e.MostSignificant(); {
	case ms > 0:
		return 1
	case ms < 0:
		return -1
	}
	return 0
}

// Estimate approximates the value of e by summing its components from the
// smallest up.
func (e Expansion) Estimate() float64 {
	var sum float64
	for _, c := range e {
		sum += c
	}
	return sum
}
