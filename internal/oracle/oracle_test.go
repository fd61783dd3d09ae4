package oracle

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDet2(t *testing.T) {
	assert.Equal(t, -1, Sign2([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}))
	assert.Equal(t, 1, Sign2([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, -1}))
	assert.Equal(t, 0, Sign2([2]float64{0, 0}, [2]float64{2, 2}, [2]float64{1, 1}))

	det, _ := Det2([2]float64{0, 0}, [2]float64{4, 0}, [2]float64{0, 3}).Float64()
	assert.Equal(t, -12.0, det)

	// The true determinant is -2^-47, well inside the rounding error of a
	// float64 evaluation
	assert.Equal(t, -1, Sign2([2]float64{1, 3}, [2]float64{5, 15}, [2]float64{3, 9 + math.Ldexp(1, -49)}))
}

func TestDet3(t *testing.T) {
	o := [3]float64{0, 0, 0}
	x := [3]float64{1, 0, 0}
	y := [3]float64{0, 1, 0}
	assert.Equal(t, -1, Sign3(o, x, y, [3]float64{0, 0, 1}))
	assert.Equal(t, 1, Sign3(o, x, y, [3]float64{0, 0, -1}))
	assert.Equal(t, 0, Sign3(o, x, y, [3]float64{5, 5, 0}))

	det, _ := Det3(o, [3]float64{2, 0, 0}, [3]float64{0, 3, 0}, [3]float64{0, 0, -4}).Float64()
	assert.Equal(t, 24.0, det)
}

func TestSumAndProduct(t *testing.T) {
	// 1 + 2^-80 - 1 is lost in float64 but not here
	sum := Sum([]float64{1, math.Ldexp(1, -80), -1})
	assert.Zero(t, sum.Cmp(new(big.Float).SetFloat64(math.Ldexp(1, -80))))
	assert.Zero(t, Sum(nil).Sign())

	a := 0.1
	rounded := a * a
	p := Product(a, a)
	assert.NotZero(t, p.Cmp(new(big.Float).SetFloat64(rounded)))
	x, _ := p.Float64()
	assert.Equal(t, rounded, x)
}
