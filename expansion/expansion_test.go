package expansion

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/osuushi/robust/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoSum(t *testing.T) {
	sum, err := TwoSum(1, 1e-20)
	assert.Equal(t, 1.0, sum)
	assert.Equal(t, 1e-20, err)

	// Order doesn't matter for TwoSum
	sum, err = TwoSum(1e-20, 1)
	assert.Equal(t, 1.0, sum)
	assert.Equal(t, 1e-20, err)

	// Variables, so the sum is rounded at run time rather than folded exactly
	a, b := 0.2, 0.1
	sum, err = FastTwoSum(a, b)
	assert.Equal(t, a+b, sum)
	assert.NotZero(t, err)
	assertExact(t, Expansion{err, sum}, Expansion{b, a})
}

func TestTwoProduct(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.1},
		{1.0 / 3, 3},
		{123456789.123, 987654321.987},
		{-0.7, 1e10},
		{2, 8},
		{0, 5},
	}
	for _, pair := range pairs {
		e := TwoProduct(pair[0], pair[1])
		require.Len(t, e, 2)
		assert.Equal(t, pair[0]*pair[1], e[1], "high component is the rounded product")
		assert.Zero(t, oracle.Sum(e).Cmp(oracle.Product(pair[0], pair[1])), "%v * %v", pair[0], pair[1])
	}

	// Products of small integers are exact, so the error term is zero
	assert.Equal(t, Expansion{0, 16}, TwoProduct(2, 8))
}

func TestSum(t *testing.T) {
	t.Run("exact and well formed", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 500; i++ {
			e := randomExpansion(rng)
			f := randomExpansion(rng)
			h := Sum(e, f)
			assertWellFormed(t, h)
			assertExact(t, h, append(append(Expansion{}, e...), f...))
		}
	})

	t.Run("cancellation to zero", func(t *testing.T) {
		e := TwoProduct(0.1, 0.3)
		h := Sum(e, Negate(e))
		assert.Equal(t, Expansion{0}, h)
		assert.Equal(t, 0, h.Sign())
	})

	t.Run("empty inputs are zero", func(t *testing.T) {
		assert.Equal(t, Expansion{3}, Sum(nil, FromFloat(3)))
		assert.Equal(t, Expansion{0}, Sum(nil, nil))
	})

	t.Run("carries past the doubles", func(t *testing.T) {
		// 1 + 2^-80 doesn't fit in a float64, but fits in an expansion
		h := Sum(FromFloat(1), FromFloat(math.Ldexp(1, -80)))
		assert.Equal(t, Expansion{math.Ldexp(1, -80), 1}, h)
		assert.Equal(t, 1.0, h.MostSignificant())
	})
}

func TestSubtract(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		e := randomExpansion(rng)
		f := randomExpansion(rng)
		h := Subtract(e, f)
		assertWellFormed(t, h)
		assertExact(t, h, append(append(Expansion{}, e...), Negate(f)...))
		assert.Equal(t, Expansion{0}, Subtract(e, e))
	}
}

func TestScale(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		e := randomExpansion(rng)
		b := (rng.Float64() - 0.5) * math.Ldexp(1, rng.Intn(40)-20)
		h := Scale(e, b)
		assertWellFormed(t, h)

		want := oracle.Sum(e)
		want.Mul(want, oracle.Sum(Expansion{b}))
		assert.Zero(t, oracle.Sum(h).Cmp(want))
	}

	assert.Equal(t, Expansion{0}, Scale(TwoProduct(0.1, 0.2), 0))
	assert.Equal(t, Expansion{0}, Scale(nil, 2))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sum(FromFloat(1), FromFloat(-1e-30)).Sign())
	assert.Equal(t, -1, Sum(FromFloat(-1), FromFloat(1e-30)).Sign())
	assert.Equal(t, 0, Zero().Sign())
	assert.Equal(t, 0, Expansion(nil).Sign())
}

func TestEstimate(t *testing.T) {
	e := Sum(TwoProduct(0.1, 0.1), TwoProduct(0.2, 0.2))
	assert.InDelta(t, 0.05, e.Estimate(), 1e-15)
	assert.Equal(t, 0.0, Expansion(nil).Estimate())
}

// Helpers

// Sums and differences of a few products, like the ones the predicates build
func randomExpansion(rng *rand.Rand) Expansion {
	randomFloat := func() float64 {
		return (rng.Float64() - 0.5) * math.Ldexp(1, rng.Intn(60)-30)
	}
	e := TwoProduct(randomFloat(), randomFloat())
	for n := rng.Intn(4); n > 0; n-- {
		e = Sum(e, TwoProduct(randomFloat(), randomFloat()))
	}
	return e
}

func assertExact(t *testing.T, actual Expansion, components Expansion) {
	t.Helper()
	assert.Zero(t, oracle.Sum(actual).Cmp(oracle.Sum(components)), "expansion %v has the wrong value", actual)
}

// An expansion is well formed if it has no zero components (unless it is
// exactly {0}), and each component's lowest set bit is above the previous
// component's highest set bit.
func assertWellFormed(t *testing.T, e Expansion) {
	t.Helper()
	require.NotEmpty(t, e)
	if len(e) == 1 {
		return
	}
	for i, c := range e {
		require.NotZero(t, c, "zero component at %d in %v", i, e)
	}
	for i := 1; i < len(e); i++ {
		assert.Less(t, highBit(e[i-1]), lowBit(e[i]), "components %d and %d overlap in %v", i-1, i, e)
	}
}

func mantissaAndExponent(x float64) (uint64, int) {
	b := math.Float64bits(x)
	exp := int(b>>52) & 0x7ff
	mant := b & (1<<52 - 1)
	if exp == 0 {
		// Subnormal
		return mant, -1074
	}
	return mant | 1<<52, exp - 1075
}

func lowBit(x float64) int {
	mant, exp := mantissaAndExponent(x)
	return exp + bits.TrailingZeros64(mant)
}

func highBit(x float64) int {
	mant, exp := mantissaAndExponent(x)
	return exp + 63 - bits.LeadingZeros64(mant)
}
