package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newDefaultTestField(t testing.TB) *Field {
	f, err := NewField(8, defaultPrim, defaultGenerator)
	require.NoError(t, err)
	return f
}

func TestNewField_RejectsBadParams(t *testing.T) {
	_, err := NewField(2, defaultPrim, defaultGenerator)
	assert.Error(t, err)

	_, err = NewField(17, defaultPrim, defaultGenerator)
	assert.Error(t, err)

	_, err = NewField(8, 0x11D, 0)
	assert.Error(t, err)

	_, err = NewField(8, 0x11D, 256)
	assert.Error(t, err)

	// A non-irreducible candidate must be rejected, not silently accepted.
	_, err = NewField(8, 0x100, defaultGenerator)
	assert.Error(t, err)
}

// TestField_Invariants checks the core algebraic identities the exp/log
// tables must satisfy: exp/log are inverses, the doubled exp table
// repeats with period charac, every nonzero element has a multiplicative
// inverse, and division undoes multiplication.
func TestField_Invariants(t *testing.T) {
	f := newDefaultTestField(t)

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(1, f.Charac()).Draw(t, "x")

		assert.Equal(t, x, f.Exp(f.Log(x)), "exp[log[x]] = x")

		i := rapid.IntRange(0, f.Charac()-1).Draw(t, "i")
		assert.Equal(t, f.Exp(i), f.Exp(i+f.Charac()), "exp[i] = exp[i+charac]")

		assert.Equal(t, 1, f.Mul(x, f.Inv(x)), "mul(x, inv(x)) = 1")

		y := rapid.IntRange(1, f.Charac()).Draw(t, "y")
		product := f.Mul(x, y)
		quotient, err := f.Div(product, y)
		require.NoError(t, err)
		assert.Equal(t, x, quotient, "div(mul(x,y), y) = x")
	})
}

func TestField_DivByZero(t *testing.T) {
	f := newDefaultTestField(t)
	_, err := f.Div(5, 0)
	require.Error(t, err)
	var arithErr *ArithError
	assert.ErrorAs(t, err, &arithErr)
}

func TestField_AddIsXorAndSelfInverse(t *testing.T) {
	f := newDefaultTestField(t)
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(0, f.Charac()).Draw(t, "x")
		y := rapid.IntRange(0, f.Charac()).Draw(t, "y")
		assert.Equal(t, x^y, f.Add(x, y))
		assert.Equal(t, 0, f.Add(x, x))
	})
}

func TestFindPrimePolys_ADSBUAT(t *testing.T) {
	// ADS-B UAT uses m=8, prim=0x187 explicitly; confirm it is in fact a
	// valid primitive polynomial under generator=2.
	assert.True(t, primePolyWorks(0x187, defaultGenerator, 256))
}

func TestFindPrimePolys_NonDefaultM(t *testing.T) {
	// m != 8 forces NewCodec to search for a primitive polynomial rather
	// than use the m=8 default.
	found := FindPrimePolys(defaultGenerator, 10, true, true)
	require.NotEmpty(t, found)

	f, err := NewField(10, found[0], defaultGenerator)
	require.NoError(t, err)
	assert.Equal(t, 1023, f.Charac())
}
