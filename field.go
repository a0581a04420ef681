package reedsolomon

import "fmt"

// Field holds the exp/log tables for GF(2^m) under a chosen primitive
// polynomial and generator.
//
// A Field is immutable once constructed: NewField builds both tables in one
// pass and never touches them again. Multiple Fields, each with different
// parameters, may be used concurrently by different Codecs — each Field owns
// its own tables, so there is no shared mutable state to guard between
// differently-parameterized codecs running at the same time.
type Field struct {
	m       uint   // field exponent, 3..16
	q       int    // 2^m
	charac  int    // q - 1
	alpha   int    // generator
	prim    int    // primitive polynomial
	expTab  []int  // length 2*charac, expTab[i] = alpha^i, doubled to avoid modulo on Mul
	logTab  []int  // length q, logTab[expTab[i]] = i for i in [0, charac); logTab[0] unused
}

// NewField constructs the GF(2^m) tables for the given primitive polynomial
// prim and generator alpha. It returns an error rather than panicking if
// prim is not irreducible of degree m or alpha does not generate the full
// multiplicative group — both are configuration errors.
func NewField(m uint, prim, alpha int) (*Field, error) {
	if m < 3 || m > 16 {
		return nil, &ConfigError{Msg: fmt.Sprintf("field exponent m=%d out of range [3,16]", m)}
	}
	q := 1 << m
	charac := q - 1

	if prim <= q || prim >= 2*q {
		return nil, &ConfigError{Msg: fmt.Sprintf("prim=0x%x out of range (%d, %d) for m=%d", prim, q, 2*q, m)}
	}
	if alpha <= 0 || alpha >= q {
		return nil, &ConfigError{Msg: fmt.Sprintf("generator alpha=%d out of range [1,%d)", alpha, q)}
	}

	f := &Field{
		m:      m,
		q:      q,
		charac: charac,
		alpha:  alpha,
		prim:   prim,
		expTab: make([]int, 2*charac),
		logTab: make([]int, q),
	}

	x := 1
	seen := make([]bool, q)
	for i := 0; i < charac; i++ {
		if seen[x] {
			return nil, &ConfigError{Msg: fmt.Sprintf("prim=0x%x, alpha=%d: generator cycle repeats before covering the field (not primitive)", prim, alpha)}
		}
		seen[x] = true
		f.expTab[i] = x
		f.logTab[x] = i
		x = carrylessMulReduce(x, alpha, prim, q)
	}
	for i := 0; i < charac; i++ {
		f.expTab[i+charac] = f.expTab[i]
	}
	return f, nil
}

// carrylessMulReduce computes (x * alpha) in GF(2^m) reduced by prim, via the
// Russian-peasant shift-and-XOR routine.
func carrylessMulReduce(x, alpha, prim, q int) int {
	r := 0
	a := x
	y := alpha
	for y != 0 {
		if y&1 != 0 {
			r ^= a
		}
		y >>= 1
		a <<= 1
		if a >= q {
			a ^= prim
		}
	}
	return r
}

// Q returns 2^m, the field size.
func (f *Field) Q() int { return f.q }

// Charac returns q-1, the order of the multiplicative group.
func (f *Field) Charac() int { return f.charac }

// M returns the field exponent.
func (f *Field) M() uint { return f.m }

// Add returns x+y in the field (XOR). Sub is identical in characteristic 2.
func (f *Field) Add(x, y int) int { return x ^ y }

// Sub returns x-y in the field; identical to Add in characteristic 2.
func (f *Field) Sub(x, y int) int { return x ^ y }

// Neg returns -x in the field; identical to the identity in characteristic 2.
func (f *Field) Neg(x int) int { return x }

// Mul returns x*y in the field.
func (f *Field) Mul(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	return f.expTab[f.logTab[x]+f.logTab[y]]
}

// Div returns x/y in the field. Returns an ArithError if y is zero.
func (f *Field) Div(x, y int) (int, error) {
	if y == 0 {
		return 0, &ArithError{Msg: "division by zero"}
	}
	if x == 0 {
		return 0, nil
	}
	return f.expTab[(f.logTab[x]+f.charac-f.logTab[y])%f.charac], nil
}

// Inv returns the multiplicative inverse of x. x must be nonzero; the caller
// is responsible for checking.
func (f *Field) Inv(x int) int {
	return f.expTab[f.charac-f.logTab[x]]
}

// Pow returns x^p in the field, for possibly-negative p (interpreted modulo
// charac after normalization). x must be nonzero.
func (f *Field) Pow(x, p int) int {
	e := (f.logTab[x] * p) % f.charac
	if e < 0 {
		e += f.charac
	}
	return f.expTab[e]
}

// Exp returns alpha^i, for i interpreted modulo charac (negative i wraps).
func (f *Field) Exp(i int) int {
	i %= f.charac
	if i < 0 {
		i += f.charac
	}
	return f.expTab[i]
}

// Log returns the discrete log base alpha of nonzero x.
func (f *Field) Log(x int) int {
	return f.logTab[x]
}
