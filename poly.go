package reedsolomon

// Poly is a dense coefficient vector over the field, high-degree-first:
// Poly{c0, c1, ..., cn} represents c0*x^n + c1*x^(n-1) + ... + cn.
// This is the convention used for encoding, synthetic division and the
// decoder's Berlekamp–Massey locator. Only the decoder's errata evaluator
// works in the low-degree-first convention; the two are never mixed within
// one function, and reversal is an explicit step where code crosses the
// boundary.
type Poly []int

// PolyScale returns p with every coefficient multiplied by s.
func (f *Field) PolyScale(p Poly, s int) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = f.Mul(c, s)
	}
	return out
}

// PolyAdd returns p+q (high-degree-first), right-aligning the shorter
// operand by padding its left with zeros.
func (f *Field) PolyAdd(p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := 0; i < len(p); i++ {
		out[i+n-len(p)] ^= p[i]
	}
	for i := 0; i < len(q); i++ {
		out[i+n-len(q)] ^= q[i]
	}
	return out
}

// PolyMul returns p*q (high-degree-first), length len(p)+len(q)-1.
func (f *Field) PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	logP := make([]int, len(p))
	haveLog := make([]bool, len(p))
	for i, c := range p {
		if c != 0 {
			logP[i] = f.logTab[c]
			haveLog[i] = true
		}
	}
	for i := range p {
		if !haveLog[i] {
			continue
		}
		for j, qc := range q {
			if qc == 0 {
				continue
			}
			out[i+j] ^= f.expTab[logP[i]+f.logTab[qc]]
		}
	}
	return out
}

// PolyEval evaluates p (high-degree-first) at x via Horner's method.
func (f *Field) PolyEval(p Poly, x int) int {
	if len(p) == 0 {
		return 0
	}
	y := p[0]
	for i := 1; i < len(p); i++ {
		y = f.Mul(y, x) ^ p[i]
	}
	return y
}

// PolyDivMod performs extended synthetic division of dividend by a monic
// divisor (both high-degree-first), returning (quotient, remainder). The
// working buffer is a copy of dividend; after the loop, the last
// len(divisor)-1 elements are the remainder and the preceding elements are
// the quotient.
func (f *Field) PolyDivMod(dividend, divisor Poly) (quotient, remainder Poly) {
	work := make(Poly, len(dividend))
	copy(work, dividend)

	normalizer := divisor[0]
	for i := 0; i <= len(dividend)-len(divisor); i++ {
		coef := work[i]
		if coef == 0 {
			continue
		}
		if normalizer != 1 {
			var err error
			coef, err = f.Div(coef, normalizer)
			if err != nil {
				coef = 0
			}
			work[i] = coef
		}
		for j := 1; j < len(divisor); j++ {
			if divisor[j] != 0 {
				work[i+j] ^= f.Mul(divisor[j], coef)
			}
		}
	}
	splitAt := len(dividend) - (len(divisor) - 1)
	if splitAt < 0 {
		splitAt = 0
	}
	return work[:splitAt], work[splitAt:]
}

// PolyDivModRemainder is the remainder-only variant of PolyDivMod, for
// callers (the encoder) that never need the quotient.
func (f *Field) PolyDivModRemainder(dividend, divisor Poly) Poly {
	_, r := f.PolyDivMod(dividend, divisor)
	return r
}

// polyReverse returns a new Poly with coefficients in the opposite order,
// the explicit adapter used at convention boundaries.
func polyReverse(p Poly) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}

// polyStripLeadingZeros removes leading (high-degree) zero coefficients,
// leaving at least one coefficient.
func polyStripLeadingZeros(p Poly) Poly {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:]
}
