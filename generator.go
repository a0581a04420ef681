package reedsolomon

// GeneratorPoly builds the RS generator polynomial
// g(x) = Π_{i=0..nsym-1} (x - alpha^(i+fcr)), high-degree-first, monic,
// degree nsym.
func (f *Field) GeneratorPoly(nsym, fcr int) Poly {
	g := Poly{1}
	for i := 0; i < nsym; i++ {
		root := f.Exp(i + fcr)
		g = f.PolyMul(g, Poly{1, root})
	}
	return g
}

// GeneratorPolyAll returns a slice of length nmax+1 where entry k is
// GeneratorPoly(k, fcr), enabling variable-rate encoding without
// re-deriving the generator on every call.
func (f *Field) GeneratorPolyAll(nmax, fcr int) []Poly {
	all := make([]Poly, nmax+1)
	g := Poly{1}
	all[0] = g
	for k := 1; k <= nmax; k++ {
		root := f.Exp(k - 1 + fcr)
		g = f.PolyMul(g, Poly{1, root})
		all[k] = g
	}
	return all
}
