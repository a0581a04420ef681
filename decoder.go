package reedsolomon

import "errors"

// decodeResult is the outcome of decoding a single chunk.
type decodeResult struct {
	Message       []int
	FullChunk     []int
	ErrataPos     []int
}

// decodeChunk runs the full errors-and-erasures decode pipeline against a
// single received chunk r (length nmess, high-degree-first: r[0] is the
// first transmitted symbol). erasePos lists known-corrupt positions
// (0-indexed into r); onlyErasures restricts correction to exactly those
// positions. chunkIdx is carried only for DecodeError reporting.
//
// Throughout, a "locator" for array position p is X_p = alpha^(nmess-1-p),
// the exponent used both for erasures and for errors found by Chien search.
// Berlekamp–Massey and Chien search operate on the high-degree-first
// error-locator polynomial Λ built the same way the generator polynomial is
// (leading coefficient first, constant term 1 last); the errata evaluator Ω
// is instead built and evaluated in ascending (low-degree-first) form —
// the one place this pipeline crosses coefficient-order conventions, so the
// reversal is kept as an explicit, isolated step.
func (f *Field) decodeChunk(r []int, nsym, fcr int, erasePos []int, onlyErasures bool, chunkIdx int) (*decodeResult, error) {
	nmess := len(r)
	if nmess < nsym {
		return nil, &InputError{Msg: "received chunk shorter than nsym, cannot hold a valid codeword"}
	}
	if len(erasePos) > nsym {
		return nil, &InputError{Msg: msgTooManyErasuresOnly}
	}
	for _, e := range erasePos {
		if e < 0 || e >= nmess {
			return nil, &InputError{Msg: "erasure position out of range"}
		}
	}

	work := make([]int, nmess)
	copy(work, r)
	for _, e := range erasePos {
		work[e] = 0
	}

	synd := f.computeSyndromes(work, nsym, fcr)
	clean := true
	for _, s := range synd {
		if s != 0 {
			clean = false
			break
		}
	}

	if clean {
		return &decodeResult{
			Message:   append([]int{}, work[:nmess-nsym]...),
			FullChunk: work,
			ErrataPos: append([]int{}, erasePos...),
		}, nil
	}

	var errataPos []int
	var errataLoc Poly

	if onlyErasures {
		errataPos = append([]int{}, erasePos...)
		errataLoc = f.errataLocator(errataPos, nmess)
	} else {
		fsynd := f.forneySyndromes(synd, erasePos, nmess)

		errLoc, err := f.berlekampMassey(fsynd, nsym, len(erasePos))
		if err != nil {
			return nil, &DecodeError{Stage: "berlekamp-massey", Chunk: chunkIdx, Msg: err.Error()}
		}

		foundPos, err := f.chienSearch(errLoc, nmess)
		if err != nil {
			return nil, &DecodeError{Stage: "chien-search", Chunk: chunkIdx, Msg: err.Error()}
		}

		errataPos = append(append([]int{}, erasePos...), foundPos...)
		errataLoc = f.errataLocator(errataPos, nmess)
	}

	omegaAsc := f.errataEvaluator(synd, errataLoc, nsym)

	delta := make([]int, nmess)
	for _, p := range errataPos {
		magnitude, err := f.forneyMagnitude(omegaAsc, errataPos, p, nmess, fcr)
		if err != nil {
			return nil, &DecodeError{Stage: "forney", Chunk: chunkIdx, Msg: err.Error()}
		}
		delta[p] = magnitude
	}

	corrected := make([]int, nmess)
	for i := range work {
		corrected[i] = work[i] ^ delta[i]
	}

	for j := 0; j < nsym; j++ {
		if f.PolyEval(corrected, f.Exp(j+fcr)) != 0 {
			return nil, &DecodeError{Stage: "verify", Chunk: chunkIdx, Msg: msgUncorrectable}
		}
	}

	return &decodeResult{
		Message:   corrected[:nmess-nsym],
		FullChunk: corrected,
		ErrataPos: errataPos,
	}, nil
}

// computeSyndromes evaluates r at alpha^(j+fcr) for j in [0,nsym), the
// syndrome sequence used both to detect a clean chunk and to seed
// Berlekamp–Massey; shared with Codec.Check so the two never disagree on
// what "clean" means.
func (f *Field) computeSyndromes(r []int, nsym, fcr int) []int {
	synd := make([]int, nsym)
	for j := range synd {
		synd[j] = f.PolyEval(r, f.Exp(j+fcr))
	}
	return synd
}

// locatorExp returns the exponent of alpha such that X_p = alpha^locatorExp(p),
// the locator value associated with array position p.
func locatorExp(p, nmess int) int { return nmess - 1 - p }

// errataLocator builds Π_{p in pos} (1 + X_p x), high-degree-first. The same
// product form is used for the erasure-only locator and for the combined
// errata locator once Chien search has found the unknown error positions.
func (f *Field) errataLocator(pos []int, nmess int) Poly {
	loc := Poly{1}
	for _, p := range pos {
		x := f.Exp(locatorExp(p, nmess))
		loc = f.PolyMul(loc, Poly{x, 1})
	}
	return loc
}

// forneySyndromes folds known-erasure contributions out of the syndrome
// sequence so Berlekamp–Massey only has to find the unknown errors.
func (f *Field) forneySyndromes(synd []int, erasePos []int, nmess int) []int {
	fsynd := append([]int{}, synd...)
	for _, e := range erasePos {
		x := f.Exp(locatorExp(e, nmess))
		for j := 0; j < len(fsynd)-1; j++ {
			fsynd[j] = f.Mul(fsynd[j], x) ^ fsynd[j+1]
		}
	}
	return fsynd
}

// berlekampMassey runs the BM iteration over the (Forney-folded) syndrome
// sequence to find the error-locator polynomial Λ, high-degree-first. It
// returns an error when the locator's degree errs gives
// (errs-eraseCount)*2+eraseCount > nsym. Appending a zero to a high-degree-first
// polynomial multiplies it by x — the standard degree-increasing shift each
// BM iteration performs.
func (f *Field) berlekampMassey(fsynd []int, nsym, eraseCount int) (Poly, error) {
	errLoc := Poly{1}
	oldLoc := Poly{1}

	iterations := nsym - eraseCount
	for i := 0; i < iterations; i++ {
		k := i
		delta := fsynd[k]
		for j := 1; j < len(errLoc); j++ {
			if k-j < 0 {
				break
			}
			delta ^= f.Mul(errLoc[len(errLoc)-1-j], fsynd[k-j])
		}
		oldLoc = append(oldLoc, 0)
		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				newLoc := f.PolyScale(oldLoc, delta)
				oldLoc = f.PolyScale(errLoc, f.Inv(delta))
				errLoc = newLoc
			}
			errLoc = f.PolyAdd(errLoc, f.PolyScale(oldLoc, delta))
		}
	}

	errLoc = polyStripLeadingZeros(errLoc)
	errs := len(errLoc) - 1
	if (errs-eraseCount)*2+eraseCount > nsym {
		return nil, errors.New(msgTooManyErrors)
	}
	return errLoc, nil
}

// chienSearch brute-force evaluates Λ at alpha^(-i) for i in [0,nmess) and
// reports an error position nmess-1-i for every root found. The test point
// is alpha^(-i), not alpha^(+i): working through locatorExp against the
// root-to-position mapping above shows the test point must carry a negative
// sign for that mapping to hold for every chunk length, not just a
// full-length one; Field.Exp already normalizes negative exponents modulo
// charac, so this is a sign flip, not a structural change.
func (f *Field) chienSearch(errLoc Poly, nmess int) ([]int, error) {
	wantRoots := len(errLoc) - 1
	var pos []int
	for i := 0; i < nmess; i++ {
		x := f.Exp(-i)
		if f.PolyEval(errLoc, x) == 0 {
			pos = append(pos, nmess-1-i)
		}
	}
	if len(pos) != wantRoots {
		return nil, errors.New(msgChienMismatch)
	}
	return pos, nil
}

// errataEvaluator computes Ω(x) = S(x)·Λ(x) mod x^(nsym+1) in ascending
// (low-degree-first) form: S(x) = 0 + S_0 x + S_1 x^2 + ... (the leading
// zero term is the conventional syndrome shift, S[0] = 0; Berlekamp–Massey
// itself works on the unshifted Forney syndromes), and Λ is the errata
// locator reversed into ascending form to match.
func (f *Field) errataEvaluator(synd []int, errataLoc Poly, nsym int) []int {
	sAsc := make([]int, nsym+1)
	copy(sAsc[1:], synd)

	lambdaAsc := polyReverse(errataLoc)

	full := make([]int, len(sAsc)+len(lambdaAsc)-1)
	for i, sc := range sAsc {
		if sc == 0 {
			continue
		}
		for j, lc := range lambdaAsc {
			if lc == 0 {
				continue
			}
			full[i+j] ^= f.Mul(sc, lc)
		}
	}
	if len(full) > nsym+1 {
		full = full[:nsym+1]
	}
	return full
}

// evalAscending evaluates a low-degree-first (ascending) coefficient array
// p at x: sum_i p[i] * x^i.
func (f *Field) evalAscending(p []int, x int) int {
	y := 0
	for i := len(p) - 1; i >= 0; i-- {
		y = f.Mul(y, x) ^ p[i]
	}
	return y
}

// forneyMagnitude computes the error/erasure value at errata position p via
// the Forney algorithm.
func (f *Field) forneyMagnitude(omegaAsc []int, errataPos []int, p, nmess, fcr int) (int, error) {
	x := f.Exp(locatorExp(p, nmess))
	xInv := f.Inv(x)

	denom := 1
	for _, q := range errataPos {
		if q == p {
			continue
		}
		xq := f.Exp(locatorExp(q, nmess))
		denom = f.Mul(denom, 1^f.Mul(xInv, xq))
	}
	if denom == 0 {
		return 0, errors.New(msgForneyDegenerate)
	}

	numerator := f.Mul(f.Pow(x, 1-fcr), f.evalAscending(omegaAsc, xInv))
	mag, err := f.Div(numerator, denom)
	if err != nil {
		return 0, err
	}
	return mag, nil
}
