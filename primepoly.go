package reedsolomon

// FindPrimePolys searches for irreducible (primitive, in the sense needed to
// build a full-period GF(2^m) table) polynomials of degree m, usable as the
// prim parameter of NewField.
//
// Candidates are the odd integers in (q, 2q) (even candidates can never be
// irreducible: they'd have x as a factor). For each candidate the table
// build is simulated exactly as NewField does it; a candidate is accepted
// iff alpha generates the whole nonzero field under it (no repeats, no
// value ever produced outside [1, q-1]).
//
// If fast is set, candidates are restricted to those that are themselves
// prime numbers below 2q (a cheap sieve — true GF(2) irreducibility is a
// stronger condition, but restricting the search space to odd primes is a
// long-standing practical heuristic that finds a valid candidate quickly in
// all known RS use cases). If single is set, the search stops and returns
// after the first success.
func FindPrimePolys(alpha int, m uint, fast, single bool) []int {
	q := 1 << m
	var found []int

	isPrime := func(n int) bool {
		if n < 2 {
			return false
		}
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}

	for cand := q + 1; cand < 2*q; cand += 2 {
		if fast && !isPrime(cand) {
			continue
		}
		if primePolyWorks(cand, alpha, q) {
			found = append(found, cand)
			if single {
				return found
			}
		}
	}
	return found
}

func primePolyWorks(prim, alpha, q int) bool {
	charac := q - 1
	seen := make([]bool, q)
	x := 1
	for i := 0; i < charac; i++ {
		if x <= 0 || x > charac || seen[x] {
			return false
		}
		seen[x] = true
		x = carrylessMulReduce(x, alpha, prim, q)
	}
	return x == 1
}
