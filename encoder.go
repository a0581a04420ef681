package reedsolomon

// EncodeChunk appends nsym parity symbols to msg using generator polynomial
// g (monic, degree nsym, high-degree-first). It returns msg||parity as a
// freshly allocated slice of length len(msg)+nsym.
//
// The parity block is the remainder of dividing msg*x^nsym by g — the same
// extended synthetic division PolyDivModRemainder performs, with msg padded
// by nsym zeros standing in for the x^nsym shift.
func (f *Field) EncodeChunk(msg []int, nsym int, g Poly) ([]int, error) {
	n := len(msg) + nsym
	if n > f.charac {
		return nil, &InputError{Msg: "message too long for the field (len(msg)+nsym exceeds 2^m-1)"}
	}

	dividend := make(Poly, n)
	copy(dividend, msg)
	remainder := f.PolyDivModRemainder(dividend, g)

	out := make([]int, n)
	copy(out, msg)
	copy(out[len(msg):], remainder)
	return out, nil
}
