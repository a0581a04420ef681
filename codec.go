package reedsolomon

import "fmt"

// defaultPrim and defaultGenerator are the canonical "Wikiversity" RS
// parameters also used by QR Code variants.
const (
	defaultPrim      = 0x11D
	defaultGenerator = 2
	defaultCExp      = 8
)

// Codec is the chunking facade: it owns a Field and one or more generator
// polynomials and dispatches encode/decode/check/maxerrata calls to
// per-chunk operations, splitting and reassembling as needed.
//
// A Codec is immutable after construction — there is no process-wide
// mutable table to save and restore around each call; distinct Codecs may
// run concurrently without coordination.
type Codec struct {
	field *Field

	nsym      int
	nsize     int
	fcr       int
	singleGen bool

	gen    Poly   // used when singleGen
	genAll []Poly // used otherwise, indexed by nsym

	logger *debugLogger
}

// NewCodec builds a Codec from its field and chunking parameters. A zero
// value for m, prim, or generator selects the canonical defaults
// (m=8, prim=0x11D, generator=2).
func NewCodec(nsym, nsize, fcr, prim, generator int, m uint, singleGen bool) (*Codec, error) {
	if m == 0 {
		m = defaultCExp
	}
	if generator == 0 {
		generator = defaultGenerator
	}
	if prim == 0 {
		prim = defaultPrim
	}

	if nsize > 255 && m <= 8 {
		for (1 << m) < nsize+1 {
			m++
		}
	}
	if prim == defaultPrim && m != 8 {
		candidates := FindPrimePolys(generator, m, true, true)
		if len(candidates) == 0 {
			return nil, &ConfigError{Msg: fmt.Sprintf("no primitive polynomial found for m=%d, generator=%d", m, generator)}
		}
		prim = candidates[0]
	}
	if nsize == 255 && m != 8 {
		nsize = (1 << m) - 1
	}

	if nsym >= nsize {
		return nil, &ConfigError{Msg: fmt.Sprintf("nsym=%d must be less than nsize=%d", nsym, nsize)}
	}

	field, err := NewField(m, prim, generator)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		field:     field,
		nsym:      nsym,
		nsize:     nsize,
		fcr:       fcr,
		singleGen: singleGen,
		logger:    newDebugLogger(),
	}

	if singleGen {
		c.gen = field.GeneratorPoly(nsym, fcr)
	} else {
		c.genAll = field.GeneratorPolyAll(nsize, fcr)
	}

	return c, nil
}

// NewDefaultCodec builds a Codec with the given nsym and the canonical
// remaining parameters: nsize=255, fcr=0, prim=0x11D, generator=2, c_exp=8,
// single_gen=true.
func NewDefaultCodec(nsym int) (*Codec, error) {
	return NewCodec(nsym, 255, 0, defaultPrim, defaultGenerator, defaultCExp, true)
}

func (c *Codec) generatorFor(nsym int) (Poly, error) {
	if c.singleGen {
		if nsym != c.nsym {
			return nil, &ConfigError{Msg: fmt.Sprintf("codec built with single_gen for nsym=%d, cannot encode with nsym=%d", c.nsym, nsym)}
		}
		return c.gen, nil
	}
	if nsym < 0 || nsym >= len(c.genAll) {
		return nil, &ConfigError{Msg: fmt.Sprintf("nsym=%d exceeds codec's precomputed generators (nsize=%d)", nsym, c.nsize)}
	}
	return c.genAll[nsym], nil
}

// chunkSize returns the message payload size per chunk for a given nsym.
func (c *Codec) chunkSize(nsym int) int { return c.nsize - nsym }

// Encode splits data into chunks of chunkSize(nsym) symbols, encodes each,
// and concatenates message||parity per chunk. If nsym is omitted (zero
// args), the codec's construction-time nsym is used.
func (c *Codec) Encode(data []int, nsym ...int) ([]int, error) {
	n := c.nsym
	if len(nsym) > 0 {
		n = nsym[0]
	}
	g, err := c.generatorFor(n)
	if err != nil {
		return nil, err
	}

	chunk := c.chunkSize(n)
	if chunk <= 0 {
		return nil, &ConfigError{Msg: "nsym leaves no room for message payload"}
	}

	out := make([]int, 0, len(data))
	for off := 0; off < len(data); off += chunk {
		end := off + chunk
		if end > len(data) {
			end = len(data)
		}
		encoded, err := c.field.EncodeChunk(data[off:end], n, g)
		if err != nil {
			return nil, err
		}
		c.logger.debugf(2, "encode: chunk [%d,%d) -> %d symbols", off, end, len(encoded))
		out = append(out, encoded...)
	}
	return out, nil
}

// splitErasePos buckets the (globally indexed, over the received data)
// erasure positions into per-chunk, chunk-local position lists.
func splitErasePos(erasePos []int, nsize int) map[int][]int {
	buckets := make(map[int][]int)
	for _, p := range erasePos {
		idx := p / nsize
		local := p % nsize
		buckets[idx] = append(buckets[idx], local)
	}
	return buckets
}

// Decode splits data into chunks of nsize symbols, decodes each, and
// concatenates the corrected messages, corrected full chunks, and
// errata positions in chunk order. Errata positions are chunk-local: a
// position in chunk k is an index into that chunk, not into data as a
// whole.
func (c *Codec) Decode(data []int, nsym int, erasePos []int, onlyErasures bool) (message, messageWithParity []int, errataPositions []int, err error) {
	if nsym == 0 {
		nsym = c.nsym
	}

	buckets := splitErasePos(erasePos, c.nsize)

	message = make([]int, 0, len(data))
	messageWithParity = make([]int, 0, len(data))
	errataPositions = make([]int, 0)

	chunkIdx := 0
	for off := 0; off < len(data); off += c.nsize {
		end := off + c.nsize
		if end > len(data) {
			end = len(data)
		}
		r := data[off:end]

		result, derr := c.field.decodeChunk(r, nsym, c.fcr, buckets[chunkIdx], onlyErasures, chunkIdx)
		if derr != nil {
			return nil, nil, nil, derr
		}
		c.logger.debugf(1, "decode: chunk %d decoded, errata=%v", chunkIdx, result.ErrataPos)

		message = append(message, result.Message...)
		messageWithParity = append(messageWithParity, result.FullChunk...)
		errataPositions = append(errataPositions, result.ErrataPos...)

		chunkIdx++
	}
	return message, messageWithParity, errataPositions, nil
}

// Check reports, per chunk, whether that chunk's syndromes are all zero.
func (c *Codec) Check(data []int, nsym int) ([]bool, error) {
	if nsym == 0 {
		nsym = c.nsym
	}
	clean := make([]bool, 0)
	for off := 0; off < len(data); off += c.nsize {
		end := off + c.nsize
		if end > len(data) {
			end = len(data)
		}
		r := data[off:end]
		ok := true
		for _, s := range c.field.computeSyndromes(r, nsym, c.fcr) {
			if s != 0 {
				ok = false
				break
			}
		}
		clean = append(clean, ok)
	}
	return clean, nil
}

// MaxErrata returns the maximum correctable (errors, erasures) pair under
// the Singleton bound (2*errors + erasures <= nsym). With neither errors
// nor erasures given, it returns (floor(nsym/2), nsym). With erasures
// given, it returns (floor((nsym-v)/2), v). With errors given, it returns
// (e, nsym-2e). An out-of-bound request is a ConfigError.
func (c *Codec) MaxErrata(nsym int, errors, erasures *int) (maxErrors, maxErasures int, err error) {
	if nsym == 0 {
		nsym = c.nsym
	}
	switch {
	case erasures != nil:
		v := *erasures
		if v > nsym {
			return 0, 0, &ConfigError{Msg: fmt.Sprintf("erasures=%d exceeds nsym=%d", v, nsym)}
		}
		return (nsym - v) / 2, v, nil
	case errors != nil:
		e := *errors
		if 2*e > nsym {
			return 0, 0, &ConfigError{Msg: fmt.Sprintf("errors=%d exceeds nsym/2=%d", e, nsym/2)}
		}
		return e, nsym - 2*e, nil
	default:
		return nsym / 2, nsym, nil
	}
}

// SetDebugLevel sets the decoder's trace verbosity (0 disables all
// tracing).
func (c *Codec) SetDebugLevel(level int) { c.logger.setLevel(level) }
