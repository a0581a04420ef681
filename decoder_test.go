package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestErrataLocator_IndependentOfErasureValues checks that the errata
// locator is built from erasure positions alone: errataLocator takes no
// symbol values, so placeholder values cannot reach it, and the same
// positions give the same locator whatever order they are supplied in.
func TestErrataLocator_IndependentOfErasureValues(t *testing.T) {
	f := newDefaultTestField(t)
	positions := []int{1, 4, 11}
	nmess := 14

	locA := f.errataLocator(positions, nmess)
	locB := f.errataLocator(positions, nmess)
	assert.Equal(t, []int(locA), []int(locB))

	// Build from a shuffled copy of the same set: product is
	// order-independent too.
	shuffled := []int{11, 1, 4}
	locC := f.errataLocator(shuffled, nmess)
	assert.Equal(t, []int(locA), []int(locC))
}

func TestDecodeChunk_RejectsTooManyErasures(t *testing.T) {
	f := newDefaultTestField(t)
	c := newTestCodec(t, 10)
	encoded, err := c.Encode(bytesToSymbols("hello world"))
	require.NoError(t, err)

	_, err = f.decodeChunk(encoded, 10, 0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, true, 0)
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestDecodeChunk_CleanChunkReturnsNoErrata(t *testing.T) {
	f := newDefaultTestField(t)
	c := newTestCodec(t, 10)
	encoded, err := c.Encode(bytesToSymbols("hello world"))
	require.NoError(t, err)

	result, err := f.decodeChunk(encoded, 10, 0, nil, false, 0)
	require.NoError(t, err)
	assert.Equal(t, bytesToSymbols("hello world"), result.Message)
	assert.Empty(t, result.ErrataPos)
}

func TestBerlekampMassey_DegreeMatchesErrorCount(t *testing.T) {
	f := newDefaultTestField(t)
	c := newTestCodec(t, 10)

	rapid.Check(t, func(t *rapid.T) {
		data := bytesToSymbols("a deterministic test payload for berlekamp massey")
		encoded, err := c.Encode(data)
		require.NoError(t, err)

		e := rapid.IntRange(0, 5).Draw(t, "e")
		positions := rapid.Permutation(indices(len(encoded))).Draw(t, "perm")[:e]
		corrupted := append([]int{}, encoded...)
		for _, p := range positions {
			corrupted[p] ^= 0xFF
		}

		result, err := f.decodeChunk(corrupted, 10, 0, nil, false, 0)
		require.NoError(t, err)
		assert.Equal(t, data, result.Message)
		assert.Len(t, result.ErrataPos, e)
	})
}
