package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kondziu/fonologia/internal/catalog"
	"github.com/kondziu/fonologia/internal/phoneme"
)

func openIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestOpenLoadsFullCatalog(t *testing.T) {
	ix := openIndex(t)

	n, err := ix.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Size, n)
}

func TestQueryNoConstraints(t *testing.T) {
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, vowels, catalog.Size)

	// Ordered close to open: the first row is a close vowel.
	assert.Equal(t, phoneme.Close, vowels[0].Height())
}

func TestQueryByHeight(t *testing.T) {
	h := phoneme.Close
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{Height: &h})
	require.NoError(t, err)
	require.Len(t, vowels, 6)
	for _, v := range vowels {
		assert.Equal(t, phoneme.Close, v.Height())
	}
}

func TestQueryCombined(t *testing.T) {
	h := phoneme.Open
	b := phoneme.Back
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{Height: &h, Backness: &b})
	require.NoError(t, err)
	require.Len(t, vowels, 2)

	// Symbol order within a cell: ɑ (U+0251) before ɒ (U+0252).
	assert.Equal(t, "ɑ", vowels[0].Symbol())
	assert.Equal(t, "ɒ", vowels[1].Symbol())
}

func TestQueryRoundingAny(t *testing.T) {
	r := phoneme.Any
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{Rounding: &r})
	require.NoError(t, err)
	require.Len(t, vowels, 1)
	assert.Equal(t, "ə", vowels[0].Symbol())
}

func TestQueryNoMatches(t *testing.T) {
	h := phoneme.NearOpen
	b := phoneme.Back
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{Height: &h, Backness: &b})
	require.NoError(t, err)
	assert.NotNil(t, vowels)
	assert.Empty(t, vowels)
}

func TestQueryRejectsInvalidConstraint(t *testing.T) {
	bad := phoneme.Height("tall")
	ix := openIndex(t)

	_, err := ix.Query(context.Background(), Filter{Height: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height")
}

func TestQueryResultsMatchCatalog(t *testing.T) {
	ix := openIndex(t)

	vowels, err := ix.Query(context.Background(), Filter{})
	require.NoError(t, err)

	for _, v := range vowels {
		member, ok := catalog.BySymbol(v.Symbol())
		require.True(t, ok, "indexed symbol %q not in catalog", v.Symbol())
		assert.Equal(t, member, v)
	}
}

func TestQueryDeterministicOrder(t *testing.T) {
	ix := openIndex(t)

	first, err := ix.Query(context.Background(), Filter{})
	require.NoError(t, err)
	second, err := ix.Query(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCloseIsIdempotent(t *testing.T) {
	ix, err := Open()
	require.NoError(t, err)
	require.NoError(t, ix.Close())
	assert.NoError(t, ix.Close())
	assert.Error(t, ix.db.Ping())
}
