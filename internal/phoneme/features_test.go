package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightsClosedSet(t *testing.T) {
	hs := Heights()
	assert.Len(t, hs, 7)
	assert.Equal(t, Close, hs[0])
	assert.Equal(t, Open, hs[6])

	for i, h := range hs {
		assert.True(t, h.Valid(), "height %q should be valid", h)
		assert.Equal(t, i, h.Ord())
	}
}

func TestBacknessesClosedSet(t *testing.T) {
	bs := Backnesses()
	assert.Equal(t, []Backness{Front, Central, Back}, bs)

	for i, b := range bs {
		assert.True(t, b.Valid(), "backness %q should be valid", b)
		assert.Equal(t, i, b.Ord())
	}
}

func TestRoundingsClosedSet(t *testing.T) {
	rs := Roundings()
	assert.Equal(t, []Rounding{Unrounded, Rounded, Any}, rs)

	for i, r := range rs {
		assert.True(t, r.Valid(), "rounding %q should be valid", r)
		assert.Equal(t, i, r.Ord())
	}
}

func TestInvalidFeatureValues(t *testing.T) {
	assert.False(t, Height("").Valid())
	assert.False(t, Height("tall").Valid())
	assert.False(t, Height("Close").Valid()) // case-sensitive
	assert.False(t, Backness("middle").Valid())
	assert.False(t, Rounding("round").Valid())

	assert.Equal(t, -1, Height("tall").Ord())
	assert.Equal(t, -1, Backness("").Ord())
	assert.Equal(t, -1, Rounding("none").Ord())
}

func TestEnumerationsReturnCopies(t *testing.T) {
	hs := Heights()
	hs[0] = Height("mangled")
	assert.Equal(t, Close, Heights()[0])
}
