package phoneme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVowelValid(t *testing.T) {
	v, err := NewVowel("i", Close, Front, Unrounded)
	require.NoError(t, err)

	assert.Equal(t, "i", v.Symbol())
	assert.Equal(t, Close, v.Height())
	assert.Equal(t, Front, v.Backness())
	assert.Equal(t, Unrounded, v.Rounding())
}

func TestNewVowelValidation(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		height   Height
		backness Backness
		rounding Rounding
		wantCode string
	}{
		{"empty symbol", "", Close, Front, Unrounded, ErrSymbolEmpty},
		{"invalid height", "i", Height("invalid_value"), Front, Unrounded, ErrInvalidHeight},
		{"empty height", "i", Height(""), Front, Unrounded, ErrInvalidHeight},
		{"invalid backness", "i", Close, Backness("sideways"), Unrounded, ErrInvalidBackness},
		{"invalid rounding", "i", Close, Front, Rounding("square"), ErrInvalidRounding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVowel(tt.symbol, tt.height, tt.backness, tt.rounding)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantCode, ve.Code)
			assert.Equal(t, tt.wantCode, ErrorCode(err))
		})
	}
}

func TestVowelEquality(t *testing.T) {
	a, err := NewVowel("ə", Mid, Central, Any)
	require.NoError(t, err)
	b, err := NewVowel("ə", Mid, Central, Any)
	require.NoError(t, err)
	c, err := NewVowel("ɜ", OpenMid, Central, Unrounded)
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestVowelImmutable(t *testing.T) {
	v, err := NewVowel("ɒ", Open, Back, Rounded)
	require.NoError(t, err)

	// Reading twice yields identical values; there is no mutator to call.
	assert.Equal(t, v.Symbol(), v.Symbol())
	assert.Equal(t, v.Height(), v.Height())
	assert.Equal(t, v.Backness(), v.Backness())
	assert.Equal(t, v.Rounding(), v.Rounding())
}

func TestVowelString(t *testing.T) {
	v, err := NewVowel("i", Close, Front, Unrounded)
	require.NoError(t, err)
	assert.Equal(t, "i close front unrounded", v.String())

	schwa, err := NewVowel("ə", Mid, Central, Any)
	require.NoError(t, err)
	assert.Equal(t, "ə mid central any", schwa.String())
}

func TestNewVowelNormalizesSymbol(t *testing.T) {
	// "a" + combining diaeresis (U+0308) composes to precomposed ä (U+00E4)
	decomposed, err := NewVowel("ä", Open, Central, Unrounded)
	require.NoError(t, err)
	precomposed, err := NewVowel("ä", Open, Central, Unrounded)
	require.NoError(t, err)

	assert.Equal(t, precomposed, decomposed)
	assert.Equal(t, "ä", decomposed.Symbol())
}

func TestVowelWireRoundTrip(t *testing.T) {
	v, err := NewVowel("ʊ", NearClose, Back, Rounded)
	require.NoError(t, err)

	w := v.Wire()
	assert.Equal(t, "ʊ", w.Symbol)

	back, err := FromWire(w)
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestFromWireRevalidates(t *testing.T) {
	_, err := FromWire(WireVowel{Symbol: "x", Height: "nope", Backness: Front, Rounding: Rounded})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidHeight, ErrorCode(err))
}

func TestVowelMarshalJSON(t *testing.T) {
	v, err := NewVowel("i", Close, Front, Unrounded)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var w WireVowel
	require.NoError(t, json.Unmarshal(data, &w))
	assert.Equal(t, "i", w.Symbol)
	assert.Equal(t, Close, w.Height)
	assert.Equal(t, Front, w.Backness)
	assert.Equal(t, Unrounded, w.Rounding)
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := NewVowel("i", Height("invalid_value"), Front, Unrounded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E102")
	assert.Contains(t, err.Error(), "invalid_value")
}

func TestErrorCodeOnForeignError(t *testing.T) {
	assert.Equal(t, "", ErrorCode(assert.AnError))
}
