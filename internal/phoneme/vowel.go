package phoneme

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Vowel is one vowel sound: an IPA symbol plus its three articulatory
// classifications. The zero value is not a valid vowel; use NewVowel.
//
// Vowel is a comparable value type. Two vowels are equal (via ==) exactly
// when all four fields are equal. There is no mutator - a constructed
// Vowel never changes.
type Vowel struct {
	symbol   string
	height   Height
	backness Backness
	rounding Rounding
}

// NewVowel constructs a Vowel from a symbol and its three classifications.
//
// The symbol is NFC-normalized before storage, so "a"+U+0308 and the
// precomposed "ä" construct equal vowels. Returns a *ValidationError if
// the symbol is empty or any classification falls outside its closed set.
func NewVowel(symbol string, h Height, b Backness, r Rounding) (Vowel, error) {
	if symbol == "" {
		return Vowel{}, newValidationError(ErrSymbolEmpty, "symbol", "symbol must be non-empty")
	}
	if !h.Valid() {
		return Vowel{}, newValidationError(ErrInvalidHeight, "height", "%q is not a valid height", string(h))
	}
	if !b.Valid() {
		return Vowel{}, newValidationError(ErrInvalidBackness, "backness", "%q is not a valid backness", string(b))
	}
	if !r.Valid() {
		return Vowel{}, newValidationError(ErrInvalidRounding, "rounding", "%q is not a valid rounding", string(r))
	}
	return Vowel{
		symbol:   norm.NFC.String(symbol),
		height:   h,
		backness: b,
		rounding: r,
	}, nil
}

// Symbol returns the IPA glyph in NFC form.
func (v Vowel) Symbol() string { return v.symbol }

// Height returns the tongue-height classification.
func (v Vowel) Height() Height { return v.height }

// Backness returns the tongue-position classification.
func (v Vowel) Backness() Backness { return v.backness }

// Rounding returns the lip-shape classification.
func (v Vowel) Rounding() Rounding { return v.rounding }

// String returns the display form: symbol followed by the three
// classifications, space-separated. This is the line format the
// enumeration entry point prints; nothing parses it back.
func (v Vowel) String() string {
	return fmt.Sprintf("%s %s %s %s", v.symbol, v.height, v.backness, v.rounding)
}

// Wire returns the exported serialization shape of the vowel.
func (v Vowel) Wire() WireVowel {
	return WireVowel{
		Symbol:   v.symbol,
		Height:   v.height,
		Backness: v.backness,
		Rounding: v.rounding,
	}
}

// WireVowel is the serialized form of a Vowel for JSON and YAML output.
// It carries no invariants of its own; FromWire revalidates.
type WireVowel struct {
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Height   Height   `json:"height" yaml:"height"`
	Backness Backness `json:"backness" yaml:"backness"`
	Rounding Rounding `json:"rounding" yaml:"rounding"`
}

// FromWire reconstructs a validated Vowel from its serialized form.
func FromWire(w WireVowel) (Vowel, error) {
	return NewVowel(w.Symbol, w.Height, w.Backness, w.Rounding)
}

// MarshalJSON implements json.Marshaler using the wire shape.
func (v Vowel) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Wire())
}

// MarshalYAML implements yaml.Marshaler using the wire shape.
func (v Vowel) MarshalYAML() (any, error) {
	return v.Wire(), nil
}
