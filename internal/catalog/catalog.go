package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/kondziu/fonologia/internal/phoneme"
)

// Size is the number of vowels in the catalog.
const Size = 35

// The catalog members, one named accessor per vowel. Named by articulation
// rather than glyph: glyphs are not valid Go identifiers and the
// articulation names are unambiguous.
var (
	CloseFrontUnrounded   = mustVowel("i", phoneme.Close, phoneme.Front, phoneme.Unrounded)
	CloseFrontRounded     = mustVowel("y", phoneme.Close, phoneme.Front, phoneme.Rounded)
	CloseCentralUnrounded = mustVowel("ɨ", phoneme.Close, phoneme.Central, phoneme.Unrounded)
	CloseCentralRounded   = mustVowel("ʉ", phoneme.Close, phoneme.Central, phoneme.Rounded)
	CloseBackUnrounded    = mustVowel("ɯ", phoneme.Close, phoneme.Back, phoneme.Unrounded)
	CloseBackRounded      = mustVowel("u", phoneme.Close, phoneme.Back, phoneme.Rounded)

	NearCloseFrontUnrounded   = mustVowel("ɪ", phoneme.NearClose, phoneme.Front, phoneme.Unrounded)
	NearCloseFrontRounded     = mustVowel("ʏ", phoneme.NearClose, phoneme.Front, phoneme.Rounded)
	NearCloseCentralUnrounded = mustVowel("ɪ̈", phoneme.NearClose, phoneme.Central, phoneme.Unrounded)
	NearCloseCentralRounded   = mustVowel("ʊ̈", phoneme.NearClose, phoneme.Central, phoneme.Rounded)
	NearCloseBackRounded      = mustVowel("ʊ", phoneme.NearClose, phoneme.Back, phoneme.Rounded)

	CloseMidFrontUnrounded   = mustVowel("e", phoneme.CloseMid, phoneme.Front, phoneme.Unrounded)
	CloseMidFrontRounded     = mustVowel("ø", phoneme.CloseMid, phoneme.Front, phoneme.Rounded)
	CloseMidCentralUnrounded = mustVowel("ɘ", phoneme.CloseMid, phoneme.Central, phoneme.Unrounded)
	CloseMidCentralRounded   = mustVowel("ɵ", phoneme.CloseMid, phoneme.Central, phoneme.Rounded)
	CloseMidBackUnrounded    = mustVowel("ɤ", phoneme.CloseMid, phoneme.Back, phoneme.Unrounded)
	CloseMidBackRounded      = mustVowel("o", phoneme.CloseMid, phoneme.Back, phoneme.Rounded)

	MidFrontUnrounded = mustVowel("e̞", phoneme.Mid, phoneme.Front, phoneme.Unrounded)
	MidFrontRounded   = mustVowel("ø̞", phoneme.Mid, phoneme.Front, phoneme.Rounded)
	// Schwa is unspecified for rounding - the one Any in the table.
	MidCentral       = mustVowel("ə", phoneme.Mid, phoneme.Central, phoneme.Any)
	MidBackUnrounded = mustVowel("ɤ̞", phoneme.Mid, phoneme.Back, phoneme.Unrounded)
	MidBackRounded   = mustVowel("o̞", phoneme.Mid, phoneme.Back, phoneme.Rounded)

	OpenMidFrontUnrounded   = mustVowel("ɛ", phoneme.OpenMid, phoneme.Front, phoneme.Unrounded)
	OpenMidFrontRounded     = mustVowel("œ", phoneme.OpenMid, phoneme.Front, phoneme.Rounded)
	OpenMidCentralUnrounded = mustVowel("ɜ", phoneme.OpenMid, phoneme.Central, phoneme.Unrounded)
	OpenMidCentralRounded   = mustVowel("ɞ", phoneme.OpenMid, phoneme.Central, phoneme.Rounded)
	OpenMidBackUnrounded    = mustVowel("ʌ", phoneme.OpenMid, phoneme.Back, phoneme.Unrounded)
	OpenMidBackRounded      = mustVowel("ɔ", phoneme.OpenMid, phoneme.Back, phoneme.Rounded)

	// Rounded counterparts of these two are deliberately absent; see doc.go.
	NearOpenFrontUnrounded   = mustVowel("æ", phoneme.NearOpen, phoneme.Front, phoneme.Unrounded)
	NearOpenCentralUnrounded = mustVowel("ɐ", phoneme.NearOpen, phoneme.Central, phoneme.Unrounded)

	OpenFrontUnrounded   = mustVowel("a", phoneme.Open, phoneme.Front, phoneme.Unrounded)
	OpenFrontRounded     = mustVowel("ɶ", phoneme.Open, phoneme.Front, phoneme.Rounded)
	OpenCentralUnrounded = mustVowel("ä", phoneme.Open, phoneme.Central, phoneme.Unrounded)
	OpenBackUnrounded    = mustVowel("ɑ", phoneme.Open, phoneme.Back, phoneme.Unrounded)
	OpenBackRounded      = mustVowel("ɒ", phoneme.Open, phoneme.Back, phoneme.Rounded)
)

// all holds the table in grid order. Grid order is an implementation detail:
// All copies into a fresh slice and documents no ordering.
var all = []phoneme.Vowel{
	CloseFrontUnrounded, CloseFrontRounded,
	CloseCentralUnrounded, CloseCentralRounded,
	CloseBackUnrounded, CloseBackRounded,
	NearCloseFrontUnrounded, NearCloseFrontRounded,
	NearCloseCentralUnrounded, NearCloseCentralRounded,
	NearCloseBackRounded,
	CloseMidFrontUnrounded, CloseMidFrontRounded,
	CloseMidCentralUnrounded, CloseMidCentralRounded,
	CloseMidBackUnrounded, CloseMidBackRounded,
	MidFrontUnrounded, MidFrontRounded,
	MidCentral,
	MidBackUnrounded, MidBackRounded,
	OpenMidFrontUnrounded, OpenMidFrontRounded,
	OpenMidCentralUnrounded, OpenMidCentralRounded,
	OpenMidBackUnrounded, OpenMidBackRounded,
	NearOpenFrontUnrounded, NearOpenCentralUnrounded,
	OpenFrontUnrounded, OpenFrontRounded,
	OpenCentralUnrounded,
	OpenBackUnrounded, OpenBackRounded,
}

// bySymbol indexes the table by NFC symbol. Built in init, read-only after.
var bySymbol map[string]phoneme.Vowel

func init() {
	bySymbol = make(map[string]phoneme.Vowel, len(all))
	for _, v := range all {
		if _, dup := bySymbol[v.Symbol()]; dup {
			panic(fmt.Sprintf("catalog: duplicate symbol %q", v.Symbol()))
		}
		bySymbol[v.Symbol()] = v
	}
	if errs := Check(); len(errs) > 0 {
		panic(fmt.Sprintf("catalog: invalid built-in table: %v", errs[0]))
	}
}

// mustVowel builds a catalog member, panicking on a ValidationError. All
// arguments are literals; a panic here is a programming error in the table
// itself and the process must not start with a broken catalog.
func mustVowel(symbol string, h phoneme.Height, b phoneme.Backness, r phoneme.Rounding) phoneme.Vowel {
	v, err := phoneme.NewVowel(symbol, h, b, r)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return v
}

// All returns every vowel in the catalog. The returned slice is a fresh
// copy on every call and its order is unspecified - callers must not
// depend on it.
func All() []phoneme.Vowel {
	out := make([]phoneme.Vowel, len(all))
	copy(out, all)
	return out
}

// BySymbol looks up a vowel by its IPA glyph. The input is NFC-normalized
// first, so a decomposed spelling finds the precomposed entry. The second
// return is false if no catalog entry has that symbol.
func BySymbol(symbol string) (phoneme.Vowel, bool) {
	v, ok := bySymbol[norm.NFC.String(symbol)]
	return v, ok
}

// Symbols returns every catalog symbol, sorted.
func Symbols() []string {
	out := make([]string, 0, len(all))
	for _, v := range all {
		out = append(out, v.Symbol())
	}
	sort.Strings(out)
	return out
}

// Query constrains a Filter call. Nil fields match everything.
type Query struct {
	Height   *phoneme.Height
	Backness *phoneme.Backness
	Rounding *phoneme.Rounding
}

// Filter returns the catalog members matching every non-nil constraint in q.
// Returns an empty slice, never nil. Order is unspecified, like All.
func Filter(q Query) []phoneme.Vowel {
	out := []phoneme.Vowel{}
	for _, v := range all {
		if q.Height != nil && v.Height() != *q.Height {
			continue
		}
		if q.Backness != nil && v.Backness() != *q.Backness {
			continue
		}
		if q.Rounding != nil && v.Rounding() != *q.Rounding {
			continue
		}
		out = append(out, v)
	}
	return out
}
