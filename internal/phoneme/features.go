package phoneme

// Height classifies a vowel by tongue height relative to the palate.
type Height string

// The seven height levels, ordered close to open.
const (
	Close     Height = "close"
	NearClose Height = "near_close"
	CloseMid  Height = "close_mid"
	Mid       Height = "mid"
	OpenMid   Height = "open_mid"
	NearOpen  Height = "near_open"
	Open      Height = "open"
)

// Backness classifies a vowel by tongue position relative to the back of
// the mouth.
type Backness string

// The three backness positions, ordered front to back.
const (
	Front   Backness = "front"
	Central Backness = "central"
	Back    Backness = "back"
)

// Rounding classifies a vowel by lip shape. Any marks a vowel unspecified
// for rounding (the schwa).
type Rounding string

const (
	Unrounded Rounding = "unrounded"
	Rounded   Rounding = "rounded"
	Any       Rounding = "any"
)

// heights, backnesses, and roundings define the closed sets in articulatory
// order. Ord positions in the SQLite index and CLI sort order come from
// these slices, so their order is load-bearing for display, not membership.
var (
	heights    = []Height{Close, NearClose, CloseMid, Mid, OpenMid, NearOpen, Open}
	backnesses = []Backness{Front, Central, Back}
	roundings  = []Rounding{Unrounded, Rounded, Any}
)

// Heights returns the closed set of height levels, close to open.
func Heights() []Height {
	out := make([]Height, len(heights))
	copy(out, heights)
	return out
}

// Backnesses returns the closed set of backness positions, front to back.
func Backnesses() []Backness {
	out := make([]Backness, len(backnesses))
	copy(out, backnesses)
	return out
}

// Roundings returns the closed set of rounding values.
func Roundings() []Rounding {
	out := make([]Rounding, len(roundings))
	copy(out, roundings)
	return out
}

// Valid reports whether h is a member of the closed height set.
func (h Height) Valid() bool {
	return ordOf(heights, h) >= 0
}

// Valid reports whether b is a member of the closed backness set.
func (b Backness) Valid() bool {
	return ordOf(backnesses, b) >= 0
}

// Valid reports whether r is a member of the closed rounding set.
func (r Rounding) Valid() bool {
	return ordOf(roundings, r) >= 0
}

// Ord returns the position of h in the close-to-open ordering, or -1 if h
// is not a valid height.
func (h Height) Ord() int {
	return ordOf(heights, h)
}

// Ord returns the position of b in the front-to-back ordering, or -1 if b
// is not a valid backness.
func (b Backness) Ord() int {
	return ordOf(backnesses, b)
}

// Ord returns the position of r in the rounding set, or -1 if r is not a
// valid rounding.
func (r Rounding) Ord() int {
	return ordOf(roundings, r)
}

func ordOf[T comparable](set []T, v T) int {
	for i, member := range set {
		if member == v {
			return i
		}
	}
	return -1
}
