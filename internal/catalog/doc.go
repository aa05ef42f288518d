// Package catalog provides the fixed table of standard IPA vowels.
//
// The table is the single source of truth for vowel data in this module.
// It is built once at package initialization and never mutated, which makes
// it safe to read from any number of goroutines without locking. All returns
// a fresh copy on every call, so callers can do what they like with the
// slice.
//
// The table covers the 7x3x2 height/backness/rounding grid minus the cells
// with no standard IPA symbol, with the mid central pair collapsed into the
// single rounding-unspecified schwa. The rounded counterparts of æ and ɐ are
// deliberately absent: the first is allophonic with œ in every language that
// has been claimed to contrast them, the second is vanishingly rare. That
// leaves exactly Size entries.
//
// Integrity (unique symbols, closed-set membership, exactly one schwa) is a
// startup invariant: package init panics if the literal table is broken.
package catalog
