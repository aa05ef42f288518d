package catalog

import (
	"fmt"

	"github.com/kondziu/fonologia/internal/phoneme"
)

// Verify checks catalog-integrity invariants over an arbitrary vowel table:
// non-empty unique symbols, closed-set membership for every classification,
// and exactly one rounding-unspecified entry, which must be the mid central
// schwa. Returns all violations found (does not fail fast); an empty result
// means the table is sound.
//
// Every invariant except uniqueness is already enforced by phoneme.NewVowel,
// so on tables built through the constructor Verify mostly guards against
// zero-value Vowels smuggled in by slice literals.
func Verify(vowels []phoneme.Vowel) []*phoneme.ValidationError {
	var errs []*phoneme.ValidationError

	seen := make(map[string]bool, len(vowels))
	anyCount := 0

	for i, v := range vowels {
		field := fmt.Sprintf("vowel[%d]", i)
		if v.Symbol() != "" {
			field = fmt.Sprintf("vowel %q", v.Symbol())
		}

		if v.Symbol() == "" {
			errs = append(errs, &phoneme.ValidationError{
				Field:   field,
				Message: "symbol must be non-empty",
				Code:    phoneme.ErrSymbolEmpty,
			})
		} else if seen[v.Symbol()] {
			errs = append(errs, &phoneme.ValidationError{
				Field:   field,
				Message: "symbol appears more than once",
				Code:    phoneme.ErrDuplicateSymbol,
			})
		}
		seen[v.Symbol()] = true

		if !v.Height().Valid() {
			errs = append(errs, &phoneme.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("height %q outside the closed set", v.Height()),
				Code:    phoneme.ErrInvalidHeight,
			})
		}
		if !v.Backness().Valid() {
			errs = append(errs, &phoneme.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("backness %q outside the closed set", v.Backness()),
				Code:    phoneme.ErrInvalidBackness,
			})
		}
		if !v.Rounding().Valid() {
			errs = append(errs, &phoneme.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("rounding %q outside the closed set", v.Rounding()),
				Code:    phoneme.ErrInvalidRounding,
			})
		}

		if v.Rounding() == phoneme.Any {
			anyCount++
			if v.Height() != phoneme.Mid || v.Backness() != phoneme.Central {
				errs = append(errs, &phoneme.ValidationError{
					Field:   field,
					Message: "rounding-unspecified entry must be the mid central schwa",
					Code:    phoneme.ErrMisplacedAny,
				})
			}
		}
	}

	if anyCount != 1 {
		errs = append(errs, &phoneme.ValidationError{
			Field:   "catalog",
			Message: fmt.Sprintf("expected exactly one rounding-unspecified entry, found %d", anyCount),
			Code:    phoneme.ErrMisplacedAny,
		})
	}

	return errs
}

// Check verifies the built-in table, including its cardinality. Used by
// package init (where a violation is fatal) and by the check command.
func Check() []*phoneme.ValidationError {
	errs := Verify(all)
	if len(all) != Size {
		errs = append(errs, &phoneme.ValidationError{
			Field:   "catalog",
			Message: fmt.Sprintf("expected %d entries, found %d", Size, len(all)),
			Code:    phoneme.ErrWrongCount,
		})
	}
	return errs
}
