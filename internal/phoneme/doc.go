// Package phoneme provides the vowel value model for fonologia.
//
// This package contains type definitions and construction-time validation
// only. All other internal packages import phoneme; phoneme imports nothing
// internal. This keeps the value model the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Vowel is immutable after construction - fields are unexported and
//     reachable only through accessors
//   - Vowel is comparable - equality is == over all four fields
//   - Height, Backness, and Rounding are closed sets - NewVowel rejects
//     anything outside them with a *ValidationError
//   - Symbols are stored in NFC form so decomposed and precomposed input
//     name the same vowel
package phoneme
