// Package index provides a SQLite feature index over the vowel catalog.
//
// The index is an in-memory database rebuilt from the catalog on every
// Open. It exists purely as a query surface - the catalog remains the
// source of truth and the index is discarded on Close.
//
// Query results are ordered by articulation (height close to open, then
// backness front to back, then symbol), so identical filters always
// produce identical output.
package index
