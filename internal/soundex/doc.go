// Package soundex computes the American Soundex code of a personal name: one
// letter followed by three digits, so that names which sound alike share a
// code regardless of spelling.
//
// The encoder is a pure function. It keeps no state between calls and the
// classification table is never written after initialization, so every
// function in this package is safe for concurrent use.
package soundex
