// Package textutil provides the text primitives lexstat builds on: word
// tokenization, punctuation-based sentence splitting, term-frequency
// fingerprints and filename sanitization.
//
// Tokenization lowercases text with full Unicode case mapping and keeps every
// maximal run of letters, digits and underscores. Sentence splitting breaks
// after '.', '!' or '?' when whitespace follows. Neither step is
// locale-aware.
package textutil
