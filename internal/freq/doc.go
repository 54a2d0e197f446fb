// Package freq implements the frequency table used for words and n-grams.
//
// A Counter is a multiset that remembers the order in which keys were first
// seen. MostCommon sorts by descending count and keeps first-seen order for
// equal counts, so top-K listings are deterministic for a given input.
package freq
