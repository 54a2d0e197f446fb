// Package main hosts the lexstat CLI entrypoint and command graph.
//
// The root command analyses one document: it prints the most common words,
// the average sentence length, the charts, the type-token ratio and the most
// common bigrams and trigrams. Subcommands scaffold and validate the TOML
// configuration and compare two documents by term-frequency similarity.
//
// Keep this package lean: statistics live in internal/analysis, rendering in
// internal/chart and internal/report. Commands here resolve configuration,
// flags and logging, then hand off.
package main
