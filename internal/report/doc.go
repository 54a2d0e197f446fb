// Package report prints an analysis.Report.
//
// The text format is split in two halves, Summary and Details, because the
// terminal chart is printed between the average sentence length and the
// type-token ratio. The table and JSON formats print the whole report at once.
package report
