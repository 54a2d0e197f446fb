// Package fileutil holds the file I/O lexstat performs: reading the input
// document in one scoped call and writing rendered charts atomically.
package fileutil
