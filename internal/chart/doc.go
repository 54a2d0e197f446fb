// Package chart renders the two lexstat panels: a bar chart of the most
// common words and a histogram of sentence lengths captioned with the average
// sentence length.
//
// Renderers are selected by mode. The terminal renderer draws both panels
// side by side as text, the PNG renderer writes an image with gonum/plot and
// the none mode discards the data.
package chart
