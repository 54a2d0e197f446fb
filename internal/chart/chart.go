package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"lexstat/internal/freq"
	"lexstat/internal/logging"
	"lexstat/internal/metrics"
)

// ErrUnknownMode reports a chart mode with no renderer.
var ErrUnknownMode = errors.New("unknown chart mode")

// Modes accepted by New.
const (
	ModeTerminal = "terminal"
	ModePNG      = "png"
	ModeNone     = "none"
)

const (
	wordsTitle     = "Top words"
	histogramTitle = "Sentence length distribution (words)"
)

// Data is everything a renderer draws.
type Data struct {
	TopWords              []freq.Entry[string]
	SentenceLengths       []int
	Bins                  int
	AverageSentenceLength float64
}

// Histogram bins the sentence lengths.
func (d Data) Histogram() []metrics.Bin {
	return metrics.Histogram(d.SentenceLengths, d.Bins)
}

// Caption is the line shown under the histogram.
func (d Data) Caption() string {
	return fmt.Sprintf("Average sentence length: %.2f words", d.AverageSentenceLength)
}

// Renderer draws Data somewhere.
type Renderer interface {
	Render(ctx context.Context, data Data) error
}

// Options configures the renderer built by New.
type Options struct {
	// Out receives terminal charts.
	Out io.Writer
	// OutputPath is the PNG destination.
	OutputPath string
	Width      int
	Height     int
	BarWidth   int
	Logger     *slog.Logger
}

// New returns the renderer for mode.
func New(mode string, opts Options) (Renderer, error) {
	logger := logging.NewComponentLogger(opts.Logger, "chart")
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeTerminal, "":
		return NewTerminal(opts.Out, opts.BarWidth), nil
	case ModePNG:
		if strings.TrimSpace(opts.OutputPath) == "" {
			return nil, errors.New("png chart requires an output path")
		}
		return &PNG{
			Path:   opts.OutputPath,
			Width:  opts.Width,
			Height: opts.Height,
			logger: logger,
		}, nil
	case ModeNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Nop discards chart data.
type Nop struct{}

// Render implements Renderer.
func (Nop) Render(ctx context.Context, _ Data) error {
	return ctx.Err()
}
