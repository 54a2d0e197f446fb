package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateChart(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopWords < 0 {
		return invalid("analysis.top_words", "must be zero or positive")
	}
	if c.Analysis.TopNGrams < 0 {
		return invalid("analysis.top_ngrams", "must be zero or positive")
	}
	if c.Analysis.HistogramBins < 0 {
		return invalid("analysis.histogram_bins", "must be positive")
	}
	return nil
}

func (c *Config) validateChart() error {
	switch c.Chart.Mode {
	case ChartModeTerminal, ChartModePNG, ChartModeNone:
	default:
		return invalid("chart.mode", fmt.Sprintf("unsupported value %q (want terminal, png or none)", c.Chart.Mode))
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case FormatText, FormatTable, FormatJSON:
		return nil
	default:
		return invalid("output.format", fmt.Sprintf("unsupported value %q (want text, table or json)", c.Output.Format))
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return invalid("logging.level", fmt.Sprintf("unsupported value %q", c.Logging.Level))
	}
}

func invalid(key, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, key, reason)
}
