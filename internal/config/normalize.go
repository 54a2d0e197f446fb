package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAnalysis(); err != nil {
		return err
	}
	if err := c.normalizeChart(); err != nil {
		return err
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeAnalysis() error {
	var err error
	if c.Analysis.InputPath, err = expandPath(strings.TrimSpace(c.Analysis.InputPath)); err != nil {
		return fmt.Errorf("analysis.input_path: %w", err)
	}
	if c.Analysis.HistogramBins == 0 {
		c.Analysis.HistogramBins = defaultHistogramBins
	}
	return nil
}

func (c *Config) normalizeChart() error {
	c.Chart.Mode = strings.ToLower(strings.TrimSpace(c.Chart.Mode))
	if c.Chart.Mode == "" {
		c.Chart.Mode = defaultChartMode
	}
	var err error
	if c.Chart.OutputPath, err = expandPath(strings.TrimSpace(c.Chart.OutputPath)); err != nil {
		return fmt.Errorf("chart.output_path: %w", err)
	}
	if c.Chart.Width <= 0 {
		c.Chart.Width = defaultChartWidth
	}
	if c.Chart.Height <= 0 {
		c.Chart.Height = defaultChartHeight
	}
	if c.Chart.BarWidth <= 0 {
		c.Chart.BarWidth = defaultChartBarWidth
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("LEXSTAT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
