package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lexstat/internal/analysis"
	"lexstat/internal/chart"
	"lexstat/internal/config"
	"lexstat/internal/fileutil"
	"lexstat/internal/logging"
	"lexstat/internal/report"
	"lexstat/internal/textutil"
)

type analyzeFlags struct {
	format      string
	chartMode   string
	chartOutput string
	top         int
	ngrams      int
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: text, table or json")
	cmd.Flags().StringVar(&f.chartMode, "chart", "", "Chart mode: terminal, png or none")
	cmd.Flags().StringVar(&f.chartOutput, "chart-output", "", "PNG chart destination")
	cmd.Flags().IntVar(&f.top, "top", 0, "Number of most common words to list")
	cmd.Flags().IntVar(&f.ngrams, "ngrams", 0, "Number of most common bigrams and trigrams to list")
}

// settings merges command-line flags over the loaded configuration.
type settings struct {
	format      string
	chartMode   string
	chartOutput string
	topWords    int
	topNGrams   int
	bins        int
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, f analyzeFlags) (settings, error) {
	s := settings{
		format:      cfg.Output.Format,
		chartMode:   cfg.Chart.Mode,
		chartOutput: cfg.Chart.OutputPath,
		topWords:    cfg.Analysis.TopWords,
		topNGrams:   cfg.Analysis.TopNGrams,
		bins:        cfg.Analysis.HistogramBins,
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		s.format = strings.ToLower(strings.TrimSpace(f.format))
	}
	if flags.Changed("chart") {
		s.chartMode = strings.ToLower(strings.TrimSpace(f.chartMode))
	}
	if flags.Changed("chart-output") {
		expanded, err := config.ExpandPath(strings.TrimSpace(f.chartOutput))
		if err != nil {
			return s, fmt.Errorf("resolve chart output: %w", err)
		}
		s.chartOutput = expanded
	}
	if flags.Changed("top") {
		if f.top <= 0 {
			return s, fmt.Errorf("--top must be positive")
		}
		s.topWords = f.top
	}
	if flags.Changed("ngrams") {
		if f.ngrams <= 0 {
			return s, fmt.Errorf("--ngrams must be positive")
		}
		s.topNGrams = f.ngrams
	}
	if s.topWords == 0 {
		s.topWords = analysis.DefaultTopWords
	}
	if s.topNGrams == 0 {
		s.topNGrams = analysis.DefaultTopNGrams
	}

	switch s.format {
	case config.FormatText, config.FormatTable, config.FormatJSON:
	default:
		return s, fmt.Errorf("unsupported format %q (want text, table or json)", s.format)
	}
	return s, nil
}

func runAnalyze(cmd *cobra.Command, cc *commandContext, args []string, f analyzeFlags) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd, cfg, f)
	if err != nil {
		return err
	}
	baseLogger, err := cc.ensureLogger()
	if err != nil {
		return err
	}
	defer cc.closeLogger()

	ctx := logging.WithRunID(cmd.Context())
	logger := logging.NewComponentLogger(logging.WithContext(ctx, baseLogger), "analyze")

	inputPath, err := resolveInputPath(cfg, args)
	if err != nil {
		return err
	}

	started := time.Now()
	text, err := fileutil.ReadText(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}
	logger.Debug("input loaded", logging.String(logging.FieldInputPath, inputPath), logging.Int("bytes", len(text)))

	rep := analysis.Analyze(text, analysis.Options{
		TopWords:  s.topWords,
		TopNGrams: s.topNGrams,
		Bins:      s.bins,
	})
	logger.Info("analysis complete",
		logging.String(logging.FieldInputPath, inputPath),
		logging.Int(logging.FieldTokenCount, rep.TokenCount),
		logging.Int(logging.FieldSentenceCount, rep.SentenceCount),
		logging.Float64(logging.FieldTypeTokenRatio, rep.TypeTokenRatio),
		logging.Duration("elapsed", time.Since(started)),
	)

	out := cmd.OutOrStdout()

	// JSON output stays parseable, so only a file chart may accompany it.
	chartMode := s.chartMode
	if s.format == config.FormatJSON && chartMode == chart.ModeTerminal {
		chartMode = chart.ModeNone
	}
	chartOutput := s.chartOutput
	if chartMode == chart.ModePNG && chartOutput == "" {
		chartOutput, err = filepath.Abs(textutil.ChartFileName(inputPath))
		if err != nil {
			return fmt.Errorf("resolve chart output: %w", err)
		}
	}
	renderer, err := chart.New(chartMode, chart.Options{
		Out:        out,
		OutputPath: chartOutput,
		Width:      cfg.Chart.Width,
		Height:     cfg.Chart.Height,
		BarWidth:   cfg.Chart.BarWidth,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	data := chart.Data{
		TopWords:              rep.TopWords,
		SentenceLengths:       rep.SentenceLengths,
		Bins:                  s.bins,
		AverageSentenceLength: rep.AverageSentenceLength,
	}

	switch s.format {
	case config.FormatJSON:
		if err := report.WriteJSON(out, rep); err != nil {
			return err
		}
		return renderer.Render(ctx, data)
	case config.FormatTable:
		if err := report.WriteTable(out, rep, s.topNGrams); err != nil {
			return err
		}
		return renderer.Render(ctx, data)
	default:
		if err := report.WriteSummary(out, rep); err != nil {
			return err
		}
		if err := renderer.Render(ctx, data); err != nil {
			logger.Warn("chart render failed", logging.String("chart_mode", chartMode), logging.Error(err))
			return fmt.Errorf("render chart: %w", err)
		}
		return report.WriteDetails(out, rep, s.topNGrams)
	}
}

func resolveInputPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return cfg.InputPath()
}
