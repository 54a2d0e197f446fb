package chart

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const (
	defaultBarWidth = 40
	barGlyph        = "█"
)

// Terminal draws both panels as a text table.
type Terminal struct {
	out      io.Writer
	barWidth int
	colorize bool
}

// NewTerminal returns a terminal renderer writing to out. Colour is enabled
// only when out is a terminal.
func NewTerminal(out io.Writer, barWidth int) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	return &Terminal{out: out, barWidth: barWidth, colorize: shouldColorize(out)}
}

// Render implements Renderer.
func (t *Terminal) Render(ctx context.Context, data Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(t.out, t.render(data)+"\n")
	return err
}

func (t *Terminal) render(data Data) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{wordsTitle, histogramTitle})
	tw.AppendRow(table.Row{
		strings.Join(t.wordLines(data), "\n"),
		strings.Join(t.histogramLines(data), "\n"),
	})
	tw.AppendFooter(table.Row{"", data.Caption()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AlignFooter: text.AlignLeft},
	})
	return tw.Render()
}

func (t *Terminal) wordLines(data Data) []string {
	if len(data.TopWords) == 0 {
		return []string{"(no words)"}
	}
	labelWidth := 0
	maxCount := 0
	for _, entry := range data.TopWords {
		labelWidth = max(labelWidth, text.RuneWidthWithoutEscSequences(entry.Key))
		maxCount = max(maxCount, entry.Count)
	}
	lines := make([]string, 0, len(data.TopWords))
	for _, entry := range data.TopWords {
		label := text.Pad(entry.Key, labelWidth, ' ')
		lines = append(lines, label+" "+t.bar(entry.Count, maxCount, text.FgCyan)+" "+strconv.Itoa(entry.Count))
	}
	return lines
}

func (t *Terminal) histogramLines(data Data) []string {
	bins := data.Histogram()
	labels := make([]string, len(bins))
	labelWidth := 0
	maxCount := 0
	for i, bin := range bins {
		closing := ")"
		if i == len(bins)-1 {
			closing = "]"
		}
		labels[i] = fmt.Sprintf("[%.1f, %.1f%s", bin.Lower, bin.Upper, closing)
		labelWidth = max(labelWidth, len(labels[i]))
		maxCount = max(maxCount, bin.Count)
	}
	lines := make([]string, 0, len(bins))
	for i, bin := range bins {
		label := text.Pad(labels[i], labelWidth, ' ')
		lines = append(lines, label+" "+t.bar(bin.Count, maxCount, text.FgGreen)+" "+strconv.Itoa(bin.Count))
	}
	return lines
}

// bar scales count against maxCount. Non-zero counts always get one glyph.
func (t *Terminal) bar(count, maxCount int, color text.Color) string {
	if count <= 0 || maxCount <= 0 {
		return ""
	}
	n := count * t.barWidth / maxCount
	if n == 0 {
		n = 1
	}
	bar := strings.Repeat(barGlyph, n)
	if t.colorize {
		return text.Colors{color}.Sprint(bar)
	}
	return bar
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
