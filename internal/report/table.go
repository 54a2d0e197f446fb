package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"lexstat/internal/analysis"
	"lexstat/internal/freq"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// WriteTable prints the report as a set of tables.
func WriteTable(w io.Writer, rep analysis.Report, limit int) error {
	sections := []string{
		renderTable(
			[]string{"Metric", "Value"},
			[][]string{
				{"Tokens", strconv.Itoa(rep.TokenCount)},
				{"Types", strconv.Itoa(rep.TypeCount)},
				{"Sentences", strconv.Itoa(rep.SentenceCount)},
				{"Average sentence length", fmt.Sprintf("%.2f words", rep.AverageSentenceLength)},
				{"Type-Token Ratio", fmt.Sprintf("%.3f", rep.TypeTokenRatio)},
			},
			[]columnAlignment{alignLeft, alignRight},
		),
		entryTable("Word", rep.TopWords),
		entryTable(fmt.Sprintf("Top %d Bigrams", limit), rep.TopBigrams),
		entryTable(fmt.Sprintf("Top %d Trigrams", limit), rep.TopTrigrams),
	}
	_, err := io.WriteString(w, strings.Join(sections, "\n")+"\n")
	return err
}

func entryTable(title string, entries []freq.Entry[string]) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, strconv.Itoa(e.Count)})
	}
	return renderTable([]string{title, "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
