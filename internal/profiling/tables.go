package profiling

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gotrends/internal/analysis"
	"gotrends/internal/dataset"

	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	return tbl
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteInfo prints the shape of the frame and the non-null count and type of every column.
func WriteInfo(w io.Writer, frame *dataset.Frame) {
	fmt.Fprintf(w, "Dataset: %d rows x %d columns\n", frame.Nrow(), frame.Ncol())

	tbl := newTable(w, []string{"#", "Column", "Non-Null Count", "Dtype"})
	types := frame.Types()
	for i, mc := range frame.MissingCounts() {
		tbl.Append([]string{
			strconv.Itoa(i),
			mc.Column,
			fmt.Sprintf("%d non-null", frame.Nrow()-mc.Count),
			string(types[i]),
		})
	}
	tbl.Render()
}

// WriteDescribe prints one column per numeric column and one row per statistic.
func WriteDescribe(w io.Writer, summaries []ColumnSummary) {
	header := []string{""}
	for _, s := range summaries {
		header = append(header, s.Column)
	}
	tbl := newTable(w, header)

	rows := []struct {
		label string
		get   func(ColumnSummary) float64
	}{
		{"count", func(s ColumnSummary) float64 { return float64(s.Count) }},
		{"mean", func(s ColumnSummary) float64 { return s.Mean }},
		{"std", func(s ColumnSummary) float64 { return s.StdDev }},
		{"min", func(s ColumnSummary) float64 { return s.Min }},
		{"25%", func(s ColumnSummary) float64 { return s.Q25 }},
		{"50%", func(s ColumnSummary) float64 { return s.Median }},
		{"75%", func(s ColumnSummary) float64 { return s.Q75 }},
		{"max", func(s ColumnSummary) float64 { return s.Max }},
	}
	for _, row := range rows {
		line := []string{row.label}
		for _, s := range summaries {
			line = append(line, formatFloat(row.get(s)))
		}
		tbl.Append(line)
	}
	tbl.Render()
}

// WriteMissing prints the missing-value count of every column.
func WriteMissing(w io.Writer, counts []dataset.MissingCount) {
	tbl := newTable(w, []string{"Column", "Missing"})
	for _, c := range counts {
		tbl.Append([]string{c.Column, strconv.Itoa(c.Count)})
	}
	tbl.Render()
}

// WriteCorrelation prints the correlation matrix as a square table.
func WriteCorrelation(w io.Writer, corr analysis.CorrelationMatrix) {
	tbl := newTable(w, append([]string{""}, corr.Columns...))
	for i, name := range corr.Columns {
		line := []string{name}
		for j := range corr.Columns {
			line = append(line, formatFloat(corr.At(i, j)))
		}
		tbl.Append(line)
	}
	tbl.Render()
}
