// Package plot renders the comparison chart: four measured series and two
// theoretical complexity curves on a logarithmic time axis.
package plot

import (
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
	"github.com/Koliatoday/goit-algo-hw-04/internal/curve"
)

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i] = opts.LineData{Value: v}
	}
	return items
}

// Chart builds the comparison line chart. Entries are re-sorted by size first,
// so callers may pass results in any order.
func Chart(results []bench.Result) *charts.Line {
	entries := slices.Clone(results)
	slices.SortFunc(entries, func(a, b bench.Result) int { return a.Size - b.Size })

	sizes := make([]int, len(entries))
	insertion := make([]float64, len(entries))
	mergeSort := make([]float64, len(entries))
	inPlace := make([]float64, len(entries))
	sortedCopy := make([]float64, len(entries))
	for i, entry := range entries {
		sizes[i] = entry.Size
		insertion[i] = entry.InsertionSort
		mergeSort[i] = entry.MergeSort
		inPlace[i] = entry.SortInPlace
		sortedCopy[i] = entry.SortedCopy
	}

	nSquared := curve.Scale(curve.NSquared(sizes), insertion)
	nLogN := curve.Scale(curve.NLogN(sizes), mergeSort)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Sorting performance comparison",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Sorting performance comparison"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "List size (n)"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Time (seconds, log scale)",
			Type:      "log",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5%"}),
	)

	line.SetXAxis(sizes).
		AddSeries("insertion_sort (measured)", lineData(insertion)).
		AddSeries("merge_sort (measured)", lineData(mergeSort)).
		AddSeries("sort_in_place (measured)", lineData(inPlace)).
		AddSeries("sorted_copy (measured)", lineData(sortedCopy)).
		AddSeries("O(n²) reference", lineData(nSquared),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"})).
		AddSeries("O(n log n) reference", lineData(nLogN),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)

	return line
}

// Render writes the chart as a self-contained HTML page.
func Render(w io.Writer, results []bench.Result) error {
	return Chart(results).Render(w)
}
