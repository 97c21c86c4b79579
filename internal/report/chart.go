// Package report renders rollout results as an HTML page of charts.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vovakirdan/tui-crossing/internal/platform/headless"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("report: no episodes to plot")

// Series is the rollout of one policy.
type Series struct {
	Name      string
	Summaries []headless.Summary
}

// Render writes a page with a return chart and an episode length chart.
func Render(w io.Writer, title string, series ...Series) error {
	n := episodes(series)
	if n == 0 {
		return ErrNoData
	}

	xs := make([]string, n)
	for i := range xs {
		xs[i] = fmt.Sprintf("%d", i)
	}

	returns := charts.NewLine()
	returns.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "shine"}),
		charts.WithTitleOpts(opts.Title{Title: "Return per episode", Subtitle: title}),
	)
	returns.SetXAxis(xs)

	lengths := charts.NewBar()
	lengths.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithTitleOpts(opts.Title{Title: "Steps per episode"}),
	)
	lengths.SetXAxis(xs)

	for _, s := range series {
		lineItems := make([]opts.LineData, 0, len(s.Summaries))
		barItems := make([]opts.BarData, 0, len(s.Summaries))
		for _, sum := range s.Summaries {
			lineItems = append(lineItems, opts.LineData{Value: sum.Return})
			barItems = append(barItems, opts.BarData{Value: sum.Steps})
		}
		returns.AddSeries(s.Name, lineItems)
		lengths.AddSeries(s.Name, barItems)
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(returns, lengths)
	return page.Render(w)
}

// WriteFile renders the page to path, creating parent directories.
func WriteFile(path, title string, series ...Series) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := Render(f, title, series...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// episodes returns the longest series length.
func episodes(series []Series) int {
	n := 0
	for _, s := range series {
		if len(s.Summaries) > n {
			n = len(s.Summaries)
		}
	}
	return n
}
