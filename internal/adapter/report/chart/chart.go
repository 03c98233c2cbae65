package chart

import (
	"errors"
	"fmt"
	"io"

	"warehousebots/internal/domain/mission"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrNoSummaries = errors.New("no summaries to plot")

// Render writes an HTML page with steps per mission for every team and a bar
// of their averages.
func Render(w io.Writer, title string, summaries []mission.Summary) error {
	if len(summaries) == 0 {
		return ErrNoSummaries
	}
	n := 0
	for _, s := range summaries {
		if len(s.Steps) > n {
			n = len(s.Steps)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "steps to reach the target per mission"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
	)
	missions := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		missions = append(missions, fmt.Sprintf("%d", i))
	}
	line = line.SetXAxis(missions)
	for _, s := range summaries {
		items := make([]opts.LineData, 0, len(s.Steps))
		for _, steps := range s.Steps {
			items = append(items, opts.LineData{Value: steps})
		}
		line.AddSeries(s.TeamName, items)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average steps"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	names := make([]string, 0, len(summaries))
	averages := make([]opts.BarData, 0, len(summaries))
	timeouts := make([]opts.BarData, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.TeamName)
		averages = append(averages, opts.BarData{Value: fmt.Sprintf("%.2f", s.AverageSteps)})
		timeouts = append(timeouts, opts.BarData{Value: s.Timeouts})
	}
	bar.SetXAxis(names).
		AddSeries("average steps", averages).
		AddSeries("timeouts", timeouts)

	page := components.NewPage()
	page.AddCharts(line, bar)
	return page.Render(w)
}
