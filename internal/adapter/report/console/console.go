package console

import (
	"fmt"
	"io"
	"strings"

	"warehousebots/internal/domain/grid"
	"warehousebots/internal/domain/mission"
	"warehousebots/internal/domain/warehouse"

	"github.com/logrusorgru/aurora"
)

// Printer writes grids and experiment tables to a terminal.
type Printer struct {
	out io.Writer
	au  aurora.Aurora
}

func NewPrinter(out io.Writer, colors bool) Printer {
	return Printer{out: out, au: aurora.NewAurora(colors)}
}

// Grid draws the board: robots as 1 and 2, the target as T. A robot standing
// on the target is drawn as *.
func (p Printer) Grid(g grid.Grid, snap warehouse.Snapshot) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pos := grid.Position{Row: r, Col: c}
			fmt.Fprint(p.out, p.cell(pos, snap))
			fmt.Fprint(p.out, p.au.Gray(12, "|"))
		}
		fmt.Fprintln(p.out)
	}
}

func (p Printer) cell(pos grid.Position, snap warehouse.Snapshot) aurora.Value {
	onTarget := pos == snap.Target
	switch {
	case pos == snap.Robots[0] && onTarget, pos == snap.Robots[1] && onTarget:
		return p.au.Bold(p.au.Yellow(" * "))
	case pos == snap.Robots[0]:
		return p.au.Green(" 1 ")
	case pos == snap.Robots[1]:
		return p.au.Cyan(" 2 ")
	case onTarget:
		return p.au.Red(" T ")
	default:
		return p.au.Blue(" . ")
	}
}

// Mission prints one result with its start and final boards.
func (p Printer) Mission(g grid.Grid, res mission.Result) {
	fmt.Fprintln(p.out, p.au.Bold("start"))
	p.Grid(g, res.Start)
	fmt.Fprintln(p.out, p.au.Bold("final"))
	p.Grid(g, res.Final)
	if res.Found {
		fmt.Fprintf(p.out, "%s found by %s in %d steps\n", p.au.Green("target"), res.FinderName, res.Steps)
		return
	}
	fmt.Fprintf(p.out, "%s after %d steps\n", p.au.Red("timed out"), res.Steps)
}

// Summaries prints one row per team; the lowest average is highlighted.
func (p Printer) Summaries(summaries []mission.Summary) {
	best := -1
	for i, s := range summaries {
		if best < 0 || s.AverageSteps < summaries[best].AverageSteps {
			best = i
		}
	}
	header := fmt.Sprintf("%-28s %9s %12s %9s", "team", "missions", "avg steps", "timeouts")
	fmt.Fprintln(p.out, p.au.Bold(header))
	fmt.Fprintln(p.out, strings.Repeat("-", len(header)))
	for i, s := range summaries {
		row := fmt.Sprintf("%-28s %9d %12.2f %9d", s.TeamName, s.Missions, s.AverageSteps, s.Timeouts)
		if i == best {
			fmt.Fprintln(p.out, p.au.Green(row))
			continue
		}
		fmt.Fprintln(p.out, row)
	}
}
