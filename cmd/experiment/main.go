package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	metricsinmem "warehousebots/internal/adapter/metrics/inmemory"
	"warehousebots/internal/adapter/repo/memory"
	"warehousebots/internal/adapter/report/chart"
	"warehousebots/internal/adapter/report/console"
	worldruntime "warehousebots/internal/adapter/world/runtime"
	"warehousebots/internal/app/experiment"
	"warehousebots/internal/app/mission"
	"warehousebots/internal/domain/grid"
	domainmission "warehousebots/internal/domain/mission"
)

type options struct {
	missions int
	rows     int
	cols     int
	maxSteps int
	seed     int64
	chart    string
	show     bool
	noColor  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("experiment", flag.ContinueOnError)
	fs.IntVar(&o.missions, "missions", experiment.DefaultMissions, "missions per team")
	fs.IntVar(&o.rows, "rows", 10, "grid rows")
	fs.IntVar(&o.cols, "cols", 10, "grid columns")
	fs.IntVar(&o.maxSteps, "max-steps", domainmission.DefaultMaxSteps, "tick limit per mission")
	fs.Int64Var(&o.seed, "seed", -1, "random seed (negative picks one)")
	fs.StringVar(&o.chart, "chart", "", "write an HTML chart to this path")
	fs.BoolVar(&o.show, "show", false, "run and print one collaboration mission")
	fs.BoolVar(&o.noColor, "no-color", false, "disable terminal colours")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func (o options) seedPtr() *uint64 {
	if o.seed < 0 {
		return nil
	}
	s := uint64(o.seed)
	return &s
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, o options) error {
	store := memory.NewStore()
	world := worldruntime.NewProvider(worldruntime.Config{Rows: o.rows, Cols: o.cols})
	recorder := metricsinmem.NewRecorder()
	printer := console.NewPrinter(os.Stdout, !o.noColor)

	if o.show {
		uc := mission.UseCase{
			TxManager: memory.NewTxManager(store),
			Missions:  memory.NewMissionRepo(store),
			Events:    memory.NewEventRepo(store),
			World:     world,
			Metrics:   recorder,
			MaxSteps:  o.maxSteps,
		}
		resp, err := uc.Execute(ctx, mission.Request{
			Team: string(domainmission.TeamCollaboration),
			Seed: o.seedPtr(),
		})
		if err != nil {
			return fmt.Errorf("show mission: %w", err)
		}
		fmt.Printf("mission %s (%s, seed %d)\n", resp.MissionID, resp.TeamName, resp.Seed)
		printer.Mission(grid.Grid{Rows: resp.Rows, Cols: resp.Cols}, resp.Result)
		fmt.Println()
	}

	uc := experiment.RunUseCase{
		Experiments: memory.NewExperimentRepo(store),
		World:       world,
		Metrics:     recorder,
		MaxSteps:    o.maxSteps,
	}
	resp, err := uc.Execute(ctx, experiment.RunRequest{
		Missions: o.missions,
		Seed:     o.seedPtr(),
	})
	if err != nil {
		return fmt.Errorf("run experiment: %w", err)
	}
	fmt.Printf("%d missions per team on a %dx%d grid, max %d steps, seed %d\n\n",
		resp.Missions, resp.Rows, resp.Cols, resp.MaxSteps, resp.Seed)
	printer.Summaries(resp.Summaries)

	if o.chart == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(o.chart), 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	f, err := os.Create(o.chart)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()
	if err := chart.Render(f, "Collaboration vs solo", resp.Summaries); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	log.Printf("chart written to %s", o.chart)
	return nil
}
