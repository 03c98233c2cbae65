package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "warehousebots/internal/adapter/http"
	metricsinmem "warehousebots/internal/adapter/metrics/inmemory"
	gormrepo "warehousebots/internal/adapter/repo/gorm"
	"warehousebots/internal/adapter/repo/memory"
	worldruntime "warehousebots/internal/adapter/world/runtime"
	"warehousebots/internal/app/experiment"
	"warehousebots/internal/app/history"
	"warehousebots/internal/app/mission"
	"warehousebots/internal/app/pathplan"
	"warehousebots/internal/app/ports"
	"warehousebots/internal/app/replay"
	"warehousebots/internal/app/status"
	domainmission "warehousebots/internal/domain/mission"
	"warehousebots/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type repos struct {
	missions    ports.MissionRepository
	events      ports.EventRepository
	experiments ports.ExperimentRepository
	tx          ports.TxManager
}

func main() {
	r := mustBuildRepos()
	worldProvider := buildWorldProviderFromEnv()
	kpiRecorder := metricsinmem.NewRecorder()
	maxSteps := intEnv("WAREHOUSE_MAX_STEPS", domainmission.DefaultMaxSteps)

	h := httpadapter.Handler{
		MissionUC: mission.UseCase{
			TxManager: r.tx,
			Missions:  r.missions,
			Events:    r.events,
			World:     worldProvider,
			Metrics:   kpiRecorder,
			MaxSteps:  maxSteps,
			Now:       time.Now,
		},
		HistoryUC: history.UseCase{Missions: r.missions},
		StatusUC:  status.UseCase{Missions: r.missions},
		ReplayUC:  replay.UseCase{Events: r.events},
		ExperimentUC: experiment.RunUseCase{
			Experiments: r.experiments,
			World:       worldProvider,
			Metrics:     kpiRecorder,
			MaxSteps:    maxSteps,
			Now:         time.Now,
		},
		ExperimentGetUC: experiment.GetUseCase{Experiments: r.experiments},
		PathUC:          buildPathPlannerFromEnv(),
		KPI:             kpiRecorder,
		AllowedOrigins:  listEnv("WAREHOUSE_CORS_ORIGINS"),
	}

	addr := stringEnv("WAREHOUSE_HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("warehouse server listening on %s", addr)
	s.Spin()
}

// mustBuildRepos uses postgres when WAREHOUSE_DB_DSN is set and falls back to
// the in-memory store otherwise.
func mustBuildRepos() repos {
	dsn := strings.TrimSpace(os.Getenv("WAREHOUSE_DB_DSN"))
	if dsn == "" {
		log.Println("WAREHOUSE_DB_DSN not set, using in-memory store")
		store := memory.NewStore()
		return repos{
			missions:    memory.NewMissionRepo(store),
			events:      memory.NewEventRepo(store),
			experiments: memory.NewExperimentRepo(store),
			tx:          memory.NewTxManager(store),
		}
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := gormrepo.ApplyMigrations(ctx, db, migrationsFS()); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return repos{
		missions:    gormrepo.NewMissionRepo(db),
		events:      gormrepo.NewEventRepo(db),
		experiments: gormrepo.NewExperimentRepo(db),
		tx:          gormrepo.NewTxManager(db),
	}
}

func migrationsFS() fs.FS {
	if dir := strings.TrimSpace(os.Getenv("WAREHOUSE_MIGRATIONS_DIR")); dir != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func buildWorldProviderFromEnv() ports.WorldProvider {
	cfg := worldruntime.DefaultConfig()
	cfg.Rows = intEnv("WAREHOUSE_GRID_ROWS", cfg.Rows)
	cfg.Cols = intEnv("WAREHOUSE_GRID_COLS", cfg.Cols)
	cfg.MaxCells = intEnv("WAREHOUSE_MAX_CELLS", cfg.MaxCells)
	return worldruntime.NewProvider(cfg)
}

func buildPathPlannerFromEnv() pathplan.UseCase {
	def := worldruntime.DefaultConfig()
	return pathplan.UseCase{
		DefaultRows: intEnv("WAREHOUSE_GRID_ROWS", def.Rows),
		DefaultCols: intEnv("WAREHOUSE_GRID_COLS", def.Cols),
		MaxCells:    intEnv("WAREHOUSE_MAX_CELLS", def.MaxCells),
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func listEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
