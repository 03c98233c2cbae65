package main

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"warehousebots/internal/app/pathplan"
	"warehousebots/internal/app/ports"
	"warehousebots/internal/domain/grid"
)

func TestIntEnv(t *testing.T) {
	t.Setenv("WAREHOUSE_TEST_INT", " 42 ")
	if got := intEnv("WAREHOUSE_TEST_INT", 7); got != 42 {
		t.Fatalf("intEnv()=%d want 42", got)
	}
	t.Setenv("WAREHOUSE_TEST_INT", "abc")
	if got := intEnv("WAREHOUSE_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv()=%d want fallback 7", got)
	}
}

func TestListEnv(t *testing.T) {
	t.Setenv("WAREHOUSE_CORS_ORIGINS", "https://a.example.com, ,https://b.example.com")
	got := listEnv("WAREHOUSE_CORS_ORIGINS")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Fatalf("listEnv()=%v", got)
	}
}

func TestMustBuildRepos_FallsBackToMemory(t *testing.T) {
	t.Setenv("WAREHOUSE_DB_DSN", "")
	r := mustBuildRepos()
	err := r.tx.RunInTx(context.Background(), func(ctx context.Context) error {
		return r.missions.Save(ctx, ports.MissionRecord{MissionID: "m-1"})
	})
	if err != nil {
		t.Fatalf("save through memory repos: %v", err)
	}
	if _, err := r.missions.GetByID(context.Background(), "m-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func TestMigrationsFS_UsesDirOverride(t *testing.T) {
	t.Setenv("WAREHOUSE_MIGRATIONS_DIR", "")
	files, err := fs.Glob(migrationsFS(), "*.sql")
	if err != nil || len(files) == 0 {
		t.Fatalf("expected embedded migrations, got %v, %v", files, err)
	}

	t.Setenv("WAREHOUSE_MIGRATIONS_DIR", t.TempDir())
	files, err = fs.Glob(migrationsFS(), "*.sql")
	if err != nil || len(files) != 0 {
		t.Fatalf("expected empty override dir, got %v, %v", files, err)
	}
}

func TestBuildWorldProviderFromEnv(t *testing.T) {
	t.Setenv("WAREHOUSE_GRID_ROWS", "4")
	t.Setenv("WAREHOUSE_GRID_COLS", "6")
	w, err := buildWorldProviderFromEnv().NewWorld(context.Background(), ports.WorldRequest{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if g := w.Grid(); g.Rows != 4 || g.Cols != 6 {
		t.Fatalf("unexpected grid %+v", g)
	}
}

func TestBuildPathPlannerFromEnv_SharesCellLimit(t *testing.T) {
	t.Setenv("WAREHOUSE_MAX_CELLS", "30")
	uc := buildPathPlannerFromEnv()
	if uc.MaxCells != 30 {
		t.Fatalf("MaxCells=%d want=30", uc.MaxCells)
	}
	_, err := uc.Execute(context.Background(), pathplan.Request{Rows: 6, Cols: 6, Goal: grid.Position{Row: 5, Col: 5}})
	if !errors.Is(err, pathplan.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for 6x6, got %v", err)
	}
}
