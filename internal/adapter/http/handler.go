package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"warehousebots/internal/app/experiment"
	"warehousebots/internal/app/history"
	"warehousebots/internal/app/mission"
	"warehousebots/internal/app/pathplan"
	"warehousebots/internal/app/ports"
	"warehousebots/internal/app/replay"
	"warehousebots/internal/app/status"
	"warehousebots/internal/domain/grid"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	MissionUC       mission.UseCase
	HistoryUC       history.UseCase
	StatusUC        status.UseCase
	ReplayUC        replay.UseCase
	ExperimentUC    experiment.RunUseCase
	ExperimentGetUC experiment.GetUseCase
	PathUC          pathplan.UseCase
	KPI             kpiSnapshotProvider
	AllowedOrigins  []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowedOrigins))

	api := s.Group("/api")
	api.POST("/missions", h.runMission)
	api.GET("/missions", h.listMissions)
	api.GET("/missions/:mission_id", h.missionStatus)
	api.GET("/missions/:mission_id/replay", h.replay)
	api.POST("/experiments", h.runExperiment)
	api.GET("/experiments/:experiment_id", h.getExperiment)
	api.POST("/paths", h.findPath)

	s.GET("/ops/kpi", h.kpi)
}

type layoutRequest struct {
	Robots [2]grid.Position `json:"robots"`
	Target grid.Position    `json:"target"`
}

type missionRequest struct {
	Team         string         `json:"team"`
	Rows         int            `json:"rows,omitempty"`
	Cols         int            `json:"cols,omitempty"`
	MaxSteps     int            `json:"max_steps,omitempty"`
	Seed         *uint64        `json:"seed,omitempty"`
	Layout       *layoutRequest `json:"layout,omitempty"`
	IncludeTicks bool           `json:"include_ticks,omitempty"`
}

type experimentRequest struct {
	Teams    []string `json:"teams,omitempty"`
	Missions int      `json:"missions,omitempty"`
	Rows     int      `json:"rows,omitempty"`
	Cols     int      `json:"cols,omitempty"`
	MaxSteps int      `json:"max_steps,omitempty"`
	Seed     *uint64  `json:"seed,omitempty"`
}

type pathRequest struct {
	Rows    int            `json:"rows,omitempty"`
	Cols    int            `json:"cols,omitempty"`
	Start   grid.Position  `json:"start"`
	Goal    grid.Position  `json:"goal"`
	Blocked *grid.Position `json:"blocked,omitempty"`
}

func (h Handler) runMission(c context.Context, ctx *app.RequestContext) {
	var body missionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	req := mission.Request{
		Team:         body.Team,
		Rows:         body.Rows,
		Cols:         body.Cols,
		MaxSteps:     body.MaxSteps,
		Seed:         body.Seed,
		IncludeTicks: body.IncludeTicks,
	}
	if body.Layout != nil {
		robots, target := body.Layout.Robots, body.Layout.Target
		req.Robots = &robots
		req.Target = &target
	}

	resp, err := h.MissionUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) listMissions(c context.Context, ctx *app.RequestContext) {
	limit, ok := queryInt(ctx, "limit")
	if !ok {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_limit", "limit must be an integer")
		return
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) missionStatus(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{MissionID: ctx.Param("mission_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, ok := queryInt(ctx, "limit")
	if !ok {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_limit", "limit must be an integer")
		return
	}
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		MissionID: ctx.Param("mission_id"),
		Limit:     limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) runExperiment(c context.Context, ctx *app.RequestContext) {
	var body experimentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ExperimentUC.Execute(c, experiment.RunRequest{
		Teams:    body.Teams,
		Missions: body.Missions,
		Rows:     body.Rows,
		Cols:     body.Cols,
		MaxSteps: body.MaxSteps,
		Seed:     body.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getExperiment(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ExperimentGetUC.Execute(c, experiment.GetRequest{ExperimentID: ctx.Param("experiment_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) findPath(c context.Context, ctx *app.RequestContext) {
	var body pathRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PathUC.Execute(c, pathplan.Request{
		Rows:    body.Rows,
		Cols:    body.Cols,
		Start:   body.Start,
		Goal:    body.Goal,
		Blocked: body.Blocked,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(ctx *app.RequestContext, key string) (int, bool) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, mission.ErrInvalidRequest),
		errors.Is(err, experiment.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, pathplan.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "cancelled", err.Error())
	default:
		hlog.Errorf("unhandled request error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
