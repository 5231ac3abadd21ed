package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"gloomhold/internal/app/codex"
	"gloomhold/internal/app/ports"
	"gloomhold/internal/app/replay"
)

// Channel is the websocket endpoint; everything else on this surface is
// plain request/response.
type Channel interface {
	Serve(c context.Context, ctx *app.RequestContext)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	Channel  Channel
	ReplayUC replay.UseCase
	CodexUC  codex.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.GET("/ws", h.Channel.Serve)
	s.GET("/healthz", h.healthz)
	s.GET("/ops/kpi", h.kpi)
	s.GET("/ops/replay", h.replay)
	s.GET("/codex/index.json", h.codexIndex)
	s.GET("/codex/*filepath", h.codexFile)
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		RunID:        string(ctx.Query("run_id")),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) codexIndex(c context.Context, ctx *app.RequestContext) {
	b, err := h.CodexUC.Index(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", b)
}

func (h Handler) codexFile(c context.Context, ctx *app.RequestContext) {
	name := strings.TrimPrefix(string(ctx.Param("filepath")), "/")
	if name == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_document", "invalid document path")
		return
	}

	b, err := h.CodexUC.File(c, name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", b)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, codex.ErrUnknownDocument):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_document", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
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
