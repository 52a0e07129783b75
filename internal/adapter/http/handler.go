package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"rentspin/internal/app/ports"
	"rentspin/internal/app/play"
	"rentspin/internal/app/replay"
	"rentspin/internal/app/status"
	"rentspin/internal/domain/symbol"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 50

type Handler struct {
	PlayUC   play.UseCase
	StatusUC status.UseCase
	ReplayUC replay.UseCase
	Catalog  symbol.Catalog
	KPI      kpiSnapshotProvider
	Logger   *zap.Logger

	// AllowOrigin is the CORS origin; empty allows any.
	AllowOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin), accessLog(h.logger()))

	games := s.Group("/api/games")
	games.POST("", h.createGame)
	games.GET("/:id", h.getGame)
	games.POST("/:id/restart", h.restart)
	games.POST("/:id/spin", h.spin)
	games.POST("/:id/draft", h.draft)
	games.GET("/:id/history", h.history)

	s.GET("/api/catalog", h.catalog)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

type draftRequest struct {
	SymbolID string `json:"symbol_id"`
}

func (h Handler) createGame(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PlayUC.NewGame(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getGame(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{GameID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) restart(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PlayUC.Restart(c, play.Request{GameID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) spin(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PlayUC.Spin(c, play.Request{GameID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) draft(c context.Context, ctx *app.RequestContext) {
	var body draftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PlayUC.Draft(c, play.DraftRequest{GameID: ctx.Param("id"), SymbolID: body.SymbolID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	limit := defaultHistoryLimit
	if raw := strings.TrimSpace(ctx.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
			return
		}
		limit = n
	}
	occurredFrom, _ := strconv.ParseInt(ctx.Query("occurred_from"), 10, 64)
	occurredTo, _ := strconv.ParseInt(ctx.Query("occurred_to"), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		GameID:       ctx.Param("id"),
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

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"symbols": h.Catalog.Definitions()})
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

func accessLog(log *zap.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		log.Debug("http request",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
	}
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
	case errors.Is(err, symbol.ErrUnknownSymbol):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_symbol", err.Error())
	case errors.Is(err, play.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
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
