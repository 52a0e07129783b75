package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	httpadapter "rentspin/internal/adapter/http"
	metricsinmem "rentspin/internal/adapter/metrics/inmemory"
	gormrepo "rentspin/internal/adapter/repo/gorm"
	"rentspin/internal/adapter/repo/memory"
	"rentspin/internal/adapter/scheduler"
	"rentspin/internal/app/play"
	"rentspin/internal/app/ports"
	"rentspin/internal/app/replay"
	"rentspin/internal/app/status"
	"rentspin/internal/config"
	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

func main() {
	logger := newLogger(boolEnv("RENTSPIN_DEBUG"))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(os.Getenv("RENTSPIN_CONFIG"), os.Getenv("RENTSPIN_CATALOG"))
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	store := memory.NewStore()
	games := memory.NewGameRepo(store)
	txManager, events, ledger := mustBuildHistory(logger, store)
	kpiRecorder := metricsinmem.NewRecorder()

	machine := economy.NewMachine(cfg.Catalog, slot.DefaultRules(), cfg.Tuning, slot.DefaultSource())

	h := httpadapter.Handler{
		PlayUC: play.UseCase{
			TxManager: txManager,
			Games:     games,
			Events:    events,
			Ledger:    ledger,
			Metrics:   kpiRecorder,
			Scheduler: scheduler.Timer{},
			Machine:   machine,
			Logger:    logger,
		},
		StatusUC: status.UseCase{TxManager: txManager, Games: games},
		ReplayUC: replay.UseCase{TxManager: txManager, Events: events, Ledger: ledger},
		Catalog:  cfg.Catalog,
		KPI:      kpiRecorder,
		Logger:   logger,

		AllowOrigin: os.Getenv("RENTSPIN_CORS_ORIGIN"),
	}

	addr := stringEnv("RENTSPIN_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	logger.Info("rentspin server listening",
		zap.String("addr", addr),
		zap.Int("symbols", cfg.Catalog.Len()),
		zap.Int("rows", cfg.Tuning.Rows),
		zap.Int("cols", cfg.Tuning.Cols),
	)
	s.Spin()
}

// mustBuildHistory keeps events and the spin ledger in memory unless a
// postgres DSN is configured. With postgres the returned TxManager holds the
// memory lock and one database transaction, so both history writes of a
// transition commit together.
func mustBuildHistory(logger *zap.Logger, store *memory.Store) (ports.TxManager, ports.EventRepository, ports.SpinLedger) {
	dsn := strings.TrimSpace(os.Getenv("RENTSPIN_DB_DSN"))
	if dsn == "" {
		return memory.NewTxManager(store), memory.NewEventRepo(store), memory.NewSpinLedger(store)
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		logger.Fatal("open postgres", zap.Error(err))
	}
	dir := stringEnv("RENTSPIN_MIGRATIONS", "./migrations")
	applied, err := gormrepo.ApplyMigrations(context.Background(), db, os.DirFS(dir))
	if err != nil {
		logger.Fatal("apply migrations", zap.String("dir", dir), zap.Error(err))
	}
	logger.Info("migrations applied", zap.Strings("files", applied))
	tx := memory.NewChainedTxManager(store, gormrepo.NewTxManager(db))
	return tx, gormrepo.NewEventRepo(db), gormrepo.NewSpinLedger(db)
}

func newLogger(debug bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}
