package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"alpha-terminal/analyst"
	"alpha-terminal/config"
	"alpha-terminal/cronjob"
	"alpha-terminal/database"
	"alpha-terminal/handlers"
	"alpha-terminal/logger"
	"alpha-terminal/pipeline"
	"alpha-terminal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfgPath := os.Getenv("AT_CONFIG")
	envOnly := cfgPath == ""
	if raw := os.Getenv("AT_ENV_ONLY"); raw != "" {
		envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal("journal open failed", zap.Error(err))
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("journal migrate failed", zap.Error(err))
	}
	journal := &database.Journal{DB: db, Logger: log}

	signals := store.NewSignalStore()
	signals.Initialize()
	feed := store.NewFeedStore()
	feed.Initialize()

	for _, sig := range signals.Snapshot() {
		if err := journal.RecordSignal(ctx, sig); err != nil {
			log.Warn("journal seed signal failed", zap.String("signal_id", sig.ID), zap.Error(err))
		}
	}
	for _, item := range feed.Snapshot() {
		if err := journal.RecordItem(ctx, item); err != nil {
			log.Warn("journal seed item failed", zap.String("item_id", item.ID), zap.Error(err))
		}
	}
	go journal.Run(ctx, signals.Subscribe(256), feed.Subscribe(256))

	gemini := analyst.NewGeminiClient(cfg.Gemini)
	pipe := pipeline.New(signals, feed, gemini, cfg.Gemini.APIKey, log)
	if cfg.Gemini.APIKey == "" {
		log.Warn("no default Gemini API key configured; requests must supply api_key")
	}

	runner := cronjob.New(log, ctx)
	digest := &cronjob.Digest{Signals: signals, Feed: feed, Pipeline: pipe, Logger: log}
	if err := digest.Schedule(runner, cfg.Digest.Spec); err != nil {
		log.Fatal("invalid digest schedule", zap.String("spec", cfg.Digest.Spec), zap.Error(err))
	}
	runner.Start()
	defer runner.Stop()

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handlers.RequestLogging(log))

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api/overview")
	})

	h := &handlers.Handler{
		Signals:      signals,
		Feed:         feed,
		Pipeline:     pipe,
		Journal:      journal,
		Logger:       log,
		StreamBuffer: cfg.Server.StreamBuffer,
	}
	h.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
		// Streams end with the process context instead of holding Shutdown open.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown failed", zap.Error(err))
	}
}
