package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/reward-points/internal/core/config"
	"github.com/aevon-lab/reward-points/internal/core/storage"
	"github.com/aevon-lab/reward-points/internal/core/storage/memory"
	"github.com/aevon-lab/reward-points/internal/core/storage/mongo"
	"github.com/aevon-lab/reward-points/internal/core/storage/postgres"
	"github.com/aevon-lab/reward-points/internal/ingestion"
	"github.com/aevon-lab/reward-points/internal/migrations"
	"github.com/aevon-lab/reward-points/internal/notify"
	"github.com/aevon-lab/reward-points/internal/projection"
	"github.com/aevon-lab/reward-points/internal/server"
)

func main() {
	configPath := flag.String("config", "rewards.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"strategy", cfg.Ingestion.Strategy,
		"address", fmtAddr(cfg.Server.Host, cfg.Server.Port),
	)

	// 2. Initialize Storage
	store, closer, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize document store", "type", cfg.Database.Type, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close document store", "error", err)
		}
	}()

	// 3. Initialize Notifications (SSE broker + log)
	broker := notify.NewBroker(cfg.Notify.SubscriberBuffer)
	sink := notify.MultiSink{broker, notify.LogSink{}}

	// 4. Initialize Ingestion
	strategy, err := ingestion.ParseStrategy(
		cfg.Ingestion.Strategy,
		cfg.Ingestion.WorkerCount,
		cfg.Ingestion.QueueSize,
		cfg.Ingestion.FlushParallelism,
	)
	if err != nil {
		slog.Error("Invalid ingestion strategy", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipeline := ingestion.NewPipeline(store, strategy, sink)
	dispatcher := ingestion.NewDispatcher(ctx, pipeline)
	ingestionSvc := ingestion.NewService(dispatcher, cfg.Ingestion.SpoolDir, cfg.Server.MaxUploadSizeMB)

	// 5. Initialize Projection (query API)
	projectionSvc := projection.NewService(store)

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	srv.Engine.MaxMultipartMemory = 32 << 20
	ingestionSvc.RegisterRoutes(srv.Engine)
	projectionSvc.RegisterRoutes(srv.Engine)
	broker.RegisterRoutes(srv.Engine)

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		cancel()
	}

	slog.Info("Waiting for in-flight ingestions...")
	dispatcher.Wait()

	slog.Info("Shutdown complete")
}

// openStore builds the configured document store. Postgres migrations run
// before the adapter checks its schema.
func openStore(cfg corecfg.DatabaseConfig) (storage.DocumentStore, io.Closer, error) {
	switch cfg.Type {
	case "postgres":
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		adapter, err := postgres.NewAdapter(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return adapter, adapter, nil
	case "mongo":
		adapter, err := mongo.NewAdapter(cfg.DSN, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		return adapter, adapter, nil
	case "memory":
		slog.Warn("Using in-memory document store; data is lost on restart")
		return memory.NewStore(), closerFunc(func() error { return nil }), nil
	default:
		return nil, nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
