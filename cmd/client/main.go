package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/cli"
	"github.com/iudanet/servermanager/internal/client/iocli"
	"github.com/iudanet/servermanager/internal/client/storage/boltdb"
	"github.com/iudanet/servermanager/internal/config"
	"github.com/iudanet/servermanager/internal/telemetry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	// Глобальные флаги переопределяют окружение
	showVersion := flag.Bool("version", false, "Show version information")
	apiURL := flag.String("api", cfg.APIURL, "Server API base URL")
	dbPath := flag.String("db", cfg.ClientDB, "Path to local snapshot database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	settings := cli.Settings{APIURL: *apiURL, DBPath: *dbPath}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr, settings)
		return 1
	}

	level, _ := cfg.SlogLevel()
	// Логи в stderr, чтобы не смешивать с таблицей
	logger := telemetry.NewLogger(os.Stderr, level, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "servermanager-client", cfg.OTELEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*apiURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)

	c := cli.New(iocli.NewStdio(), apiClient, boltStorage, boltStorage, settings, logger)

	// Выполняем команду
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("Server Manager Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
