package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/config"
	"github.com/iudanet/servermanager/internal/server"
	"github.com/iudanet/servermanager/internal/server/handlers"
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

	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	apiURL := flag.String("api", cfg.APIURL, "Server API base URL")
	addr := flag.String("addr", cfg.ListenAddr, "Dashboard listen address")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	level, _ := cfg.SlogLevel()
	logger := telemetry.NewLogger(os.Stdout, level, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "servermanager-dashboard", cfg.OTELEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	gateway := api.NewClient(*apiURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)
	hub := handlers.NewHub(logger)
	projector := state.NewProjector(gateway, hub, logger)

	srv := server.New(server.Options{
		Addr:      *addr,
		Version:   Version,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	}, projector, hub, logger)

	// Первая загрузка в фоне: страница показывает LOADING, пока backend отвечает
	go projector.LoadServers(ctx)

	logger.Info("Server Manager dashboard starting",
		"version", Version,
		"api", gateway.BaseURL(),
		"addr", *addr)

	if err := srv.Run(ctx); err != nil {
		logger.Error("dashboard stopped", "error", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("Server Manager Dashboard\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
