package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkrasnov/safekeep/internal/buildinfo"
	"github.com/dkrasnov/safekeep/internal/cli"
	"github.com/dkrasnov/safekeep/internal/config"
	"github.com/dkrasnov/safekeep/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
