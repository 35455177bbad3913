package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcsoftlabs/Yeng-client/internal/buildinfo"
	"github.com/jcsoftlabs/Yeng-client/internal/client/cli"
	"github.com/jcsoftlabs/Yeng-client/internal/client/config"
	"github.com/jcsoftlabs/Yeng-client/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.Verbose)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
