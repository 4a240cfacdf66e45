package main

import (
	"context"
	"fmt"
	"os"

	"expenses/internal/backend"
	"expenses/internal/cli"
	"expenses/internal/ledger"
	"expenses/internal/log"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx := context.Background()

	exporter, err := backend.NewExporter(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize export backend", log.FieldError, err)
		os.Exit(1)
	}

	publisher := backend.NewPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close publisher", log.FieldError, err)
		}
	}()

	book := ledger.New(
		ledger.WithLogger(logger.WithComponent(log.ComponentLedger)),
		ledger.WithPublisher(publisher),
	)

	app := &cli.App{
		Ledger:   book,
		Exporter: exporter,
		Logger:   logger.WithComponent(log.ComponentCLI),
	}

	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
