// Package backend wires the configured export and notification
// collaborators for the presentation layer.
package backend

import (
	"context"
	"fmt"

	"expenses/internal/config"
	"expenses/internal/event"
	"expenses/internal/export"
	"expenses/internal/export/excel"
	"expenses/internal/export/google"
	"expenses/internal/log"
)

// Type represents the spreadsheet export backend.
type Type string

const (
	ExcelBackend  Type = "excel"
	SheetsBackend Type = "sheets"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case ExcelBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// NewExporter creates the exporter selected by the configuration.
func NewExporter(ctx context.Context, cfg *config.Config, logger *log.Logger) (export.Exporter, error) {
	backendType := Type(cfg.ExportBackend)
	if !backendType.IsValid() {
		return nil, fmt.Errorf("invalid export backend: %s", cfg.ExportBackend)
	}

	switch backendType {
	case SheetsBackend:
		cli, err := google.New(ctx, google.Config{
			SpreadsheetID:      cfg.GoogleSpreadsheetID,
			SheetName:          cfg.GoogleSheetName,
			ServiceAccountJSON: cfg.GoogleServiceAccountJSON,
			ServiceAccountFile: cfg.GoogleServiceAccountFile,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets exporter: %w", err)
		}
		logger.Info("Initialized Google Sheets export backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
		return cli, nil
	default:
		logger.Info("Initialized XLSX export backend", "dir", cfg.ExportDir)
		return excel.New(cfg.ExportDir, logger), nil
	}
}

// NewPublisher creates the append notification publisher. The broker is
// optional: when it is not configured, or the connection fails, the
// application continues with a no-op publisher.
func NewPublisher(cfg *config.Config, logger *log.Logger) event.Publisher {
	if cfg.AMQPURL == "" {
		return event.NopPublisher{}
	}

	client, err := event.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to initialize AMQP publisher, continuing without notifications",
			log.FieldError, err)
		return event.NopPublisher{}
	}

	logger.Info("Initialized AMQP publisher",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)
	return client
}
