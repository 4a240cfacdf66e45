// Package google exports expense records to a Google Sheets
// spreadsheet using service-account credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/log"
)

const dateFormat = "2006-01-02"

// Client implements export.Exporter against one spreadsheet. Each
// export call appends a block of rows below whatever the sheet already
// holds; nothing is ever read back into the ledger.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *log.Logger
}

var _ export.Exporter = (*Client)(nil)

// Config carries the spreadsheet coordinates and credentials.
type Config struct {
	SpreadsheetID      string
	SheetName          string
	ServiceAccountJSON string
	ServiceAccountFile string
}

// New creates a Sheets exporter from explicit configuration.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Expenses"
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	svc, err := newSheetsService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
		logger:        logger.WithComponent(log.ComponentExport),
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials, either inline JSON or a file path.
func newSheetsService(ctx context.Context, cfg Config) (*gsheet.Service, error) {
	var credentialsJSON []byte
	var err error

	switch {
	case cfg.ServiceAccountJSON != "":
		credentialsJSON = []byte(cfg.ServiceAccountJSON)
	case cfg.ServiceAccountFile != "":
		credentialsJSON, err = os.ReadFile(cfg.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ExportAll appends every record to the spreadsheet.
func (c *Client) ExportAll(ctx context.Context, records []core.Expense) (string, error) {
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	ref, err := c.appendBlock(ctx, records, "")
	if err != nil {
		return "", err
	}

	c.logger.Info("Exported all expenses to spreadsheet",
		log.FieldOperation, log.OpExport,
		log.FieldCount, len(records),
		log.FieldPath, ref)
	return ref, nil
}

// ExportByCategory appends the records of one category plus a summary
// total row.
func (c *Client) ExportByCategory(ctx context.Context, records []core.Expense, category core.Category) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	matched := export.FilterByCategory(records, category)
	if len(matched) == 0 {
		return "", fmt.Errorf("category %s: %w", category, export.ErrNoMatch)
	}

	ref, err := c.appendBlock(ctx, matched, "Total for category:")
	if err != nil {
		return "", err
	}

	c.logger.Info("Exported expenses by category to spreadsheet",
		log.FieldOperation, log.OpExport,
		log.FieldCategory, category.String(),
		log.FieldCount, len(matched),
		log.FieldPath, ref)
	return ref, nil
}

// ExportByDate appends the records of one calendar date plus a summary
// total row.
func (c *Client) ExportByDate(ctx context.Context, records []core.Expense, date core.Date) (string, error) {
	if err := date.Validate(); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	matched := export.FilterByDate(records, date)
	if len(matched) == 0 {
		return "", fmt.Errorf("date %s: %w", date, export.ErrNoMatch)
	}

	ref, err := c.appendBlock(ctx, matched, "Total for date:")
	if err != nil {
		return "", err
	}

	c.logger.Info("Exported expenses by date to spreadsheet",
		log.FieldOperation, log.OpExport,
		log.FieldDate, date.String(),
		log.FieldCount, len(matched),
		log.FieldPath, ref)
	return ref, nil
}

// appendBlock writes a header row when the sheet is still empty, then
// the record rows, then an optional summary row. It returns the A1
// range that was written.
func (c *Client) appendBlock(ctx context.Context, records []core.Expense, summaryLabel string) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	// Find the next empty row from the sheet dimensions.
	rng := fmt.Sprintf("%s!A:A", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get sheet dimensions for %s: %w", c.sheetName, err)
	}
	nextRow := len(resp.Values) + 1

	var values [][]any
	if nextRow == 1 {
		header := make([]any, len(export.Header))
		for i, h := range export.Header {
			header[i] = h
		}
		values = append(values, header)
	}
	for _, e := range records {
		values = append(values, []any{
			e.Date.Format(dateFormat),
			e.Amount.Units(),
			e.Category.String(),
			e.Description,
		})
	}
	if summaryLabel != "" {
		values = append(values, []any{summaryLabel, export.Sum(records).Units()})
	}

	lastRow := nextRow + len(values) - 1
	dataRange := fmt.Sprintf("%s!A%d:D%d", c.sheetName, nextRow, lastRow)
	vr := &gsheet.ValueRange{Values: values}

	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, dataRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("update range %s: %w", dataRange, err)
	}

	return dataRange, nil
}
