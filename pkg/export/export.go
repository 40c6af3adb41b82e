// Package export wires the pipeline together: scrape a page, parse it,
// render the requested format. Both the CLI and the HTTP server sit on
// top of it.
package export

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yacoob/aib2ofx/pkg/config"
	"github.com/yacoob/aib2ofx/pkg/format"
	"github.com/yacoob/aib2ofx/pkg/models"
	"github.com/yacoob/aib2ofx/pkg/parser"
	"github.com/yacoob/aib2ofx/pkg/scrape"
	"github.com/yacoob/aib2ofx/pkg/store"
)

const (
	FormatOFX = "ofx"
	FormatCSV = "csv"
)

type Exporter struct {
	logger   *log.Logger
	cfg      *config.Config
	balances store.Store
	parser   *parser.Parser
}

func New(logger *log.Logger, cfg *config.Config, balances store.Store) *Exporter {
	p := parser.New(logger)
	p.Currency = cfg.Currency

	return &Exporter{
		logger:   logger,
		cfg:      cfg,
		balances: balances,
		parser:   p,
	}
}

// Convert runs a statement page through scrape, parse and render.
func (e *Exporter) Convert(html []byte, formatName string) ([]byte, error) {
	statement, err := e.Parse(html)
	if err != nil {
		return nil, err
	}
	return e.Render(statement, formatName)
}

// Parse extracts the statement from a page without rendering it, so
// callers can inspect it first.
func (e *Exporter) Parse(html []byte) (*models.Statement, error) {
	source, err := scrape.Statement(html)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("scraped statement page",
		"type", source.Type,
		"account", source.AccountID,
		"rows", len(source.Rows))

	statement, err := e.parser.ParseStatement(source.Rows, source.Type, source.AccountID, e.balances)
	if err != nil {
		return nil, err
	}
	statement.BankID = e.cfg.BankID

	return statement, nil
}

// Render serializes a parsed statement into the named format.
func (e *Exporter) Render(statement *models.Statement, formatName string) ([]byte, error) {
	switch formatName {
	case FormatOFX:
		return format.RenderOFX(statement, time.Now())
	case FormatCSV:
		return format.RenderCSV(statement)
	default:
		return nil, fmt.Errorf("unknown output format %q", formatName)
	}
}

// CaptureBalances scrapes the accounts overview page and persists each
// account's available balance for later exports. Returns how many were
// captured.
func (e *Exporter) CaptureBalances(html []byte) (int, error) {
	balances, err := scrape.Balances(html)
	if err != nil {
		return 0, err
	}

	for _, balance := range balances {
		if err := e.balances.Set(balance.AccountID, balance.Amount); err != nil {
			return 0, fmt.Errorf("storing balance for %s: %w", balance.AccountID, err)
		}
		e.logger.Info("captured balance", "account", balance.AccountID, "available", balance.Amount)
	}
	return len(balances), nil
}
