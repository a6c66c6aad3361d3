package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gastosmx/expense-classifier/internal/api"
	"github.com/gastosmx/expense-classifier/internal/config"
	"github.com/gastosmx/expense-classifier/internal/extractor"
	"github.com/gastosmx/expense-classifier/internal/logger"
	"github.com/gastosmx/expense-classifier/internal/models"
	"github.com/gastosmx/expense-classifier/internal/pipeline"
	"github.com/gastosmx/expense-classifier/internal/writer"
)

func main() {
	// CLI flags
	outputFlag := flag.String("output", "", "Output file path (defaults to gastos_resumen.<format>)")
	formatFlag := flag.String("format", "csv", "Output format: csv or xlsx")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	debugFlag := flag.Bool("debug", false, "Print skipped lines with the reason they were dropped")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Statement Expense Classifier

Extracts transactions from bank and credit-card statements (BBVA, AMEX)
and assigns each one a spending category.

Usage:
  expense-classifier [flags] <statement.pdf|statement.txt> [more files ...]
  expense-classifier -serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Classify one statement into a CSV
  expense-classifier estado_julio.pdf

  # Merge several statements into one Excel workbook
  expense-classifier -format=xlsx -output=gastos.xlsx bbva.pdf amex.pdf

  # Already-extracted text works too
  expense-classifier estado.txt

  # Run the upload API on :8080
  expense-classifier -serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("expense-classifier v%s\n", api.Version)
		os.Exit(0)
	}

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	if *serveFlag {
		runServer(cfg)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	format := strings.ToLower(*formatFlag)
	if format != "csv" && format != "xlsx" {
		fatalf("Unknown format %q. Supported: csv, xlsx\n", *formatFlag)
	}

	if err := processFiles(flag.Args(), *outputFlag, format, *debugFlag, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func processFiles(inputs []string, outputPath, format string, debug bool, cfg *config.Config) error {
	var docs []models.DocumentLines
	for _, path := range inputs {
		lines, err := readInput(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		docs = append(docs, models.DocumentLines{Source: filepath.Base(path), Lines: lines})
	}

	results, err := pipeline.Run(context.Background(), docs, cfg.BatchWorkers)
	if err != nil {
		return err
	}

	var txns []models.Transaction
	for _, res := range results {
		fmt.Printf("%s: %d transaction(s)\n", res.Source, len(res.Transactions))
		if len(res.Transactions) == 0 {
			logger.Warn("no transactions found", zap.String("file", res.Source))
		}
		if debug {
			for _, s := range res.Skipped {
				fmt.Printf("  skipped line %d (%s): %s\n", s.LineNum, s.Reason, s.Text)
			}
		}
		txns = append(txns, res.Transactions...)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = "gastos_resumen." + format
	}

	switch format {
	case "xlsx":
		w := &writer.ExcelWriter{}
		if err := w.WriteToFile(outPath, txns); err != nil {
			return err
		}
	default:
		w := &writer.CSVWriter{}
		if err := w.WriteToFile(outPath, txns); err != nil {
			return err
		}
	}

	fmt.Printf("Output: %s (%d transactions)\n", outPath, len(txns))
	return nil
}

// readInput loads one statement as text lines. PDFs go through the
// extraction collaborator; .txt files are used as-is.
func readInput(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractor.ExtractLines(path)
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return strings.Split(string(data), "\n"), nil
	default:
		return nil, fmt.Errorf("expected .pdf or .txt file, got %q", filepath.Ext(path))
	}
}

func runServer(cfg *config.Config) {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB << 20,
	})

	h := &api.Handler{
		MaxUploadMB:  cfg.MaxUploadMB,
		BatchWorkers: cfg.BatchWorkers,
		Log:          logger.Get(),
	}
	h.Register(app)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
