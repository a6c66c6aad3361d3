// Package api exposes the classifier over HTTP: statement uploads in,
// classified transactions and summaries out.
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gastosmx/expense-classifier/internal/extractor"
	"github.com/gastosmx/expense-classifier/internal/models"
	"github.com/gastosmx/expense-classifier/internal/pipeline"
	"github.com/gastosmx/expense-classifier/internal/report"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// ClassifyResponse is the JSON response from POST /api/classify.
type ClassifyResponse struct {
	Success      bool                                  `json:"success"`
	Error        string                                `json:"error,omitempty"`
	BatchID      string                                `json:"batchId,omitempty"`
	Count        int                                   `json:"count"`
	Transactions []models.Transaction                  `json:"transactions"`
	Totals       []report.CategoryTotal                `json:"totals,omitempty"`
	Pivot        map[string]map[string]decimal.Decimal `json:"pivot,omitempty"`
	Files        []FileSummary                         `json:"files"`
	Skipped      map[string][]models.SkippedLine       `json:"skipped,omitempty"`
}

// FileSummary reports how many transactions each uploaded file contributed.
// Zero is a valid outcome ("no transactions found"), not an error.
type FileSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Handler holds the HTTP handlers of the classifier API.
type Handler struct {
	MaxUploadMB  int
	BatchWorkers int
	Log          *zap.Logger
}

// Register mounts the API routes on the Fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/classify", h.handleClassify)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

func (h *Handler) handleClassify(c *fiber.Ctx) error {
	batchID := uuid.NewString()

	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Failed to parse multipart form.")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return writeError(c, fiber.StatusBadRequest, "No files uploaded. Use form field 'files'.")
	}

	maxBytes := int64(h.MaxUploadMB) << 20
	var docs []models.DocumentLines
	for _, fh := range files {
		if maxBytes > 0 && fh.Size > maxBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge,
				fmt.Sprintf("%s exceeds the %d MB upload limit.", fh.Filename, h.MaxUploadMB))
		}

		lines, err := h.readUpload(c, fh)
		if err != nil {
			h.Log.Warn("upload rejected",
				zap.String("batchId", batchID),
				zap.String("file", fh.Filename),
				zap.Error(err))
			return writeError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Could not read %s: %v", fh.Filename, err))
		}
		docs = append(docs, models.DocumentLines{Source: fh.Filename, Lines: lines})
	}

	results, err := pipeline.Run(c.UserContext(), docs, h.BatchWorkers)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	debug := c.QueryBool("debug")

	resp := ClassifyResponse{
		Success:      true,
		BatchID:      batchID,
		Transactions: []models.Transaction{},
		Files:        make([]FileSummary, 0, len(results)),
	}
	if debug {
		resp.Skipped = make(map[string][]models.SkippedLine)
	}

	for _, res := range results {
		resp.Transactions = append(resp.Transactions, res.Transactions...)
		resp.Files = append(resp.Files, FileSummary{Name: res.Source, Count: len(res.Transactions)})
		if len(res.Transactions) == 0 {
			h.Log.Warn("no transactions found",
				zap.String("batchId", batchID),
				zap.String("file", res.Source))
		}
		if debug && len(res.Skipped) > 0 {
			resp.Skipped[res.Source] = res.Skipped
		}
	}

	resp.Count = len(resp.Transactions)
	resp.Totals = report.ByCategory(resp.Transactions)
	resp.Pivot = report.MonthPivot(resp.Transactions).Map()

	h.Log.Info("batch classified",
		zap.String("batchId", batchID),
		zap.Int("files", len(docs)),
		zap.Int("transactions", resp.Count))

	return c.JSON(resp)
}

// readUpload turns an uploaded statement into document lines. PDFs go
// through the text-extraction collaborator; plain text files are split as-is.
func (h *Handler) readUpload(c *fiber.Ctx, fh *multipart.FileHeader) ([]string, error) {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".pdf":
		tmp, err := os.CreateTemp("", "statement-*.pdf")
		if err != nil {
			return nil, err
		}
		tmpName := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpName)

		if err := c.SaveFile(fh, tmpName); err != nil {
			return nil, err
		}
		return extractor.ExtractLines(tmpName)
	case ".txt":
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return strings.Split(string(data), "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .pdf or .txt", filepath.Ext(fh.Filename))
	}
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ClassifyResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
		Files:        []FileSummary{},
	})
}
