// Package pipeline composes extraction and classification over a batch of
// documents. Documents are independent, so the batch fans out over a bounded
// worker pool; the only shared state is the read-only rule and pattern
// configuration.
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gastosmx/expense-classifier/internal/classifier"
	"github.com/gastosmx/expense-classifier/internal/models"
	"github.com/gastosmx/expense-classifier/internal/parser"
)

// Run extracts every document concurrently and classifies each extracted
// transaction. Results come back in document order with per-document skip
// diagnostics; a document that parses to nothing is a valid empty result,
// never an error. workers <= 0 selects GOMAXPROCS. The only returned error
// is ctx cancellation.
func Run(ctx context.Context, docs []models.DocumentLines, workers int) ([]models.DocumentResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]models.DocumentResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := parser.ExtractDocument(doc)
			for j := range res.Transactions {
				res.Transactions[j].Category = classifier.Classify(res.Transactions[j].Description)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ProcessBatch is the single multi-document entry point: the concatenation of
// per-document extraction plus per-transaction classification, in document
// order then line order.
func ProcessBatch(ctx context.Context, docs []models.DocumentLines) ([]models.Transaction, error) {
	results, err := Run(ctx, docs, 0)
	if err != nil {
		return nil, err
	}

	var txns []models.Transaction
	for _, res := range results {
		txns = append(txns, res.Transactions...)
	}
	return txns, nil
}
