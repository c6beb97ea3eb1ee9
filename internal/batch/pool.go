// SPDX-License-Identifier: Apache-2.0

// Package batch runs the extraction pipeline over many documents with a
// fixed-size worker pool. One pipeline instance is shared across workers;
// it is read-only after construction.
package batch

import (
	"context"
	"sync"
	"time"

	"cardscan/internal/observability"
	"cardscan/internal/ocr"
	"cardscan/internal/pipeline"
)

// Loader turns a document path into OCR lines. The caller chooses the
// loader, which keeps format routing (JSON document vs. PDF text layer)
// out of this package.
type Loader func(path string) (*ocr.Document, error)

// Result is the outcome for one document.
type Result struct {
	Path     string
	Scan     pipeline.Result
	Err      error
	Duration time.Duration
}

// Pool processes documents in parallel.
type Pool struct {
	workers  int
	pipe     *pipeline.Pipeline
	load     Loader
	observer *observability.StandardObserver
}

// NewPool creates a pool. Worker counts below one are clamped to one.
func NewPool(workers int, pipe *pipeline.Pipeline, load Loader, observer *observability.StandardObserver) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers, pipe: pipe, load: load, observer: observer}
}

// Process scans every path and returns one result per path, in input
// order. A failing document never aborts the batch; its error is carried
// in its slot. Cancelling the context stops the pool early; unprocessed
// slots report the context error.
func (p *Pool) Process(ctx context.Context, paths []string) []Result {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("batch", "process", "")
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job)
	results := make([]Result, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.processOne(j.path)
			}
		}()
	}

	cancelled := false
	for i, path := range paths {
		select {
		case jobs <- job{index: i, path: path}:
		case <-ctx.Done():
			cancelled = true
			results[i] = Result{Path: path, Err: ctx.Err()}
		}
		if cancelled {
			for k := i + 1; k < len(paths); k++ {
				results[k] = Result{Path: paths[k], Err: ctx.Err()}
			}
			break
		}
	}
	close(jobs)
	wg.Wait()

	if finishTiming != nil {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		finishTiming(failed == 0, map[string]interface{}{
			"documents": len(paths),
			"failed":    failed,
		})
	}
	return results
}

func (p *Pool) processOne(path string) Result {
	start := time.Now()

	doc, err := p.load(path)
	if err != nil {
		return Result{Path: path, Err: err, Duration: time.Since(start)}
	}

	scan := p.pipe.Extract(doc.Lines)
	return Result{Path: path, Scan: scan, Duration: time.Since(start)}
}
