// Package batch processes a directory of documents through the structure
// inference engine, writing one output record per document. Documents are
// independent, so runs are parallel with a bounded worker pool; a failure
// on one document never aborts the others.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/jackzampolin/outline/internal/engine"
	"github.com/jackzampolin/outline/internal/layout"
	"github.com/jackzampolin/outline/internal/schema"
)

// Document opens are retried to ride out transient filesystem errors on
// network drop-directories.
const (
	openAttempts = 3
	openDelay    = 200 * time.Millisecond
)

// Request contains the parameters for a batch run.
type Request struct {
	InputDir  string
	OutputDir string
	Workers   int             // worker count (default: runtime.NumCPU())
	Validate  bool            // validate each record against the output schema
	Open      layout.OpenFunc // document opener (default: layout.Open)
	Logger    *slog.Logger    // optional logger for progress updates
}

// Result summarizes a batch run. Failures is keyed by input file name.
type Result struct {
	RunID     string
	Processed int
	Failed    int
	Failures  map[string]string
}

// Run processes every supported document in the input directory and
// writes a <stem>.json record for each success into the output directory.
func Run(ctx context.Context, eng *engine.Engine, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	open := req.Open
	if open == nil {
		open = layout.Open
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	files, err := listDocuments(req.InputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	runID := uuid.New().String()
	log = log.With("run_id", runID)
	log.Info("starting batch run", "documents", len(files), "workers", workers)

	type outcome struct {
		file string
		err  error
	}

	results := make(chan outcome, len(files))
	sem := make(chan struct{}, workers)

	for _, file := range files {
		sem <- struct{}{} // acquire
		go func(file string) {
			defer func() { <-sem }() // release
			results <- outcome{file: file, err: processDocument(ctx, eng, open, req, file)}
		}(file)
	}

	res := &Result{
		RunID:    runID,
		Failures: make(map[string]string),
	}
	for range files {
		o := <-results
		if o.err != nil {
			res.Failed++
			res.Failures[o.file] = o.err.Error()
			log.Error("document failed", "file", o.file, "error", o.err)
			continue
		}
		res.Processed++
		log.Debug("document processed", "file", o.file)
	}

	log.Info("batch run complete", "processed", res.Processed, "failed", res.Failed)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// processDocument runs one document end to end: open, infer, write.
func processDocument(ctx context.Context, eng *engine.Engine, open layout.OpenFunc, req Request, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(req.InputDir, file)

	var lines []layout.TextLine
	err := retry.Do(
		func() error {
			var openErr error
			lines, openErr = open(ctx, path)
			return openErr
		},
		retry.Context(ctx),
		retry.Attempts(openAttempts),
		retry.Delay(openDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	doc := eng.Extract(lines)

	if req.Validate {
		if err := schema.ValidateDocument(doc); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	outPath := filepath.Join(req.OutputDir, outputName(file))
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// listDocuments returns the supported file names in the input directory,
// sorted for deterministic submission order.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if layout.Supported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// outputName derives the record file name from an input file name.
func outputName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".json"
}
