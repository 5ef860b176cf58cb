package engine

import (
	"log/slog"
	"sync"

	"github.com/jackzampolin/outline/internal/layout"
	"github.com/jackzampolin/outline/internal/types"
)

// Engine runs the structure inference pipeline over one document's line
// sequence. It holds no per-document state, so a single Engine is safe to
// share across concurrent document runs. The configuration can be swapped
// between runs with SetConfig.
type Engine struct {
	mu  sync.RWMutex
	cfg Config
	log *slog.Logger
}

// New creates an Engine. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, log: logger}
}

// Config returns the engine's current configuration value.
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// SetConfig replaces the configuration consulted by later Extract calls.
// In-flight extractions keep the snapshot they started with.
func (e *Engine) SetConfig(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
}

// Extract infers the title and outline for a fully materialized line
// sequence. Degenerate inputs (no lines, no first page, no candidates
// above threshold) yield empty results, never errors.
func (e *Engine) Extract(lines []layout.TextLine) types.Document {
	cfg := e.Config()

	kept := FilterLines(lines)
	classified := Classify(cfg, kept)

	title := FindTitle(cfg, classified)
	candidates := ScoreCandidates(cfg, classified)
	outline := AssignLevels(cfg, candidates)

	e.log.Debug("structure inferred",
		"lines", len(lines),
		"kept", len(kept),
		"candidates", len(candidates),
		"headings", len(outline),
	)

	return types.NewDocument(title, outline)
}
