// Package pipeline wires ingestion, extraction, caching and rendering into
// the operations the CLI exposes.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/termtrack/termtrack/internal/cache"
	"github.com/termtrack/termtrack/internal/extract"
	"github.com/termtrack/termtrack/internal/ingest"
	"github.com/termtrack/termtrack/internal/model"
)

// Pipeline orchestrates the complete extraction process for one file or
// text blob. Safe for concurrent use across batch workers.
type Pipeline struct {
	extractor *extract.Extractor
	cache     cache.Cache // nil when caching is disabled
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return &Pipeline{
		extractor: extract.New(),
		cache:     c,
		renderer:  NewRenderer(),
		config:    cfg,
	}
}

// ExtractText runs extraction over an already-decoded text blob. The core
// itself cannot fail; the worst case is an empty item list.
func (p *Pipeline) ExtractText(rawText, source string) *model.Report {
	var items []model.Item
	key := cache.Key(source, rawText)
	if p.cache != nil {
		if cached, found := p.cache.Get(key); found {
			items = cached
		}
	}
	if items == nil {
		items = p.extractor.Extract(rawText, source)
		if p.cache != nil {
			p.cache.Set(key, items, p.config.Cache.TTL)
		}
	}
	return &model.Report{
		Source:      source,
		ExtractedAt: time.Now().UTC(),
		ItemCount:   len(items),
		Items:       items,
	}
}

// ExtractFile decodes a file and runs extraction over its text, labeled
// with the file's base name.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) (*model.Report, error) {
	return p.ExtractFileAs(ctx, path, "")
}

// ExtractFileAs is ExtractFile with an explicit source label. The label
// decides whether items are located per page or per line, so pre-decoded
// PDF text should be labeled with the original .pdf name.
func (p *Pipeline) ExtractFileAs(ctx context.Context, path, source string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	decoded, err := ingest.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	if source == "" {
		source = decoded.Source
	}
	report := p.ExtractText(decoded.Text, source)
	report.Warning = decoded.Warning
	return report, nil
}
