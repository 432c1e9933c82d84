package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gatexray/pkg/cache"
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/observability"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/view"
)

// Runner executes the pipeline with caching.
//
// A Runner holds no per-run state, so one Runner may serve many goroutines
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means [cache.DefaultKeyer], a
// nil cache disables caching, and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs derive → layout → render for op.
func (r *Runner) Execute(ctx context.Context, op circuit.Operator, cat grid.Catalog, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}

	hash, err := OperatorHash(op, cat)
	if err != nil {
		return nil, fmt.Errorf("hash operator: %w", err)
	}
	result := &Result{OperatorHash: hash}

	// Stage 1: Derive
	deriveStart := time.Now()
	frame, err := r.Derive(ctx, op, cat, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	result.Frame = frame
	result.Stats.DeriveTime = time.Since(deriveStart)
	result.Stats.Components = len(op.Components)
	result.Stats.Overlap = frame.Overlap()
	if frame.Plan != nil {
		result.Stats.Skipped = len(frame.Plan.Skipped)
	}
	// Keys follow the mode actually drawn, so a fallback shares cache
	// entries with an explicit compact request.
	opts.Mode = frame.Mode

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, frame, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Blocks = len(l.Blocks)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Debug("computed layout",
		"mode", l.Mode,
		"blocks", len(l.Blocks),
		"width", l.FrameWidth,
		"height", l.FrameHeight,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, frame, cat, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered operator",
		"operator", op.Title,
		"mode", frame.Mode,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Derive resolves the frame for op in mode, reporting through the pipeline
// hooks and logging skipped components and overlap.
func (r *Runner) Derive(ctx context.Context, op circuit.Operator, cat grid.Catalog, mode view.Mode) (view.Frame, error) {
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, op.Title, len(op.Components))
	start := time.Now()

	frame, err := view.Derive(op, mode, cat)
	hooks.OnResolveComplete(ctx, op.Title, frame.Mode.String(), frame.Overlap(), time.Since(start), err)
	if err != nil {
		return view.Frame{}, err
	}

	if frame.Mode != mode {
		r.Logger.Debug("operator is not custom, drawing compact", "operator", op.Title, "requested", mode)
	}
	if frame.Plan != nil {
		for _, s := range frame.Plan.Skipped {
			r.Logger.Warn("skipping component", "operator", op.Title, "index", s.Index, "gate", s.GateID, "err", s.Err)
		}
		if frame.Plan.Overlap {
			r.Logger.Warn("components overlap", "operator", op.Title, "cells", len(frame.Plan.Conflicts))
		}
	}
	return frame, nil
}

// LayoutWithCacheInfo builds the pixel layout of frame, consulting the
// cache unless opts.Refresh is set. The bool reports a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, frame view.Frame, hash string, opts Options) (layout.Layout, bool, error) {
	if cache.Disabled(r.Cache) {
		return layout.FromFrame(frame, opts.Metrics), false, nil
	}
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached layout.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		} else if err != nil {
			r.Logger.Debug("cache read failed", "key", key, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l := layout.FromFrame(frame, opts.Metrics)

	if data, err := json.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.LayoutTTL); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// RenderWithCacheInfo renders every format in opts.Formats. Formats found
// in the cache are reused and only the rest are rendered. The bool reports
// whether every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, frame view.Frame, cat grid.Catalog, hash string, opts Options) (map[string][]byte, bool, error) {
	if cache.Disabled(r.Cache) {
		rendered, err := Render(ctx, l, frame, cat, opts)
		return rendered, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, l, frame, cat, sub)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
