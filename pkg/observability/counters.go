package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters tallies events in memory. The API serves a [Snapshot] at
// /v1/stats.
type Counters struct {
	Noop

	resolves, resolveErrors, overlaps atomic.Int64
	renders, renderErrors             atomic.Int64
	layoutHits, layoutMisses          atomic.Int64
	artifactHits, artifactMisses      atomic.Int64
	cachedBytes                       atomic.Int64
	requests, serverErrors            atomic.Int64
}

// Snapshot is a point-in-time copy of [Counters].
type Snapshot struct {
	Resolves       int64 `json:"resolves"`
	ResolveErrors  int64 `json:"resolve_errors"`
	Overlaps       int64 `json:"overlaps"`
	Renders        int64 `json:"renders"`
	RenderErrors   int64 `json:"render_errors"`
	LayoutHits     int64 `json:"layout_hits"`
	LayoutMisses   int64 `json:"layout_misses"`
	ArtifactHits   int64 `json:"artifact_hits"`
	ArtifactMisses int64 `json:"artifact_misses"`
	CachedBytes    int64 `json:"cached_bytes"`
	Requests       int64 `json:"requests"`
	ServerErrors   int64 `json:"server_errors"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters { return &Counters{} }

// Snapshot reads every counter.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Resolves:       c.resolves.Load(),
		ResolveErrors:  c.resolveErrors.Load(),
		Overlaps:       c.overlaps.Load(),
		Renders:        c.renders.Load(),
		RenderErrors:   c.renderErrors.Load(),
		LayoutHits:     c.layoutHits.Load(),
		LayoutMisses:   c.layoutMisses.Load(),
		ArtifactHits:   c.artifactHits.Load(),
		ArtifactMisses: c.artifactMisses.Load(),
		CachedBytes:    c.cachedBytes.Load(),
		Requests:       c.requests.Load(),
		ServerErrors:   c.serverErrors.Load(),
	}
}

func (c *Counters) OnResolveComplete(_ context.Context, _, _ string, overlap bool, _ time.Duration, err error) {
	c.resolves.Add(1)
	if err != nil {
		c.resolveErrors.Add(1)
	}
	if overlap {
		c.overlaps.Add(1)
	}
}

func (c *Counters) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	c.renders.Add(1)
	if err != nil {
		c.renderErrors.Add(1)
	}
}

func (c *Counters) OnCacheHit(_ context.Context, keyType string) {
	if keyType == "layout" {
		c.layoutHits.Add(1)
		return
	}
	c.artifactHits.Add(1)
}

func (c *Counters) OnCacheMiss(_ context.Context, keyType string) {
	if keyType == "layout" {
		c.layoutMisses.Add(1)
		return
	}
	c.artifactMisses.Add(1)
}

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.cachedBytes.Add(int64(size))
}

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.requests.Add(1)
	if status >= 500 {
		c.serverErrors.Add(1)
	}
}

var _ Hooks = (*Counters)(nil)
