// Package observability lets the pipeline, cache and API report events
// without depending on a metrics or tracing backend.
//
// Hooks are process-wide. The defaults do nothing; `gatexray serve`
// installs [LogHooks] and [Counters] combined with [Multi]:
//
//	counters := observability.NewCounters()
//	observability.Install(observability.Multi(observability.NewLogHooks(logger), counters))
//
// Libraries emit events through the accessors:
//
//	observability.Pipeline().OnResolveStart(ctx, op.Title, len(op.Components))
//	observability.Pipeline().OnResolveComplete(ctx, op.Title, mode, overlap, elapsed, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from frame derivation and rendering.
type PipelineHooks interface {
	// Resolve covers bounds, occupancy and the render plan of one operator.
	OnResolveStart(ctx context.Context, operator string, components int)
	OnResolveComplete(ctx context.Context, operator, mode string, overlap bool, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives layout and artifact cache events. keyType is
// "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives API server events, keyed by route pattern.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// Hooks implements every category.
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// Noop implements every hook interface and does nothing. Embed it to
// implement only some events.
type Noop struct{}

func (Noop) OnResolveStart(context.Context, string, int)                                {}
func (Noop) OnResolveComplete(context.Context, string, string, bool, time.Duration, error) {}
func (Noop) OnRenderStart(context.Context, []string)                                    {}
func (Noop) OnRenderComplete(context.Context, []string, time.Duration, error)           {}
func (Noop) OnCacheHit(context.Context, string)                                         {}
func (Noop) OnCacheMiss(context.Context, string)                                        {}
func (Noop) OnCacheSet(context.Context, string, int)                                    {}
func (Noop) OnRequest(context.Context, string, string)                                  {}
func (Noop) OnResponse(context.Context, string, string, int, time.Duration)             {}

// registry is swapped as a whole so readers never see a half-installed set.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Install registers h for all event categories.
func Install(h Hooks) {
	if h == nil {
		return
	}
	current.Store(&registry{pipeline: h, cache: h, http: h})
}

// SetPipelineHooks replaces the pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks replaces the HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{pipeline: Noop{}, cache: Noop{}, http: Noop{}})
}

// Multi fans every event out to hs in order.
func Multi(hs ...Hooks) Hooks {
	return multi(hs)
}

type multi []Hooks

func (m multi) OnResolveStart(ctx context.Context, operator string, components int) {
	for _, h := range m {
		h.OnResolveStart(ctx, operator, components)
	}
}

func (m multi) OnResolveComplete(ctx context.Context, operator, mode string, overlap bool, d time.Duration, err error) {
	for _, h := range m {
		h.OnResolveComplete(ctx, operator, mode, overlap, d, err)
	}
}

func (m multi) OnRenderStart(ctx context.Context, formats []string) {
	for _, h := range m {
		h.OnRenderStart(ctx, formats)
	}
}

func (m multi) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	for _, h := range m {
		h.OnRenderComplete(ctx, formats, d, err)
	}
}

func (m multi) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range m {
		h.OnCacheHit(ctx, keyType)
	}
}

func (m multi) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range m {
		h.OnCacheMiss(ctx, keyType)
	}
}

func (m multi) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range m {
		h.OnCacheSet(ctx, keyType, size)
	}
}

func (m multi) OnRequest(ctx context.Context, method, route string) {
	for _, h := range m {
		h.OnRequest(ctx, method, route)
	}
}

func (m multi) OnResponse(ctx context.Context, method, route string, status int, d time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, route, status, d)
	}
}
