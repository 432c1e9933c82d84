// Package pkg provides the core libraries for gatexray operator visualization.
//
// # Overview
//
// gatexray draws circuit operators in two modes. Compact shows the
// operator's own symbol. X-Ray explodes a custom operator into the grid of
// sub-gates it is built from, lays each component over the cells it claims
// and flags cells claimed more than once.
//
// # Architecture
//
// The data flow for one render:
//
//	operator document (JSON/YAML, store)
//	         ↓
//	    [io] / [store] (decode, validate, persist)
//	         ↓
//	    [view] (mode state, frame derivation)
//	         ↓
//	    [grid] (bounds, occupancy, render plan)
//	         ↓
//	    [render/xray/layout] (pixel geometry)
//	         ↓
//	    [render/xray/sink] (SVG/PNG/PDF/JSON/DOT/terminal)
//
// # Main Packages
//
// [circuit] - Operators, components and the gate-type catalog with its
// TOML and YAML loaders.
//
// [grid] - Bounding box, occupancy map and the render plan: which
// components are drawn, which are skipped and where they overlap.
//
// [view] - Compact/X-Ray mode, the per-operator toggle state and frame
// derivation.
//
// [render/xray/layout], [render/xray/styles], [render/xray/sink] - Geometry,
// visual styles (simple, handdrawn) and output formats.
//
// [pipeline] - Derive → layout → render with layout and artifact caching.
// Used by the CLI and the API.
//
// [cache] - File, Redis and null caches plus the cache keyer.
//
// [store] - Operator persistence: memory, file and MongoDB backends.
//
// [api] - HTTP API over the pipeline and the store.
//
// [observability] - Hook registry for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// [circuit]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/circuit
// [grid]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/grid
// [view]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/view
// [io]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/io
// [store]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/store
// [render/xray/layout]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/render/xray/layout
// [render/xray/styles]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/render/xray/styles
// [render/xray/sink]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/render/xray/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/gatexray/pkg/errors
package pkg
