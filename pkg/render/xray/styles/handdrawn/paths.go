package handdrawn

import (
	"fmt"
	"strings"
)

const (
	wobbleMax   = 1.8 // max perpendicular jitter in px
	cornerInset = 3.0 // corner rounding distance
	maxRotation = 4.0 // degrees
)

// rng is a small xorshift generator. Its sequence must stay stable across
// releases since rendered paths are cached.
type rng struct{ state uint64 }

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &rng{state: seed}
}

// next returns a value in [0, 1).
func (r *rng) next() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return float64(r.state>>11) / float64(1<<53)
}

// jitter returns a value in [-amp, amp).
func (r *rng) jitter(amp float64) float64 {
	return (r.next()*2 - 1) * amp
}

// hash is FNV-1a over s mixed with seed.
func hash(s string, seed uint64) uint64 {
	h := uint64(14695981039346656037) ^ seed
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// wobbledRect returns a closed path approximating a rounded rectangle with
// slightly bowed edges.
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	r := newRNG(hash(id, seed))
	inset := min(cornerInset, w/4, h/4)
	amp := min(wobbleMax, w/10, h/10)

	x0, y0, x1, y1 := x, y, x+w, y+h
	j := func() float64 { return r.jitter(amp) }

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", x0+inset+j(), y0+j())
	// top
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", (x0+x1)/2, y0+j(), x1-inset+j(), y0+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x1, y0, x1+j(), y0+inset+j())
	// right
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x1+j(), (y0+y1)/2, x1+j(), y1-inset+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x1, y1, x1-inset+j(), y1+j())
	// bottom
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", (x0+x1)/2, y1+j(), x0+inset+j(), y1+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x0, y1, x0+j(), y1-inset+j())
	// left
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x0+j(), (y0+y1)/2, x0+j(), y0+inset+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f Z", x0, y0, x0+inset, y0)
	return b.String()
}

// rotationFor tilts a glyph by a few degrees; larger blocks tilt less.
func rotationFor(id string, w, h float64) float64 {
	r := newRNG(hash(id, 0))
	scale := 1.0
	if area := w * h; area > 4000 {
		scale = 0.5
	}
	return r.jitter(maxRotation) * scale
}
