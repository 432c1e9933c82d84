package grid

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name  string
		comps []circuit.Component
		want  Box
	}{
		{
			name:  "single cell",
			comps: []circuit.Component{{GateID: "X", X: 3, Y: 4}},
			want:  Box{MinX: 3, MaxX: 3, MinY: 4, MaxY: 4},
		},
		{
			name: "side by side",
			comps: []circuit.Component{
				{GateID: "X", X: 0, Y: 0, W: 1, H: 1},
				{GateID: "Y", X: 1, Y: 0, W: 1, H: 1},
			},
			want: Box{MinX: 0, MaxX: 1, MinY: 0, MaxY: 0},
		},
		{
			name: "spans extend max",
			comps: []circuit.Component{
				{GateID: "X", X: 0, Y: 0, W: 3, H: 2},
			},
			want: Box{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1},
		},
		{
			name: "negative and sparse",
			comps: []circuit.Component{
				{GateID: "X", X: -4, Y: 7},
				{GateID: "Y", X: 10, Y: -2, H: 3},
			},
			want: Box{MinX: -4, MaxX: 10, MinY: -2, MaxY: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bounds(tt.comps)
			if err != nil {
				t.Fatalf("Bounds() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsIntegerEdges(t *testing.T) {
	tests := []struct {
		name  string
		comps []circuit.Component
		want  Box
	}{
		{
			name:  "at max int",
			comps: []circuit.Component{{GateID: "X", X: math.MaxInt, Y: math.MaxInt}},
			want:  Box{MinX: math.MaxInt, MaxX: math.MaxInt, MinY: math.MaxInt, MaxY: math.MaxInt},
		},
		{
			name:  "ending at max int",
			comps: []circuit.Component{{GateID: "X", X: math.MaxInt - 2, W: 3}},
			want:  Box{MinX: math.MaxInt - 2, MaxX: math.MaxInt, MinY: 0, MaxY: 0},
		},
		{
			name: "at min int",
			comps: []circuit.Component{
				{GateID: "X", X: math.MinInt, Y: math.MinInt},
				{GateID: "Y", X: math.MinInt + 1, Y: math.MinInt, H: 2},
			},
			want: Box{MinX: math.MinInt, MaxX: math.MinInt + 1, MinY: math.MinInt, MaxY: math.MinInt + 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bounds(tt.comps)
			if err != nil {
				t.Fatalf("Bounds() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
			if got.MinX > got.MaxX || got.MinY > got.MaxY {
				t.Errorf("Bounds() = %+v, min past max", got)
			}
		})
	}
}

func TestBoundsRejects(t *testing.T) {
	square := circuit.Component{GateID: "X", W: errors.MaxSpan, H: errors.MaxSpan}
	tests := []struct {
		name  string
		comps []circuit.Component
		code  errors.Code
	}{
		{"x overflow", []circuit.Component{{GateID: "X", X: math.MaxInt - 1, W: 3}}, errors.ErrCodeInvalidComponent},
		{"y overflow", []circuit.Component{{GateID: "X", Y: math.MaxInt, H: 2}}, errors.ErrCodeInvalidComponent},
		{"negative span", []circuit.Component{{GateID: "X", W: -1}}, errors.ErrCodeInvalidComponent},
		{"oversized span", []circuit.Component{{GateID: "X", W: 4_000_000_000, H: 4_000_000_000}}, errors.ErrCodeGridTooLarge},
		{"too many claims", []circuit.Component{square, square}, errors.ErrCodeGridTooLarge},
		{
			name:  "whole int range",
			comps: []circuit.Component{{GateID: "X", X: math.MinInt}, {GateID: "Y", X: math.MaxInt}},
			code:  errors.ErrCodeGridTooLarge,
		},
		{
			name:  "sparse but wide",
			comps: []circuit.Component{{GateID: "X"}, {GateID: "Y", X: errors.MaxGridCells}},
			code:  errors.ErrCodeGridTooLarge,
		},
		{
			name:  "area over limit",
			comps: []circuit.Component{{GateID: "X"}, {GateID: "Y", X: 1024, Y: 1024}},
			code:  errors.ErrCodeGridTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Bounds(tt.comps)
			if !errors.Is(err, tt.code) {
				t.Errorf("Bounds() = %+v, %v, want %s", b, err, tt.code)
			}
		})
	}
}

func TestBoxCellsAtMaxInt(t *testing.T) {
	b := Box{MinX: math.MaxInt - 1, MaxX: math.MaxInt, MinY: math.MaxInt, MaxY: math.MaxInt}
	got := slices.Collect(b.Cells())
	want := []Cell{{math.MaxInt - 1, math.MaxInt}, {math.MaxInt, math.MaxInt}}
	if !slices.Equal(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestBoundsEmpty(t *testing.T) {
	_, err := Bounds(nil)
	if err != ErrEmptyComponentSet {
		t.Errorf("Bounds(nil) error = %v, want ErrEmptyComponentSet", err)
	}
	if !errors.Is(err, errors.ErrCodeEmptyComponentSet) {
		t.Errorf("error code = %q, want EMPTY_COMPONENT_SET", errors.GetCode(err))
	}
}

func TestBoxDimensions(t *testing.T) {
	b := Box{MinX: -1, MaxX: 2, MinY: 5, MaxY: 5}
	if b.Cols() != 4 {
		t.Errorf("Cols() = %d, want 4", b.Cols())
	}
	if b.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", b.Rows())
	}
	if !b.contains(Cell{X: 2, Y: 5}) || b.contains(Cell{X: 3, Y: 5}) {
		t.Error("contains() mismatch at right edge")
	}
	if dx, dy := b.Offset(Cell{X: 0, Y: 5}); dx != 1 || dy != 0 {
		t.Errorf("Offset() = %d,%d, want 1,0", dx, dy)
	}
}

func TestBoxCellsRowMajor(t *testing.T) {
	b := Box{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	got := slices.Collect(b.Cells())
	want := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}

	// Early break must stop iteration.
	n := 0
	for range b.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("break after 2 cells, visited %d", n)
	}
}
