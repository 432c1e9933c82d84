package circuit

import (
	"math"
	"testing"

	"github.com/matzehuels/gatexray/pkg/errors"
)

func TestComponentSize(t *testing.T) {
	tests := []struct {
		name  string
		comp  Component
		wantW int
		wantH int
	}{
		{"absent spans default to one", Component{GateID: "AND"}, 1, 1},
		{"explicit width", Component{GateID: "AND", W: 3}, 3, 1},
		{"explicit height", Component{GateID: "AND", H: 2}, 1, 2},
		{"both", Component{GateID: "AND", W: 2, H: 4}, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.comp.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %d,%d, want %d,%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestComponentExtent(t *testing.T) {
	c := Component{GateID: "OR", X: -2, Y: 3, W: 3, H: 2}
	if got := c.Right(); got != 0 {
		t.Errorf("Right() = %d, want 0", got)
	}
	if got := c.Bottom(); got != 4 {
		t.Errorf("Bottom() = %d, want 4", got)
	}
	if !c.Anchored(-2, 3) {
		t.Error("Anchored(-2,3) = false, want true")
	}
	if c.Anchored(-1, 3) {
		t.Error("Anchored(-1,3) = true, want false")
	}
}

func TestComponentValidate(t *testing.T) {
	tests := []struct {
		name     string
		comp     Component
		wantCode errors.Code
	}{
		{"valid", Component{GateID: "AND", W: 2}, ""},
		{"empty gate", Component{}, errors.ErrCodeInvalidComponent},
		{"negative width", Component{GateID: "AND", W: -1}, errors.ErrCodeInvalidComponent},
		{"negative height", Component{GateID: "AND", H: -3}, errors.ErrCodeInvalidComponent},
		{"max span", Component{GateID: "AND", W: errors.MaxSpan, H: errors.MaxSpan}, ""},
		{"oversized width", Component{GateID: "AND", W: errors.MaxSpan + 1}, errors.ErrCodeGridTooLarge},
		{"at max int", Component{GateID: "AND", X: math.MaxInt, Y: math.MaxInt}, ""},
		{"x overflow", Component{GateID: "AND", X: math.MaxInt - 1, W: 3}, errors.ErrCodeInvalidComponent},
		{"y overflow", Component{GateID: "AND", Y: math.MaxInt, H: 2}, errors.ErrCodeInvalidComponent},
		{"at min int", Component{GateID: "AND", X: math.MinInt, Y: math.MinInt, W: 4}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comp.Validate()
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q (err=%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestComponentString(t *testing.T) {
	c := Component{GateID: "XOR", X: 1, Y: 2, W: 2}
	if got, want := c.String(), "XOR@(1,2) 2x1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOperator(t *testing.T) {
	op := Operator{Title: "adder", Custom: true, Components: []Component{{GateID: "XOR"}}}
	if op.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", op.Rows())
	}
	op.Height = 3
	if op.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", op.Rows())
	}
	if !op.Explodable() {
		t.Error("Explodable() = false for custom operator")
	}
	if err := op.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	op.Components = append(op.Components, Component{GateID: ""})
	if err := op.Validate(); !errors.Is(err, errors.ErrCodeInvalidComponent) {
		t.Errorf("Validate() = %v, want INVALID_COMPONENT", err)
	}
}

func TestOperatorClaimLimit(t *testing.T) {
	big := Component{GateID: "AND", W: errors.MaxSpan, H: errors.MaxSpan}
	op := Operator{Title: "stack", Custom: true, Components: []Component{big}}
	if err := op.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil at the limit", err)
	}
	op.Components = append(op.Components, Component{GateID: "OR"})
	if err := op.Validate(); !errors.Is(err, errors.ErrCodeGridTooLarge) {
		t.Errorf("Validate() = %v, want GRID_TOO_LARGE", err)
	}
}
