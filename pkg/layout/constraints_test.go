package layout

import (
	"math"
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
)

func TestBoxConstraints_Constrain(t *testing.T) {
	tests := []struct {
		name string
		bc   BoxConstraints
		in   graphics.Size
		want graphics.Size
	}{
		{"within", Loose(graphics.Size{Width: 100, Height: 50}), graphics.Size{Width: 30, Height: 20}, graphics.Size{Width: 30, Height: 20}},
		{"too big", Loose(graphics.Size{Width: 100, Height: 50}), graphics.Size{Width: 300, Height: 200}, graphics.Size{Width: 100, Height: 50}},
		{"tight", Tight(graphics.Size{Width: 10, Height: 10}), graphics.Size{Width: 3, Height: 30}, graphics.Size{Width: 10, Height: 10}},
		{"unbounded", Unbounded(), graphics.Size{Width: 1e6, Height: 2}, graphics.Size{Width: 1e6, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bc.Constrain(tt.in); got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoxConstraints_IsTight(t *testing.T) {
	if !Tight(graphics.Size{Width: 5, Height: 5}).IsTight() {
		t.Error("expected tight constraints to report IsTight")
	}
	if Loose(graphics.Size{Width: 5, Height: 5}).IsTight() {
		t.Error("expected loose constraints not to report IsTight")
	}
}

func TestBoxConstraints_Deflate(t *testing.T) {
	bc := BoxConstraints{MinWidth: 10, MaxWidth: 100, MinHeight: 4, MaxHeight: 20}
	got := bc.Deflate(16, 30)
	want := BoxConstraints{MinWidth: 0, MaxWidth: 84, MinHeight: 0, MaxHeight: 0}
	if got != want {
		t.Errorf("Deflate = %v, want %v", got, want)
	}
}

func TestUnbounded(t *testing.T) {
	bc := Unbounded()
	if bc.HasBoundedWidth() || bc.HasBoundedHeight() {
		t.Errorf("expected unbounded constraints, got %v", bc)
	}
	if !math.IsInf(bc.MaxWidth, 1) {
		t.Errorf("expected +Inf max width, got %v", bc.MaxWidth)
	}
}
