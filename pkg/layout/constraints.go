// Package layout provides box constraints passed down the widget tree
// during the layout pass.
package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
)

// BoxConstraints bounds the size a widget may choose during layout.
// A widget must return a size satisfying Min <= size <= Max on both axes.
type BoxConstraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only admit the given size.
func Tight(size graphics.Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints admitting any size up to the given size.
func Loose(size graphics.Size) BoxConstraints {
	return BoxConstraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper bound on either axis.
func Unbounded() BoxConstraints {
	return BoxConstraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c BoxConstraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c BoxConstraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps size into the constraints.
func (c BoxConstraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate shrinks the constraints by the given insets on each axis.
// Minimums never drop below zero.
func (c BoxConstraints) Deflate(horizontal, vertical float64) BoxConstraints {
	maxW := math.Max(0, c.MaxWidth-horizontal)
	maxH := math.Max(0, c.MaxHeight-vertical)
	return BoxConstraints{
		MinWidth:  math.Min(maxW, math.Max(0, c.MinWidth-horizontal)),
		MaxWidth:  maxW,
		MinHeight: math.Min(maxH, math.Max(0, c.MinHeight-vertical)),
		MaxHeight: maxH,
	}
}

// Loosen drops the minimums to zero.
func (c BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// WithMaxHeight returns a copy with MaxHeight replaced; MinHeight is clamped to it.
func (c BoxConstraints) WithMaxHeight(h float64) BoxConstraints {
	c.MaxHeight = h
	if c.MinHeight > h {
		c.MinHeight = h
	}
	return c
}

func (c BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints(w: %g..%g, h: %g..%g)", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
