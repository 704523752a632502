package testing

import (
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
)

// DisplayOp is a serialized scene operation.
type DisplayOp struct {
	Op     string      `yaml:"op"`
	Offset *[2]float64 `yaml:"offset,flow,omitempty"`
	Rect   *[4]float64 `yaml:"rect,flow,omitempty"`
	Color  string      `yaml:"color,omitempty"`
	Text   string      `yaml:"text,omitempty"`
}

func serializeScene(scene *graphics.Scene) []DisplayOp {
	if scene == nil {
		return nil
	}
	ops := make([]DisplayOp, 0, len(scene.Ops()))
	for _, op := range scene.Ops() {
		d := DisplayOp{Op: op.Kind.String()}
		switch op.Kind {
		case graphics.OpPushTranslate:
			d.Offset = serializeOffset(op.Offset)
		case graphics.OpDrawRect:
			d.Rect = serializeRect(op.Rect)
			d.Color = op.Color.String()
		case graphics.OpDrawText:
			d.Offset = serializeOffset(op.Offset)
			d.Color = op.Color.String()
			d.Text = op.Text
		}
		ops = append(ops, d)
	}
	return ops
}

func serializeOffset(o graphics.Offset) *[2]float64 {
	return &[2]float64{round2(o.X), round2(o.Y)}
}

func serializeRect(r graphics.Rect) *[4]float64 {
	return &[4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
