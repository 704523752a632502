package graphics

// OpKind identifies a recorded scene operation.
type OpKind int

const (
	OpPushTranslate OpKind = iota
	OpPop
	OpDrawRect
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpPushTranslate:
		return "pushTranslate"
	case OpPop:
		return "pop"
	case OpDrawRect:
		return "drawRect"
	case OpDrawText:
		return "drawText"
	default:
		return "unknown"
	}
}

// SceneOp is a single recorded drawing operation.
// Coordinates are local to the transform in effect when the op was recorded.
type SceneOp struct {
	Kind   OpKind
	Offset Offset
	Rect   Rect
	Color  Color
	Text   string
}

// Scene records drawing operations emitted during the paint pass.
// It is backend-agnostic: a renderer replays Ops in order.
type Scene struct {
	ops   []SceneOp
	stack []Offset
	cur   Offset
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// PushTranslate moves the origin by offset until the matching Pop.
func (s *Scene) PushTranslate(offset Offset) {
	s.stack = append(s.stack, s.cur)
	s.cur = s.cur.Add(offset)
	s.ops = append(s.ops, SceneOp{Kind: OpPushTranslate, Offset: offset})
}

// Pop restores the transform saved by the last PushTranslate.
// Unbalanced calls are ignored.
func (s *Scene) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.ops = append(s.ops, SceneOp{Kind: OpPop})
}

// DrawRect records a filled rectangle.
func (s *Scene) DrawRect(rect Rect, color Color) {
	s.ops = append(s.ops, SceneOp{Kind: OpDrawRect, Rect: rect, Color: color})
}

// DrawText records a run of text with its baseline-left corner at origin.
func (s *Scene) DrawText(text string, origin Offset, color Color) {
	s.ops = append(s.ops, SceneOp{Kind: OpDrawText, Offset: origin, Text: text, Color: color})
}

// Ops returns the recorded operations.
func (s *Scene) Ops() []SceneOp {
	return s.ops
}

// GlobalOffset returns the accumulated translation at the current point of recording.
func (s *Scene) GlobalOffset() Offset {
	return s.cur
}

// Depth returns the number of unmatched PushTranslate calls.
func (s *Scene) Depth() int {
	return len(s.stack)
}
