package testing

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

func demoColumn() *widgets.Column {
	col := widgets.NewColumn(
		widgets.NewLabel("hi"),
		&widgets.SizedBox{Width: 10, Height: 5, Color: graphics.RGB(255, 0, 0)},
	)
	col.Spacing = 2
	return col
}

// counter is a column with a count label and a button that increments it.
type counter struct {
	*widgets.Column
	count int
}

func newCounter() *counter {
	c := &counter{}
	c.Column = widgets.NewColumn(
		widgets.NewLabel("0"),
		widgets.NewTextButton("Go", func() { c.count++ }),
	)
	return c
}

// panicky fails every layout.
type panicky struct {
	widgets.SizedBox
}

func (p *panicky) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	panic(fmt.Sprintf("layout of %s failed", ctx.WidgetID()))
}

// fakeT records failures reported through TestingT.
type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func (f *fakeT) Name() string { return "TestFake" }
