package debugdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style colors the parts of a tree line.
type Style struct {
	Branch   lipgloss.Style
	Type     lipgloss.Style
	ID       lipgloss.Style
	Role     lipgloss.Style
	Geometry lipgloss.Style
	Label    lipgloss.Style
	Flag     lipgloss.Style
}

// NewStyle returns the colored style for r.
func NewStyle(r *lipgloss.Renderer) Style {
	return Style{
		Branch:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Type:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ID:       r.NewStyle().Foreground(lipgloss.Color("243")),
		Role:     r.NewStyle().Foreground(lipgloss.Color("5")),
		Geometry: r.NewStyle(),
		Label:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Flag:     r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// PlainStyle returns a style that emits no escape sequences.
func PlainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyle(r)
}

// ColorStyle returns a 256-color style regardless of the output's terminal
// capabilities.
func ColorStyle(w io.Writer) Style {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return NewStyle(r)
}

// Render writes n as an indented tree, one widget per line:
//
//	RootWidget #1 window 80x70 at (0, 0)
//	└── Column #2 generic_container 80x70 at (0, 0)
//	    ├── Label #3 label 35x13 at (0, 0) "Count"
//	    └── Button #4 button 51x29 at (0, 18) [hot]
func Render(w io.Writer, n *Node, style Style) error {
	var sb strings.Builder
	renderNode(&sb, n, "", "", style)
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderNode(sb *strings.Builder, n *Node, branch, indent string, style Style) {
	sb.WriteString(style.Branch.Render(branch))
	sb.WriteString(style.Type.Render(n.Type))
	sb.WriteString(" ")
	sb.WriteString(style.ID.Render(n.ID))
	sb.WriteString(" ")
	sb.WriteString(style.Role.Render(n.Role))
	sb.WriteString(" ")
	sb.WriteString(style.Geometry.Render(fmt.Sprintf("%gx%g at (%g, %g)", n.Size[0], n.Size[1], n.Offset[0], n.Offset[1])))
	if n.Label != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Label.Render(fmt.Sprintf("%q", n.Label)))
	}
	if len(n.Flags) > 0 {
		sb.WriteString(" ")
		sb.WriteString(style.Flag.Render("[" + strings.Join(n.Flags, " ") + "]"))
	}
	sb.WriteString("\n")

	for i, child := range n.Children {
		if i == len(n.Children)-1 {
			renderNode(sb, child, indent+"└── ", indent+"    ", style)
		} else {
			renderNode(sb, child, indent+"├── ", indent+"│   ", style)
		}
	}
}
