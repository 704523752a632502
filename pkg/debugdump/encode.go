package debugdump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the output of Write.
type Format string

const (
	FormatTree Format = "tree"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty string means FormatTree.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatTree:
		return FormatTree, nil
	case FormatYAML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown dump format %q (want tree, yaml or json)", s)
}

// Write encodes n to w in the given format. Style is used by FormatTree only.
func Write(w io.Writer, n *Node, format Format, style Style) error {
	switch format {
	case FormatTree, "":
		return Render(w, n, style)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

// Decode reads a YAML or JSON dump. JSON is a subset of YAML, so one decoder
// serves both.
func Decode(r io.Reader) (*Node, error) {
	var n Node
	if err := yaml.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}
	return &n, nil
}
