package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/arbor/pkg/debugdump"
	arbor "github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/team/counter/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		Root:       dir,
		ModulePath: "example.com/team/counter/v2",
		AppName:    "counter",
		Format:     debugdump.FormatTree,
		Color:      ColorAuto,
		Viewport:   graphics.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demo\n")
	writeFile(t, dir, FileName, `app:
  name: Demo
dump:
  format: yaml
  color: never
errors:
  verbose: true
viewport:
  width: 800
  height: 600
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "Demo" || got.Format != debugdump.FormatYAML || got.Color != ColorNever || !got.Verbose {
		t.Errorf("unexpected resolved config: %+v", got)
	}
	if got.Viewport != (graphics.Size{Width: 800, Height: 600}) {
		t.Errorf("viewport = %v, want 800x600", got.Viewport)
	}
}

func TestResolve_WithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sketch")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.ModulePath != "" || got.AppName != "sketch" {
		t.Errorf("got module %q app %q, want \"\" and sketch", got.ModulePath, got.AppName)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name  string
		gomod string
		yaml  string
	}{
		{"bad format", "", "dump:\n  format: xml\n"},
		{"bad color", "", "dump:\n  color: sometimes\n"},
		{"negative viewport", "", "viewport:\n  width: -1\n"},
		{"malformed yaml", "", "app: [\n"},
		{"missing module directive", "go 1.24\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.gomod != "" {
				writeFile(t, dir, "go.mod", tt.gomod)
			}
			if tt.yaml != "" {
				writeFile(t, dir, FileName, tt.yaml)
			}
			_, err := Resolve(dir)
			var aerr *arbor.ArborError
			if !stderrors.As(err, &aerr) || aerr.Kind != arbor.KindConfig {
				t.Errorf("Resolve error = %v, want a config error", err)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"rainbow", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColorMode(%q) = (%q, %v), want (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
