package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/arbor/cmd/arbor/internal/config"
	"github.com/go-drift/arbor/pkg/debugdump"
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/mattn/go-isatty"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the demo widget tree",
		Long: `Mount the demo counter tree, run layout, paint and accessibility,
and print the resulting widget tree.

Settings are read from arbor.yaml in the project root (the nearest directory
above [dir] holding a go.mod, or [dir] itself). Flags override the file.

Flags:
  --format FORMAT    Output format: tree, yaml or json (default: tree)
  --color MODE       Color the tree: auto, always or never (default: auto)
  --click N          Click the demo button N times before dumping`,
		Usage: "arbor dump [--format FORMAT] [--color MODE] [--click N] [dir]",
		Run:   runDump,
	})
}

type dumpOptions struct {
	dir    string
	format string
	color  string
	clicks int
}

func parseDumpArgs(args []string) (dumpOptions, error) {
	opts := dumpOptions{dir: "."}
	var dirSet bool
	value := func(i int, name string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")
		switch name {
		case "--format", "--color", "--click":
			v := inline
			if !hasInline {
				var err error
				if v, err = value(i, name); err != nil {
					return opts, err
				}
				i++
			}
			switch name {
			case "--format":
				opts.format = v
			case "--color":
				opts.color = v
			case "--click":
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					return opts, fmt.Errorf("--click must be a non-negative integer (got %q)", v)
				}
				opts.clicks = n
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q\n\nUsage: arbor dump [--format FORMAT] [--color MODE] [--click N] [dir]", arg)
			}
			if dirSet {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.dir = arg
			dirSet = true
		}
	}
	return opts, nil
}

func runDump(args []string) error {
	opts, err := parseDumpArgs(args)
	if err != nil {
		return err
	}

	root, err := config.FindProjectRoot(opts.dir)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	if opts.format != "" {
		if cfg.Format, err = debugdump.ParseFormat(opts.format); err != nil {
			return err
		}
	}
	if opts.color != "" {
		if cfg.Color, err = config.ParseColorMode(opts.color); err != nil {
			return err
		}
	}

	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose, Out: stderr})
	defer errors.SetHandler(nil)

	demo := newCounterDemo(cfg.AppName)
	tree := widget.NewTree(widget.NewRootWidget(demo.column))
	bc := layout.Loose(cfg.Viewport)
	err = tree.Guard("arbor.dump", func(tr *widget.Tree) {
		tr.Layout(bc)
		for i := 0; i < opts.clicks; i++ {
			demo.click(tr)
		}
		tr.Layout(bc)
		tr.Paint()
	})
	if err != nil {
		return err
	}
	if err := tree.Arena().Verify(); err != nil {
		return fmt.Errorf("arbor.dump: %w", err)
	}

	node := debugdump.Capture(tree.Root(), debugdump.Options{Semantics: tree.Accessibility()})
	style := debugdump.PlainStyle()
	if useColor(cfg.Color) {
		style = debugdump.ColorStyle(stdout)
	}
	return debugdump.Write(stdout, node, cfg.Format, style)
}

// useColor resolves a color mode against the current stdout.
func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
