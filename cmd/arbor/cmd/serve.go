package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-drift/arbor/cmd/arbor/internal/config"
	"github.com/go-drift/arbor/pkg/debugdump"
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/widget"
)

const defaultServeAddr = "127.0.0.1:9321"

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve the demo tree over HTTP",
		Long: `Mount the demo counter tree and serve it for inspection until interrupted.

Endpoints:
  GET  /health            Health check
  GET  /widget-tree       Dump (?format=tree|yaml|json, ?stable=1)
  GET  /debug             Node count, root size and focus
  POST /actions/click     Click the demo button

Flags:
  --addr ADDR    Listen address (default: 127.0.0.1:9321)`,
		Usage: "arbor serve [--addr ADDR] [dir]",
		Run:   runServe,
	})
}

type serveOptions struct {
	dir  string
	addr string
}

func parseServeArgs(args []string) (serveOptions, error) {
	opts := serveOptions{dir: ".", addr: defaultServeAddr}
	var dirSet bool
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--addr":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--addr requires a value")
			}
			opts.addr = args[i+1]
			i++
		case strings.HasPrefix(arg, "--addr="):
			opts.addr = strings.TrimPrefix(arg, "--addr=")
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: arbor serve [--addr ADDR] [dir]", arg)
		case dirSet:
			return opts, fmt.Errorf("unexpected argument %q", arg)
		default:
			opts.dir = arg
			dirSet = true
		}
	}
	return opts, nil
}

// mountInspector builds the demo tree for cfg and wraps it in an inspector
// with a "click" action.
func mountInspector(cfg *config.Resolved) (*debugdump.Inspector, error) {
	demo := newCounterDemo(cfg.AppName)
	tree := widget.NewTree(widget.NewRootWidget(demo.column))
	bc := layout.Loose(cfg.Viewport)
	in := debugdump.NewInspector(tree)
	if err := in.Update("arbor.serve", func(t *widget.Tree) {
		t.Layout(bc)
		t.Paint()
	}); err != nil {
		return nil, err
	}
	in.HandleAction("click", func(t *widget.Tree) {
		demo.click(t)
		t.Layout(bc)
		t.Paint()
	})
	return in, nil
}

func runServe(args []string) error {
	opts, err := parseServeArgs(args)
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

	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose, Out: stderr})
	defer errors.SetHandler(nil)

	in, err := mountInspector(cfg)
	if err != nil {
		return err
	}
	addr, err := in.Start(opts.addr)
	if err != nil {
		return err
	}
	defer in.Stop()

	fmt.Fprintf(stdout, "Inspecting %s at http://%s (Ctrl+C to stop)\n", cfg.AppName, addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	fmt.Fprintln(stdout, "Stopping inspector")
	return nil
}
