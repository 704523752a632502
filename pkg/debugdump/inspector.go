package debugdump

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/widget"
)

// Inspector serves dumps of a live tree over HTTP.
//
// Endpoints:
//
//	GET  /health           {"status":"ok"}
//	GET  /widget-tree      the dump; ?format=tree|yaml|json (json by default), ?stable=1
//	GET  /debug            node count, root size and focus
//	POST /actions/{name}   runs an action registered with HandleAction
//
// Every access to the tree holds the inspector's lock, so callers that
// mutate the tree elsewhere must go through Update.
type Inspector struct {
	mu      sync.Mutex
	tree    *widget.Tree
	actions map[string]func(*widget.Tree)

	srvMu    sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewInspector returns an inspector for tree. The tree should already have
// been laid out and painted.
func NewInspector(tree *widget.Tree) *Inspector {
	return &Inspector{tree: tree, actions: make(map[string]func(*widget.Tree))}
}

// HandleAction registers fn under name for POST /actions/{name}.
func (in *Inspector) HandleAction(name string, fn func(*widget.Tree)) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.actions[name] = fn
}

// Update runs fn with exclusive access to the tree. Panics are converted to
// errors by widget.Tree.Guard.
func (in *Inspector) Update(op string, fn func(*widget.Tree)) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.tree.Guard(op, fn)
}

// Handler returns the inspector's routes.
func (in *Inspector) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /widget-tree", in.handleWidgetTree)
	mux.HandleFunc("GET /debug", in.handleDebug)
	mux.HandleFunc("POST /actions/{name}", in.handleAction)
	return mux
}

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when the port is 0.
func (in *Inspector) Start(addr string) (string, error) {
	in.srvMu.Lock()
	defer in.srvMu.Unlock()

	if in.server != nil {
		return in.listener.Addr().String(), nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("inspector listen: %w", err)
	}
	server := &http.Server{Handler: in.Handler(), ReadHeaderTimeout: 5 * time.Second}
	in.server = server
	in.listener = listener

	go func() {
		defer errors.Recover("inspector.serve")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			in.srvMu.Lock()
			in.server = nil
			in.listener = nil
			in.srvMu.Unlock()
			errors.Report(&errors.ArborError{Op: "inspector.serve", Kind: errors.KindPass, Err: err})
		}
	}()
	return listener.Addr().String(), nil
}

// Stop shuts the server down, waiting up to two seconds for open requests.
func (in *Inspector) Stop() {
	in.srvMu.Lock()
	server := in.server
	in.server = nil
	in.listener = nil
	in.srvMu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		errors.Report(&errors.ArborError{Op: "inspector.stop", Kind: errors.KindPass, Err: err})
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (in *Inspector) handleWidgetTree(w http.ResponseWriter, r *http.Request) {
	format := FormatJSON
	if q := r.URL.Query().Get("format"); q != "" {
		var err error
		if format, err = ParseFormat(q); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	opts := Options{StableIDs: r.URL.Query().Get("stable") == "1"}

	var node *Node
	err := in.Update("inspector.widget-tree", func(t *widget.Tree) {
		opts.Semantics = t.Accessibility()
		node = Capture(t.Root(), opts)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch format {
	case FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case FormatYAML:
		w.Header().Set("Content-Type", "application/yaml")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	if err := Write(w, node, format, PlainStyle()); err != nil {
		errors.Report(&errors.ArborError{Op: "inspector.widget-tree", Kind: errors.KindPass, Err: err})
	}
}

func (in *Inspector) handleDebug(w http.ResponseWriter, r *http.Request) {
	var info struct {
		Nodes    int    `json:"nodes"`
		RootType string `json:"rootType"`
		RootSize string `json:"rootSize"`
		Focused  string `json:"focused,omitempty"`
	}
	err := in.Update("inspector.debug", func(t *widget.Tree) {
		root := t.Root()
		info.Nodes = t.Arena().Len()
		info.RootType = root.Widget.TraceSpan()
		info.RootSize = fmt.Sprintf("%.2fx%.2f", root.State.Size.Width, root.State.Size.Height)
		if id := t.Focused(); !id.IsZero() {
			info.Focused = id.String()
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		errors.Report(&errors.ArborError{Op: "inspector.debug", Kind: errors.KindPass, Err: err})
	}
}

func (in *Inspector) handleAction(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	in.mu.Lock()
	fn, ok := in.actions[name]
	in.mu.Unlock()
	if !ok {
		http.Error(w, fmt.Sprintf("unknown action %q", name), http.StatusNotFound)
		return
	}
	if err := in.Update("inspector.action."+name, fn); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
