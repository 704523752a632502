package testing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/arbor/pkg/debugdump"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "ARBOR_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree and the recorded scene.
type Snapshot struct {
	Tree *debugdump.Node `yaml:"tree"`
	Ops  []DisplayOp     `yaml:"ops,omitempty"`
}

// CaptureSnapshot captures the current tree and the scene from the last pump.
// Widget IDs are replaced by per-type counters so snapshots are stable
// across runs.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.tree == nil {
		return snap
	}
	snap.Tree = debugdump.Capture(t.tree.Root(), debugdump.Options{
		StableIDs: true,
		Semantics: t.access,
	})
	snap.Ops = serializeScene(t.scene)
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When ARBOR_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes the snapshot as YAML.
func (s *Snapshot) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Diff returns a diff from other to this snapshot, or the empty string if
// they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s, cmpopts.EquateEmpty())
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}
