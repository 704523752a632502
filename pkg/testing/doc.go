// Package testing provides a widget testing harness for arbor.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := arbortest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(NewCounter())
//
//	    if err := tester.Tap(arbortest.ByType[*widgets.Button]()); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.Find(arbortest.ByText("1")).Exists() {
//	        t.Error("expected the count to read 1")
//	    }
//	}
//
// Every pump runs layout, paint and the accessibility pass, then checks that
// the widget and state trees still have the same shape.
//
// # Snapshot Testing
//
// Capture the widget tree and the recorded scene and compare them with a
// golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	ARBOR_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import arbortest "github.com/go-drift/arbor/pkg/testing"
package testing
