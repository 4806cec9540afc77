// Package testing provides deterministic test tooling for switch widgets.
//
// # Quick Start
//
// Create a tester, script a gesture on the tester's timeline and assert on
// the resulting state:
//
//	func TestTap(t *testing.T) {
//	    tester := switchtest.NewSwitchTesterWithT(t, switchbutton.DefaultStyle(1), 200, 80)
//
//	    tester.Down(10, 0)
//	    tester.Up(10, 50*time.Millisecond)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if !tester.Button().IsChecked() {
//	        t.Error("expected tap to check the switch")
//	    }
//	}
//
// Event times are offsets from the tester's start. Each event first pumps
// frames up to its time, landing a frame exactly on it, so timers and
// animation runs reach the same state on every run.
//
// # Snapshot Testing
//
// Capture the view state and paint operations and compare them with a
// golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/checked.snapshot.yaml")
//
// Update snapshots with:
//
//	SWITCH_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import switchtest "github.com/go-drift/switchbutton/pkg/testing"
package testing
