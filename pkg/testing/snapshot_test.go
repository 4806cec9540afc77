package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

func defaultStyle() switchbutton.Style {
	return switchbutton.DefaultStyle(1)
}

// recorder stands in for *testing.T so failures can be observed.
type recorder struct {
	name   string
	fatals []string
	errs   []string
}

func (r *recorder) Helper()      {}
func (r *recorder) Name() string { return r.name }
func (r *recorder) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, format)
}
func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, format)
}

func TestCaptureSnapshotAtRest(t *testing.T) {
	tester := NewSwitchTesterWithT(t, defaultStyle(), 200, 80)

	snap := tester.CaptureSnapshot()
	if snap.Phase != "idle" || snap.Checked {
		t.Errorf("got phase %q checked %v, want idle unchecked", snap.Phase, snap.Checked)
	}
	if snap.View.FillColor != "0xFFDDDDDD" {
		t.Errorf("FillColor = %s, want 0xFFDDDDDD", snap.View.FillColor)
	}
	if len(snap.DisplayOps) == 0 || snap.DisplayOps[0].Op != "drawRRect" {
		t.Fatalf("expected paint to open with the track, got %v", snap.DisplayOps)
	}
}

func TestSnapshotDiff(t *testing.T) {
	tester := NewSwitchTesterWithT(t, defaultStyle(), 200, 80)
	before := tester.CaptureSnapshot()

	if diff := before.Diff(tester.CaptureSnapshot()); diff != "" {
		t.Errorf("same state should not differ:\n%s", diff)
	}

	tester.Button().ToggleAnimated(false)
	diff := tester.CaptureSnapshot().Diff(before)
	if !strings.Contains(diff, "-checked: false") || !strings.Contains(diff, "+checked: true") {
		t.Errorf("diff should show the checked flip:\n%s", diff)
	}
}

func TestSnapshotRoundTripsThroughFile(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	tester := NewSwitchTesterWithT(t, defaultStyle(), 200, 80)
	tester.Button().Toggle()
	tester.PumpFor(150 * time.Millisecond)
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "testdata", "switching.snapshot.yaml")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	snap.MatchesFile(t, path)
}

func TestMatchesFileFailures(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	tester := NewSwitchTesterWithT(t, defaultStyle(), 200, 80)
	unchecked := tester.CaptureSnapshot()
	stored := filepath.Join(t.TempDir(), "unchecked.snapshot.yaml")
	if err := unchecked.UpdateFile(stored); err != nil {
		t.Fatal(err)
	}
	tester.Button().ToggleAnimated(false)
	checked := tester.CaptureSnapshot()

	tests := []struct {
		name       string
		snap       *Snapshot
		path       string
		wantFatals int
		wantErrs   int
	}{
		{"missing file", unchecked, filepath.Join(t.TempDir(), "absent.yaml"), 1, 0},
		{"match", unchecked, stored, 0, 0},
		{"mismatch", checked, stored, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{name: t.Name()}
			tt.snap.MatchesFile(r, tt.path)
			if len(r.fatals) != tt.wantFatals || len(r.errs) != tt.wantErrs {
				t.Errorf("fatals %d errs %d, want %d and %d", len(r.fatals), len(r.errs), tt.wantFatals, tt.wantErrs)
			}
		})
	}
}

func TestMatchesFileUpdateMode(t *testing.T) {
	t.Setenv(UpdateEnv, "1")
	tester := NewSwitchTesterWithT(t, defaultStyle(), 200, 80)
	path := filepath.Join(t.TempDir(), "new", "idle.snapshot.yaml")

	tester.CaptureSnapshot().MatchesFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("update mode should write the file: %v", err)
	}
	if !strings.Contains(string(data), "phase: idle") {
		t.Errorf("unexpected snapshot contents:\n%s", data)
	}
}
