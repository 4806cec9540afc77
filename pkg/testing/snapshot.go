package testing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UpdateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "SWITCH_UPDATE_SNAPSHOTS"

// TestingT is what MatchesFile needs from a *testing.T.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a switch frozen at one instant: its phase, checked state,
// interpolated view and the canvas calls one paint makes.
type Snapshot struct {
	Phase      string      `yaml:"phase"`
	Checked    bool        `yaml:"checked"`
	View       ViewNode    `yaml:"view"`
	DisplayOps []DisplayOp `yaml:"displayOps,omitempty"`
}

// ViewNode holds the animated view values, rounded like DisplayOp.
type ViewNode struct {
	KnobX          float64 `yaml:"knobX"`
	FillColor      string  `yaml:"fillColor"`
	IndicatorColor string  `yaml:"indicatorColor"`
	FillRadius     float64 `yaml:"fillRadius"`
}

// CaptureSnapshot records the button as it would paint right now.
func (t *SwitchTester) CaptureSnapshot() *Snapshot {
	v := t.button.ViewState()
	snap := &Snapshot{
		Phase:      t.button.Phase().String(),
		Checked:    t.button.IsChecked(),
		DisplayOps: t.CaptureOps(),
	}
	snap.View.KnobX = round2(v.KnobX)
	snap.View.FillColor = hexColor(v.FillColor)
	snap.View.IndicatorColor = hexColor(v.IndicatorColor)
	snap.View.FillRadius = round2(v.FillRadius)
	return snap
}

// MatchesFile fails t unless s equals the golden file at path. With
// UpdateEnv set to 1 it writes s to path instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()
	hint := fmt.Sprintf("%s=1 go test -run %s", UpdateEnv, t.Name())

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("writing snapshot %s: %v", path, err)
		}
		return
	}

	want, err := readSnapshot(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Fatalf("no snapshot at %s; create it with\n\t%s", path, hint)
		return
	case err != nil:
		t.Fatalf("reading snapshot %s: %v", path, err)
		return
	}
	if diff := s.Diff(want); diff != "" {
		t.Errorf("snapshot %s differs:\n%s\naccept the change with\n\t%s", path, diff, hint)
	}
}

// UpdateFile writes s to path as YAML, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff lists the lines where other (expected) and s (actual) disagree, or
// returns "" when they encode identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	got, _ := encodeSnapshot(s)
	want, _ := encodeSnapshot(other)
	if bytes.Equal(got, want) {
		return ""
	}
	return diffLines(strings.Split(string(want), "\n"), strings.Split(string(got), "\n"))
}

func readSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snap := new(Snapshot)
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func encodeSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// diffLines compares line by line; it does not realign after an insertion.
func diffLines(want, got []string) string {
	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(want), len(got)) {
		w, wok := lineAt(want, i)
		g, gok := lineAt(got, i)
		if wok && gok && w == g {
			continue
		}
		if wok {
			b.WriteString("-" + w + "\n")
		}
		if gok {
			b.WriteString("+" + g + "\n")
		}
	}
	return b.String()
}

func lineAt(lines []string, i int) (string, bool) {
	if i < len(lines) {
		return lines[i], true
	}
	return "", false
}
