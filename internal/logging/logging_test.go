package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	drifterrors "github.com/go-drift/switchbutton/pkg/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleFormats(t *testing.T) {
	var text bytes.Buffer
	l, err := New(Options{}, &text)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("frame", "n", 3)
	l.Debug("hidden")
	l.Close()
	if got := text.String(); !strings.Contains(got, "msg=frame") || !strings.Contains(got, "n=3") {
		t.Errorf("text output = %q", got)
	}
	if strings.Contains(text.String(), "hidden") {
		t.Error("debug record written at info level")
	}

	var js bytes.Buffer
	l, err = New(Options{Format: "json", Level: "debug"}, &js)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("frame", "n", 4)
	l.Close()
	var rec map[string]any
	if err := json.Unmarshal(js.Bytes(), &rec); err != nil {
		t.Fatalf("json output %q: %v", js.String(), err)
	}
	if rec["msg"] != "frame" || rec["n"] != float64(4) {
		t.Errorf("record = %v", rec)
	}

	if _, err := New(Options{Format: "xml"}, &js); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFileLogAndErrorHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.log")
	var console bytes.Buffer
	l, err := New(Options{File: path}, &console)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("started")
	drifterrors.Report(&drifterrors.Error{Op: "SetSize", Kind: drifterrors.KindConfig, Err: drifterrors.ErrDegenerateGeometry})
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"started"`, `"msg":"switch error"`, `"op":"SetSize"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("file log missing %s:\n%s", want, data)
		}
	}
	if !strings.Contains(console.String(), "switch error") {
		t.Errorf("console missing reported error: %q", console.String())
	}
}

func TestNilConsoleDiscards(t *testing.T) {
	l, err := New(Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("nowhere")
}
