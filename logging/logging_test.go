package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info"}, &buf)

	log.With(String("page", "launch")).Info(context.Background(), "rocket launched", Float("altitude", 10))

	out := buf.String()
	if !strings.Contains(out, "rocket launched") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "page=launch") || !strings.Contains(out, "altitude=10") {
		t.Errorf("Expected fields in output, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn"}, &buf)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Warn should pass at warn level")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json"}, &buf)
	log.Debug(context.Background(), "tick", Int("pending", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected JSON output: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "tick" || rec["pending"] != float64(3) {
		t.Errorf("Unexpected record: %v", rec)
	}
}

func TestNoopDropsEverything(t *testing.T) {
	log := Noop().With(String("k", "v"))
	log.Error(context.Background(), "nothing")
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := OpenFile(dir, "")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); err != nil {
		t.Errorf("Expected log file to be created: %v", err)
	}
}

func TestOpenFileRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	large, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	if _, err := large.Write(make([]byte, MaxFileSize+1)); err != nil {
		t.Fatalf("Failed to write to log file: %v", err)
	}
	large.Close()

	f, err := OpenFile(dir, DefaultFileName)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != DefaultFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxFileSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
