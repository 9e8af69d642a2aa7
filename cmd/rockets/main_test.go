package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/rocket-range/config"
	"github.com/lixenwraith/rocket-range/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"
	cfg.Log.Dir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestListPages(t *testing.T) {
	var buf bytes.Buffer
	listPages(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 pages, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "1  ") || !strings.HasSuffix(lines[5], "Cleanup drones") {
		t.Errorf("Unexpected listing:\n%s", buf.String())
	}
}

func TestSetupLogging_InteractiveWritesFile(t *testing.T) {
	cfg := testConfig(t)

	log, closeLog, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Info(context.Background(), "test message", logging.Int("page", 3))
	closeLog()

	data, err := os.ReadFile(filepath.Join(cfg.Log.Dir, logging.DefaultFileName))
	if err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}
	if !strings.Contains(string(data), "test message") {
		t.Errorf("Expected log file to contain the message, got %q", data)
	}
}

func TestSetupLogging_HeadlessSkipsFile(t *testing.T) {
	cfg := testConfig(t)

	_, closeLog, err := setupLogging(cfg, false)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	closeLog()

	if _, err := os.Stat(cfg.Log.Dir); !os.IsNotExist(err) {
		t.Errorf("Expected no log directory for headless runs, stat err = %v", err)
	}
}

func TestStartMetrics_DisabledWithoutAddr(t *testing.T) {
	collector, err := startMetrics(context.Background(), "", prometheus.NewRegistry(), logging.Noop())
	if err != nil || collector != nil {
		t.Errorf("Expected nil collector and error, got %v, %v", collector, err)
	}
}

func TestStartMetrics_ServesEndpoint(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector, err := startMetrics(ctx, addr, prometheus.NewRegistry(), logging.Noop())
	if err != nil {
		t.Fatalf("startMetrics: %v", err)
	}
	collector.Crashes.Inc()

	var body string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			time.Sleep(20 * time.Millisecond)
			continue
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		body = string(b)
		break
	}
	if !strings.Contains(body, "rockets_crashes_total 1") {
		t.Errorf("Expected crash counter in /metrics, got:\n%s", body)
	}
}
