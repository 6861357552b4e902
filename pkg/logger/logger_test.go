package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samvad-hq/reqclient/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		" warn ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.InfoObj("dropped", "request", map[string]any{"uri": "x"})
	log.WarnObj("http request failed", "request_error", map[string]any{"uri": "https://example.test/items"})
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single entry at warn level, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["msg"] != "http request failed" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
	field, ok := entry["request_error"].(map[string]any)
	if !ok || field["uri"] != "https://example.test/items" {
		t.Fatalf("unexpected request_error field: %v", entry["request_error"])
	}
}

func TestFromZapForwardsFormattedLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Debugf("resty %s", "debug")
	log.Warnf("resty %d", 2)
	log.ErrorObj("boom", "error", "bad")

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}
	entries := logs.All()
	if entries[0].Message != "resty debug" || entries[1].Message != "resty 2" {
		t.Fatalf("unexpected messages: %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[2].Level != zapcore.ErrorLevel || entries[2].ContextMap()["error"] != "bad" {
		t.Fatalf("unexpected error entry: %+v", entries[2])
	}
}

func TestFromZapNil(t *testing.T) {
	log := FromZap(nil)
	log.InfoObj("ignored", "k", 1)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.DebugObj("ignored", "k", 1)
	log.Warnf("ignored %d", 2)
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
}

func TestInitUsesConfigLevel(t *testing.T) {
	log, err := Init(&config.Config{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !log.Zap().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled")
	}
}
