package govega_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	govega "github.com/reoring/govega"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := govega.LoadConfig(strings.NewReader("max_rows: 100\nrendering: true\nrenderers:\n  png: my-png\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxRows != 100 || !cfg.Rendering || cfg.Renderers["png"] != "my-png" || cfg.Renderers["svg"] != "vl2svg" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	empty, err := govega.LoadConfig(strings.NewReader(""))
	if err != nil || empty.MaxRows != govega.DefaultMaxRows {
		t.Fatalf("an empty file yields the defaults: %+v %v", empty, err)
	}

	if _, err := govega.LoadConfig(strings.NewReader("max_row: 1\n")); err == nil {
		t.Fatalf("expected unknown keys to be rejected")
	}
	if _, err := govega.LoadConfig(strings.NewReader("max_rows: -1\n")); err == nil {
		t.Fatalf("expected a negative max_rows to be rejected")
	}
}

func TestConfigure(t *testing.T) {
	prev := govega.CurrentConfig()
	t.Cleanup(func() { govega.Configure(prev) })

	govega.Configure(govega.Config{MaxRows: 10})
	cfg := govega.CurrentConfig()
	if cfg.MaxRows != 10 || cfg.HTMLTitle == "" || cfg.Renderers["png"] != "vl2png" {
		t.Fatalf("zero fields must fall back to defaults: %+v", cfg)
	}
	cfg.Renderers["png"] = "changed"
	if govega.CurrentConfig().Renderers["png"] != "vl2png" {
		t.Fatalf("CurrentConfig must return a copy")
	}

	govega.EnableRendering(true)
	if !govega.RenderingEnabled() {
		t.Fatalf("rendering should be enabled")
	}
	govega.EnableRendering(false)
	if govega.RenderingEnabled() {
		t.Fatalf("rendering should be disabled")
	}
}

func TestDiagCollector_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	govega.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { govega.SetLogger(nil) })

	d := &govega.DiagCollector{}
	d.Warn(nil)
	if d.HasWarnings() {
		t.Fatalf("nil warnings are ignored")
	}
	d.Warn(&govega.SchemaVersionMismatch{Got: "v1", Want: govega.SchemaURL})
	if !d.HasWarnings() || len(d.Warnings()) != 1 {
		t.Fatalf("expected one warning")
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "schema_version_mismatch") {
		t.Fatalf("warning not logged: %q", buf.String())
	}
}
