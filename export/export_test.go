package export_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/chart"
	"github.com/reoring/govega/codec"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/export"
	"github.com/reoring/govega/table"
)

func sample(t *testing.T) *chart.Chart {
	t.Helper()
	c := chart.MustNew(table.NewRows([]string{"a", "b"},
		map[string]any{"a": "x", "b": 1},
		map[string]any{"a": "y", "b": 2},
	))
	if err := c.MarkBar(nil); err != nil {
		t.Fatalf("MarkBar: %v", err)
	}
	if err := c.Encode(dsl.Values{"x": "a", "y": "b"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return c
}

func TestFormats(t *testing.T) {
	want := []string{"json", "yaml", "msgpack", "html", "png", "svg"}
	if diff := cmp.Diff(want, export.Formats()); diff != "" {
		t.Fatalf("formats (-want +got):\n%s", diff)
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(context.Background(), &buf, sample(t), "pdf", export.Options{})
	var ufe *govega.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if ufe.Format != "pdf" || len(ufe.Supported) != len(export.Formats()) {
		t.Fatalf("unexpected error %+v", ufe)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing must be written on failure")
	}
}

func TestWrite_JSONMatchesToText(t *testing.T) {
	c := sample(t)
	var buf bytes.Buffer
	if err := export.Write(context.Background(), &buf, c, export.JSON, export.Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	text, err := c.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	if buf.String() != text {
		t.Fatalf("json export differs from ToText:\n%s\n%s", buf.String(), text)
	}
}

func TestWrite_CodecsAgree(t *testing.T) {
	c := sample(t)
	want, err := c.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	for _, f := range []string{export.YAML, export.MsgPack} {
		var buf bytes.Buffer
		if err := export.Write(context.Background(), &buf, c, f, export.Options{}); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		cd, _ := codec.ByName(f)
		got, err := cd.Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		if diff := cmp.Diff(want.Map(), got.Map()); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", f, diff)
		}
	}
}

func TestWrite_HTML(t *testing.T) {
	c := sample(t)
	if err := c.Properties(dsl.Values{"description": "</script><b>bold</b>"}); err != nil {
		t.Fatalf("Properties: %v", err)
	}
	var buf bytes.Buffer
	opt := export.Options{Title: "<i>Sales</i> & more"}
	if err := export.Write(context.Background(), &buf, c, export.HTML, opt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<title>Sales &amp; more</title>") {
		t.Fatalf("title not sanitised:\n%s", out)
	}
	if !strings.Contains(out, `<div id="vis-`) {
		t.Fatalf("missing chart element:\n%s", out)
	}
	if strings.Count(out, "</script>") != 4 {
		t.Fatalf("the embedded chart must not close the script element:\n%s", out)
	}
	if !strings.Contains(out, `"mark":"bar"`) {
		t.Fatalf("spec not embedded:\n%s", out)
	}
}

func TestWrite_HTMLUniqueIDs(t *testing.T) {
	c := sample(t)
	var a, b bytes.Buffer
	_ = export.Write(context.Background(), &a, c, export.HTML, export.Options{})
	_ = export.Write(context.Background(), &b, c, export.HTML, export.Options{})
	if a.String() == b.String() {
		t.Fatalf("each page must get its own element id")
	}
	if !strings.Contains(a.String(), "<title>"+govega.CurrentConfig().HTMLTitle+"</title>") {
		t.Fatalf("default title missing:\n%s", a.String())
	}
}

func TestWrite_ImageRequiresRendering(t *testing.T) {
	govega.EnableRendering(false)
	var buf bytes.Buffer
	for _, f := range []string{export.PNG, export.SVG} {
		err := export.Write(context.Background(), &buf, sample(t), f, export.Options{})
		if !errors.Is(err, export.ErrRenderingDisabled) {
			t.Fatalf("%s: expected ErrRenderingDisabled, got %v", f, err)
		}
	}
}

func TestWrite_ImageRenderer(t *testing.T) {
	if _, err := os.Stat("/bin/cat"); err != nil {
		t.Skip("cat not available")
	}
	prev := govega.CurrentConfig()
	t.Cleanup(func() { govega.Configure(prev) })
	govega.Configure(govega.Config{Rendering: true, Renderers: map[string]string{"svg": "/bin/cat", "png": "/bin/false"}})

	c := sample(t)
	var buf bytes.Buffer
	if err := export.Write(context.Background(), &buf, c, export.SVG, export.Options{}); err != nil {
		t.Fatalf("svg: %v", err)
	}
	text, _ := c.ToText(govega.ExportOpt{})
	if buf.String() != text {
		t.Fatalf("renderer must receive the JSON spec, got %s", buf.String())
	}

	err := export.Write(context.Background(), &buf, c, export.PNG, export.Options{})
	var re *export.RenderError
	if !errors.As(err, &re) || re.Format != export.PNG {
		t.Fatalf("expected RenderError, got %v", err)
	}
}

func TestSave_InfersFormat(t *testing.T) {
	dir := t.TempDir()
	c := sample(t)
	for _, name := range []string{"chart.json", "chart.yml", "chart.msgpack", "chart.html"} {
		p := filepath.Join(dir, name)
		if err := export.Save(context.Background(), p, c, "", export.Options{}); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("%s: expected a non-empty file, got %v", name, err)
		}
	}

	p := filepath.Join(dir, "chart.pdf")
	err := export.Save(context.Background(), p, c, "", export.Options{})
	var ufe *govega.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("no file must be created for an unsupported format")
	}
}

func TestWrite_ExportErrorsPropagate(t *testing.T) {
	c := sample(t)
	_ = c.SetMaxRows(1)
	err := export.Write(context.Background(), &bytes.Buffer{}, c, export.JSON, export.Options{})
	var rle *govega.RowLimitExceededError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RowLimitExceededError, got %v", err)
	}
}
