// Package export writes composites in the supported output formats: the
// document codecs (json, yaml, msgpack), a self-contained HTML page, and
// images (png, svg) produced by an external renderer.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	govega "github.com/reoring/govega"
	"github.com/reoring/govega/codec"
)

// Format names.
const (
	JSON    = "json"
	YAML    = "yaml"
	MsgPack = "msgpack"
	HTML    = "html"
	PNG     = "png"
	SVG     = "svg"
)

// Documenter is anything that exports a document, such as the chart
// composites.
type Documenter interface {
	ToDocument(opt govega.ExportOpt) (*govega.Document, error)
}

// Options tune a single export.
type Options struct {
	// Title of the HTML page. Defaults to the configured HTML title.
	Title string
	// Indent pretty-prints text formats.
	Indent string
	// OmitData drops data bindings from the document.
	OmitData bool
	// InsertionOrder keeps declaration order instead of sorted keys.
	InsertionOrder bool
}

func (o Options) exportOpt() govega.ExportOpt {
	return govega.ExportOpt{OmitData: o.OmitData, InsertionOrder: o.InsertionOrder, Indent: o.Indent}
}

// ErrRenderingDisabled is returned for image formats while rendering is off
// (see govega.EnableRendering).
var ErrRenderingDisabled = errors.New("export: image output is disabled; enable rendering first")

// Formats returns the supported format names.
func Formats() []string {
	return []string{JSON, YAML, MsgPack, HTML, PNG, SVG}
}

// Write exports c to w in format. Nothing is written unless the whole
// output was produced.
func Write(ctx context.Context, w io.Writer, c Documenter, format string, opt Options) error {
	b, err := Render(ctx, c, format, opt)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Render exports c in format and returns the bytes.
func Render(ctx context.Context, c Documenter, format string, opt Options) ([]byte, error) {
	format = strings.ToLower(format)
	if !supported(format) {
		return nil, &govega.UnsupportedFormatError{Format: format, Supported: Formats()}
	}
	if (format == PNG || format == SVG) && !govega.RenderingEnabled() {
		return nil, ErrRenderingDisabled
	}
	doc, err := c.ToDocument(opt.exportOpt())
	if err != nil {
		return nil, err
	}
	switch format {
	case HTML:
		return renderHTML(doc, opt)
	case PNG, SVG:
		spec, err := codec.JSON{}.Encode(doc, govega.ExportOpt{})
		if err != nil {
			return nil, err
		}
		return renderImage(ctx, format, spec)
	}
	cd, err := codec.ByName(format)
	if err != nil {
		return nil, err
	}
	return cd.Encode(doc, opt.exportOpt())
}

// Save writes c to path. An empty format is inferred from the file
// extension. The file is only created once the output is complete.
func Save(ctx context.Context, path string, c Documenter, format string, opt Options) error {
	if format == "" {
		var err error
		if format, err = FormatForPath(path); err != nil {
			return err
		}
	}
	b, err := Render(ctx, c, format, opt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// FormatForPath infers the format from the extension of path.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case HTML, "htm":
		return HTML, nil
	case PNG, SVG:
		return ext, nil
	}
	if cd, ok := codec.ForExtension(ext); ok {
		return cd.Name(), nil
	}
	return "", &govega.UnsupportedFormatError{Format: ext, Supported: Formats()}
}

func supported(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// RenderError reports a failed external renderer run.
type RenderError struct {
	Format  string
	Command string
	Stderr  string
	Err     error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("export: %s renderer %q failed: %v", e.Format, e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }

func trimOutput(b *bytes.Buffer) string {
	const max = 2048
	s := b.String()
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
