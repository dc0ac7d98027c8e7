package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/chart"
	"github.com/reoring/govega/codec"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/export"
	vl "github.com/reoring/govega/vegalite"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "convert":
		convertCmd(ctx, os.Args[2:])
	case "render":
		renderCmd(ctx, os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	case "formats":
		formatsCmd(os.Args[2:])
	case "gocode":
		gocodeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `govega CLI

Usage:
  govega validate [-config f.yaml] [-v] chart.json [...]
  govega convert  [-config f.yaml] [-v] [-to yaml] [-o out] [-omit-data] chart.json
  govega render   [-config f.yaml] [-v] [-format html|png|svg] [-title T] -o out chart.json
  govega schema   [-type Chart] [-indent "  "]
  govega formats
  govega gocode   [-config f.yaml] [-v] [-pkg charts] [-func Build] [-o out.go] chart.json

Input files are read as JSON, YAML or MessagePack depending on their
extension; "-" reads JSON from stdin.`)
}

// common registers the flags every document command shares and returns a
// function applying them once parsed.
func common(fs *flag.FlagSet) func() {
	var configPath string
	var verbose bool
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	return func() {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		govega.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		if configPath == "" {
			return
		}
		f, err := os.Open(configPath)
		if err != nil {
			fatalf("open config: %v", err)
		}
		defer f.Close()
		cfg, err := govega.LoadConfig(f)
		if err != nil {
			fatalf("%v", err)
		}
		govega.Configure(cfg)
		govega.Logger().Debug("config loaded", "path", configPath, "max_rows", cfg.MaxRows, "rendering", cfg.Rendering)
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	apply := common(fs)
	_ = fs.Parse(args)
	apply()
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	failed := false
	for _, path := range fs.Args() {
		c, err := load(path)
		if err == nil {
			_, err = c.ToDocument(govega.ExportOpt{})
		}
		if err != nil {
			failed = true
			printIssues(path, err)
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

func convertCmd(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	apply := common(fs)
	var to, out, indent string
	var omitData, insertion bool
	fs.StringVar(&to, "to", "", "target format ("+strings.Join(codec.Names(), ", ")+"); inferred from -o when empty")
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	fs.StringVar(&indent, "indent", "", "indent for text formats")
	fs.BoolVar(&omitData, "omit-data", false, "drop data bindings")
	fs.BoolVar(&insertion, "insertion-order", false, "keep declaration order instead of sorting keys")
	_ = fs.Parse(args)
	apply()
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	if to == "" {
		to = export.JSON
		if out != "" {
			f, err := export.FormatForPath(out)
			if err != nil {
				fatalf("%v", err)
			}
			to = f
		}
	}
	if _, err := codec.ByName(to); err != nil {
		fatalf("%v", err)
	}
	c, err := load(fs.Arg(0))
	if err != nil {
		printIssues(fs.Arg(0), err)
		os.Exit(1)
	}
	write(ctx, c, to, out, export.Options{Indent: indent, OmitData: omitData, InsertionOrder: insertion})
}

func renderCmd(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	apply := common(fs)
	var format, out, title string
	fs.StringVar(&format, "format", "", "html, png or svg; inferred from -o when empty")
	fs.StringVar(&out, "o", "", "output file")
	fs.StringVar(&title, "title", "", "HTML page title")
	_ = fs.Parse(args)
	apply()
	if fs.NArg() != 1 || (out == "" && format == "") {
		fs.Usage()
		os.Exit(2)
	}
	if format == "" {
		f, err := export.FormatForPath(out)
		if err != nil {
			fatalf("%v", err)
		}
		format = f
	}
	switch format {
	case export.HTML:
	case export.PNG, export.SVG:
		govega.EnableRendering(true)
	default:
		fatalf("render: unsupported format %q (want html, png or svg)", format)
	}
	c, err := load(fs.Arg(0))
	if err != nil {
		printIssues(fs.Arg(0), err)
		os.Exit(1)
	}
	write(ctx, c, format, out, export.Options{Title: title})
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var typeName, indent string
	fs.StringVar(&typeName, "type", chart.ChartType.Name(), "entity type name")
	fs.StringVar(&indent, "indent", "  ", "indent")
	_ = fs.Parse(args)

	t := lookupType(typeName)
	if t == nil {
		fatalf("unknown type %q", typeName)
	}
	s, err := t.JSONSchema()
	if err != nil {
		fatalf("schema: %v", err)
	}
	b, err := json.MarshalIndent(s, "", indent)
	if err != nil {
		fatalf("schema: %v", err)
	}
	fmt.Println(string(b))
}

func gocodeCmd(args []string) {
	fs := flag.NewFlagSet("gocode", flag.ExitOnError)
	apply := common(fs)
	var pkg, fn, out string
	fs.StringVar(&pkg, "pkg", "charts", "package clause of the generated file")
	fs.StringVar(&fn, "func", "Build", "name of the generated constructor")
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	_ = fs.Parse(args)
	apply()
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	c, err := load(fs.Arg(0))
	if err != nil {
		printIssues(fs.Arg(0), err)
		os.Exit(1)
	}
	src, err := chart.ToGo(c, chart.GoOptions{Package: pkg, Func: fn})
	if err != nil {
		printIssues(fs.Arg(0), err)
		os.Exit(1)
	}
	if out == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
		fatalf("write %s: %v", out, err)
	}
}

func formatsCmd(args []string) {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	_ = fs.Parse(args)
	title := cases.Title(language.English)
	desc := map[string]string{
		export.JSON:    "canonical JSON document",
		export.YAML:    "YAML document",
		export.MsgPack: "MessagePack document",
		export.HTML:    "self-contained HTML page",
		export.PNG:     "PNG image (external renderer)",
		export.SVG:     "SVG image (external renderer)",
	}
	for _, f := range export.Formats() {
		fmt.Printf("%-8s %-8s %s\n", f, title.String(f), desc[f])
	}
}

func lookupType(name string) *dsl.Type {
	for _, t := range chart.Types() {
		if t.Name() == name {
			return t
		}
	}
	if t, ok := vl.TypeByName(name); ok {
		return t
	}
	return nil
}

// load reads a composite from path, or JSON from stdin when path is "-".
func load(path string) (chart.Composite, error) {
	var data []byte
	var err error
	cd := codec.Codec(codec.JSON{})
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		if c, ok := codec.ForExtension(filepath.Ext(path)); ok {
			cd = c
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	doc, err := cd.Decode(data)
	if err != nil {
		return nil, err
	}
	c, d, err := chart.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	for _, w := range d.Warnings() {
		fmt.Fprintf(os.Stderr, "%s: warning: %v\n", path, w)
	}
	return c, nil
}

func write(ctx context.Context, c chart.Composite, format, out string, opt export.Options) {
	var err error
	if out == "" {
		err = export.Write(ctx, os.Stdout, c, format, opt)
	} else {
		err = export.Save(ctx, out, c, format, opt)
	}
	if err != nil {
		var re *export.RenderError
		if errors.As(err, &re) {
			fatalf("%v", re)
		}
		printIssues(format, err)
		os.Exit(1)
	}
}

func printIssues(source string, err error) {
	if iss, ok := govega.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", source, it.Path, it.Code, it.Message)
		}
		return
	}
	var ie interface{ Issue() govega.Issue }
	if errors.As(err, &ie) {
		it := ie.Issue()
		fmt.Fprintf(os.Stderr, "%s: %s %s: %s (%v)\n", source, it.Path, it.Code, it.Message, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", source, err)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
