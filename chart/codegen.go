package chart

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	govega "github.com/reoring/govega"
	vl "github.com/reoring/govega/vegalite"
)

const (
	chartPkg = "github.com/reoring/govega/chart"
	dslPkg   = "github.com/reoring/govega/dsl"
	vlPkg    = "github.com/reoring/govega/vegalite"
)

// GoOptions controls the source emitted by ToGo.
type GoOptions struct {
	// Package is the package clause of the generated file (default "charts").
	Package string
	// Func is the name of the generated constructor (default "Build").
	Func string
}

// ToGo returns Go source declaring a function that rebuilds c with the
// builder API. The source is generated from the exported document, so bound
// tables and frames appear as inline values and transforms.
func ToGo(c Composite, opt GoOptions) (string, error) {
	if c == nil {
		return "", &govega.TypeError{Path: "/", Accepted: []string{"*chart.Chart", "*chart.LayeredChart", "*chart.FacetedChart"}, Received: c}
	}
	doc, err := c.ToDocument(govega.ExportOpt{InsertionOrder: true})
	if err != nil {
		return "", err
	}
	if opt.Package == "" {
		opt.Package = "charts"
	}
	if opt.Func == "" {
		opt.Func = "Build"
	}
	f := jen.NewFile(opt.Package)
	f.HeaderComment("Code generated by govega. DO NOT EDIT.")
	f.ImportAlias(vlPkg, "vl")
	g := &goGen{file: f}
	g.composite(opt.Func, doc)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("govega: render Go source: %w", err)
	}
	return buf.String(), nil
}

type goGen struct {
	file *jen.File
}

// composite emits one constructor for doc and, first, one for each of its
// children.
func (g *goGen) composite(name string, doc *govega.Document) {
	switch {
	case doc.Has("layer"):
		g.layered(name, doc)
	case doc.Has("facet"):
		g.faceted(name, doc)
	default:
		g.chart(name, doc)
	}
}

func (g *goGen) chart(name string, doc *govega.Document) {
	body := []jen.Code{
		jen.List(jen.Id("c"), jen.Err()).Op(":=").Qual(chartPkg, "New").Call(dataCode(doc)),
		returnOnErr(),
	}
	handled := map[string]bool{govega.SchemaKey: true, "data": true}

	if m, ok := doc.Get("mark"); ok {
		if kind, ok := m.(string); ok {
			handled["mark"] = true
			body = append(body, checkCall(jen.Id("c").Dot(markMethod(kind)).Call(markArgs(kind)...)))
		}
	}
	if v, ok := doc.Get("encoding"); ok {
		handled["encoding"] = true
		body = append(body, checkCall(jen.Id("c").Dot("Encode").Call(valueCode(v))))
	}
	body = append(body, transformCall(doc, handled)...)
	if v, ok := doc.Get("selection"); ok {
		if sel, ok := v.(*govega.Document); ok {
			handled["selection"] = true
			for _, k := range sel.SortedKeys() {
				def, _ := sel.Get(k)
				body = append(body, checkCall(jen.Id("c").Dot("Select").Call(jen.Lit(k), valueCode(def))))
			}
		}
	}
	body = append(body, tail(doc, handled)...)
	g.emit(name, "Chart", body)
}

func (g *goGen) layered(name string, doc *govega.Document) {
	var body []jen.Code
	args := []jen.Code{dataCode(doc)}
	layers, _ := doc.Get("layer")
	for i, l := range asSlice(layers) {
		ld, ok := l.(*govega.Document)
		if !ok {
			continue
		}
		child := childName(name, "Layer"+strconv.Itoa(i))
		g.chart(child, ld)
		v := "l" + strconv.Itoa(i)
		body = append(body,
			jen.List(jen.Id(v), jen.Err()).Op(":=").Id(child).Call(),
			returnOnErr(),
		)
		args = append(args, jen.Id(v))
	}
	body = append(body,
		jen.List(jen.Id("c"), jen.Err()).Op(":=").Qual(chartPkg, "NewLayered").Call(args...),
		returnOnErr(),
	)
	handled := map[string]bool{govega.SchemaKey: true, "data": true, "layer": true}
	body = append(body, transformCall(doc, handled)...)
	body = append(body, resolveCall(doc, handled)...)
	body = append(body, tail(doc, handled)...)
	g.emit(name, "LayeredChart", body)
}

func (g *goGen) faceted(name string, doc *govega.Document) {
	body := []jen.Code{
		jen.List(jen.Id("c"), jen.Err()).Op(":=").Qual(chartPkg, "NewFaceted").Call(dataCode(doc)),
		returnOnErr(),
	}
	handled := map[string]bool{govega.SchemaKey: true, "data": true, "facet": true}
	facet, _ := doc.Get("facet")
	body = append(body, checkCall(jen.Id("c").Dot("SetFacet").Call(valueCode(facet))))
	if spec, ok := doc.Get("spec"); ok {
		if sd, ok := spec.(*govega.Document); ok {
			handled["spec"] = true
			child := childName(name, "Spec")
			g.composite(child, sd)
			body = append(body,
				jen.List(jen.Id("spec"), jen.Err()).Op(":=").Id(child).Call(),
				returnOnErr(),
				checkCall(jen.Id("c").Dot("SetSpec").Call(jen.Id("spec"))),
			)
		}
	}
	body = append(body, transformCall(doc, handled)...)
	body = append(body, resolveCall(doc, handled)...)
	body = append(body, tail(doc, handled)...)
	g.emit(name, "FacetedChart", body)
}

func (g *goGen) emit(name, typ string, body []jen.Code) {
	body = append(body, jen.Return(jen.Id("c"), jen.Nil()))
	g.file.Func().Id(name).Params().Params(jen.Op("*").Qual(chartPkg, typ), jen.Error()).Block(body...)
	g.file.Line()
}

func transformCall(doc *govega.Document, handled map[string]bool) []jen.Code {
	v, ok := doc.Get("transform")
	if !ok {
		return nil
	}
	handled["transform"] = true
	items := asSlice(v)
	if len(items) == 0 {
		return nil
	}
	args := make([]jen.Code, len(items))
	for i, t := range items {
		args[i] = valueCode(t)
	}
	return []jen.Code{checkCall(jen.Id("c").Dot("Transform").Call(args...))}
}

func resolveCall(doc *govega.Document, handled map[string]bool) []jen.Code {
	v, ok := doc.Get("resolve")
	if !ok {
		return nil
	}
	handled["resolve"] = true
	return []jen.Code{checkCall(jen.Id("c").Dot("Resolve").Call(valueCode(v)))}
}

// tail emits the view properties and then every remaining key through the
// entity itself.
func tail(doc *govega.Document, handled map[string]bool) []jen.Code {
	var out []jen.Code
	props := govega.NewDocument()
	for _, p := range vl.PropertyNames {
		if v, ok := doc.Get(p); ok {
			props.Set(p, v)
			handled[p] = true
		}
	}
	if props.Len() > 0 {
		out = append(out, checkCall(jen.Id("c").Dot("Properties").Call(valueCode(props))))
	}
	rest := govega.NewDocument()
	for _, k := range doc.Keys() {
		if !handled[k] {
			v, _ := doc.Get(k)
			rest.Set(k, v)
		}
	}
	if rest.Len() > 0 {
		out = append(out, checkCall(jen.Id("c").Dot("Entity").Call().Dot("Update").Call(valueCode(rest))))
	}
	return out
}

// dataCode renders the data argument of a constructor: nil, a url string, or
// a vegalite.Data entity.
func dataCode(doc *govega.Document) jen.Code {
	v, ok := doc.Get("data")
	if !ok {
		return jen.Nil()
	}
	d, ok := v.(*govega.Document)
	if !ok {
		return jen.Nil()
	}
	if d.Len() == 1 {
		if u, ok := d.Get("url"); ok {
			if s, ok := u.(string); ok {
				return jen.Lit(s)
			}
		}
	}
	return jen.Qual(vlPkg, "Data").Dot("MustNew").Call(valueCode(d))
}

var markMethods = map[string]bool{
	"area": true, "bar": true, "line": true, "point": true, "text": true,
	"tick": true, "rule": true, "circle": true, "square": true, "rect": true,
}

func markMethod(kind string) string {
	if markMethods[kind] {
		return "Mark" + cases.Title(language.Und).String(kind)
	}
	return "Mark"
}

func markArgs(kind string) []jen.Code {
	if markMethods[kind] {
		return []jen.Code{jen.Nil()}
	}
	return []jen.Code{jen.Lit(kind), jen.Nil()}
}

// valueCode renders a document value as a Go literal: objects become
// dsl.Values, arrays []any.
func valueCode(v any) jen.Code {
	switch t := v.(type) {
	case nil:
		return jen.Nil()
	case bool:
		return jen.Lit(t)
	case string:
		return jen.Lit(t)
	case int64:
		return jen.Lit(int(t))
	case float64:
		return jen.Lit(t)
	case *govega.Document:
		d := jen.Dict{}
		for _, k := range t.Keys() {
			ev, _ := t.Get(k)
			d[jen.Lit(k)] = valueCode(ev)
		}
		return jen.Qual(dslPkg, "Values").Values(d)
	case []any:
		items := make([]jen.Code, len(t))
		for i := range t {
			items[i] = valueCode(t[i])
		}
		return jen.Index().Any().Values(items...)
	}
	return jen.Lit(fmt.Sprint(v))
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func childName(parent, suffix string) string {
	if parent == "" {
		return "build" + suffix
	}
	r := []rune(parent)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r) + suffix
}

func returnOnErr() jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
}

func checkCall(call jen.Code) jen.Code {
	return jen.If(jen.Err().Op(":=").Add(call), jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
}
