package chart_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/chart"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/expr"
	"github.com/reoring/govega/table"
	vl "github.com/reoring/govega/vegalite"
)

func rows(n int) *table.Rows {
	recs := make([]map[string]any, n)
	for i := range recs {
		recs[i] = map[string]any{"a": i, "s": fmt.Sprintf("r%d", i)}
	}
	return table.NewRows([]string{"a", "s"}, recs...)
}

func TestRowLimit(t *testing.T) {
	c := chart.MustNew(rows(3))
	if err := c.SetMaxRows(3); err != nil {
		t.Fatalf("SetMaxRows: %v", err)
	}
	if _, err := c.ToDocument(govega.ExportOpt{}); err != nil {
		t.Fatalf("exactly max_rows rows must export: %v", err)
	}

	c = chart.MustNew(rows(4))
	_ = c.SetMaxRows(3)
	_, err := c.ToDocument(govega.ExportOpt{})
	var rle *govega.RowLimitExceededError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RowLimitExceededError, got %v", err)
	}
	if rle.Limit != 3 || rle.Actual != 4 || rle.Path != "/data" {
		t.Fatalf("unexpected error %+v", rle)
	}
	if c.Data().(govega.Table).Len() != 4 {
		t.Fatalf("the bound table must not be truncated")
	}
}

func TestRowLimit_LayerPath(t *testing.T) {
	child := chart.MustNew(rows(2))
	_ = child.SetMaxRows(1)
	_, err := chart.Layer(child).ToDocument(govega.ExportOpt{})
	var rle *govega.RowLimitExceededError
	if !errors.As(err, &rle) || rle.Path != "/layer/0/data" {
		t.Fatalf("expected RowLimitExceededError at /layer/0/data, got %v", err)
	}
}

func TestDefaultMaxRows(t *testing.T) {
	if got := chart.MustNew(nil).MaxRows(); got != govega.DefaultMaxRows {
		t.Fatalf("max rows: got %d want %d", got, govega.DefaultMaxRows)
	}
}

func TestPlus_KeepsOrder(t *testing.T) {
	a := chart.MustNew(nil)
	b := chart.MustNew(nil)
	if err := b.MarkBar(nil); err != nil {
		t.Fatalf("MarkBar: %v", err)
	}
	lc := a.Plus(b)

	ls := lc.Layers()
	if len(ls) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(ls))
	}
	doc, err := lc.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	layer := doc.Map()["layer"].([]any)
	if len(layer) != 2 {
		t.Fatalf("expected a layer array of 2, got %v", layer)
	}
	if m := layer[0].(map[string]any)["mark"]; m != "point" {
		t.Fatalf("first layer mark: %v", m)
	}
	if m := layer[1].(map[string]any)["mark"]; m != "bar" {
		t.Fatalf("second layer mark: %v", m)
	}
	if _, ok := layer[0].(map[string]any)[govega.SchemaKey]; ok {
		t.Fatalf("$schema belongs to the top level only")
	}
}

func TestLayer_CopiesChildren(t *testing.T) {
	a := chart.MustNew(nil)
	lc := chart.Layer(a)
	_ = a.MarkLine(nil)
	if got := lc.Layers()[0].Entity().Value("mark"); got != "point" {
		t.Fatalf("layer shares state with the source chart: %v", got)
	}

	b := chart.MustNew(nil)
	_ = b.MarkTick(nil)
	if err := lc.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n := len(lc.Layers()); n != 2 {
		t.Fatalf("Add must append in place, got %d layers", n)
	}
	if err := lc.Add(nil); err == nil {
		t.Fatalf("expected an error adding a nil chart")
	}
}

func TestFromDocument_Dispatch(t *testing.T) {
	cases := []struct {
		doc  map[string]any
		want string
	}{
		{map[string]any{"layer": []any{map[string]any{"mark": "point"}}}, "layered"},
		{map[string]any{"facet": map[string]any{"row": map[string]any{"field": "a", "type": "nominal"}}, "spec": map[string]any{"mark": "bar"}}, "faceted"},
		{map[string]any{"mark": "line"}, "chart"},
		{map[string]any{}, "chart"},
	}
	for _, tc := range cases {
		c, _, err := chart.FromDocument(govega.MustDocument(tc.doc))
		if err != nil {
			t.Fatalf("%v: %v", tc.doc, err)
		}
		var got string
		switch c.(type) {
		case *chart.LayeredChart:
			got = "layered"
		case *chart.FacetedChart:
			got = "faceted"
		case *chart.Chart:
			got = "chart"
		}
		if got != tc.want {
			t.Fatalf("%v: got %s want %s", tc.doc, got, tc.want)
		}
	}
}

func TestFromDocument_SchemaWarning(t *testing.T) {
	doc := govega.MustDocument(map[string]any{govega.SchemaKey: "https://vega.github.io/schema/vega-lite/v1.json", "mark": "bar"})
	c, d, err := chart.FromDocument(doc)
	if err != nil {
		t.Fatalf("a version mismatch must not fail: %v", err)
	}
	if !d.HasWarnings() {
		t.Fatalf("expected a schema version warning")
	}
	var svm *govega.SchemaVersionMismatch
	if !errors.As(d.Warnings()[0], &svm) {
		t.Fatalf("unexpected warning %v", d.Warnings()[0])
	}
	if c.Entity().Value("mark") != "bar" {
		t.Fatalf("mark not decoded")
	}
}

func TestFrameDecomposition(t *testing.T) {
	f := expr.NewFrame(rows(3))
	f = f.Assign("double", f.Col("a").Mul(2)).
		Where(f.Col("a").Gt(0)).
		Where(f.Col("double").Lt(4)).
		Select("a", "double")
	c := chart.MustNew(f)
	if err := c.Transform(dsl.Values{"calculate": "datum.a + 1", "as": "b"}); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	doc, err := c.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	m := doc.Map()
	wantData := map[string]any{"values": []any{
		map[string]any{"a": int64(0)},
		map[string]any{"a": int64(1)},
		map[string]any{"a": int64(2)},
	}}
	if diff := cmp.Diff(wantData, m["data"]); diff != "" {
		t.Fatalf("data (-want +got):\n%s", diff)
	}
	wantTransform := []any{
		map[string]any{"calculate": "datum.a + 1", "as": "b"},
		map[string]any{"calculate": "(datum.a * 2)", "as": "double"},
		map[string]any{"filter": []any{"(datum.a > 0)", "(datum.double < 4)"}},
	}
	if diff := cmp.Diff(wantTransform, m["transform"]); diff != "" {
		t.Fatalf("transform (-want +got):\n%s", diff)
	}
	if _, ok := c.Data().(*expr.Frame); !ok {
		t.Fatalf("export must not modify the chart")
	}
}

func TestFrameDecomposition_SingleFilter(t *testing.T) {
	f := expr.NewFrame(rows(2))
	c := chart.MustNew(f.Where(f.Col("a").Ge(1)))
	doc, err := c.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	want := []any{map[string]any{"filter": "(datum.a >= 1)"}}
	if diff := cmp.Diff(want, doc.Map()["transform"]); diff != "" {
		t.Fatalf("transform (-want +got):\n%s", diff)
	}
}

func TestSetData(t *testing.T) {
	c := chart.MustNew(nil)
	if err := c.SetData("data/cars.json"); err != nil {
		t.Fatalf("url: %v", err)
	}
	d, ok := c.Data().(*dsl.Entity)
	if !ok || d.Type() != vl.Data || d.Value("url") != "data/cars.json" {
		t.Fatalf("url must become a Data entity, got %#v", c.Data())
	}
	if err := c.SetData(nil); err != nil || c.Data() != nil {
		t.Fatalf("nil must clear the binding: %v %v", err, c.Data())
	}

	for _, bad := range []any{42, dsl.Values{"url": "x"}, vl.Axis.MustNew(nil), (*table.Rows)(nil)} {
		err := c.SetData(bad)
		var te *govega.TypeError
		if !errors.As(err, &te) {
			t.Fatalf("%#v: expected TypeError, got %v", bad, err)
		}
		if len(te.Accepted) == 0 {
			t.Fatalf("TypeError must name the accepted kinds")
		}
	}
	if _, err := chart.New(3.5); err == nil {
		t.Fatalf("New must reject unsupported data")
	}
	if _, err := chart.New((*table.Rows)(nil)); err == nil {
		t.Fatalf("New must reject a nil table")
	}
}

func TestSetMaxRows_RejectsNegative(t *testing.T) {
	c := chart.MustNew(rows(1))
	err := c.SetMaxRows(-1)
	ve, ok := govega.AsValidationError(err)
	if !ok || ve.Path != "/max_rows" {
		t.Fatalf("expected a ValidationError at /max_rows, got %v", err)
	}
	if got := c.MaxRows(); got != govega.DefaultMaxRows {
		t.Fatalf("a rejected value must keep the previous ceiling, got %d", got)
	}
	if err := c.SetMaxRows(0); err != nil {
		t.Fatalf("zero is a valid ceiling: %v", err)
	}
}

func TestMark_MergesStyle(t *testing.T) {
	c := chart.MustNew(nil)
	if err := c.MarkBar(dsl.Values{"color": "red", "opacity": 0.2}); err != nil {
		t.Fatalf("MarkBar: %v", err)
	}
	if err := c.MarkBar(dsl.Values{"opacity": 0.5}); err != nil {
		t.Fatalf("MarkBar: %v", err)
	}
	doc, err := c.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	m := doc.Map()
	if m["mark"] != "bar" {
		t.Fatalf("mark: %v", m["mark"])
	}
	want := map[string]any{"mark": map[string]any{"color": "red", "opacity": 0.5}}
	if diff := cmp.Diff(want, m["config"]); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}

	if err := c.Mark("blob", nil); err == nil {
		t.Fatalf("expected an invalid mark to fail")
	}
	if err := c.MarkLine(dsl.Values{"nope": 1}); err == nil {
		t.Fatalf("expected an unknown style key to fail")
	}
	if c.Entity().Value("mark") != "bar" {
		t.Fatalf("a failed Mark must not change the mark")
	}
}

func TestEncode_ShorthandAndInference(t *testing.T) {
	c := chart.MustNew(rows(2))
	if err := c.Encode(dsl.Values{"x": "a", "y": "count():Q"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := c.Encode(dsl.Values{"color": "s"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc, err := c.ToDocument(govega.ExportOpt{OmitData: true})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	m := doc.Map()
	want := map[string]any{
		"x":     map[string]any{"field": "a", "type": "quantitative"},
		"y":     map[string]any{"aggregate": "count", "type": "quantitative"},
		"color": map[string]any{"field": "s", "type": "nominal"},
	}
	if diff := cmp.Diff(want, m["encoding"]); diff != "" {
		t.Fatalf("encoding (-want +got):\n%s", diff)
	}
	if _, ok := m["data"]; ok {
		t.Fatalf("OmitData must drop the data binding")
	}
}

func TestLayer_InheritsData(t *testing.T) {
	child := chart.MustNew(nil)
	_ = child.Encode(dsl.Values{"x": "s"})
	lc, err := chart.NewLayered(rows(2), child)
	if err != nil {
		t.Fatalf("NewLayered: %v", err)
	}
	doc, err := lc.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	layer := doc.Map()["layer"].([]any)[0].(map[string]any)
	x := layer["encoding"].(map[string]any)["x"].(map[string]any)
	if x["type"] != "nominal" {
		t.Fatalf("type must be inferred from the layered chart data, got %v", x["type"])
	}
	if _, ok := layer["data"]; ok {
		t.Fatalf("inherited data must not be copied into the layer")
	}
}

func TestTextRoundTrip(t *testing.T) {
	c := chart.MustNew(rows(2))
	_ = c.MarkCircle(dsl.Values{"size": 60})
	_ = c.Encode(dsl.Values{"x": "a:Q", "y": dsl.Values{"field": "s", "type": "ordinal", "axis": nil}})
	_ = c.Properties(dsl.Values{"width": 300, "title": "Rows"})
	_ = c.Select("brush", dsl.Values{"type": "interval"})
	_ = c.Transform(vl.FilterTransform.MustNew(dsl.Values{"filter": dsl.Values{"field": "a", "range": []any{0, 1}}}))

	first, err := c.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	back, _, err := chart.FromText(first)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if _, ok := back.(*chart.Chart); !ok {
		t.Fatalf("expected a Chart, got %T", back)
	}
	second, err := back.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	if first != second {
		t.Fatalf("text round trip changed the output:\n%s\n%s", first, second)
	}
}

func TestTextRoundTrip_NumberEdges(t *testing.T) {
	src := `{"data":{"values":[{"c":-0.0},{"c":1e21},{"c":-0},{"c":2.5}]},"mark":"point"}`
	c, _, err := chart.FromText(src)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	first, err := c.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	back, _, err := chart.FromText(first)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	second, err := back.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	if first != second {
		t.Fatalf("text round trip changed the output:\n%s\n%s", first, second)
	}
	if strings.Contains(first, "-0") {
		t.Fatalf("negative zero must be written as 0: %s", first)
	}
}

func TestToDocument_SchemaFirst(t *testing.T) {
	doc, err := chart.MustNew(nil).ToDocument(govega.ExportOpt{InsertionOrder: true})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	if keys := doc.Keys(); keys[0] != govega.SchemaKey {
		t.Fatalf("$schema must come first, got %v", keys)
	}
	if v, _ := doc.Get(govega.SchemaKey); v != govega.SchemaURL {
		t.Fatalf("$schema: %v", v)
	}
	if _, ok := doc.Get("max_rows"); ok {
		t.Fatalf("max_rows is never exported")
	}
}

func TestProperties_RejectsOtherKeys(t *testing.T) {
	c := chart.MustNew(nil)
	err := c.Properties(dsl.Values{"mark": "bar"})
	var ufe *govega.UnknownFieldError
	if !errors.As(err, &ufe) || ufe.Field != "mark" {
		t.Fatalf("expected UnknownFieldError for mark, got %v", err)
	}
}

func TestFaceted(t *testing.T) {
	spec := chart.MustNew(nil)
	_ = spec.MarkBar(nil)
	_ = spec.Encode(dsl.Values{"x": "a"})

	fc, err := chart.NewFaceted(rows(2))
	if err != nil {
		t.Fatalf("NewFaceted: %v", err)
	}
	if _, err := fc.ToDocument(govega.ExportOpt{}); err == nil {
		t.Fatalf("facet and spec are required")
	}
	if err := fc.SetFacet(dsl.Values{"row": "s:N"}); err != nil {
		t.Fatalf("SetFacet: %v", err)
	}
	if err := fc.SetSpec(spec); err != nil {
		t.Fatalf("SetSpec: %v", err)
	}
	var te *govega.TypeError
	if err := fc.SetSpec(fc); !errors.As(err, &te) {
		t.Fatalf("a faceted chart cannot be a spec, got %v", err)
	}

	doc, err := fc.ToDocument(govega.ExportOpt{OmitData: true})
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	want := map[string]any{
		govega.SchemaKey: govega.SchemaURL,
		"facet":          map[string]any{"row": map[string]any{"field": "s", "type": "nominal"}},
		"spec": map[string]any{
			"mark":     "bar",
			"encoding": map[string]any{"x": map[string]any{"field": "a", "type": "quantitative"}},
		},
	}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Fatalf("document (-want +got):\n%s", diff)
	}

	back, _, err := chart.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if _, ok := back.(*chart.FacetedChart).Spec().(*chart.Chart); !ok {
		t.Fatalf("expected the repeated view to decode as a Chart")
	}
}

func TestFaceted_LayeredSpec(t *testing.T) {
	fc, _ := chart.NewFaceted("data/cars.json")
	_ = fc.SetFacet(dsl.Values{"column": "Origin:N"})
	if err := fc.SetSpec(chart.Layer(chart.MustNew(nil), chart.MustNew(nil))); err != nil {
		t.Fatalf("SetSpec: %v", err)
	}
	text, err := fc.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	back, _, err := chart.FromText(text)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if _, ok := back.(*chart.FacetedChart).Spec().(*chart.LayeredChart); !ok {
		t.Fatalf("expected the repeated view to decode as a LayeredChart")
	}
}

func TestFromText_IgnoresUnknownNestedKeys(t *testing.T) {
	src := `{"mark":"point","data":{"url":"a.csv","extra":1},"encoding":{"x":{"field":"a","type":"quantitative","later":true}}}`
	c, _, err := chart.FromText(src)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	d, ok := c.Data().(*dsl.Entity)
	if !ok || d.Type() != vl.Data || d.Value("url") != "a.csv" {
		t.Fatalf("expected a url Data entity, got %#v", c.Data())
	}
	text, err := c.ToText(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	if strings.Contains(text, "extra") || strings.Contains(text, "later") {
		t.Fatalf("unknown keys must be dropped: %s", text)
	}
}
