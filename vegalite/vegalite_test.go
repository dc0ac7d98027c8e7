package vegalite_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/chart"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/expr"
	"github.com/reoring/govega/table"
	vl "github.com/reoring/govega/vegalite"
)

func TestTypes_RejectUnknownField(t *testing.T) {
	for _, typ := range append(vl.Types(), chart.Types()...) {
		_, err := typ.New(dsl.Values{"__not_a_field__": 1})
		ufe, ok := err.(*govega.UnknownFieldError)
		if !ok {
			t.Fatalf("%s: expected UnknownFieldError, got %v", typ.Name(), err)
		}
		if ufe.Type != typ.Name() || ufe.Field != "__not_a_field__" {
			t.Fatalf("%s: unexpected error %+v", typ.Name(), ufe)
		}
	}
}

func TestTypes_JSONSchema(t *testing.T) {
	for _, typ := range vl.Types() {
		if _, err := typ.JSONSchema(); err != nil {
			t.Fatalf("%s: %v", typ.Name(), err)
		}
	}
}

func TestParseShorthand(t *testing.T) {
	cases := []struct {
		in   string
		want vl.Shorthand
	}{
		{"price", vl.Shorthand{Field: "price"}},
		{"price:Q", vl.Shorthand{Field: "price", Type: vl.Quantitative}},
		{"mean(price):quantitative", vl.Shorthand{Field: "price", Aggregate: "mean", Type: vl.Quantitative}},
		{"count()", vl.Shorthand{Aggregate: "count", Type: vl.Quantitative}},
		{"f(x)", vl.Shorthand{Field: "f(x)"}},
		{"a:b", vl.Shorthand{Field: "a:b"}},
		{"sum(a:b):N", vl.Shorthand{Field: "a:b", Aggregate: "sum", Type: vl.Nominal}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, vl.ParseShorthand(tc.in)); diff != "" {
			t.Fatalf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestInferType(t *testing.T) {
	tb := table.NewRows([]string{"n", "t", "s", "mixed", "empty"},
		map[string]any{"n": 1, "t": time.Unix(0, 0), "s": "a", "mixed": 1, "empty": nil},
		map[string]any{"n": 2.5, "t": time.Unix(1, 0), "s": "b", "mixed": "x"},
	)
	want := map[string]string{
		"n": vl.Quantitative, "t": vl.Temporal, "s": vl.Nominal, "mixed": vl.Nominal, "empty": vl.Nominal,
	}
	for col, w := range want {
		got, ok := vl.InferType(tb, col)
		if !ok || got != w {
			t.Fatalf("%s: got %s want %s", col, got, w)
		}
	}
	if _, ok := vl.InferType(tb, "missing"); ok {
		t.Fatalf("expected no inference for a missing column")
	}
}

func TestFieldDef_ShorthandFinalize(t *testing.T) {
	x := vl.PositionFieldDef.MustNew(dsl.Values{"field": "mean(price):Q"})
	doc, err := x.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"field": "price", "type": "quantitative", "aggregate": "mean"}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}
	if x.Value("field") != "mean(price):Q" {
		t.Fatalf("finalization leaked into the entity")
	}

	explicit := vl.PositionFieldDef.MustNew(dsl.Values{"field": "price:Q", "type": "ordinal"})
	doc, err = explicit.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := doc.Get("type"); v != "ordinal" {
		t.Fatalf("explicit type must win over shorthand, got %v", v)
	}
}

func TestEncoding_ChannelUnion(t *testing.T) {
	enc := vl.Encoding.MustNew(dsl.Values{
		"x":     dsl.Values{"field": "a", "type": "ordinal"},
		"color": dsl.Values{"value": "red"},
	})
	x, _ := dsl.Lookup[*dsl.Entity](enc, "x")
	c, _ := dsl.Lookup[*dsl.Entity](enc, "color")
	if x.Type() != vl.PositionFieldDef || c.Type() != vl.ValueDef {
		t.Fatalf("unexpected channel types: %s, %s", x.Type().Name(), c.Type().Name())
	}

	_, err := vl.Encoding.New(dsl.Values{"x": dsl.Values{"field": "a", "value": 1}})
	if ve, ok := govega.AsValidationError(err); !ok || ve.Code != govega.CodeNoMatch || ve.Path != "/x" {
		t.Fatalf("expected no_match at /x, got %v", err)
	}
}

func TestFilterTransform_ExpressionsBecomeText(t *testing.T) {
	f := vl.FilterTransform.MustNew(dsl.Values{
		"filter": vl.LogicalAnd.MustNew(dsl.Values{"and": []any{
			expr.Datum("a").Gt(1),
			dsl.Values{"field": "b", "oneOf": []any{"x", "y"}},
		}}),
	})
	doc, err := f.ToDocument(govega.ExportOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"filter": map[string]any{"and": []any{
		"(datum.a > 1)",
		map[string]any{"field": "b", "oneOf": []any{"x", "y"}},
	}}}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}

	back, _, err := vl.FilterTransform.FromDocument(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	and, ok := dsl.Lookup[*dsl.Entity](back, "filter")
	if !ok || and.Type() != vl.LogicalAnd {
		t.Fatalf("expected LogicalAnd, got %#v", back.Value("filter"))
	}
	preds := and.Value("and").([]any)
	if one, ok := preds[1].(*dsl.Entity); !ok || one.Type() != vl.OneOfFilter {
		t.Fatalf("expected OneOfFilter, got %#v", preds[1])
	}
}

func TestTransform_UnionPicksByKeys(t *testing.T) {
	holder := dsl.Object("Holder").Field("transform", dsl.ArrayOf(vl.Transform)).MustBuild()
	h := holder.MustNew(dsl.Values{"transform": []any{
		dsl.Values{"calculate": "datum.a * 2", "as": "b"},
		dsl.Values{"filter": "datum.b > 2"},
		dsl.Values{"bin": true, "field": "b", "as": "b_bin"},
		dsl.Values{"timeUnit": "year", "field": "date", "as": "year"},
	}})
	want := []*dsl.Type{vl.CalculateTransform, vl.FilterTransform, vl.BinTransform, vl.TimeUnitTransform}
	for i, tr := range h.Value("transform").([]any) {
		if got := tr.(*dsl.Entity).Type(); got != want[i] {
			t.Fatalf("transform %d: got %s want %s", i, got.Name(), want[i].Name())
		}
	}
}
