package chart_test

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/reoring/govega/chart"
	"github.com/reoring/govega/dsl"
)

func parseGo(t *testing.T, src string) {
	t.Helper()
	if _, err := parser.ParseFile(token.NewFileSet(), "chart_gen.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
}

func mustContain(t *testing.T, src string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(src, p) {
			t.Fatalf("generated source lacks %q:\n%s", p, src)
		}
	}
}

func TestToGo_Chart(t *testing.T) {
	c := chart.MustNew("data/cars.json")
	_ = c.MarkBar(nil)
	_ = c.Encode(dsl.Values{"x": "a:Q", "y": "count(*):Q"})
	_ = c.Properties(dsl.Values{"width": 200})
	_ = c.Transform(dsl.Values{"calculate": "datum.a < 3", "as": "small"})

	src, err := chart.ToGo(c, chart.GoOptions{})
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	parseGo(t, src)
	mustContain(t, src,
		"// Code generated by govega. DO NOT EDIT.",
		"package charts",
		"func Build() (*chart.Chart, error)",
		`chart.New("data/cars.json")`,
		"c.MarkBar(nil)",
		"c.Encode(dsl.Values{",
		`"quantitative"`,
		`c.Transform(dsl.Values{`,
		`"datum.a < 3"`,
		"c.Properties(dsl.Values{",
		`"width": 200`,
	)
}

func TestToGo_InlineTable(t *testing.T) {
	src, err := chart.ToGo(chart.MustNew(rows(2)), chart.GoOptions{Package: "main", Func: "NewSales"})
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	parseGo(t, src)
	mustContain(t, src, "package main", "func NewSales() (*chart.Chart, error)", "vl.Data.MustNew(dsl.Values{", `"values"`, `"r1"`)
}

func TestToGo_FacetedLayered(t *testing.T) {
	line := chart.MustNew(nil)
	_ = line.MarkLine(nil)
	dots := chart.MustNew(nil)
	_ = dots.MarkPoint(nil)

	fc, err := chart.NewFaceted("data/stocks.csv")
	if err != nil {
		t.Fatalf("NewFaceted: %v", err)
	}
	_ = fc.SetFacet(dsl.Values{"row": "symbol:N"})
	if err := fc.SetSpec(line.Plus(dots)); err != nil {
		t.Fatalf("SetSpec: %v", err)
	}

	src, err := chart.ToGo(fc, chart.GoOptions{})
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	parseGo(t, src)
	mustContain(t, src,
		"func Build() (*chart.FacetedChart, error)",
		"func buildSpec() (*chart.LayeredChart, error)",
		"func buildSpecLayer0() (*chart.Chart, error)",
		"func buildSpecLayer1() (*chart.Chart, error)",
		"chart.NewLayered(nil, l0, l1)",
		"c.SetSpec(spec)",
		"c.MarkLine(nil)",
		"c.MarkPoint(nil)",
		`chart.NewFaceted("data/stocks.csv")`,
	)
}

func TestToGo_Errors(t *testing.T) {
	if _, err := chart.ToGo(nil, chart.GoOptions{}); err == nil {
		t.Fatalf("expected an error for a nil composite")
	}
	c := chart.MustNew(rows(3))
	_ = c.SetMaxRows(2)
	if _, err := chart.ToGo(c, chart.GoOptions{}); err == nil {
		t.Fatalf("export errors must surface")
	}
}
